package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-api/core/interfaces"
)

func TestNewMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	if cache == nil {
		t.Error("NewMemoryCache returned nil")
	}
}

func TestMemoryCache_Get_ExistingKey(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	key := "content:articles"
	value := []byte(`[{"title":"Hello"}]`)
	if err := cache.Set(ctx, key, value, time.Hour); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("Get returned %s, want %s", string(got), string(value))
	}
}

func TestMemoryCache_Get_NonExistentKey(t *testing.T) {
	cache := NewMemoryCache()

	got, err := cache.Get(context.Background(), "non-existent")

	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get should return ErrCacheMiss, got %v", err)
	}
	if got != nil {
		t.Error("Get should return nil value for non-existent key")
	}
}

func TestMemoryCache_Get_ExpiredKey(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "feed:jane", []byte("posts"), 10*time.Millisecond); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	got, err := cache.Get(ctx, "feed:jane")
	if err == nil {
		t.Error("Get should return error for expired key")
	}
	if got != nil {
		t.Error("Get should return nil value for expired key")
	}
}

func TestMemoryCache_Set_WithZeroTTL(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get returned %s, want value", string(got))
	}
}

func TestMemoryCache_Set_UpdatesExisting(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("value1"), time.Hour)
	_ = cache.Set(ctx, "key", []byte("value2"), time.Hour)

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if string(got) != "value2" {
		t.Errorf("Get returned %s, want value2", string(got))
	}
	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1", cache.Len())
	}
}

func TestMemoryCache_ValuesAreCopied(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	value := []byte("original")
	_ = cache.Set(ctx, "key", value, time.Hour)
	value[0] = 'X'

	got, _ := cache.Get(ctx, "key")
	if string(got) != "original" {
		t.Errorf("Stored value was mutated through caller slice: %s", string(got))
	}

	got[0] = 'Y'
	again, _ := cache.Get(ctx, "key")
	if string(again) != "original" {
		t.Errorf("Stored value was mutated through returned slice: %s", string(again))
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("value"), time.Hour)

	if err := cache.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get should return error for deleted key")
	}
	if err := cache.Delete(ctx, "non-existent"); err != nil {
		t.Errorf("Delete should return nil for non-existent key, got: %v", err)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get should fail with cancelled context")
	}
	if err := cache.Set(ctx, "key", []byte("v"), time.Hour); err == nil {
		t.Error("Set should fail with cancelled context")
	}
	if err := cache.Delete(ctx, "key"); err == nil {
		t.Error("Delete should fail with cancelled context")
	}
}
