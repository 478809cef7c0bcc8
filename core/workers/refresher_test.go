package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/core/domain"
)

func countingJob(name string, counter *int32, status domain.FetchStatus) Job {
	return Job{
		Name: name,
		Run: func(ctx context.Context) domain.FetchStatus {
			atomic.AddInt32(counter, 1)
			return status
		},
	}
}

func TestRefresher_RunOnce(t *testing.T) {
	var content, posts int32
	r := NewRefresher([]Job{
		countingJob("content", &content, domain.StatusOK),
		countingJob("posts", &posts, domain.StatusFailed),
	}, Config{Interval: time.Hour}, nil)

	results := r.RunOnce(context.Background())

	assert.Equal(t, map[string]domain.FetchStatus{
		"content": domain.StatusOK,
		"posts":   domain.StatusFailed,
	}, results)
	assert.Equal(t, int32(1), atomic.LoadInt32(&content))
	assert.Equal(t, int32(1), atomic.LoadInt32(&posts))
}

func TestRefresher_RunOnce_StopsWhenContextDone(t *testing.T) {
	var calls int32
	r := NewRefresher([]Job{countingJob("content", &calls, domain.StatusOK)}, Config{Interval: time.Hour}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := r.RunOnce(ctx)

	assert.Empty(t, results)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestRefresher_RunsAtStartAndOnTick(t *testing.T) {
	var calls int32
	r := NewRefresher([]Job{countingJob("content", &calls, domain.StatusOK)}, Config{Interval: 20 * time.Millisecond}, nil)

	require.NoError(t, r.Start())
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) >= 3
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, r.Stop())

	stopped := atomic.LoadInt32(&calls)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, atomic.LoadInt32(&calls), "no rounds after Stop")
}

func TestRefresher_StartIsIdempotent(t *testing.T) {
	r := NewRefresher(nil, Config{Interval: time.Hour}, nil)

	require.NoError(t, r.Start())
	require.NoError(t, r.Start())
	require.NoError(t, r.Stop())
	assert.ErrorIs(t, r.Stop(), ErrNotRunning)
}

func TestRefresher_RejectsNonPositiveInterval(t *testing.T) {
	r := NewRefresher(nil, Config{}, nil)

	assert.ErrorIs(t, r.Start(), ErrInvalidInterval)
}

func TestRefresher_TimeoutBoundsRound(t *testing.T) {
	r := NewRefresher([]Job{{
		Name: "slow",
		Run: func(ctx context.Context) domain.FetchStatus {
			<-ctx.Done()
			return domain.StatusFailed
		},
	}}, Config{Interval: time.Hour, Timeout: 20 * time.Millisecond}, nil)

	start := time.Now()
	results := r.RunOnce(context.Background())

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, domain.StatusFailed, results["slow"])
}
