package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_ObserveFetch(t *testing.T) {
	before := testutil.ToFloat64(UpstreamFetchTotal.WithLabelValues("contentful:articles", "ok"))

	NewRecorder().ObserveFetch("contentful:articles", "ok", 25*time.Millisecond)

	after := testutil.ToFloat64(UpstreamFetchTotal.WithLabelValues("contentful:articles", "ok"))
	assert.Equal(t, before+1, after)
}

func TestObserveRequest(t *testing.T) {
	counter := HttpRequestsTotal.WithLabelValues("GET", "/articles/{slug}", "404", serviceName)
	before := testutil.ToFloat64(counter)

	ObserveRequest("GET", "/articles/{slug}", 404, 10*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "200", statusLabel(0))
	assert.Equal(t, "503", statusLabel(503))
}

func TestInit(t *testing.T) {
	Init("1.0.0", "test")
	assert.Equal(t, float64(1), testutil.ToFloat64(ApplicationInfo.WithLabelValues(serviceName, "1.0.0", "test")))
}
