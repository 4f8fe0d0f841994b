package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", StatusClass(200))
	assert.Equal(t, "2xx", StatusClass(204))
	assert.Equal(t, "4xx", StatusClass(404))
	assert.Equal(t, "5xx", StatusClass(503))
	assert.Equal(t, "error", StatusClass(0))
}

func TestMetricsRecording(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveAPI("GET", 200, 10*time.Millisecond)
	m.ObserveAPI("GET", 201, 10*time.Millisecond)
	m.ObserveAPI("POST", 0, time.Second)
	m.CacheHit()
	m.CacheMiss()
	m.CacheMiss()
	m.Invalidated(3)
	m.Invalidated(0)
	m.ObserveServer("GET", 404)

	assert.InDelta(t, 2, testutil.ToFloat64(m.APIRequests.WithLabelValues("GET", "2xx")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.APIRequests.WithLabelValues("POST", "error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.CacheInvalidations), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ServerRequests.WithLabelValues("GET", "404")), 0)

	gathered, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(gathered))
	for _, mf := range gathered {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "storefront_api_request_duration_seconds")
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveAPI("GET", 200, time.Millisecond)
		m.CacheHit()
		m.CacheMiss()
		m.Invalidated(1)
		m.ObserveServer("GET", 200)
	})
}
