package metric

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebsconsulting/createphp/errors"
)

func TestNewMetricsRegistry(t *testing.T) {
	registry := NewMetricsRegistry()

	assert.NotNil(t, registry.PrometheusRegistry())
	assert.Same(t, registry.Metrics, registry.CoreMetrics())
}

func TestMetricsRegistry_RegisterCounter(t *testing.T) {
	registry := NewMetricsRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_counter",
		Help: "A test counter",
	})

	require.NoError(t, registry.RegisterCounter("type-cache", "test_counter", counter))
	counter.Inc()

	metricFamilies, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range metricFamilies {
		if mf.GetName() == "test_counter" {
			found = true
			break
		}
	}
	assert.True(t, found, "Counter should be registered in Prometheus registry")
}

func TestMetricsRegistry_DuplicateRegistration(t *testing.T) {
	registry := NewMetricsRegistry()

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "dup_gauge", Help: "dup"})
	require.NoError(t, registry.RegisterGauge("svc", "dup_gauge", gauge))

	err := registry.RegisterGauge("svc", "dup_gauge", gauge)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))

	// same collector under another key conflicts inside prometheus
	err = registry.RegisterGauge("other", "dup_gauge", gauge)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestMetricsRegistry_Unregister(t *testing.T) {
	registry := NewMetricsRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "gone_total", Help: "gone"})
	require.NoError(t, registry.RegisterCounter("svc", "gone_total", counter))

	assert.True(t, registry.Unregister("svc", "gone_total"))
	assert.False(t, registry.Unregister("svc", "gone_total"))

	// can be registered again after removal
	require.NoError(t, registry.RegisterCounter("svc", "gone_total", counter))
}

func TestMetrics_Record(t *testing.T) {
	m := NewMetrics()

	m.RecordResolution(ResultFound, 2*time.Millisecond)
	m.RecordResolution(ResultFound, time.Millisecond)
	m.RecordResolution(ResultNotFound, time.Millisecond)
	m.RecordField("property")
	m.RecordField("collection")
	m.RecordField("property")
	m.RecordSkippedChild()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ResolutionsTotal.WithLabelValues(ResultFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResolutionsTotal.WithLabelValues(ResultNotFound)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ResolutionsTotal.WithLabelValues(ResultError)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FieldsLoaded.WithLabelValues("property")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChildrenSkipped))
	assert.Equal(t, 2, testutil.CollectAndCount(m.ResolutionDuration))
}
