// SPDX-License-Identifier: MIT
package metrics

import (
	"io"
	"math"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	c, err := vec.GetMetricWithLabelValues(labels...)
	require.NoError(t, err)
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

// seriesCount returns how many label combinations of family name exist.
func seriesCount(t *testing.T, r *Registry, name string) int {
	t.Helper()
	families, err := r.Gatherer().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return len(f.GetMetric())
		}
	}
	return 0
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r.SamplesTotal)
	require.NotNil(t, r.MixingRate)
	require.NotNil(t, r.ProduceDuration)
	require.NotNil(t, r.EngineRequests)
	require.NotNil(t, r.registry)
}

func TestRecordSample(t *testing.T) {
	r := NewRegistry()

	r.RecordSample("mh", OutcomeFeasible, 0.4, 2*time.Millisecond)
	r.RecordSample("mh", OutcomeFeasible, 0.6, time.Millisecond)
	r.RecordSample("mgo", OutcomeInfeasible, math.Inf(1), time.Second)

	require.Equal(t, 2.0, counterValue(t, r.SamplesTotal, "mh", OutcomeFeasible))
	require.Equal(t, 1.0, counterValue(t, r.SamplesTotal, "mgo", OutcomeInfeasible))

	// Infinite rates are counted but never observed in the histogram.
	require.Equal(t, 1, seriesCount(t, r, "mixrate_mixing_rate"))
	require.Equal(t, 2, seriesCount(t, r, "mixrate_produce_duration_seconds"))
}

func TestObserveEngineRequest(t *testing.T) {
	r := NewRegistry()
	r.ObserveEngineRequest("200")
	r.ObserveEngineRequest("200")
	r.ObserveEngineRequest("422")

	require.Equal(t, 2.0, counterValue(t, r.EngineRequests, "200"))
	require.Equal(t, 1.0, counterValue(t, r.EngineRequests, "422"))
}

func TestNilRegistry(t *testing.T) {
	var r *Registry
	require.NotPanics(t, func() {
		r.RecordSample("mh", OutcomeFeasible, 0.5, time.Millisecond)
		r.ObserveEngineRequest("200")
	})
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.RecordSample("go", OutcomeFeasible, 0.25, time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `mixrate_samples_total{outcome="feasible",producer="go"} 1`)
	require.Contains(t, string(body), "mixrate_mixing_rate_bucket")
}
