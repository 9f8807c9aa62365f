package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(
		Observer.prometheus.Trials,
		Observer.prometheus.Lookups,
		Observer.prometheus.Hits,
		Observer.prometheus.Errors,
	)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// IncrementTrials counts a finished trial for the given model and strategy.
func (m *Metrics) IncrementTrials(model, strategy string) {
	m.prometheus.Trials.WithLabelValues(model, strategy).Inc()
}

// AddLookups counts oracle label lookups.
func (m *Metrics) AddLookups(n int) {
	m.prometheus.Lookups.WithLabelValues("oracle").Add(float64(n))
}

// AddHits counts confirmed actives for the given model and strategy.
func (m *Metrics) AddHits(n int, model, strategy string) {
	m.prometheus.Hits.WithLabelValues(model, strategy).Add(float64(n))
}

// IncrementErrors counts an error for the given process.
func (m *Metrics) IncrementErrors(process string) {
	m.prometheus.Errors.WithLabelValues(process).Inc()
}
