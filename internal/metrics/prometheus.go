package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Trials  *prometheus.CounterVec
	Lookups *prometheus.CounterVec
	Hits    *prometheus.CounterVec
	Errors  *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Trials: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "screen",
				Name:      "trials",
			}, []string{"model", "strategy"}),
		Lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "screen",
				Name:      "lookups",
			}, []string{"process"}),
		Hits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "screen",
				Name:      "hits",
			}, []string{"model", "strategy"}),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "screen",
				Name:      "errors",
			}, []string{"process"}),
	}
}
