package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	registry         *prometheus.Registry
	ConversionsTotal *prometheus.CounterVec
	EntriesTotal     prometheus.Counter
	PathsEmitted     prometheus.Counter
}

func NewMetrics() *Metrics {
	r := prometheus.NewRegistry()
	m := &Metrics{
		registry: r,
		ConversionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "har2openapi",
			Name:      "conversions_total",
			Help:      "Total conversion requests by outcome",
		}, []string{"outcome"}),
		EntriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "har2openapi",
			Name:      "entries_total",
			Help:      "Total capture entries processed",
		}),
		PathsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "har2openapi",
			Name:      "paths_emitted_total",
			Help:      "Total path templates emitted across all documents",
		}),
	}
	r.MustRegister(m.ConversionsTotal, m.EntriesTotal, m.PathsEmitted)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
