package players

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts player use case outcomes.
type Metrics struct {
	created            prometheus.Counter
	validationFailures *prometheus.CounterVec
	searches           prometheus.Counter
}

// NewMetrics registers the player counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sandai",
			Subsystem: "players",
			Name:      "created_total",
			Help:      "Players created",
		}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sandai",
			Subsystem: "players",
			Name:      "validation_failures_total",
			Help:      "Player commands rejected by validation",
		}, []string{"operation"}),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sandai",
			Subsystem: "players",
			Name:      "searches_total",
			Help:      "Player searches served",
		}),
	}
	reg.MustRegister(m.created, m.validationFailures, m.searches)
	return m
}
