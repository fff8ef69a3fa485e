package keyrotation

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes rotation activity to Prometheus. A nil *Metrics is a no-op.
type Metrics struct {
	attempts  *prometheus.CounterVec
	rotations prometheus.Counter
	evictions prometheus.Counter
	poolSize  prometheus.Gauge
}

// NewMetrics registers the rotation collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "centralgpt",
			Subsystem: "keyrotation",
			Name:      "attempts_total",
			Help:      "Generation attempts by outcome.",
		}, []string{"outcome"}),
		rotations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "centralgpt",
			Subsystem: "keyrotation",
			Name:      "rotations_total",
			Help:      "Rotations to the next API key after a rate limit.",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "centralgpt",
			Subsystem: "keyrotation",
			Name:      "evictions_total",
			Help:      "API keys removed from the pool as invalid.",
		}),
		poolSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "centralgpt",
			Subsystem: "keyrotation",
			Name:      "pool_size",
			Help:      "Number of API keys currently in the pool.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.attempts, m.rotations, m.evictions, m.poolSize)
	}
	return m
}

func (m *Metrics) observeAttempt(outcome string) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeRotation() {
	if m == nil {
		return
	}
	m.rotations.Inc()
}

func (m *Metrics) observeEviction() {
	if m == nil {
		return
	}
	m.evictions.Inc()
}

func (m *Metrics) setPoolSize(n int) {
	if m == nil {
		return
	}
	m.poolSize.Set(float64(n))
}
