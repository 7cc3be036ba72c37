package host

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts renders per module.
type Metrics struct {
	renders  *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. Collectors
// already registered by another host are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dropcap",
			Name:      "renders_total",
			Help:      "Module instances rendered.",
		}, []string{"module"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dropcap",
			Name:      "render_errors_total",
			Help:      "Module renders replaced by an empty fragment.",
		}, []string{"module"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dropcap",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering one module instance.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"module"}),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	m.renders, err = register(reg, m.renders)
	if err != nil {
		return nil, err
	}
	m.failures, err = register(reg, m.failures)
	if err != nil {
		return nil, err
	}
	m.duration, err = register(reg, m.duration)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, collector C) (C, error) {
	if err := reg.Register(collector); err != nil {
		var exists prometheus.AlreadyRegisteredError
		if errors.As(err, &exists) {
			if existing, ok := exists.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return collector, err
	}
	return collector, nil
}

func (m *Metrics) observe(slug string, seconds float64, failed bool) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(slug).Inc()
	m.duration.WithLabelValues(slug).Observe(seconds)
	if failed {
		m.failures.WithLabelValues(slug).Inc()
	}
}
