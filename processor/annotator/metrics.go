package annotator

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts render passes.
type Metrics struct {
	passes *prometheus.CounterVec
	slots  prometheus.Counter
}

// NewMetrics creates and registers pass metrics on reg. A nil reg creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "signum",
			Name:      "passes_total",
			Help:      "Render passes by outcome.",
		}, []string{"status"}),
		slots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "signum",
			Name:      "slots_rendered_total",
			Help:      "Placeholder slots that received an indicator.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.passes, m.slots)
	}
	return m
}

func (m *Metrics) observe(res *Result) {
	if m == nil {
		return
	}
	m.passes.WithLabelValues(string(res.Status)).Inc()
	m.slots.Add(float64(res.Rendered))
}
