package dynarray

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Reallocation reasons used as the "op" label.
const (
	opGrow   = "grow"
	opEnsure = "ensure"
	opTrim   = "trim"
)

// Metrics holds the Prometheus metrics recorded by arrays built WithMetrics.
// One Metrics value may be shared by any number of arrays.
type Metrics struct {
	Reallocations  *prometheus.CounterVec
	ElementsCopied prometheus.Counter
}

// NewMetrics creates and registers all metrics with the provided registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	reallocations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dynarray_reallocations_total",
		Help: "Total backing store reallocations",
	}, []string{"op"})

	elementsCopied := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dynarray_elements_copied_total",
		Help: "Total elements copied into a new backing store",
	})

	reg.MustRegister(reallocations, elementsCopied)

	return &Metrics{
		Reallocations:  reallocations,
		ElementsCopied: elementsCopied,
	}
}

func (m *Metrics) observe(op string, copied int) {
	if m == nil {
		return
	}
	m.Reallocations.WithLabelValues(op).Inc()
	m.ElementsCopied.Add(float64(copied))
}
