package dynarray

import (
	"github.com/go-kit/log"
)

type config struct {
	policy  GrowthPolicy
	logger  log.Logger
	metrics *Metrics
}

func defaultConfig() config {
	return config{
		policy: FixedGrowth{Factor: DefaultGrowthFactor},
		logger: log.NewNopLogger(),
	}
}

// Option configures an Array at construction.
type Option func(*config)

// WithGrowthPolicy sets how capacity is computed when a push finds the
// array full. Pass SharedRatchet to share one decaying factor across arrays.
func WithGrowthPolicy(p GrowthPolicy) Option {
	return func(c *config) {
		if p != nil {
			c.policy = p
		}
	}
}

// WithLogger sets the logger used for reallocation events.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records reallocations into m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}
