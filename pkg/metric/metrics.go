package metric

import "time"

type (
	Metrics interface {
		With(Labels) Metrics
		WithLabel(key string, value any) Metrics
		Increment(key string)
		Count(key string, value int)
		Gauge(key string, value int)
		Duration(key string, duration time.Duration)
	}

	Labels map[string]any
)
