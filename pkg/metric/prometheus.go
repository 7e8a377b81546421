package metric

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type PrometheusMetrics struct {
	collectors *collectors
	labels     Labels
}

// NewPrometheusMetrics creates collectors on first use, so every metric name
// must always be reported with the same set of label keys.
func NewPrometheusMetrics(namespace string, registry *prometheus.Registry) *PrometheusMetrics {
	return &PrometheusMetrics{
		collectors: &collectors{
			namespace:  namespace,
			registry:   registry,
			counters:   make(map[string]*prometheus.CounterVec),
			gauges:     make(map[string]*prometheus.GaugeVec),
			histograms: make(map[string]*prometheus.HistogramVec),
		},
		labels: nil,
	}
}

func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.collectors.registry, promhttp.HandlerOpts{})
}

func (m *PrometheusMetrics) With(labels Labels) Metrics {
	if len(labels) == 0 {
		return m
	}

	merged := make(Labels, len(m.labels)+len(labels))
	for k, v := range m.labels {
		merged[k] = v
	}
	for k, v := range labels {
		merged[k] = v
	}

	return &PrometheusMetrics{collectors: m.collectors, labels: merged}
}

func (m *PrometheusMetrics) WithLabel(key string, value any) Metrics {
	return m.With(Labels{key: value})
}

func (m *PrometheusMetrics) Increment(key string) {
	m.Count(key, 1)
}

func (m *PrometheusMetrics) Count(key string, value int) {
	names, values := m.labelPairs()
	counter, err := m.collectors.counter(key, names)
	if err != nil {
		return
	}

	counter.WithLabelValues(values...).Add(float64(value))
}

func (m *PrometheusMetrics) Gauge(key string, value int) {
	names, values := m.labelPairs()
	gauge, err := m.collectors.gauge(key, names)
	if err != nil {
		return
	}

	gauge.WithLabelValues(values...).Set(float64(value))
}

func (m *PrometheusMetrics) Duration(key string, duration time.Duration) {
	names, values := m.labelPairs()
	histogram, err := m.collectors.histogram(key, names)
	if err != nil {
		return
	}

	histogram.WithLabelValues(values...).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) labelPairs() (names, values []string) {
	names = make([]string, 0, len(m.labels))
	for name := range m.labels {
		names = append(names, name)
	}
	sort.Strings(names)

	values = make([]string, 0, len(names))
	for _, name := range names {
		values = append(values, fmt.Sprint(m.labels[name]))
	}

	return names, values
}

type collectors struct {
	mu         sync.Mutex
	namespace  string
	registry   *prometheus.Registry
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	histograms map[string]*prometheus.HistogramVec
}

func (c *collectors) counter(name string, labelNames []string) (*prometheus.CounterVec, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := collectorKey(name, labelNames)
	if vec, ok := c.counters[key]; ok {
		return vec, nil
	}

	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      name,
		Help:      name,
	}, labelNames)
	if err := c.registry.Register(vec); err != nil {
		return nil, fmt.Errorf("register counter %s: %w", name, err)
	}

	c.counters[key] = vec
	return vec, nil
}

func (c *collectors) gauge(name string, labelNames []string) (*prometheus.GaugeVec, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := collectorKey(name, labelNames)
	if vec, ok := c.gauges[key]; ok {
		return vec, nil
	}

	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: c.namespace,
		Name:      name,
		Help:      name,
	}, labelNames)
	if err := c.registry.Register(vec); err != nil {
		return nil, fmt.Errorf("register gauge %s: %w", name, err)
	}

	c.gauges[key] = vec
	return vec, nil
}

func (c *collectors) histogram(name string, labelNames []string) (*prometheus.HistogramVec, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := collectorKey(name, labelNames)
	if vec, ok := c.histograms[key]; ok {
		return vec, nil
	}

	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: c.namespace,
		Name:      name,
		Help:      name,
		Buckets:   prometheus.DefBuckets,
	}, labelNames)
	if err := c.registry.Register(vec); err != nil {
		return nil, fmt.Errorf("register histogram %s: %w", name, err)
	}

	c.histograms[key] = vec
	return vec, nil
}

func collectorKey(name string, labelNames []string) string {
	return name + "|" + strings.Join(labelNames, ",")
}
