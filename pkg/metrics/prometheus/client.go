// Package prometheus implements metrics.Client on top of a dedicated Prometheus registry.
// Instruments are registered lazily on first use; the label set of an instrument is fixed
// by the attributes of its first sample and later samples with a different set are dropped.
package prometheus

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/architeacher/k8s-simulator/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
)

type (
	Client struct {
		namespace   string
		registry    *prometheus.Registry
		descriptors map[string]metrics.Descriptor
		buckets     []float64

		mu         sync.Mutex
		counters   map[string]*counterEntry
		histograms map[string]*histogramEntry
	}

	counterEntry struct {
		vec    *prometheus.CounterVec
		labels []string
	}

	histogramEntry struct {
		vec    *prometheus.HistogramVec
		labels []string
	}

	Option func(*Client)
)

var _ metrics.Client = (*Client)(nil)

// WithDescriptors sets help strings for known instrument names.
func WithDescriptors(descriptors map[string]metrics.Descriptor) Option {
	return func(c *Client) {
		for name, d := range descriptors {
			c.descriptors[sanitize(name)] = d
		}
	}
}

// WithBuckets overrides the histogram buckets, prometheus.DefBuckets by default.
func WithBuckets(buckets []float64) Option {
	return func(c *Client) {
		c.buckets = buckets
	}
}

// WithRuntimeCollectors registers the Go runtime and process collectors.
func WithRuntimeCollectors() Option {
	return func(c *Client) {
		c.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
}

func NewClient(namespace string, opts ...Option) *Client {
	c := &Client{
		namespace:   sanitize(namespace),
		registry:    prometheus.NewRegistry(),
		descriptors: make(map[string]metrics.Descriptor),
		buckets:     prometheus.DefBuckets,
		counters:    make(map[string]*counterEntry),
		histograms:  make(map[string]*histogramEntry),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Inc(_ context.Context, key string, value any, attributes ...attribute.KeyValue) {
	amount, ok := metrics.ToFloat64(value)
	if !ok || amount < 0 {
		return
	}

	names, values := splitAttributes(attributes)

	entry := c.counter(sanitize(key), names)
	if entry == nil {
		return
	}

	entry.vec.WithLabelValues(values...).Add(amount)
}

func (c *Client) Observe(_ context.Context, key string, value float64, attributes ...attribute.KeyValue) {
	names, values := splitAttributes(attributes)

	entry := c.histogram(sanitize(key), names)
	if entry == nil {
		return
	}

	entry.vec.WithLabelValues(values...).Observe(value)
}

func (c *Client) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (c *Client) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Client) Shutdown(_ context.Context) error {
	return nil
}

func (c *Client) counter(name string, labels []string) *counterEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.counters[name]; ok {
		if !slices.Equal(entry.labels, labels) {
			return nil
		}

		return entry
	}

	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      name,
		Help:      c.help(name),
	}, labels)

	if err := c.registry.Register(vec); err != nil {
		return nil
	}

	entry := &counterEntry{vec: vec, labels: labels}
	c.counters[name] = entry

	return entry
}

func (c *Client) histogram(name string, labels []string) *histogramEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.histograms[name]; ok {
		if !slices.Equal(entry.labels, labels) {
			return nil
		}

		return entry
	}

	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: c.namespace,
		Name:      name,
		Help:      c.help(name),
		Buckets:   c.buckets,
	}, labels)

	if err := c.registry.Register(vec); err != nil {
		return nil
	}

	entry := &histogramEntry{vec: vec, labels: labels}
	c.histograms[name] = entry

	return entry
}

func (c *Client) help(name string) string {
	if d, ok := c.descriptors[name]; ok && d.Description != "" {
		return d.Description
	}

	return strings.ReplaceAll(name, "_", " ")
}

func splitAttributes(attributes []attribute.KeyValue) ([]string, []string) {
	sorted := slices.Clone(attributes)
	slices.SortFunc(sorted, func(a, b attribute.KeyValue) int {
		return strings.Compare(string(a.Key), string(b.Key))
	})

	names := make([]string, 0, len(sorted))
	values := make([]string, 0, len(sorted))

	for _, attr := range sorted {
		names = append(names, sanitize(string(attr.Key)))
		values = append(values, attr.Value.Emit())
	}

	return names, values
}

// sanitize turns dotted or dashed keys into valid Prometheus identifiers.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == ':':
			return r
		default:
			return '_'
		}
	}, name)
}
