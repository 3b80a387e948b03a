// Package metric wraps prometheus counters for menu session instrumentation.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// MenuEventCounterName is the canonical counter tracking menu loop events.
	MenuEventCounterName = "gomenu_menu_events_total"

	// Menu event label values recorded by the menu loop.
	EventDispatch = "dispatch"
	EventInvalid  = "invalid"
	EventError    = "error"
	EventExit     = "exit"
)

type IncrementalCounter interface {
	Increment(val ...string)
}

type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

func NewCounter(name, help string, labels ...string) IncrementalCounter {
	return NewCounterWithRegistry(prometheus.DefaultRegisterer, name, help, labels...)
}

func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) IncrementalCounter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	reg.MustRegister(counter)

	return &Counter{
		Name: name,
		Help: help,
		vec:  counter,
	}
}

// NewMenuEventCounter creates the canonical menu event counter, labeled by
// menu title and event kind (dispatch, invalid, error, exit).
func NewMenuEventCounter(reg prometheus.Registerer) IncrementalCounter {
	return NewCounterWithRegistry(reg,
		MenuEventCounterName,
		"Number of menu loop events by menu and event kind.",
		"menu", "event")
}

// GetHandler returns an HTTP handler for serving Prometheus metrics.
func GetHandler() http.Handler {
	return promhttp.Handler()
}

// GetHandlerForRegistry returns an HTTP handler for serving Prometheus metrics from a custom registry.
func GetHandlerForRegistry(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
