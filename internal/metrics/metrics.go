// Package metrics exposes Prometheus metrics for the light service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// LightRequests counts accepted light state requests by logical light.
	LightRequests *prometheus.CounterVec

	// DeviceWrites counts control file writes by control path and result.
	DeviceWrites *prometheus.CounterVec

	// PersistenceMode reports whether low-persistence mode is active (0/1).
	PersistenceMode prometheus.Gauge

	// PanelBrightness reports the last brightness value written to the panel.
	PanelBrightness prometheus.Gauge
}

// New creates a Metrics instance with all collectors registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		LightRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lightnode_light_requests_total",
			Help: "Accepted light state requests by logical light",
		}, []string{"light"}),
		DeviceWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lightnode_device_writes_total",
			Help: "Control file writes by control path and result",
		}, []string{"control", "result"}),
		PersistenceMode: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lightnode_low_persistence_enabled",
			Help: "Whether display low-persistence mode is active",
		}),
		PanelBrightness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lightnode_panel_brightness",
			Help: "Last brightness value written to the panel backlight",
		}),
	}

	registry.MustRegister(m.LightRequests, m.DeviceWrites, m.PersistenceMode, m.PanelBrightness)
	return m
}

// Handler returns the HTTP handler serving the registry in Prometheus
// text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
