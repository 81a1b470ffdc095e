// Package metrics defines the Prometheus collectors for wrangler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the collectors recorded during scans and served at /metrics.
type Metrics struct {
	Registry *prometheus.Registry

	// ScenesScanned counts snapshot files classified, by outcome (ok, error).
	ScenesScanned *prometheus.CounterVec
	// AssetsFound counts classified assets by kind tag.
	AssetsFound *prometheus.CounterVec
	// ScanDuration observes per-snapshot classification time.
	ScanDuration prometheus.Histogram
}

// New creates the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		ScenesScanned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wrangler_scenes_scanned_total",
				Help: "Total number of scene snapshots classified",
			},
			[]string{"outcome"},
		),
		AssetsFound: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wrangler_assets_found_total",
				Help: "Total number of assets classified, by kind",
			},
			[]string{"kind"},
		),
		ScanDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wrangler_scan_duration_seconds",
				Help:    "Duration of single-snapshot classification",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	m.Registry.MustRegister(m.ScenesScanned, m.AssetsFound, m.ScanDuration)
	return m
}
