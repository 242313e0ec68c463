package telemetry

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the Prometheus registry behind the scrape endpoint. It
// starts with the Go runtime and process collectors.
type Registry struct {
	*prometheus.Registry
}

// NewRegistry creates a registry with the runtime collectors installed
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Registry{Registry: reg}
}

// RegisterDBStats exports connection pool statistics for db
func (r *Registry) RegisterDBStats(db *sql.DB, name string) error {
	return r.Register(collectors.NewDBStatsCollector(db, name))
}

// Handler serves the registry in the Prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{Registry: r.Registry})
}
