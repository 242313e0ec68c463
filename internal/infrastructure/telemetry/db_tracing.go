package telemetry

import (
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/gorm"
)

// DBTracingConfig controls gorm span export
type DBTracingConfig struct {
	Enabled bool
	DBName  string
	// IncludeVariables records bound values in spans. Leave off outside development.
	IncludeVariables bool
}

// DBTracingPlugins returns the gorm plugins that emit one span per
// statement, or none when disabled.
func DBTracingPlugins(cfg DBTracingConfig) []gorm.Plugin {
	if !cfg.Enabled {
		return nil
	}
	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBName)}
	if !cfg.IncludeVariables {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	return []gorm.Plugin{otelgorm.NewPlugin(opts...)}
}
