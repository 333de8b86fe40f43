package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const dbStatsName = "supercompare"

// NewRegistry returns a registry carrying the Go runtime and process
// collectors, plus connection pool stats when sqlDB is non-nil.
func NewRegistry(sqlDB *sql.DB) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if sqlDB != nil {
		reg.MustRegister(collectors.NewDBStatsCollector(sqlDB, dbStatsName))
	}
	return reg
}
