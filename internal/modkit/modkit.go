// Package modkit is the wiring kit API modules are built with: shared deps,
// functional options, and a Built bundle each module mounts from.
package modkit

import (
	"todotrack/internal/modkit/httpkit"
	"todotrack/internal/modkit/repokit"
	"todotrack/internal/platform/config"
	"todotrack/internal/platform/logger"
	"todotrack/internal/platform/store"
)

// Deps are the process-wide dependencies every module may use.
// CH is nil when ClickHouse is disabled.
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}

// Module is what api.Mount needs from a module
type Module interface {
	MountRoutes(r httpkit.Router)
	Ports() any
	Name() string
}
