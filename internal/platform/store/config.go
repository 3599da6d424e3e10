package store

import (
	"time"

	"todotrack/internal/platform/config"
)

// Config aggregates per-backend settings
type Config struct {
	AppName string
	PG      PGConfig
	CH      CHConfig
}

// PGConfig configures the Postgres pool and its tracer
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int
	PingTimeout    time.Duration
}

// CHConfig configures the ClickHouse connection
type CHConfig struct {
	Enabled bool
	URL     string
}

// ConfigFromEnv reads SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_* under root.
// Postgres is always enabled and its DBURL is required.
func ConfigFromEnv(root config.Conf, appName string) Config {
	pg := root.Prefix("SERVICE_PGSQL_")
	ch := root.Prefix("SERVICE_CLICKHOUSE_")

	c := Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:        true,
			URL:            pg.MustString("DBURL"),
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 8)),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 200),
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{Enabled: ch.MayBool("ENABLED", false)},
	}
	if c.CH.Enabled {
		c.CH.URL = ch.MustString("DBURL")
	}
	return c
}
