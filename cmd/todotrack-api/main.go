// @title         todotrack API
// @version       1.0
// @description   Todos, time tracking and a merged per-day history
// @BasePath      /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todotrack/internal/modkit/repokit"
	"todotrack/internal/platform/config"
	"todotrack/internal/platform/logger"
	phttp "todotrack/internal/platform/net/http"
	"todotrack/internal/platform/store"
	"todotrack/internal/platform/store/migrate"

	"todotrack/internal/services/api"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		// logger is not up yet
		_, _ = os.Stderr.WriteString("dotenv: " + err.Error() + "\n")
	}
	logger.Init(logger.FromEnv())
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// open the platform store (postgres, plus clickhouse when enabled)
	st, err := store.Open(ctx, store.ConfigFromEnv(root, "todotrack-api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	repokit.MustGuard(ctx, st, root.Prefix("SERVICE_PGSQL_").MayDuration("PING_TIMEOUT", 3*time.Second))

	if root.Prefix("SERVICE_PGSQL_").MayBool("MIGRATE", false) {
		applied, err := migrate.Up(ctx, st.PG)
		if err != nil {
			l.Panic().Err(err).Msg("migrations failed")
		}
		l.Info().Strs("applied", applied).Msg("schema up to date")
	}
	if st.CH != nil {
		if err := migrate.ClickHouse(ctx, st.CH); err != nil {
			// analytics are best effort; the api still serves
			l.Warn().Err(err).Msg("clickhouse schema failed")
		}
	}

	// http server (reads CORE_API_API_PORT / CORE_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)
	api.Mount(srv.Router(), api.OptionsFromConfig(root, st))

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
