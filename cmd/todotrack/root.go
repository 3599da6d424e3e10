package main

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"todotrack/internal/platform/config"
	"todotrack/internal/platform/logger"
	"todotrack/internal/platform/store"
)

// app holds what subcommands share. The store opens lazily so --help needs no database.
type app struct {
	out  io.Writer
	cfg  config.Conf
	open func(context.Context) (*store.Store, error)
	now  func() time.Time

	st *store.Store
}

func newApp(out io.Writer) *app {
	cfg := config.New()
	return &app{
		out: out,
		cfg: cfg,
		open: func(ctx context.Context) (*store.Store, error) {
			return store.Open(ctx, store.ConfigFromEnv(cfg, "todotrack-cli"), store.WithLogger(*logger.Named("store")))
		},
		now: time.Now,
	}
}

func (a *app) store(ctx context.Context) (*store.Store, error) {
	if a.st != nil {
		return a.st, nil
	}
	st, err := a.open(ctx)
	if err != nil {
		return nil, err
	}
	a.st = st
	return st, nil
}

func (a *app) close() {
	if a.st == nil {
		return
	}
	if err := a.st.Close(context.Background()); err != nil {
		logger.Get().Error().Err(err).Msg("failed to close store")
	}
	a.st = nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "todotrack",
		Short: "todotrack operator CLI",
		Long: `todotrack manages the todotrack database: apply the schema, create users
and print a user's merged history grouped by day.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)
	root.AddCommand(newMigrateCmd(a), newUserCmd(a), newHistoryCmd(a))
	return root
}
