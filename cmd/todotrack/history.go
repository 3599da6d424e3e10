package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"todotrack/internal/core/history"
	"todotrack/internal/services/api/history/domain"
	histrepo "todotrack/internal/services/api/history/repo"
	histsvc "todotrack/internal/services/api/history/service"
)

func newHistoryCmd(a *app) *cobra.Command {
	var userID, tz, locale string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print a user's history grouped by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("--user: %w", err)
			}
			defs := a.cfg.Prefix("HISTORY_")
			if tz == "" {
				tz = defs.MayString("DEFAULT_TZ", "UTC")
			}
			loc, err := time.LoadLocation(tz)
			if err != nil {
				return fmt.Errorf("--tz: %w", err)
			}
			tag := history.MatchLocale(locale, defs.MayString("DEFAULT_LOCALE", "en-US"))

			st, err := a.store(cmd.Context())
			if err != nil {
				return err
			}
			svc := histsvc.New(st.PG, histrepo.NewPG(), history.NewCache()).WithClock(a.now)
			v, err := svc.Load(cmd.Context(), domain.Request{User: user, Location: loc, Locale: tag})
			if err != nil {
				return err
			}
			return history.WriteText(a.out, v)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id (required)")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA time zone, default HISTORY_DEFAULT_TZ")
	cmd.Flags().StringVar(&locale, "locale", "", "locale for date labels, e.g. de or en-GB")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
