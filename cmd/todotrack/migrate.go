package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"todotrack/internal/platform/store/migrate"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.store(cmd.Context())
			if err != nil {
				return err
			}
			applied, err := migrate.Up(cmd.Context(), st.PG)
			if err != nil {
				return err
			}
			if st.CH != nil {
				if err := migrate.ClickHouse(cmd.Context(), st.CH); err != nil {
					return fmt.Errorf("clickhouse schema: %w", err)
				}
			}
			if len(applied) == 0 {
				fmt.Fprintln(a.out, "schema is up to date")
				return nil
			}
			for _, v := range applied {
				fmt.Fprintln(a.out, "applied", v)
			}
			return nil
		},
	}
}
