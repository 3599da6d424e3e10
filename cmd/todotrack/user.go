package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	identrepo "todotrack/internal/services/ident/repo"
	identsvc "todotrack/internal/services/ident/service"
)

func newUserCmd(a *app) *cobra.Command {
	user := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	user.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Create a user and print its API token once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("name must not be blank")
			}
			st, err := a.store(cmd.Context())
			if err != nil {
				return err
			}
			svc := identsvc.New(st.PG, identrepo.NewPG()).WithClock(a.now)
			u, token, err := svc.CreateUser(cmd.Context(), name)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "user  %s\nname  %s\ntoken %s\n", u.ID, u.Name, token)
			return nil
		},
	})
	return user
}
