package main

import (
	"context"
	"fmt"

	"storefront/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var db *gorm.DB

			return withApp(cmd.Context(), func(ctx context.Context) error {
				if err := postgres.Migrate(ctx, db); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")

				return nil
			}, &db)
		},
	}
}
