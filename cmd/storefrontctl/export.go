package main

import (
	"context"
	"fmt"
	"os"

	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func exportProductsCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export-products",
		Short: "Write the catalog to a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var catalogUC usecase.CatalogUsecase

			return withApp(cmd.Context(), func(ctx context.Context) error {
				file, err := os.Create(out)
				if err != nil {
					return errors.Wrapf(err, "failed to create %s", out)
				}
				defer file.Close()

				if _, err := catalogUC.ExportProducts(ctx, file); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "catalog written to %s\n", out)

				return errors.WithStack(file.Sync())
			}, &catalogUC)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "products.xlsx", "output file")

	return cmd
}
