package main

import (
	"context"
	"fmt"

	"storefront/internal/usecase"

	"github.com/spf13/cobra"
)

func reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Run one payment reconciliation sweep",
		Long: `Settle orders whose payment was initiated but never confirmed.

Every order still in the initiated stage after payment.reconcileGrace is
checked against the gateway and moved to paid or failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var paymentUC usecase.PaymentUsecase

			return withApp(cmd.Context(), func(ctx context.Context) error {
				report, err := paymentUC.ReconcileStale(ctx)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "checked=%d paid=%d failed=%d linked=%d skipped=%d\n",
					report.Checked, report.Paid, report.Failed, report.Linked, report.Skipped)

				return nil
			}, &paymentUC)
		},
	}
}
