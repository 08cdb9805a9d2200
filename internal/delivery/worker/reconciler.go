// Package worker runs the background deliveries of the storefront.
package worker

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reconciler sweeps stale payments on a fixed interval.
type reconciler struct {
	interval  time.Duration
	logger    *slog.Logger
	paymentUC usecase.PaymentUsecase

	quit chan struct{}
	done chan struct{}
}

// ReconcilerParams holds dependencies for the reconcile worker
type ReconcilerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	PaymentUC usecase.PaymentUsecase
}

// NewReconciler creates the payment reconcile worker. A zero interval disables it.
func NewReconciler(params ReconcilerParams) (delivery.Delivery, error) {
	var interval time.Duration
	if params.Cfg.Payment != nil {
		interval = params.Cfg.Payment.ReconcileInterval
	}
	if interval < 0 {
		return nil, errors.Errorf("payment.reconcileInterval must not be negative, got %s", interval)
	}

	r := newReconciler(interval, params.PaymentUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: r.stop,
	})

	return r, nil
}

func newReconciler(interval time.Duration, paymentUC usecase.PaymentUsecase, logger *slog.Logger) *reconciler {
	return &reconciler{
		interval:  interval,
		logger:    logger,
		paymentUC: paymentUC,
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Serve blocks until the worker is stopped or ctx ends.
func (r *reconciler) Serve(ctx context.Context) error {
	defer close(r.done)

	if r.interval == 0 {
		r.logger.Info("Payment reconciliation disabled")

		return nil
	}

	r.logger.Info("Starting payment reconcile worker", slog.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.quit:
			return nil
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *reconciler) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	report, err := r.paymentUC.ReconcileStale(sweepCtx)
	if err != nil {
		r.logger.Error("Payment reconciliation failed", slog.Any("error", err))

		return
	}

	if report.Checked > 0 {
		r.logger.Info("Payment reconciliation finished",
			slog.Int("checked", report.Checked),
			slog.Int("paid", report.Paid),
			slog.Int("failed", report.Failed),
			slog.Int("linked", report.Linked),
			slog.Int("skipped", report.Skipped),
		)
	}
}

func (r *reconciler) stop(ctx context.Context) error {
	r.logger.Info("Shutting down payment reconcile worker")
	close(r.quit)

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-r.done:
		return nil
	case <-stopCtx.Done():
		return errors.WithStack(stopCtx.Err())
	}
}
