package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReconciler_SweepsUntilStopped(t *testing.T) {
	paymentUC := mockUC.NewMockPaymentUsecase(t)
	swept := make(chan struct{}, 8)
	paymentUC.EXPECT().
		ReconcileStale(mock.Anything).
		RunAndReturn(func(context.Context) (*usecase.ReconcileReport, error) {
			select {
			case swept <- struct{}{}:
			default:
			}

			return &usecase.ReconcileReport{Checked: 1, Paid: 1}, nil
		})

	r := newReconciler(5*time.Millisecond, paymentUC, discardLogger())
	served := make(chan error, 1)
	go func() { served <- r.Serve(context.Background()) }()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("reconciliation never ran")
	}

	require.NoError(t, r.stop(context.Background()))
	assert.NoError(t, <-served)
}

func TestReconciler_SweepErrorKeepsRunning(t *testing.T) {
	paymentUC := mockUC.NewMockPaymentUsecase(t)
	calls := make(chan struct{}, 8)
	paymentUC.EXPECT().
		ReconcileStale(mock.Anything).
		RunAndReturn(func(context.Context) (*usecase.ReconcileReport, error) {
			select {
			case calls <- struct{}{}:
			default:
			}

			return nil, errors.New("gateway down")
		})

	r := newReconciler(5*time.Millisecond, paymentUC, discardLogger())
	go func() { _ = r.Serve(context.Background()) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("worker stopped after a failed sweep")
		}
	}

	require.NoError(t, r.stop(context.Background()))
}

func TestReconciler_ZeroIntervalReturns(t *testing.T) {
	r := newReconciler(0, mockUC.NewMockPaymentUsecase(t), discardLogger())

	require.NoError(t, r.Serve(context.Background()))
	assert.NoError(t, r.stop(context.Background()))
}

func TestReconciler_ContextCancelEndsServe(t *testing.T) {
	r := newReconciler(time.Hour, mockUC.NewMockPaymentUsecase(t), discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, r.Serve(ctx))
}
