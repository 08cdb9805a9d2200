package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/auth/google"
	"storefront/internal/infra/cache"
	"storefront/internal/infra/export"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/notification"
	"storefront/internal/infra/payment/myfatoorah"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/realtime"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "storefrontctl",
		Short:         "Operator commands for the storefront backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(createAdminCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(exportProductsCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// providers is the dependency graph the commands draw from. fx only builds
// what a command populates.
func providers() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		postgres.NewUserRepository,
		postgres.NewProductRepository,
		postgres.NewOrderRepository,
		postgres.NewPromoRepository,
		postgres.NewTransactionManager,
		auth.NewBcryptHasher,
		auth.NewJWTService,
		google.NewAuthService,
		myfatoorah.NewPaymentGateway,
		cache.NewPaymentStatusCache,
		storage.NewImageStore,
		export.NewProductExporter,
		pubsub.NewEventPublisher,
		notification.NewNotificationService,
		qrcode.NewQRCodeService,
		realtime.NewHub,
		realtime.NewOrderFeed,
		impl.NewAuthService,
		impl.NewCatalogService,
		impl.NewPaymentService,
	)
}

// withApp starts the graph, fills targets, runs fn and stops the graph.
func withApp(ctx context.Context, fn func(ctx context.Context) error, targets ...any) (err error) {
	app := fx.New(providers(), fx.Populate(targets...), fx.NopLogger)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build dependencies")
	}

	startCtx, cancelStart := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start dependencies")
	}

	defer func() {
		stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancelStop()
		if stopErr := app.Stop(stopCtx); stopErr != nil && err == nil {
			err = errors.Wrap(stopErr, "failed to stop dependencies")
		}
	}()

	return fn(ctx)
}
