package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/delivery/worker"
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

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewPaymentEventRepository,
			postgres.NewCityAreaRepository,
			postgres.NewPromoRepository,
			postgres.NewClosedScheduleRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
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
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewCityAreaService,
			impl.NewPromoService,
			impl.NewScheduleService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
			handler.NewCityHandler,
			handler.NewPromoHandler,
			handler.NewScheduleHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewReconciler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
