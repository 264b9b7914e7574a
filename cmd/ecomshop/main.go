package main

import (
	"context"
	"log/slog"
	"os"

	"ecomshop/config"
	"ecomshop/internal/delivery"
	"ecomshop/internal/delivery/http"
	"ecomshop/internal/delivery/http/middleware"
	"ecomshop/internal/delivery/http/router/handler"
	"ecomshop/internal/infra/auth"
	"ecomshop/internal/infra/cache"
	"ecomshop/internal/infra/email"
	"ecomshop/internal/infra/image"
	logs "ecomshop/internal/infra/log"
	"ecomshop/internal/infra/payment"
	"ecomshop/internal/infra/persistence/postgres"
	"ecomshop/internal/infra/pubsub"
	"ecomshop/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
		cache.NewProductCache,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSessionRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewAddressRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			email.NewSendGridService,
			payment.NewStripeService,
			image.NewCloudinaryService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewMeService,
			impl.NewProductService,
			impl.NewCartService,
			impl.NewAddressService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMeHandler,
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewAddressHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
