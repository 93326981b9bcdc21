package main

import (
	"context"
	"log/slog"
	"os"

	"storerating/config"
	"storerating/internal/delivery"
	"storerating/internal/delivery/http"
	"storerating/internal/delivery/http/middleware"
	"storerating/internal/delivery/http/router"
	"storerating/internal/delivery/http/router/handler"
	"storerating/internal/infra/auth"
	logs "storerating/internal/infra/log"
	"storerating/internal/infra/metrics"
	"storerating/internal/infra/persistence/postgres"
	"storerating/internal/infra/pubsub"
	"storerating/internal/infra/qrcode"
	"storerating/internal/infra/ratelimit"
	"storerating/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In

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
		metrics.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewStoreRepository,
			postgres.NewRatingRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			ratelimit.NewRateLimiter,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPasswordService,
			impl.NewAdminService,
			impl.NewStoreOwnerService,
			impl.NewRatingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAdminHandler,
			handler.NewStoreOwnerHandler,
			handler.NewUserHandler,
			handler.NewPasswordHandler,
			router.NewRouter,
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
				os.Exit(1)
			}
		}()
	}
}
