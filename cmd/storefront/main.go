package main

import (
	"context"
	"log/slog"
	"os"

	"tienda/config"
	"tienda/internal/delivery"
	"tienda/internal/delivery/http"
	httpmiddleware "tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/router/handler"
	deliverymiddleware "tienda/internal/delivery/middleware"
	"tienda/internal/infra/auth"
	logs "tienda/internal/infra/log"
	"tienda/internal/infra/persistence/postgres"
	"tienda/internal/infra/slug"
	"tienda/internal/usecase/impl"

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
			postgres.NewStoreRepository,
			postgres.NewProductRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			slug.NewRandomSuffixer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewStoreService,
			impl.NewProductService,
			impl.NewStorefrontService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewStoreHandler,
			handler.NewProductHandler,
			handler.NewStorefrontHandler,
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
