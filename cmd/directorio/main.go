package main

import (
	"context"
	"log/slog"
	"os"

	"directorio/config"
	"directorio/internal/delivery"
	"directorio/internal/delivery/api"
	"directorio/internal/delivery/api/middleware"
	"directorio/internal/delivery/api/router/handler"
	"directorio/internal/domain/repository"
	"directorio/internal/errors"
	"directorio/internal/infra/auth"
	logs "directorio/internal/infra/log"
	"directorio/internal/infra/mail"
	"directorio/internal/infra/persistence/memory"
	"directorio/internal/infra/persistence/postgres"
	"directorio/internal/infra/storage"
	"directorio/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	driverPostgres = "postgres"
	driverMemory   = "memory"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// repositories is the persistence layer selected by persistence.driver.
type repositories struct {
	fx.Out

	UsuarioRepo  repository.UsuarioRepository
	ComercioRepo repository.ComercioRepository
	WebRepo      repository.WebRepository
	TxManager    repository.TransactionManager
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

func newRepositories(params postgres.Params) (repositories, error) {
	switch params.Config.Persistence.Driver {
	case driverMemory:
		params.Logger.Warn("Using in-memory persistence; data is lost on restart")
		store := memory.NewStore()

		return repositories{
			UsuarioRepo:  memory.NewUsuarioRepository(store),
			ComercioRepo: memory.NewComercioRepository(store),
			WebRepo:      memory.NewWebRepository(store),
			TxManager:    memory.NewTransactionManager(store),
		}, nil
	case driverPostgres:
		db, err := postgres.New(params)
		if err != nil {
			return repositories{}, err
		}

		return repositories{
			UsuarioRepo:  postgres.NewUsuarioRepository(db),
			ComercioRepo: postgres.NewComercioRepository(db),
			WebRepo:      postgres.NewWebRepository(db),
			TxManager:    postgres.NewTransactionManager(db),
		}, nil
	default:
		return repositories{}, errors.Errorf("unknown persistence driver %q", params.Config.Persistence.Driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.New,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthorizationService,
			impl.NewUsuarioService,
			impl.NewComercioService,
			impl.NewWebService,
			impl.NewResenaService,
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
			handler.NewUsuarioHandler,
			handler.NewComercioHandler,
			handler.NewWebHandler,
			handler.NewFileHandler,
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
