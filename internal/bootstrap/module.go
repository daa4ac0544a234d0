package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"secdash/internal/bootstrap/config"
	"secdash/internal/bootstrap/database"
	"secdash/internal/bootstrap/logging"
	sqliterepo "secdash/internal/infrastructure/persistence/sqlite/repository"
	sqliteuow "secdash/internal/infrastructure/persistence/sqlite/uow"
	stateinfra "secdash/internal/infrastructure/state"
	"secdash/internal/ports"
	"secdash/internal/usecase/assistant"
	"secdash/internal/usecase/ingest"
	"secdash/internal/usecase/records"
)

var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideDatabase),
	fx.Provide(provideApp),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewRecordRepository,
			fx.As(new(ports.RecordRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewBatchRepository,
			fx.As(new(ports.BatchRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliteuow.NewUnitOfWork,
			fx.As(new(ports.UnitOfWork)),
		),
	),
	fx.Provide(
		fx.Annotate(
			stateinfra.NewSQLiteStateStore,
			fx.As(new(ports.StateStore)),
		),
	),
	fx.Provide(records.NewService),
	fx.Provide(provideIngestService),
	fx.Provide(provideAssistantService),
)

type configParams struct {
	fx.In

	Ctx        context.Context
	ConfigFile string `name:"configFile"`
}

func provideConfig(p configParams) (config.Config, error) {
	ctx := logging.WithAttrs(p.Ctx, slog.String("component", "bootstrap.fx"))
	return config.Load(ctx, p.ConfigFile)
}

func provideDatabase(lc fx.Lifecycle, ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx"))

	db, err := database.Open(logCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	return db, nil
}

func provideApp(cfg config.Config, db *gorm.DB) *App {
	return &App{
		Config: cfg,
		DB:     db,
	}
}

func provideIngestService(cfg config.Config, batch ports.BatchRepository, uow ports.UnitOfWork, state ports.StateStore) *ingest.Service {
	return ingest.NewService(batch, uow, state, cfg.Ingest.DataDir)
}

func provideAssistantService(cfg config.Config) *assistant.Service {
	return assistant.NewService(cfg.Assistant)
}
