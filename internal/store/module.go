package store

import (
	"context"
	"database/sql"

	"github.com/kishordev/portfolio-api/internal/config"
	"github.com/kishordev/portfolio-api/internal/database"
	"github.com/kishordev/portfolio-api/internal/logger"
	"go.uber.org/fx"
)

func newDB(lc fx.Lifecycle, cfg *config.Config) (*sql.DB, error) {
	if err := database.RunMigrations(cfg.Database.URL); err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.PingContext(ctx); err != nil {
				return err
			}
			logger.Info("Connected to database")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

// Module provides the document store dependencies
var Module = fx.Module("store",
	fx.Provide(
		newDB,
		fx.Annotate(
			NewPostgresStore,
			fx.As(new(Store)),
		),
	),
)
