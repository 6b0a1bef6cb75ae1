package app

import (
	"context"
	"log"
	"time"

	"talentmate/internal/config"
	"talentmate/internal/database"
	"talentmate/internal/database/migration"
	dbpostgres "talentmate/internal/database/postgres"
	"talentmate/internal/database/seeder"
	"talentmate/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
}

// NewContainer connects the database, applies migrations, seeds the
// default recruiter account and opens the cache.
func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := seeder.NewRecruiterSeeder(cfg.Seed, logger).Run(ctx, db); err != nil {
		logger.Printf("App | recruiter seed failed err=%v", err)
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
