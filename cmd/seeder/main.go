package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"tripplanner/internal/adapters/observability"
	"tripplanner/internal/app"
	"tripplanner/internal/dataset"
	"tripplanner/internal/shared"
	"tripplanner/internal/storage/sqlstore"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Str("path", cfg.DatasetPath).
		Str("driver", cfg.DatasetDriver).
		Int("batch", cfg.SeedBatch).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	if cfg.DatasetDSN == "" {
		log.Fatal().Msg("DATASET_DSN is empty; nothing to seed into")
	}

	tbl, err := dataset.LoadCSV(cfg.DatasetPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load dataset failed")
	}

	store, err := sqlstore.Open(ctx, cfg.DatasetDriver, cfg.DatasetDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("open store failed")
	}
	defer store.Close()
	log.Info().Msg("db ping ok")

	n, err := app.NewSeedService(store, cfg.SeedBatch, cfg.SeedWorkers).Seed(ctx, tbl.Rows())
	if err != nil {
		log.Error().Err(err).Int("written", n).Msg("seeding incomplete")
		_ = store.Close()
		os.Exit(1)
	}
	log.Info().Int("rows", n).Msg("seeding completed")
}
