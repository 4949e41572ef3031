package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"salonbook/backend/internal/config"
	"salonbook/backend/internal/seed"
	"salonbook/backend/internal/store/postgres"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("service", "salonbook-seed"))

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("seed failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.DatabaseURL, postgres.PoolConfig{MaxOpenConns: 2, Log: log})
	if err != nil {
		log.Error("database connection failed", slog.Any("err", err))
		return err
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			log.Warn("database close failed", slog.Any("err", err))
		}
	}()

	demo := seed.Demo()
	if err := postgres.NewCatalogRepo(db).Seed(ctx, demo); err != nil {
		return err
	}
	for _, m := range demo.Staff {
		log.Info("staff seeded", slog.String("staff_id", m.ID.String()), slog.String("name", m.Name))
	}
	for _, s := range demo.Services {
		log.Info("service seeded", slog.String("service_id", s.ID.String()), slog.String("name", s.Name))
	}
	for _, a := range demo.Addons {
		log.Info("addon seeded", slog.String("addon_id", a.ID.String()), slog.String("name", a.Name))
	}
	return nil
}
