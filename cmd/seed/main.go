package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"content_studio/internal/config"
	"content_studio/internal/sample"
	"content_studio/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = setupLogger(cfg.LogLevel)

	ctx := context.Background()

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)

	txManager := postgres.NewTransactionManager(db)

	var counts sample.Counts
	err = txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := postgres.Reset(ctx, db); err != nil {
			return err
		}

		var loadErr error
		counts, loadErr = sample.Load(ctx, sample.Target{
			ViralVideos:       postgres.NewViralVideoStore(db),
			AffiliateProducts: postgres.NewAffiliateProductStore(db),
			Scripts:           postgres.NewScriptStore(db),
			Analytics:         postgres.NewAnalyticsStore(db),
		})
		return loadErr
	})
	if err != nil {
		logger.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	logger.Info("database seeded",
		"viral_videos", counts.ViralVideos,
		"affiliate_products", counts.AffiliateProducts,
		"scripts", counts.Scripts,
		"analytics", counts.Analytics,
	)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}
