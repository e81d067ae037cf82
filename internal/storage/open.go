package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"content_studio/internal/config"
	"content_studio/internal/sample"
	"content_studio/internal/storage/memory"
	"content_studio/internal/storage/postgres"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Open builds the Stores for the configured driver. The returned close func
// releases the backing's resources.
func Open(ctx context.Context, cfg config.StorageConfig, db config.DatabaseConfig, logger *slog.Logger) (*Stores, func() error, error) {
	switch cfg.Driver {
	case DriverMemory:
		stores := FromMemory(memory.New())
		counts, err := sample.Load(ctx, sample.Target{
			ViralVideos:       stores.ViralVideos,
			AffiliateProducts: stores.AffiliateProducts,
			Scripts:           stores.Scripts,
			Analytics:         stores.Analytics,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("load sample data: %w", err)
		}
		logger.Info("using in-memory storage", "sample_rows", counts.Total())
		return stores, func() error { return nil }, nil

	case DriverPostgres:
		conn, err := sqlx.ConnectContext(ctx, "postgres", db.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := conn.PingContext(ctx); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		logger.Info("connected to database", "host", db.Host, "dbname", db.DBName)
		return FromPostgres(conn), conn.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage driver: %q", cfg.Driver)
	}
}

func FromMemory(s *memory.Store) *Stores {
	return &Stores{
		ViralVideos:       s.ViralVideos(),
		AffiliateProducts: s.AffiliateProducts(),
		Scripts:           s.Scripts(),
		Videos:            s.Videos(),
		ScheduledPosts:    s.ScheduledPosts(),
		Analytics:         s.Analytics(),
	}
}

func FromPostgres(db *sqlx.DB) *Stores {
	return &Stores{
		ViralVideos:       postgres.NewViralVideoStore(db),
		AffiliateProducts: postgres.NewAffiliateProductStore(db),
		Scripts:           postgres.NewScriptStore(db),
		Videos:            postgres.NewVideoStore(db),
		ScheduledPosts:    postgres.NewScheduledPostStore(db),
		Analytics:         postgres.NewAnalyticsStore(db),
		Ping:              db.PingContext,
	}
}

var (
	_ ViralVideoStore       = (*memory.ViralVideoStore)(nil)
	_ AffiliateProductStore = (*memory.AffiliateProductStore)(nil)
	_ ScriptStore           = (*memory.ScriptStore)(nil)
	_ VideoStore            = (*memory.VideoStore)(nil)
	_ ScheduledPostStore    = (*memory.ScheduledPostStore)(nil)
	_ AnalyticsStore        = (*memory.AnalyticsStore)(nil)

	_ ViralVideoStore       = (*postgres.ViralVideoStore)(nil)
	_ AffiliateProductStore = (*postgres.AffiliateProductStore)(nil)
	_ ScriptStore           = (*postgres.ScriptStore)(nil)
	_ VideoStore            = (*postgres.VideoStore)(nil)
	_ ScheduledPostStore    = (*postgres.ScheduledPostStore)(nil)
	_ AnalyticsStore        = (*postgres.AnalyticsStore)(nil)
)
