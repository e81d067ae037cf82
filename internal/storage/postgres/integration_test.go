//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"content_studio/internal/domain"
	"content_studio/internal/storage"
	"content_studio/internal/storage/postgres"
	"content_studio/internal/storage/storetest"
)

type PostgresIntegrationSuite struct {
	storetest.Suite
	container *tcpostgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	ctx := context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		tcpostgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_tables.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db

	s.NewStores = func() *storage.Stores {
		s.Require().NoError(postgres.Reset(context.Background(), s.db))
		return storage.FromPostgres(s.db)
	}
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) count(table string) int {
	var n int
	s.Require().NoError(s.db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	ctx := context.Background()
	s.Require().NoError(postgres.Reset(ctx, s.db))

	tm := postgres.NewTransactionManager(s.db)
	scripts := postgres.NewScriptStore(s.db)

	err := tm.WithTransaction(ctx, func(ctx context.Context) error {
		_, err := scripts.Create(ctx, domain.Script{Title: "in tx", Content: "body"})
		return err
	})
	s.NoError(err)
	s.Equal(1, s.count("scripts"))
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	ctx := context.Background()
	s.Require().NoError(postgres.Reset(ctx, s.db))

	tm := postgres.NewTransactionManager(s.db)
	videos := postgres.NewViralVideoStore(s.db)
	products := postgres.NewAffiliateProductStore(s.db)

	_, err := videos.Create(ctx, domain.ViralVideo{Title: "pre-existing", Platform: "tiktok", URL: "https://x"})
	s.Require().NoError(err)

	errAbort := errors.New("abort")
	err = tm.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := videos.Create(ctx, domain.ViralVideo{Title: "rolled back", Platform: "tiktok", URL: "https://y"}); err != nil {
			return err
		}
		if _, err := products.Create(ctx, domain.AffiliateProduct{Name: "rolled back", Category: "saas", URL: "https://z"}); err != nil {
			return err
		}
		return errAbort
	})
	s.ErrorIs(err, errAbort)

	s.Equal(1, s.count("viral_videos"))
	s.Equal(0, s.count("affiliate_products"))
}

func (s *PostgresIntegrationSuite) TestTransaction_NestedCallJoinsOuter() {
	ctx := context.Background()
	s.Require().NoError(postgres.Reset(ctx, s.db))

	tm := postgres.NewTransactionManager(s.db)
	scripts := postgres.NewScriptStore(s.db)

	err := tm.WithTransaction(ctx, func(ctx context.Context) error {
		outer := postgres.GetTxFromContext(ctx)
		return tm.WithTransaction(ctx, func(ctx context.Context) error {
			s.Same(outer, postgres.GetTxFromContext(ctx))
			_, err := scripts.Create(ctx, domain.Script{Title: "nested"})
			return err
		})
	})
	s.NoError(err)
	s.Equal(1, s.count("scripts"))
}

func (s *PostgresIntegrationSuite) TestReset_KeepsSequences() {
	ctx := context.Background()
	store := postgres.NewAnalyticsStore(s.db)

	first, err := store.Create(ctx, domain.Analytics{Platform: "tiktok"})
	s.Require().NoError(err)

	s.Require().NoError(postgres.Reset(ctx, s.db))
	s.Equal(0, s.count("analytics"))

	second, err := store.Create(ctx, domain.Analytics{Platform: "tiktok"})
	s.Require().NoError(err)
	s.Greater(second.ID, first.ID)
}
