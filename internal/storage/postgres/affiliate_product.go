package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"content_studio/internal/domain"
)

type AffiliateProductStore struct {
	db *sqlx.DB
}

func NewAffiliateProductStore(db *sqlx.DB) *AffiliateProductStore {
	return &AffiliateProductStore{db: db}
}

func (s *AffiliateProductStore) List(ctx context.Context) ([]domain.AffiliateProduct, error) {
	products := []domain.AffiliateProduct{}
	err := selectAll(ctx, s.db, &products,
		"SELECT * FROM affiliate_products ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list affiliate products: %w", err)
	}
	return products, nil
}

func (s *AffiliateProductStore) Get(ctx context.Context, id int64) (*domain.AffiliateProduct, error) {
	var product domain.AffiliateProduct
	if err := getOne(ctx, s.db, &product, "affiliate product", id,
		"SELECT * FROM affiliate_products WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *AffiliateProductStore) Create(ctx context.Context, product domain.AffiliateProduct) (*domain.AffiliateProduct, error) {
	query := `
		INSERT INTO affiliate_products (
			name, category, commission_rate, commission_amount, url,
			gravity, refund_rate, has_upsells, is_recurring
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		RETURNING *`

	var created domain.AffiliateProduct
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &created, query,
		product.Name,
		product.Category,
		product.CommissionRate,
		product.CommissionAmount,
		product.URL,
		product.Gravity,
		product.RefundRate,
		product.HasUpsells,
		product.IsRecurring,
	)
	if err != nil {
		return nil, fmt.Errorf("insert affiliate product: %w", err)
	}
	return &created, nil
}
