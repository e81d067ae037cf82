package memory

import (
	"context"

	"content_studio/internal/domain"
)

type AffiliateProductStore struct {
	s *Store
}

func (ps *AffiliateProductStore) List(_ context.Context) ([]domain.AffiliateProduct, error) {
	return ps.s.affiliateProducts.selectSorted(nil, func(a, b domain.AffiliateProduct) bool {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	}), nil
}

func (ps *AffiliateProductStore) Get(_ context.Context, id int64) (*domain.AffiliateProduct, error) {
	product, ok := ps.s.affiliateProducts.get(id)
	if !ok {
		return nil, notFound("affiliate product", id)
	}
	return &product, nil
}

func (ps *AffiliateProductStore) Create(_ context.Context, product domain.AffiliateProduct) (*domain.AffiliateProduct, error) {
	now := ps.s.timestamp()
	created := ps.s.affiliateProducts.insert(func(id int64) domain.AffiliateProduct {
		product.ID = id
		product.CreatedAt = now
		return product
	})
	return &created, nil
}
