package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/storefront-system/internal/core/domain"
	"github.com/99minutos/storefront-system/internal/core/ports"
)

// CatalogService lists products and lets admins upsert them.
type CatalogService struct {
	products ports.Collection[domain.Product]
	log      zerolog.Logger
}

var _ ports.CatalogService = (*CatalogService)(nil)

func NewCatalogService(products ports.Collection[domain.Product], log zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, log: log}
}

func (s *CatalogService) List(ctx context.Context) []domain.Product {
	return s.products.Load(ctx)
}

// Upsert replaces the product whose id is strictly equal to product.ID, or
// appends it. Name, price and category are stored as given.
func (s *CatalogService) Upsert(ctx context.Context, caller domain.Identity, product domain.Product) error {
	if !caller.IsAdmin() {
		return domain.ErrAccessDenied
	}
	if product.ID.IsBlank() {
		return domain.ErrMissingProductID
	}

	replaced := false
	err := s.products.Update(ctx, func(products []domain.Product) ([]domain.Product, error) {
		for i := range products {
			if products[i].ID.Equal(product.ID) {
				products[i] = product
				replaced = true
				return products, nil
			}
		}
		return append(products, product), nil
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("product_id", product.ID.String()).
		Str("admin", caller.Username).
		Bool("replaced", replaced).
		Msg("product saved")
	return nil
}
