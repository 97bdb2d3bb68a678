package ports

import (
	"context"

	"github.com/99minutos/storefront-system/internal/core/domain"
)

// CatalogService lists and maintains products.
type CatalogService interface {
	List(ctx context.Context) []domain.Product
	// Upsert replaces the product with an equal id or appends it. Only
	// admins may call it.
	Upsert(ctx context.Context, caller domain.Identity, product domain.Product) error
}
