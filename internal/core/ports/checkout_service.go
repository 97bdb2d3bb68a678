package ports

import (
	"context"

	"github.com/99minutos/storefront-system/internal/core/domain"
)

// CheckoutService turns a product selection into a persisted order.
type CheckoutService interface {
	Checkout(ctx context.Context, caller domain.Identity, productIDs []string) (*domain.Receipt, error)
}
