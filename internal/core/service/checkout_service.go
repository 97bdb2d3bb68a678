package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/storefront-system/internal/core/domain"
	"github.com/99minutos/storefront-system/internal/core/ports"
	"github.com/99minutos/storefront-system/internal/pkg/metrics"
)

// CheckoutService builds orders from the current catalog.
type CheckoutService struct {
	products ports.Collection[domain.Product]
	orders   ports.Collection[domain.Order]
	log      zerolog.Logger
}

var _ ports.CheckoutService = (*CheckoutService)(nil)

func NewCheckoutService(products ports.Collection[domain.Product], orders ports.Collection[domain.Order], log zerolog.Logger) *CheckoutService {
	return &CheckoutService{products: products, orders: orders, log: log}
}

// Checkout selects every catalog product whose id, rendered as a string,
// appears in productIDs, and appends one order for them. Selected products
// keep catalog order; duplicates in productIDs do not repeat a product.
func (s *CheckoutService) Checkout(ctx context.Context, caller domain.Identity, productIDs []string) (*domain.Receipt, error) {
	if !caller.Authenticated() {
		metrics.CheckoutFailuresTotal.WithLabelValues("unauthenticated").Inc()
		return nil, domain.ErrNotAuthenticated
	}

	wanted := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = struct{}{}
	}

	selected := make([]domain.Product, 0, len(productIDs))
	for _, p := range s.products.Load(ctx) {
		if _, ok := wanted[p.ID.String()]; ok {
			selected = append(selected, p)
		}
	}
	if len(selected) == 0 {
		metrics.CheckoutFailuresTotal.WithLabelValues("no_valid_products").Inc()
		return nil, domain.ErrNoValidProducts
	}

	var total float64
	for _, p := range selected {
		total += p.Price
	}

	order := domain.Order{Username: caller.Username, Products: selected, TotalPrice: total}
	err := s.orders.Update(ctx, func(orders []domain.Order) ([]domain.Order, error) {
		return append(orders, order), nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.CheckoutAmount.Observe(total)
	s.log.Info().
		Str("username", caller.Username).
		Int("items", len(selected)).
		Float64("total", total).
		Msg("order created")

	return &domain.Receipt{Order: order, Total: total}, nil
}
