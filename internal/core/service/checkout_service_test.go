package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/storefront-system/internal/core/domain"
)

var alice = domain.Identity{Username: "alice", Role: domain.RoleCustomer}

func newCheckout(products ...domain.Product) (*CheckoutService, *stubCollection[domain.Order]) {
	orders := newStubCollection[domain.Order]()
	return NewCheckoutService(newStubCollection(products...), orders, zerolog.Nop()), orders
}

func TestCheckoutService_SingleProduct(t *testing.T) {
	svc, orders := newCheckout(domain.Product{ID: domain.NumberID(1), Name: "A", Price: 10})

	receipt, err := svc.Checkout(context.Background(), alice, []string{"1"})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if receipt.Total != 10 || receipt.FormattedTotal() != "10.00" {
		t.Fatalf("unexpected total: %v (%s)", receipt.Total, receipt.FormattedTotal())
	}

	stored := orders.Load(context.Background())
	if len(stored) != 1 {
		t.Fatalf("expected one order, got %d", len(stored))
	}
	if stored[0].Username != "alice" || stored[0].TotalPrice != 10 || len(stored[0].Products) != 1 {
		t.Fatalf("unexpected order: %+v", stored[0])
	}
}

func TestCheckoutService_TotalIsSumOfFoundProducts(t *testing.T) {
	svc, orders := newCheckout(
		domain.Product{ID: domain.NumberID(1), Price: 10.25},
		domain.Product{ID: domain.StringID("b"), Price: 4.5},
		domain.Product{ID: domain.NumberID(3), Price: 100},
	)

	receipt, err := svc.Checkout(context.Background(), alice, []string{"b", "1", "missing"})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if math.Abs(receipt.Total-14.75) > 1e-9 {
		t.Fatalf("expected 14.75, got %v", receipt.Total)
	}

	order := orders.Load(context.Background())[0]
	if len(order.Products) != 2 || !order.Products[0].ID.Equal(domain.NumberID(1)) {
		t.Fatalf("expected catalog order snapshots, got %+v", order.Products)
	}
	if order.TotalPrice != receipt.Total {
		t.Fatalf("stored total %v differs from receipt %v", order.TotalPrice, receipt.Total)
	}
}

func TestCheckoutService_StringCoercion(t *testing.T) {
	svc, _ := newCheckout(
		domain.Product{ID: domain.NumberID(7), Price: 1},
		domain.Product{ID: domain.StringID("7"), Price: 2},
	)

	receipt, err := svc.Checkout(context.Background(), alice, []string{"7"})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if receipt.Total != 3 {
		t.Fatalf("both ids render as \"7\" and must match, got total %v", receipt.Total)
	}
}

func TestCheckoutService_NoValidProducts(t *testing.T) {
	cases := map[string][]string{
		"empty request": {},
		"nil request":   nil,
		"unknown ids":   {"42", "nope"},
		"case differs":  {"A"},
	}
	for name, ids := range cases {
		t.Run(name, func(t *testing.T) {
			svc, orders := newCheckout(domain.Product{ID: domain.StringID("a"), Price: 1})

			_, err := svc.Checkout(context.Background(), alice, ids)
			if !errors.Is(err, domain.ErrNoValidProducts) {
				t.Fatalf("expected ErrNoValidProducts, got %v", err)
			}
			if orders.saves != 0 || len(orders.Load(context.Background())) != 0 {
				t.Fatalf("no order must be created")
			}
		})
	}
}

func TestCheckoutService_RepeatedCheckoutsCreateSeparateOrders(t *testing.T) {
	svc, orders := newCheckout(domain.Product{ID: domain.NumberID(1), Price: 5})

	for i := 0; i < 3; i++ {
		if _, err := svc.Checkout(context.Background(), alice, []string{"1"}); err != nil {
			t.Fatalf("checkout %d failed: %v", i, err)
		}
	}
	if n := len(orders.Load(context.Background())); n != 3 {
		t.Fatalf("expected 3 orders, got %d", n)
	}
}

func TestCheckoutService_RequiresAuthenticatedCaller(t *testing.T) {
	svc, orders := newCheckout(domain.Product{ID: domain.NumberID(1), Price: 5})

	_, err := svc.Checkout(context.Background(), domain.Identity{}, []string{"1"})
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if orders.saves != 0 {
		t.Fatalf("no order must be created")
	}
}
