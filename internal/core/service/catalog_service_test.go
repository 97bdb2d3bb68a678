package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/storefront-system/internal/core/domain"
)

var admin = domain.Identity{Username: "root", Role: domain.RoleAdmin}

func TestCatalogService_UpsertAppendsThenReplaces(t *testing.T) {
	products := newStubCollection[domain.Product]()
	svc := NewCatalogService(products, zerolog.Nop())
	ctx := context.Background()

	if err := svc.Upsert(ctx, admin, domain.Product{ID: domain.NumberID(1), Name: "A", Price: 10}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := svc.Upsert(ctx, admin, domain.Product{ID: domain.NumberID(1), Name: "A2", Price: 12, Category: "c"}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	got := svc.List(ctx)
	if len(got) != 1 {
		t.Fatalf("expected exactly one product, got %d", len(got))
	}
	if got[0].Name != "A2" || got[0].Price != 12 || got[0].Category != "c" {
		t.Fatalf("expected last write to win, got %+v", got[0])
	}
}

func TestCatalogService_UpsertKeepsOrder(t *testing.T) {
	products := newStubCollection(
		domain.Product{ID: domain.NumberID(1), Name: "A"},
		domain.Product{ID: domain.NumberID(2), Name: "B"},
	)
	svc := NewCatalogService(products, zerolog.Nop())

	if err := svc.Upsert(context.Background(), admin, domain.Product{ID: domain.NumberID(1), Name: "A'"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	got := svc.List(context.Background())
	if len(got) != 2 || got[0].Name != "A'" || got[1].Name != "B" {
		t.Fatalf("unexpected catalog: %+v", got)
	}
}

func TestCatalogService_UpsertIDMatchIsStrict(t *testing.T) {
	products := newStubCollection(domain.Product{ID: domain.NumberID(1), Name: "number"})
	svc := NewCatalogService(products, zerolog.Nop())

	if err := svc.Upsert(context.Background(), admin, domain.Product{ID: domain.StringID("1"), Name: "string"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if got := svc.List(context.Background()); len(got) != 2 {
		t.Fatalf("string id must not replace a number id, got %+v", got)
	}
}

func TestCatalogService_UpsertStoresValuesUnchecked(t *testing.T) {
	products := newStubCollection[domain.Product]()
	svc := NewCatalogService(products, zerolog.Nop())

	p := domain.Product{ID: domain.StringID("neg"), Name: "", Price: -5}
	if err := svc.Upsert(context.Background(), admin, p); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if got := svc.List(context.Background()); len(got) != 1 || got[0].Price != -5 {
		t.Fatalf("expected product stored as given, got %+v", got)
	}
}

func TestCatalogService_UpsertRejections(t *testing.T) {
	cases := []struct {
		name    string
		caller  domain.Identity
		product domain.Product
		want    error
	}{
		{"anonymous", domain.Identity{}, domain.Product{ID: domain.NumberID(1)}, domain.ErrAccessDenied},
		{"customer", domain.Identity{Username: "bob", Role: domain.RoleCustomer}, domain.Product{ID: domain.NumberID(1)}, domain.ErrAccessDenied},
		{"missing id", admin, domain.Product{Name: "no id"}, domain.ErrMissingProductID},
		{"empty string id", admin, domain.Product{ID: domain.StringID(""), Name: "blank"}, domain.ErrMissingProductID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			products := newStubCollection[domain.Product]()
			svc := NewCatalogService(products, zerolog.Nop())

			if err := svc.Upsert(context.Background(), tc.caller, tc.product); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if products.saves != 0 {
				t.Fatalf("nothing must be saved")
			}
		})
	}
}
