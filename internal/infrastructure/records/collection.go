// Package records provides typed, failure-tolerant collections on top of a
// ports.RecordBackend.
package records

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/99minutos/storefront-system/internal/core/ports"
	"github.com/99minutos/storefront-system/internal/pkg/metrics"
)

// Collection names.
const (
	Users    = "users"
	Products = "products"
	Orders   = "orders"
)

// Collection implements ports.Collection[T]. Storage failures never reach
// the caller: reads degrade to an empty collection and failed writes are
// logged and counted.
type Collection[T any] struct {
	name     string
	backend  ports.RecordBackend
	validate *validator.Validate
	log      zerolog.Logger

	mu sync.Mutex
}

var _ ports.Collection[struct{}] = (*Collection[struct{}])(nil)

// unreadable is a stored record that load skipped. after is the number of
// readable records that preceded it.
type unreadable struct {
	after int
	raw   json.RawMessage
}

// NewCollection returns the collection stored under name.
func NewCollection[T any](name string, backend ports.RecordBackend, validate *validator.Validate, log zerolog.Logger) *Collection[T] {
	return &Collection[T]{
		name:     name,
		backend:  backend,
		validate: validate,
		log:      log.With().Str("collection", name).Logger(),
	}
}

// Load returns all valid records. Records that do not decode or fail
// validation are skipped.
func (c *Collection[T]) Load(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, _ := c.load(ctx)
	return items
}

// Save replaces the stored collection with exactly items.
func (c *Collection[T]) Save(ctx context.Context, items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.save(ctx, items, nil)
}

// Update loads the collection, applies fn and saves the result while holding
// the collection lock, so concurrent updates never lose each other's writes.
// Records that load skipped are written back unchanged at their position.
func (c *Collection[T]) Update(ctx context.Context, fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, skipped := c.load(ctx)
	next, err := fn(items)
	if err != nil {
		return err
	}
	c.save(ctx, next, skipped)
	return nil
}

func (c *Collection[T]) load(ctx context.Context) ([]T, []unreadable) {
	raw, err := c.backend.Read(ctx, c.name)
	if err != nil {
		c.fail("load", err)
		return []T{}, nil
	}

	items := make([]T, 0, len(raw))
	var skipped []unreadable
	for i, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			c.skip("decode", i, err)
			skipped = append(skipped, unreadable{after: len(items), raw: r})
			continue
		}
		if c.validate != nil {
			if err := c.validate.Struct(item); err != nil {
				c.skip("validate", i, err)
				skipped = append(skipped, unreadable{after: len(items), raw: r})
				continue
			}
		}
		items = append(items, item)
	}
	return items, skipped
}

func (c *Collection[T]) save(ctx context.Context, items []T, skipped []unreadable) {
	raw := make([]json.RawMessage, 0, len(items)+len(skipped))
	for i, item := range items {
		for len(skipped) > 0 && skipped[0].after <= i {
			raw = append(raw, skipped[0].raw)
			skipped = skipped[1:]
		}
		b, err := json.Marshal(item)
		if err != nil {
			c.fail("encode", err)
			return
		}
		raw = append(raw, b)
	}
	for _, s := range skipped {
		raw = append(raw, s.raw)
	}

	if err := c.backend.Write(ctx, c.name, raw); err != nil {
		c.fail("save", err)
	}
}

func (c *Collection[T]) fail(op string, err error) {
	metrics.StorageErrorsTotal.WithLabelValues(c.name, op).Inc()
	c.log.Error().Err(err).Str("op", op).Msg("record store failure absorbed")
}

func (c *Collection[T]) skip(op string, index int, err error) {
	metrics.StorageErrorsTotal.WithLabelValues(c.name, op).Inc()
	c.log.Warn().Err(err).Str("op", op).Int("index", index).Msg("skipping malformed record")
}
