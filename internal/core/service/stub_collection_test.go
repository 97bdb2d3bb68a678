package service

import (
	"context"
	"sync"
)

// stubCollection is an in-memory ports.Collection that records saves.
type stubCollection[T any] struct {
	mu       sync.Mutex
	items    []T
	saves    int
	updating bool

	// beforeUpdate runs on the stored items right before fn sees them.
	beforeUpdate func(items []T) []T
}

func newStubCollection[T any](items ...T) *stubCollection[T] {
	return &stubCollection[T]{items: items}
}

func (c *stubCollection[T]) Load(context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T{}, c.items...)
}

func (c *stubCollection[T]) Update(_ context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updating = true
	defer func() { c.updating = false }()

	if c.beforeUpdate != nil {
		c.items = c.beforeUpdate(c.items)
	}
	next, err := fn(append([]T{}, c.items...))
	if err != nil {
		return err
	}
	c.items = next
	c.saves++
	return nil
}

// inUpdate reports whether an Update is running. Callers inside fn already
// hold mu, so it is read without locking.
func (c *stubCollection[T]) inUpdate() bool {
	return c.updating
}
