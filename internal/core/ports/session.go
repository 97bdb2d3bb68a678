package ports

import (
	"context"
	"time"

	"github.com/99minutos/storefront-system/internal/core/domain"
)

// SessionStore keeps the identity behind each live session id.
type SessionStore interface {
	Put(ctx context.Context, id string, identity domain.Identity, ttl time.Duration) error
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.Identity, error)
	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id string) error
}

// SessionService issues, resolves and ends client session tokens.
type SessionService interface {
	Start(ctx context.Context, identity domain.Identity) (token string, err error)
	Resolve(ctx context.Context, token string) (*domain.Identity, error)
	End(ctx context.Context, token string) error
}
