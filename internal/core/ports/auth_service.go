package ports

import (
	"context"

	"github.com/99minutos/storefront-system/internal/core/domain"
)

// RegisterInput carries a registration request. An empty Role means customer.
type RegisterInput struct {
	Username        string
	Password        string
	ConfirmPassword string
	Role            domain.Role
}

// AuthService is the user directory: registration and credential checks.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Identity, error)
}
