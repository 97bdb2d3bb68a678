package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/storefront-system/internal/core/domain"
	"github.com/99minutos/storefront-system/internal/core/ports"
	"github.com/99minutos/storefront-system/internal/pkg/metrics"
)

// bcryptCost is fixed so every stored hash shares one work factor.
const bcryptCost = 10

// AuthService implements registration and credential checks against the
// users collection.
type AuthService struct {
	users ports.Collection[domain.User]
	log   zerolog.Logger

	cost      int
	dummyHash []byte
	hash      func(password []byte, cost int) ([]byte, error)
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(users ports.Collection[domain.User], log zerolog.Logger) *AuthService {
	return newAuthService(users, log, bcryptCost)
}

func newAuthService(users ports.Collection[domain.User], log zerolog.Logger, cost int) *AuthService {
	// Compared against when the username is unknown so both failure paths
	// cost one bcrypt comparison.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("storefront-dummy-password"), cost)
	return &AuthService{users: users, log: log, cost: cost, dummyHash: dummy, hash: bcrypt.GenerateFromPassword}
}

// Register creates a user. Checks run in order: missing username, duplicate
// username, password mismatch, unknown role.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" {
		return nil, domain.ErrMissingUsername
	}
	role := in.Role
	if role == "" {
		role = domain.RoleCustomer
	}

	if s.taken(s.users.Load(ctx), in.Username) {
		return nil, domain.ErrDuplicateUsername
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	// Hashing happens outside Update so logins are not held behind it.
	hash, err := s.hash([]byte(in.Password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, domain.ErrPasswordTooLong
	}
	if err != nil {
		return nil, err
	}

	created := domain.User{Username: in.Username, PasswordHash: string(hash), Role: role}
	err = s.users.Update(ctx, func(users []domain.User) ([]domain.User, error) {
		if s.taken(users, in.Username) {
			return nil, domain.ErrDuplicateUsername
		}
		return append(users, created), nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()
	s.log.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user registered")
	return &created, nil
}

// Authenticate returns the identity of username when password matches. Unknown
// users and wrong passwords fail with the same error.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.Identity, error) {
	var user *domain.User
	for _, u := range s.users.Load(ctx) {
		if u.Username == username {
			u := u
			user = &u
			break
		}
	}

	if user == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, s.rejected(username)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, s.rejected(username)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
	return &domain.Identity{Username: user.Username, Role: user.Role}, nil
}

// EnsureAdmin registers an admin account unless the username is already taken.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.Register(ctx, ports.RegisterInput{
		Username:        username,
		Password:        password,
		ConfirmPassword: password,
		Role:            domain.RoleAdmin,
	})
	if errors.Is(err, domain.ErrDuplicateUsername) {
		s.log.Debug().Str("username", username).Msg("admin account already present")
		return nil
	}
	return err
}

func (s *AuthService) taken(users []domain.User, username string) bool {
	for _, u := range users {
		if u.Username == username {
			return true
		}
	}
	return false
}

func (s *AuthService) rejected(username string) error {
	metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
	s.log.Debug().Str("username", username).Msg("login rejected")
	return domain.ErrInvalidCredentials
}
