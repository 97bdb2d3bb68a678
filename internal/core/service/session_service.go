package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/99minutos/storefront-system/internal/core/domain"
	"github.com/99minutos/storefront-system/internal/core/ports"
)

// SessionService issues signed session tokens. The token only carries the
// session id; the identity stays in the store, so ending a session revokes
// the token.
type SessionService struct {
	store  ports.SessionStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ ports.SessionService = (*SessionService)(nil)

func NewSessionService(store ports.SessionStore, secret string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{store: store, secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is how long a started session stays valid.
func (s *SessionService) TTL() time.Duration { return s.ttl }

func (s *SessionService) Start(ctx context.Context, identity domain.Identity) (string, error) {
	sid := uuid.NewString()
	if err := s.store.Put(ctx, sid, identity, s.ttl); err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		ID:        sid,
		Subject:   identity.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		_ = s.store.Delete(ctx, sid)
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

// Resolve returns the identity behind token, or domain.ErrSessionNotFound when
// the token is invalid, expired or already ended.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	sid, err := s.sessionID(token, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}
	return s.store.Get(ctx, sid)
}

// End deletes the session behind token. Ending an invalid, expired or unknown
// session succeeds.
func (s *SessionService) End(ctx context.Context, token string) error {
	sid, err := s.sessionID(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil
	}
	if err := s.store.Delete(ctx, sid); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

func (s *SessionService) sessionID(token string, opts ...jwt.ParserOption) (string, error) {
	if token == "" {
		return "", errors.New("empty session token")
	}

	var claims jwt.RegisteredClaims
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", errors.New("session token without id")
	}
	return claims.ID, nil
}
