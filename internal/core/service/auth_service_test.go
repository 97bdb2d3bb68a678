package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/storefront-system/internal/core/domain"
	"github.com/99minutos/storefront-system/internal/core/ports"
)

func newTestAuthService(users *stubCollection[domain.User]) *AuthService {
	return newAuthService(users, zerolog.Nop(), bcrypt.MinCost)
}

func register(t *testing.T, svc *AuthService, username, password string, role domain.Role) {
	t.Helper()
	in := ports.RegisterInput{Username: username, Password: password, ConfirmPassword: password, Role: role}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("register %s failed: %v", username, err)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	users := newStubCollection[domain.User]()
	svc := newTestAuthService(users)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Password: "pw1", ConfirmPassword: "pw1",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pw1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("expected default role customer, got %s", user.Role)
	}

	stored := users.Load(context.Background())
	if len(stored) != 1 || stored[0].Username != "alice" {
		t.Fatalf("expected alice to be stored, got %+v", stored)
	}
}

func TestAuthService_Register_ProductionCost(t *testing.T) {
	svc := NewAuthService(newStubCollection[domain.User](), zerolog.Nop())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "erin", Password: "pw", ConfirmPassword: "pw",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	if err != nil || cost != 10 {
		t.Fatalf("expected cost 10, got %d (%v)", cost, err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	users := newStubCollection[domain.User]()
	svc := newTestAuthService(users)
	register(t, svc, "alice", "pw1", "")

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Password: "pw2", ConfirmPassword: "pw2",
	})
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
	if len(users.Load(context.Background())) != 1 {
		t.Fatalf("duplicate must not be stored")
	}
}

func TestAuthService_Register_DuplicateCheckedBeforeMismatch(t *testing.T) {
	svc := newTestAuthService(newStubCollection[domain.User]())
	register(t, svc, "alice", "pw1", "")

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Password: "a", ConfirmPassword: "b",
	})
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	cases := []struct {
		name string
		in   ports.RegisterInput
		want error
	}{
		{"missing username", ports.RegisterInput{Password: "a", ConfirmPassword: "a"}, domain.ErrMissingUsername},
		{"password mismatch", ports.RegisterInput{Username: "bob", Password: "a", ConfirmPassword: "b"}, domain.ErrPasswordMismatch},
		{"unknown role", ports.RegisterInput{Username: "bob", Password: "a", ConfirmPassword: "a", Role: "root"}, domain.ErrInvalidRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := newStubCollection[domain.User]()
			svc := newTestAuthService(users)

			_, err := svc.Register(context.Background(), tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected a validation error, got %v", err)
			}
			if users.saves != 0 {
				t.Fatalf("nothing must be saved on failure")
			}
		})
	}
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	svc := newTestAuthService(newStubCollection[domain.User]())
	long := string(make([]byte, 80))

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Password: long, ConfirmPassword: long,
	})
	if !errors.Is(err, domain.ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	svc := newTestAuthService(newStubCollection[domain.User]())
	register(t, svc, "carol", "s3cret", domain.RoleAdmin)

	identity, err := svc.Authenticate(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if identity.Username != "carol" || identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthService_Authenticate_FailuresAreIndistinguishable(t *testing.T) {
	svc := newTestAuthService(newStubCollection[domain.User]())
	register(t, svc, "dave", "goodpass", "")

	_, wrongPassword := svc.Authenticate(context.Background(), "dave", "badpass")
	_, unknownUser := svc.Authenticate(context.Background(), "ghost", "goodpass")

	if wrongPassword != domain.ErrInvalidCredentials || unknownUser != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v and %v", wrongPassword, unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("messages differ: %q vs %q", wrongPassword.Error(), unknownUser.Error())
	}
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	users := newStubCollection[domain.User]()
	svc := newTestAuthService(users)

	if err := svc.EnsureAdmin(context.Background(), "root", "pw"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	if err := svc.EnsureAdmin(context.Background(), "root", "other"); err != nil {
		t.Fatalf("second EnsureAdmin must succeed, got %v", err)
	}

	stored := users.Load(context.Background())
	if len(stored) != 1 || stored[0].Role != domain.RoleAdmin {
		t.Fatalf("expected one admin, got %+v", stored)
	}
}

func TestAuthService_Register_HashesOutsideUpdate(t *testing.T) {
	users := newStubCollection[domain.User]()
	svc := newTestAuthService(users)
	hashed := false
	svc.hash = func(password []byte, cost int) ([]byte, error) {
		hashed = true
		if users.inUpdate() {
			t.Errorf("password hashed while the users collection was locked")
		}
		return bcrypt.GenerateFromPassword(password, cost)
	}

	register(t, svc, "frank", "pw", "")

	if !hashed {
		t.Fatalf("expected the password to be hashed")
	}
}

func TestAuthService_Register_DuplicateRecheckedInsideUpdate(t *testing.T) {
	users := newStubCollection[domain.User]()
	users.beforeUpdate = func(items []domain.User) []domain.User {
		// another registration of the same name lands after the first check
		return append(items, domain.User{Username: "gina", Role: domain.RoleCustomer})
	}
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "gina", Password: "pw", ConfirmPassword: "pw",
	})

	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
	if stored := users.Load(context.Background()); len(stored) != 1 {
		t.Fatalf("expected only the concurrent registration, got %+v", stored)
	}
}
