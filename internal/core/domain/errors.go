package domain

import "errors"

// Error categories. Every domain error unwraps to exactly one of them.
var (
	ErrValidation     = errors.New("validation error")
	ErrAuthentication = errors.New("authentication error")
	ErrAuthorization  = errors.New("authorization error")
)

// Error is a domain failure whose message is safe to show to the caller.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

var (
	ErrMissingUsername   = &Error{Kind: ErrValidation, Message: "Username is required"}
	ErrDuplicateUsername = &Error{Kind: ErrValidation, Message: "Username already taken"}
	ErrPasswordMismatch  = &Error{Kind: ErrValidation, Message: "Passwords do not match"}
	ErrPasswordTooLong   = &Error{Kind: ErrValidation, Message: "Password is too long"}
	ErrInvalidRole       = &Error{Kind: ErrValidation, Message: "Role must be one of: customer, admin"}
	ErrMissingProductID  = &Error{Kind: ErrValidation, Message: "Product id is required"}
	ErrNoValidProducts   = &Error{Kind: ErrValidation, Message: "Invalid products selected."}

	// ErrInvalidCredentials is returned for unknown users and wrong passwords alike.
	ErrInvalidCredentials = &Error{Kind: ErrAuthentication, Message: "Invalid username or password"}
	ErrNotAuthenticated   = &Error{Kind: ErrAuthentication, Message: "Authentication required"}

	ErrAccessDenied = &Error{Kind: ErrAuthorization, Message: "Access denied"}
)

// ErrSessionNotFound is returned by session stores for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")
