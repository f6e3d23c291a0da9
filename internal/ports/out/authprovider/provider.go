package authprovider

import (
	"context"

	"github.com/triplinker/triplinker-api/internal/domain"
)

// LoginRequest carries the credentials submitted by the login flow.
// Field presence validation happens at the application layer; providers may
// still reject credentials for their own reasons.
type LoginRequest struct {
	Email    string
	Password string
	Role     domain.Role
}

// SignupRequest carries the fields submitted by the signup flow.
type SignupRequest struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// Provider fulfills authentication requests. A successful login or signup
// yields the authenticated identity; the session token is minted by the
// application layer, not the provider.
type Provider interface {
	Login(ctx context.Context, req LoginRequest) (domain.User, error)
	Signup(ctx context.Context, req SignupRequest) (domain.User, error)

	// Logout tears down any provider-side session. Callers treat failures as
	// non-fatal: the local session is cleared regardless.
	Logout(ctx context.Context) error
}
