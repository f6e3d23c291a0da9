// Package auth owns the session slice: who is signed in, the selected role,
// and the in-flight/error bookkeeping for login, signup, and logout.
package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/triplinker/triplinker-api/internal/app/apperr"
	"github.com/triplinker/triplinker-api/internal/domain"
	"github.com/triplinker/triplinker-api/internal/ports/out/authprovider"
	"github.com/triplinker/triplinker-api/internal/ports/out/tokenstore"
)

// SessionTokenKey is the token store key holding the current session token.
const SessionTokenKey = "authToken"

// TokenMinter mints a session token for a freshly authenticated user.
type TokenMinter interface {
	Mint(user domain.User) (string, error)
}

type Container struct {
	provider authprovider.Provider
	tokens   tokenstore.Store
	minter   TokenMinter
	log      zerolog.Logger

	mu     sync.Mutex
	state  State
	notify func()
}

func NewContainer(provider authprovider.Provider, tokens tokenstore.Store, minter TokenMinter, log zerolog.Logger) *Container {
	return &Container{
		provider: provider,
		tokens:   tokens,
		minter:   minter,
		log:      log,
	}
}

// SetNotify registers a callback invoked after every committed transition.
// It must be set before the container is used.
func (c *Container) SetNotify(fn func()) { c.notify = fn }

// Snapshot returns a deep copy of the auth slice.
func (c *Container) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneState(c.state)
}

// Login authenticates with the provider and, on success, replaces the session
// wholesale. Empty email or password fails validation before any provider
// call; the failure surfaces in the slice's error field and the session stays
// as it was.
func (c *Container) Login(ctx context.Context, email, password string, role domain.Role) (domain.User, error) {
	if email == "" || password == "" {
		err := apperr.Validation("Email and password are required", nil)
		c.dispatch(signInRejected{msg: err.Message})
		return domain.User{}, err
	}

	c.dispatch(signInPending{})
	user, err := c.provider.Login(ctx, authprovider.LoginRequest{Email: email, Password: password, Role: role})
	if err != nil {
		appErr := mapProviderErr(err)
		c.dispatch(signInRejected{msg: appErr.Message})
		return domain.User{}, appErr
	}
	c.dispatch(signInFulfilled{user: user})
	c.persistSessionToken(ctx, user)
	return user, nil
}

// Signup creates an identity with the provider; the transition shape is the
// same as Login. Name, email, and password must all be non-empty.
func (c *Container) Signup(ctx context.Context, name, email, password string, role domain.Role) (domain.User, error) {
	name = domain.NormalizeHumanName(name)
	if name == "" || email == "" || password == "" {
		err := apperr.Validation("All fields are required", nil)
		c.dispatch(signInRejected{msg: err.Message})
		return domain.User{}, err
	}

	c.dispatch(signInPending{})
	user, err := c.provider.Signup(ctx, authprovider.SignupRequest{Name: name, Email: email, Password: password, Role: role})
	if err != nil {
		appErr := mapProviderErr(err)
		c.dispatch(signInRejected{msg: appErr.Message})
		return domain.User{}, appErr
	}
	c.dispatch(signInFulfilled{user: user})
	c.persistSessionToken(ctx, user)
	return user, nil
}

// Logout unconditionally returns the session to anonymous. Provider and
// token-store failures are swallowed: the user-visible effect (signed out)
// must always succeed.
func (c *Container) Logout(ctx context.Context) {
	if err := c.provider.Logout(ctx); err != nil {
		c.log.Debug().Err(err).Msg("logout provider call failed; clearing session anyway")
	}
	c.dispatch(signedOut{})
	if err := c.tokens.DeleteItem(ctx, SessionTokenKey); err != nil {
		c.log.Warn().Err(err).Msg("session token delete failed")
	}
}

// SetRole records the role selection made before authenticating.
func (c *Container) SetRole(role domain.Role) {
	c.dispatch(roleSet{role: role})
}

// ClearError resets the error field without touching the session; callers use
// it before retrying an operation.
func (c *Container) ClearError() {
	c.dispatch(errorCleared{})
}

// persistSessionToken mints and stores the session token. The write is
// fire-and-forget relative to the state transition: a failure is logged and
// the user stays signed in.
func (c *Container) persistSessionToken(ctx context.Context, user domain.User) {
	token, err := c.minter.Mint(user)
	if err != nil {
		c.log.Warn().Err(err).Msg("session token mint failed")
		return
	}
	if err := c.tokens.SetItem(ctx, SessionTokenKey, token); err != nil {
		c.log.Warn().Err(err).Msg("session token write failed")
	}
}

func (c *Container) dispatch(ev event) {
	c.mu.Lock()
	c.state = reduce(c.state, ev)
	c.mu.Unlock()
	if c.notify != nil {
		c.notify()
	}
}

func mapProviderErr(err error) *apperr.Error {
	if errors.Is(err, authprovider.ErrInvalidCredentials) {
		return apperr.Unauthorized("Invalid email or password")
	}
	return apperr.Provider(err.Error())
}
