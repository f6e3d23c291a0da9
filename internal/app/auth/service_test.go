package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	memtokenstore "github.com/triplinker/triplinker-api/internal/adapters/memory/tokenstore"
	"github.com/triplinker/triplinker-api/internal/app/apperr"
	"github.com/triplinker/triplinker-api/internal/domain"
	"github.com/triplinker/triplinker-api/internal/ports/out/authprovider"
)

type fakeAuthProvider struct {
	loginCalls  int
	signupCalls int
	logoutCalls int

	user      domain.User
	loginErr  error
	logoutErr error
}

func (p *fakeAuthProvider) Login(_ context.Context, req authprovider.LoginRequest) (domain.User, error) {
	p.loginCalls++
	if p.loginErr != nil {
		return domain.User{}, p.loginErr
	}
	u := p.user
	u.Email = req.Email
	u.Role = req.Role
	return u, nil
}

func (p *fakeAuthProvider) Signup(_ context.Context, req authprovider.SignupRequest) (domain.User, error) {
	p.signupCalls++
	u := p.user
	u.Name = req.Name
	u.Email = req.Email
	u.Role = req.Role
	return u, nil
}

func (p *fakeAuthProvider) Logout(context.Context) error {
	p.logoutCalls++
	return p.logoutErr
}

type fakeMinter struct {
	token string
	err   error
}

func (m fakeMinter) Mint(domain.User) (string, error) { return m.token, m.err }

func newTestContainer(p *fakeAuthProvider) (*Container, *memtokenstore.Store) {
	tokens := memtokenstore.NewStore()
	c := NewContainer(p, tokens, fakeMinter{token: "tok-1"}, zerolog.Nop())
	return c, tokens
}

func TestContainer_Login(t *testing.T) {
	t.Parallel()

	provider := &fakeAuthProvider{user: domain.User{ID: "u_1", Name: "Traveler", JoinedAt: time.Unix(100, 0).UTC()}}
	c, tokens := newTestContainer(provider)

	user, err := c.Login(context.Background(), "a@example.com", "pw", domain.RoleTraveler)
	if err != nil {
		t.Fatalf("Login err=%v", err)
	}
	if user.Email != "a@example.com" || user.Role != domain.RoleTraveler {
		t.Fatalf("user=%+v", user)
	}

	st := c.Snapshot()
	if !st.IsAuthenticated() || st.Loading || st.Err != "" {
		t.Fatalf("state=%+v", st)
	}
	if st.Role != domain.RoleTraveler {
		t.Fatalf("role=%q", st.Role)
	}
	if st.Phase() != PhaseAuthenticated {
		t.Fatalf("phase=%q", st.Phase())
	}

	tok, err := tokens.GetItem(context.Background(), SessionTokenKey)
	if err != nil || tok != "tok-1" {
		t.Fatalf("token=%q err=%v", tok, err)
	}
}

func TestContainer_Login_MissingFields(t *testing.T) {
	t.Parallel()

	provider := &fakeAuthProvider{}
	c, _ := newTestContainer(provider)

	_, err := c.Login(context.Background(), "", "pw", domain.RoleTraveler)
	if err == nil {
		t.Fatalf("expected error")
	}
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != apperr.CodeValidation {
		t.Fatalf("err=%v, want %s", err, apperr.CodeValidation)
	}
	if provider.loginCalls != 0 {
		t.Fatalf("provider called %d times on invalid input", provider.loginCalls)
	}

	st := c.Snapshot()
	if st.IsAuthenticated() || st.Loading {
		t.Fatalf("state=%+v", st)
	}
	if st.Err != "Email and password are required" {
		t.Fatalf("err=%q", st.Err)
	}
}

func TestContainer_Login_ProviderFailure(t *testing.T) {
	t.Parallel()

	provider := &fakeAuthProvider{loginErr: errors.New("backend down")}
	c, tokens := newTestContainer(provider)

	_, err := c.Login(context.Background(), "a@example.com", "pw", domain.RoleTraveler)
	if err == nil {
		t.Fatalf("expected error")
	}

	st := c.Snapshot()
	if st.IsAuthenticated() || st.Loading || st.Err == "" {
		t.Fatalf("state=%+v", st)
	}
	if _, err := tokens.GetItem(context.Background(), SessionTokenKey); err == nil {
		t.Fatalf("token persisted on failed login")
	}
}

func TestContainer_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	provider := &fakeAuthProvider{loginErr: authprovider.ErrInvalidCredentials}
	c, _ := newTestContainer(provider)

	_, err := c.Login(context.Background(), "a@example.com", "pw", domain.RoleTraveler)
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != apperr.CodeUnauthorized || ae.Status != 401 {
		t.Fatalf("err=%v, want UNAUTHORIZED 401", err)
	}
}

func TestContainer_Signup(t *testing.T) {
	t.Parallel()

	provider := &fakeAuthProvider{user: domain.User{ID: "u_2"}}
	c, _ := newTestContainer(provider)

	user, err := c.Signup(context.Background(), "  Ana   Lima ", "ana@example.com", "pw", domain.RoleBusiness)
	if err != nil {
		t.Fatalf("Signup err=%v", err)
	}
	if user.Name != "Ana Lima" || user.Role != domain.RoleBusiness {
		t.Fatalf("user=%+v", user)
	}
	if st := c.Snapshot(); st.Role != domain.RoleBusiness {
		t.Fatalf("role=%q", st.Role)
	}
}

func TestContainer_Signup_MissingFields(t *testing.T) {
	t.Parallel()

	provider := &fakeAuthProvider{}
	c, _ := newTestContainer(provider)

	_, err := c.Signup(context.Background(), "Ana", "", "pw", domain.RoleTraveler)
	if err == nil {
		t.Fatalf("expected error")
	}
	// Whitespace-only names normalize to empty and fail the same way.
	_, err = c.Signup(context.Background(), "   ", "ana@example.com", "pw", domain.RoleTraveler)
	if err == nil {
		t.Fatalf("expected error for blank name")
	}
	if provider.signupCalls != 0 {
		t.Fatalf("provider called on invalid input")
	}
	if st := c.Snapshot(); st.Err != "All fields are required" {
		t.Fatalf("err=%q", st.Err)
	}
}

func TestContainer_Logout_SwallowsFailures(t *testing.T) {
	t.Parallel()

	provider := &fakeAuthProvider{user: domain.User{ID: "u_1"}, logoutErr: errors.New("backend down")}
	c, tokens := newTestContainer(provider)

	if _, err := c.Login(context.Background(), "a@example.com", "pw", domain.RoleTraveler); err != nil {
		t.Fatalf("Login err=%v", err)
	}

	c.Logout(context.Background())

	st := c.Snapshot()
	if st.IsAuthenticated() || st.Role != "" || st.Err != "" {
		t.Fatalf("state after logout=%+v", st)
	}
	if _, err := tokens.GetItem(context.Background(), SessionTokenKey); err == nil {
		t.Fatalf("token survived logout")
	}

	// Logging out again is a no-op that still succeeds.
	c.Logout(context.Background())
	if st := c.Snapshot(); st.IsAuthenticated() {
		t.Fatalf("state=%+v", st)
	}
}

func TestContainer_SetRoleAndClearError(t *testing.T) {
	t.Parallel()

	provider := &fakeAuthProvider{}
	c, _ := newTestContainer(provider)

	c.SetRole(domain.RoleBusiness)
	if st := c.Snapshot(); st.Role != domain.RoleBusiness || st.IsAuthenticated() {
		t.Fatalf("state=%+v", st)
	}

	_, _ = c.Login(context.Background(), "", "", domain.RoleBusiness)
	if st := c.Snapshot(); st.Err == "" {
		t.Fatalf("expected error state")
	}

	c.ClearError()
	st := c.Snapshot()
	if st.Err != "" {
		t.Fatalf("err=%q after clear", st.Err)
	}
	if st.Role != domain.RoleBusiness {
		t.Fatalf("role=%q, clear must not touch it", st.Role)
	}
}
