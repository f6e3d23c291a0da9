package authprovider

import (
	"context"
	"strings"
	"testing"
	"time"

	memclock "github.com/triplinker/triplinker-api/internal/adapters/memory/clock"
	"github.com/triplinker/triplinker-api/internal/adapters/mock/latency"
	"github.com/triplinker/triplinker-api/internal/domain"
	"github.com/triplinker/triplinker-api/internal/ports/out/authprovider"
)

func newTestProvider() *Provider {
	p := NewProvider(latency.NewSimulator(0), memclock.NewManualClock(time.Unix(1000, 0).UTC()))
	p.SetNewUserIDForTest(func() domain.UserID { return "u_test" })
	return p
}

func TestLogin_SynthesizesIdentity(t *testing.T) {
	t.Parallel()

	p := newTestProvider()

	user, err := p.Login(context.Background(), authprovider.LoginRequest{
		Email:    "a@example.com",
		Password: "pw",
		Role:     domain.RoleTraveler,
	})
	if err != nil {
		t.Fatalf("Login err=%v", err)
	}
	if user.ID != "u_test" || user.Name != "Traveler" || user.Email != "a@example.com" {
		t.Fatalf("user=%+v", user)
	}
	if !strings.HasPrefix(user.AvatarURL, "https://i.pravatar.cc/150?img=") {
		t.Fatalf("avatar=%q", user.AvatarURL)
	}
	if user.JoinedAt != time.Unix(1000, 0).UTC() {
		t.Fatalf("joinedAt=%v", user.JoinedAt)
	}
}

func TestLogin_BusinessRoleName(t *testing.T) {
	t.Parallel()

	p := newTestProvider()

	user, err := p.Login(context.Background(), authprovider.LoginRequest{
		Email:    "biz@example.com",
		Password: "pw",
		Role:     domain.RoleBusiness,
	})
	if err != nil {
		t.Fatalf("Login err=%v", err)
	}
	if user.Name != "My Business" || user.Role != domain.RoleBusiness {
		t.Fatalf("user=%+v", user)
	}
}

func TestSignup_UsesSubmittedName(t *testing.T) {
	t.Parallel()

	p := newTestProvider()

	user, err := p.Signup(context.Background(), authprovider.SignupRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "pw",
		Role:     domain.RoleTraveler,
	})
	if err != nil {
		t.Fatalf("Signup err=%v", err)
	}
	if user.Name != "Ana" || user.Email != "ana@example.com" {
		t.Fatalf("user=%+v", user)
	}
}

func TestLogout(t *testing.T) {
	t.Parallel()

	p := newTestProvider()
	if err := p.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err=%v", err)
	}
}
