// Package authprovider is the mock implementation of the auth provider port.
// Every well-formed login succeeds with a synthesized identity; there is no
// account database behind it.
package authprovider

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/triplinker/triplinker-api/internal/adapters/mock/latency"
	"github.com/triplinker/triplinker-api/internal/domain"
	"github.com/triplinker/triplinker-api/internal/ports/out/authprovider"
	"github.com/triplinker/triplinker-api/internal/ports/out/clock"
)

// Simulated round-trip times, mirroring a real auth backend.
const (
	loginDelay  = 1000 * time.Millisecond
	signupDelay = 1200 * time.Millisecond
	logoutDelay = 300 * time.Millisecond
)

type Provider struct {
	sim latency.Simulator
	clk clock.Clock

	newUserID   func() domain.UserID
	avatarIndex func() int
}

var _ authprovider.Provider = (*Provider)(nil)

func NewProvider(sim latency.Simulator, clk clock.Clock) *Provider {
	return &Provider{
		sim: sim,
		clk: clk,
		newUserID: func() domain.UserID {
			return domain.UserID("u_" + uuid.NewString())
		},
		avatarIndex: func() int { return rand.Intn(70) },
	}
}

// SetNewUserIDForTest overrides user ID generation for deterministic tests.
// It should not be used in production code.
func (p *Provider) SetNewUserIDForTest(fn func() domain.UserID) {
	if fn != nil {
		p.newUserID = fn
	}
}

func (p *Provider) Login(ctx context.Context, req authprovider.LoginRequest) (domain.User, error) {
	if err := p.sim.Wait(ctx, loginDelay); err != nil {
		return domain.User{}, err
	}

	name := "Traveler"
	if req.Role == domain.RoleBusiness {
		name = "My Business"
	}
	return domain.User{
		ID:        p.newUserID(),
		Name:      name,
		Email:     req.Email,
		AvatarURL: p.avatarURL(),
		Role:      req.Role,
		JoinedAt:  p.clk.Now(),
	}, nil
}

func (p *Provider) Signup(ctx context.Context, req authprovider.SignupRequest) (domain.User, error) {
	if err := p.sim.Wait(ctx, signupDelay); err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:        p.newUserID(),
		Name:      req.Name,
		Email:     req.Email,
		AvatarURL: p.avatarURL(),
		Role:      req.Role,
		JoinedAt:  p.clk.Now(),
	}, nil
}

func (p *Provider) Logout(ctx context.Context) error {
	return p.sim.Wait(ctx, logoutDelay)
}

func (p *Provider) avatarURL() string {
	return fmt.Sprintf("https://i.pravatar.cc/150?img=%d", p.avatarIndex())
}
