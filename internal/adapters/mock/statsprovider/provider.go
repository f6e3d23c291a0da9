// Package statsprovider is the mock implementation of the profile stats port.
// Stats are derived from the user ID so different accounts see different,
// stable numbers.
package statsprovider

import (
	"context"
	"time"

	"github.com/triplinker/triplinker-api/internal/adapters/mock/latency"
	"github.com/triplinker/triplinker-api/internal/domain"
	"github.com/triplinker/triplinker-api/internal/ports/out/statsprovider"
)

const fetchStatsDelay = 600 * time.Millisecond

type Provider struct {
	sim latency.Simulator
}

var _ statsprovider.Provider = (*Provider)(nil)

func NewProvider(sim latency.Simulator) *Provider {
	return &Provider{sim: sim}
}

func (p *Provider) FetchStats(ctx context.Context, userID domain.UserID) (domain.ProfileStats, error) {
	if err := p.sim.Wait(ctx, fetchStatsDelay); err != nil {
		return domain.ProfileStats{}, err
	}

	// Seeded by ID length so the numbers vary a little per account.
	seed := len(userID)
	return domain.ProfileStats{
		TripsPlanned:  12 + seed%8,
		PlacesVisited: 24 + seed%15,
		ReviewsGiven:  8 + seed%5,
		Followers:     340 + seed*17,
		Following:     210 + seed*11,
	}, nil
}
