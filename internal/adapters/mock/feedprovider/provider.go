// Package feedprovider is the mock implementation of the explore feed port.
package feedprovider

import (
	"context"
	"time"

	"github.com/triplinker/triplinker-api/internal/adapters/mock/latency"
	"github.com/triplinker/triplinker-api/internal/domain"
	"github.com/triplinker/triplinker-api/internal/ports/out/feedprovider"
)

const fetchPostsDelay = 900 * time.Millisecond

type Provider struct {
	sim latency.Simulator
}

var _ feedprovider.Provider = (*Provider)(nil)

func NewProvider(sim latency.Simulator) *Provider {
	return &Provider{sim: sim}
}

// FetchPosts returns the canned feed. Callers receive fresh copies; the
// canonical records (including baseline like counts) never change.
func (p *Provider) FetchPosts(ctx context.Context) ([]domain.TravelPost, error) {
	if err := p.sim.Wait(ctx, fetchPostsDelay); err != nil {
		return nil, err
	}
	out := make([]domain.TravelPost, len(feedPosts))
	for i, post := range feedPosts {
		out[i] = clonePost(post)
	}
	return out, nil
}

func clonePost(post domain.TravelPost) domain.TravelPost {
	cp := post
	if post.Tags != nil {
		cp.Tags = append([]string(nil), post.Tags...)
	}
	return cp
}
