// Package profile owns the profile statistics slice.
package profile

import (
	"context"
	"sync"

	"github.com/triplinker/triplinker-api/internal/app/apperr"
	"github.com/triplinker/triplinker-api/internal/domain"
	"github.com/triplinker/triplinker-api/internal/ports/out/statsprovider"
)

type Container struct {
	provider statsprovider.Provider

	mu     sync.Mutex
	state  State
	notify func()
}

func NewContainer(provider statsprovider.Provider) *Container {
	return &Container{provider: provider}
}

// SetNotify registers a callback invoked after every committed transition.
func (c *Container) SetNotify(fn func()) { c.notify = fn }

// Snapshot returns a deep copy of the profile slice.
func (c *Container) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneState(c.state)
}

// FetchStats loads the aggregate counters for a user. The container does not
// refetch on its own once stats are populated; invalidation on a session
// change is the caller's responsibility.
func (c *Container) FetchStats(ctx context.Context, userID domain.UserID) (domain.ProfileStats, error) {
	c.dispatch(fetchPending{})
	stats, err := c.provider.FetchStats(ctx, userID)
	if err != nil {
		appErr := apperr.Provider(err.Error())
		c.dispatch(fetchRejected{msg: appErr.Message})
		return domain.ProfileStats{}, appErr
	}
	c.dispatch(fetchFulfilled{stats: stats})
	return stats, nil
}

func (c *Container) dispatch(ev event) {
	c.mu.Lock()
	c.state = reduce(c.state, ev)
	c.mu.Unlock()
	if c.notify != nil {
		c.notify()
	}
}
