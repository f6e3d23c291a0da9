// Package explore owns the social feed slice and the session's liked posts.
package explore

import (
	"context"
	"sync"

	"github.com/triplinker/triplinker-api/internal/app/apperr"
	"github.com/triplinker/triplinker-api/internal/domain"
	"github.com/triplinker/triplinker-api/internal/ports/out/feedprovider"
)

type Container struct {
	provider feedprovider.Provider

	mu     sync.Mutex
	state  State
	notify func()
}

func NewContainer(provider feedprovider.Provider) *Container {
	return &Container{provider: provider}
}

// SetNotify registers a callback invoked after every committed transition.
func (c *Container) SetNotify(fn func()) { c.notify = fn }

// Snapshot returns a deep copy of the explore slice.
func (c *Container) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneState(c.state)
}

// FetchPosts replaces the feed with the provider's canonical list and
// re-applies the liked set on top of it. On failure the previous posts are
// kept and only the error field changes.
func (c *Container) FetchPosts(ctx context.Context) ([]domain.TravelPost, error) {
	c.dispatch(fetchPending{})
	posts, err := c.provider.FetchPosts(ctx)
	if err != nil {
		appErr := apperr.Provider(err.Error())
		c.dispatch(fetchRejected{msg: appErr.Message})
		return nil, appErr
	}
	c.dispatch(fetchFulfilled{posts: posts})
	return c.Snapshot().Posts, nil
}

// ToggleLike flips the session's like on a post: likes move by exactly one in
// either direction and the flag tracks membership in the liked set. It is a
// pure local mutation; no provider call is involved. Returns false (and
// changes nothing) when the ID matches no post in the current list.
func (c *Container) ToggleLike(id domain.PostID) bool {
	c.mu.Lock()
	known := false
	for _, p := range c.state.Posts {
		if p.ID == id {
			known = true
			break
		}
	}
	if known {
		c.state = reduce(c.state, likeToggled{id: id})
	}
	c.mu.Unlock()
	if known && c.notify != nil {
		c.notify()
	}
	return known
}

// Post returns a copy of the post with the given ID from the current list.
func (c *Container) Post(id domain.PostID) (domain.TravelPost, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.state.Posts {
		if p.ID == id {
			return clonePost(p), true
		}
	}
	return domain.TravelPost{}, false
}

func (c *Container) dispatch(ev event) {
	c.mu.Lock()
	c.state = reduce(c.state, ev)
	c.mu.Unlock()
	if c.notify != nil {
		c.notify()
	}
}
