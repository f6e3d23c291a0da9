// Package places owns the property listing slice: the browsable catalog, the
// selected listing for the detail view, and listing submission.
package places

import (
	"context"
	"errors"
	"sync"

	"github.com/triplinker/triplinker-api/internal/app/apperr"
	"github.com/triplinker/triplinker-api/internal/domain"
	"github.com/triplinker/triplinker-api/internal/ports/out/placeprovider"
)

type Container struct {
	provider placeprovider.Provider

	mu     sync.Mutex
	state  State
	notify func()
}

func NewContainer(provider placeprovider.Provider) *Container {
	return &Container{provider: provider}
}

// SetNotify registers a callback invoked after every committed transition.
func (c *Container) SetNotify(fn func()) { c.notify = fn }

// Snapshot returns a deep copy of the places slice.
func (c *Container) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneState(c.state)
}

// FetchProperties replaces the property list wholesale with the provider's
// payload, favorited flags included.
func (c *Container) FetchProperties(ctx context.Context) ([]domain.Property, error) {
	c.dispatch(fetchPending{})
	props, err := c.provider.FetchProperties(ctx)
	if err != nil {
		appErr := apperr.Provider(err.Error())
		c.dispatch(fetchRejected{msg: appErr.Message})
		return nil, appErr
	}
	c.dispatch(fetchFulfilled{properties: props})
	return c.Snapshot().Properties, nil
}

// FetchPropertyByID loads one listing into the detail-view selection. A miss
// surfaces as NOT_FOUND in the error field; the previous selection stays.
func (c *Container) FetchPropertyByID(ctx context.Context, id domain.PropertyID) (domain.Property, error) {
	c.dispatch(selectPending{})
	prop, err := c.provider.FetchPropertyByID(ctx, id)
	if err != nil {
		var appErr *apperr.Error
		if errors.Is(err, placeprovider.ErrNotFound) {
			appErr = apperr.NotFound("Property not found")
		} else {
			appErr = apperr.Provider(err.Error())
		}
		c.dispatch(selectRejected{msg: appErr.Message})
		return domain.Property{}, appErr
	}
	c.dispatch(selectFulfilled{property: prop})
	return prop, nil
}

// AddProperty submits a partial listing and prepends the created record to
// the front of the list. Unsupplied fields take the provider's defaults.
// Failure leaves the slice untouched; only the caller sees the error.
func (c *Container) AddProperty(ctx context.Context, in placeprovider.NewProperty) (domain.Property, error) {
	in.Name = domain.NormalizeHumanName(in.Name)
	if in.Type != "" && !domain.ValidPropertyType(in.Type) {
		return domain.Property{}, apperr.Validation("Unknown property type", map[string]any{"type": string(in.Type)})
	}

	prop, err := c.provider.AddProperty(ctx, in)
	if err != nil {
		return domain.Property{}, apperr.Provider(err.Error())
	}
	c.dispatch(propertyAdded{property: prop})
	return prop, nil
}

// ToggleFavorite flips the favorited flag on the matching listing. Pure local
// mutation; returns false (and changes nothing) when the ID is unknown.
func (c *Container) ToggleFavorite(id domain.PropertyID) bool {
	c.mu.Lock()
	known := false
	for _, p := range c.state.Properties {
		if p.ID == id {
			known = true
			break
		}
	}
	if known {
		c.state = reduce(c.state, favoriteToggled{id: id})
	}
	c.mu.Unlock()
	if known && c.notify != nil {
		c.notify()
	}
	return known
}

// ClearSelected resets the detail-view selection.
func (c *Container) ClearSelected() {
	c.dispatch(selectionCleared{})
}

// Property returns a copy of the listing with the given ID from the current list.
func (c *Container) Property(id domain.PropertyID) (domain.Property, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.state.Properties {
		if p.ID == id {
			return cloneProperty(p), true
		}
	}
	return domain.Property{}, false
}

func (c *Container) dispatch(ev event) {
	c.mu.Lock()
	c.state = reduce(c.state, ev)
	c.mu.Unlock()
	if c.notify != nil {
		c.notify()
	}
}
