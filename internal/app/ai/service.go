// Package ai owns the itinerary generation slice: a four-phase machine
// (idle, generating, ready, error) around the mock generation provider.
package ai

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/triplinker/triplinker-api/internal/app/apperr"
	"github.com/triplinker/triplinker-api/internal/domain"
	"github.com/triplinker/triplinker-api/internal/ports/out/itineraryprovider"
)

type Container struct {
	provider itineraryprovider.Provider

	mu     sync.Mutex
	state  State
	notify func()
}

func NewContainer(provider itineraryprovider.Provider) *Container {
	return &Container{state: State{Phase: PhaseIdle}, provider: provider}
}

// SetNotify registers a callback invoked after every committed transition.
func (c *Container) SetNotify(fn func()) { c.notify = fn }

// Snapshot returns a deep copy of the AI slice.
func (c *Container) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneState(c.state)
}

// GenerateItinerary validates the raw input, and only then enters the
// generating phase: the previous itinerary is cleared and the input recorded
// for redisplay. Validation failures surface as error state without a
// provider call and without entering generating.
func (c *Container) GenerateItinerary(ctx context.Context, location, budget string) (domain.Itinerary, error) {
	budgetNum, err := parseBudget(budget)
	if err != nil {
		appErr := err.(*apperr.Error)
		c.dispatch(generateRejected{msg: appErr.Message})
		return domain.Itinerary{}, appErr
	}
	if strings.TrimSpace(location) == "" {
		appErr := apperr.New(422, apperr.CodeInvalidLocation, "Please enter a destination")
		c.dispatch(generateRejected{msg: appErr.Message})
		return domain.Itinerary{}, appErr
	}

	c.dispatch(generatePending{input: Input{Location: location, Budget: budget}})
	itinerary, provErr := c.provider.GenerateItinerary(ctx, location, budgetNum)
	if provErr != nil {
		appErr := apperr.Provider(provErr.Error())
		c.dispatch(generateRejected{msg: appErr.Message})
		return domain.Itinerary{}, appErr
	}
	c.dispatch(generateFulfilled{itinerary: itinerary})
	return itinerary, nil
}

// ClearItinerary resets the slice to idle, dropping the itinerary, the error,
// and the recorded input.
func (c *Container) ClearItinerary() {
	c.dispatch(cleared{})
}

func (c *Container) dispatch(ev event) {
	c.mu.Lock()
	c.state = reduce(c.state, ev)
	c.mu.Unlock()
	if c.notify != nil {
		c.notify()
	}
}

// parseBudget accepts any string that parses to a finite number greater than
// zero.
func parseBudget(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, apperr.New(422, apperr.CodeInvalidBudget, "Please enter a valid budget amount")
	}
	return v, nil
}
