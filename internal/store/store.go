// Package store is the dispatch/selector bridge: one process-wide aggregate
// of the five domain containers. Consumers read state through Snapshot and
// mutate it only through the containers' operations; subscribers are told
// after every committed transition so they can re-read.
package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/triplinker/triplinker-api/internal/app/ai"
	"github.com/triplinker/triplinker-api/internal/app/auth"
	"github.com/triplinker/triplinker-api/internal/app/explore"
	"github.com/triplinker/triplinker-api/internal/app/places"
	"github.com/triplinker/triplinker-api/internal/app/profile"
	"github.com/triplinker/triplinker-api/internal/ports/out/authprovider"
	"github.com/triplinker/triplinker-api/internal/ports/out/feedprovider"
	"github.com/triplinker/triplinker-api/internal/ports/out/itineraryprovider"
	"github.com/triplinker/triplinker-api/internal/ports/out/placeprovider"
	"github.com/triplinker/triplinker-api/internal/ports/out/statsprovider"
	"github.com/triplinker/triplinker-api/internal/ports/out/tokenstore"
)

// Providers bundles everything the containers need from the outside.
type Providers struct {
	Auth        authprovider.Provider
	Feed        feedprovider.Provider
	Places      placeprovider.Provider
	Itineraries itineraryprovider.Provider
	Stats       statsprovider.Provider

	Tokens   tokenstore.Store
	Sessions auth.TokenMinter

	Logger zerolog.Logger
}

// Store aggregates the domain containers. Each container serializes its own
// transitions; the store adds nothing but wiring and fan-out.
type Store struct {
	Auth    *auth.Container
	Explore *explore.Container
	Places  *places.Container
	AI      *ai.Container
	Profile *profile.Container

	tokens tokenstore.Store

	mu        sync.Mutex
	nextSub   int
	listeners map[int]func()
}

func New(p Providers) *Store {
	s := &Store{
		Auth:      auth.NewContainer(p.Auth, p.Tokens, p.Sessions, p.Logger),
		Explore:   explore.NewContainer(p.Feed),
		Places:    places.NewContainer(p.Places),
		AI:        ai.NewContainer(p.Itineraries),
		Profile:   profile.NewContainer(p.Stats),
		tokens:    p.Tokens,
		listeners: make(map[int]func()),
	}
	s.Auth.SetNotify(s.broadcast)
	s.Explore.SetNotify(s.broadcast)
	s.Places.SetNotify(s.broadcast)
	s.AI.SetNotify(s.broadcast)
	s.Profile.SetNotify(s.broadcast)
	return s
}

// Snapshot is a point-in-time deep copy of every slice. Slices are copied one
// after another, so a snapshot is consistent per slice, not across slices.
type Snapshot struct {
	Auth    auth.State
	Explore explore.State
	Places  places.State
	AI      ai.State
	Profile profile.State
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Auth:    s.Auth.Snapshot(),
		Explore: s.Explore.Snapshot(),
		Places:  s.Places.Snapshot(),
		AI:      s.AI.Snapshot(),
		Profile: s.Profile.Snapshot(),
	}
}

// SessionToken returns the persisted session token for the signed-in user, or
// tokenstore.ErrNotFound when no session has been established.
func (s *Store) SessionToken(ctx context.Context) (string, error) {
	return s.tokens.GetItem(ctx, auth.SessionTokenKey)
}

// Subscribe registers fn to run after every committed transition in any
// container. The returned func removes the subscription.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) broadcast() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
