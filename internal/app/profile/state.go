package profile

import "github.com/triplinker/triplinker-api/internal/domain"

// State is the profile slice. Stats are cached once populated and are not
// keyed by user ID: a session switch without an explicit refetch can show the
// previous account's numbers. Known gap, kept deliberately (see DESIGN.md).
type State struct {
	Stats   *domain.ProfileStats
	Loading bool
	Err     string
}

type event interface{ isProfileEvent() }

type fetchPending struct{}
type fetchFulfilled struct{ stats domain.ProfileStats }
type fetchRejected struct{ msg string }

func (fetchPending) isProfileEvent()   {}
func (fetchFulfilled) isProfileEvent() {}
func (fetchRejected) isProfileEvent()  {}

// reduce is the pure transition function for the profile slice.
func reduce(s State, ev event) State {
	switch ev := ev.(type) {
	case fetchPending:
		s.Loading = true
	case fetchFulfilled:
		stats := ev.stats
		s.Loading = false
		s.Stats = &stats
	case fetchRejected:
		s.Loading = false
		s.Err = ev.msg
	}
	return s
}

func cloneState(s State) State {
	if s.Stats != nil {
		stats := *s.Stats
		s.Stats = &stats
	}
	return s
}
