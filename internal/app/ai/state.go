package ai

import "github.com/triplinker/triplinker-api/internal/domain"

// Phase is the generator's position in its lifecycle.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseGenerating Phase = "generating"
	PhaseReady      Phase = "ready"
	PhaseError      Phase = "error"
)

// Input is the raw generation request as the user submitted it, kept for
// redisplay. Budget stays a string here; parsing happens on dispatch.
type Input struct {
	Location string
	Budget   string
}

// State is the AI itinerary slice.
type State struct {
	Phase     Phase
	Itinerary *domain.Itinerary
	Err       string
	LastInput *Input
}

type event interface{ isAIEvent() }

type generatePending struct{ input Input }
type generateFulfilled struct{ itinerary domain.Itinerary }
type generateRejected struct{ msg string }
type cleared struct{}

func (generatePending) isAIEvent()   {}
func (generateFulfilled) isAIEvent() {}
func (generateRejected) isAIEvent()  {}
func (cleared) isAIEvent()           {}

// reduce is the pure transition function for the AI slice.
func reduce(s State, ev event) State {
	switch ev := ev.(type) {
	case generatePending:
		// Accepted dispatch: clear the previous result and remember the input.
		in := ev.input
		s.Phase = PhaseGenerating
		s.Itinerary = nil
		s.Err = ""
		s.LastInput = &in
	case generateFulfilled:
		it := cloneItinerary(ev.itinerary)
		s.Phase = PhaseReady
		s.Itinerary = &it
	case generateRejected:
		// Validation rejections arrive here without a preceding pending
		// event, so the previous itinerary (if any) is left in place.
		s.Phase = PhaseError
		s.Err = ev.msg
	case cleared:
		s = State{Phase: PhaseIdle}
	}
	return s
}

func cloneItinerary(it domain.Itinerary) domain.Itinerary {
	cp := it
	if it.Days != nil {
		days := make([]domain.ItineraryDay, len(it.Days))
		for i, d := range it.Days {
			dd := d
			if d.Activities != nil {
				dd.Activities = append([]domain.Activity(nil), d.Activities...)
			}
			days[i] = dd
		}
		cp.Days = days
	}
	if it.Tips != nil {
		cp.Tips = append([]string(nil), it.Tips...)
	}
	return cp
}

func cloneState(s State) State {
	if s.Phase == "" {
		s.Phase = PhaseIdle
	}
	if s.Itinerary != nil {
		it := cloneItinerary(*s.Itinerary)
		s.Itinerary = &it
	}
	if s.LastInput != nil {
		in := *s.LastInput
		s.LastInput = &in
	}
	return s
}
