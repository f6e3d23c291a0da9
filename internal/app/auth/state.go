package auth

import "github.com/triplinker/triplinker-api/internal/domain"

// Phase is the auth session's position in its lifecycle. It is derived from
// the slice fields, never stored, so it cannot drift from them.
type Phase string

const (
	PhaseAnonymous      Phase = "anonymous"
	PhaseAuthenticating Phase = "authenticating"
	PhaseAuthenticated  Phase = "authenticated"
	PhaseError          Phase = "error"
)

// State is the auth slice. A non-nil User means authenticated; the invariant
// isAuthenticated ⇔ user != nil holds by construction because there is no
// separate flag to get out of sync.
type State struct {
	User    *domain.User
	Role    domain.Role // mirrors User.Role once authenticated; pre-auth role selection otherwise
	Loading bool
	Err     string
}

func (s State) IsAuthenticated() bool { return s.User != nil }

func (s State) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseAuthenticating
	case s.Err != "":
		return PhaseError
	case s.User != nil:
		return PhaseAuthenticated
	default:
		return PhaseAnonymous
	}
}

// event is the closed set of auth state transitions.
type event interface{ isAuthEvent() }

type signInPending struct{}
type signInFulfilled struct{ user domain.User }
type signInRejected struct{ msg string }
type signedOut struct{}
type roleSet struct{ role domain.Role }
type errorCleared struct{}

func (signInPending) isAuthEvent()   {}
func (signInFulfilled) isAuthEvent() {}
func (signInRejected) isAuthEvent()  {}
func (signedOut) isAuthEvent()       {}
func (roleSet) isAuthEvent()         {}
func (errorCleared) isAuthEvent()    {}

// reduce is the pure transition function for the auth slice. Login and signup
// share the same transition shape, so they share the signIn* events.
func reduce(s State, ev event) State {
	switch ev := ev.(type) {
	case signInPending:
		s.Loading = true
		s.Err = ""
	case signInFulfilled:
		u := ev.user
		s.Loading = false
		s.User = &u
		s.Role = u.Role
		s.Err = ""
	case signInRejected:
		s.Loading = false
		s.Err = ev.msg
	case signedOut:
		s = State{}
	case roleSet:
		s.Role = ev.role
	case errorCleared:
		s.Err = ""
	}
	return s
}

func cloneState(s State) State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
