// Package store holds client-side state as pure reducer folds over tagged
// events, redux style: auth and alerts are separate slices.
package store

import (
	"sync"

	"github.com/google/uuid"
)

// Event is a tagged state transition input.
type Event interface {
	event()
}

// Auth slice events.

// RegisterSuccess carries the token issued on registration.
type RegisterSuccess struct{ Token string }

// RegisterFail marks a failed registration attempt.
type RegisterFail struct{}

// LoginSuccess carries the token issued on login.
type LoginSuccess struct{ Token string }

// LoginFail marks a failed login attempt.
type LoginFail struct{}

// UserLoaded carries the authenticated identity.
type UserLoaded struct{ User interface{} }

// AuthError marks a failed identity load.
type AuthError struct{}

func (RegisterSuccess) event() {}
func (RegisterFail) event()    {}
func (LoginSuccess) event()    {}
func (LoginFail) event()       {}
func (UserLoaded) event()      {}
func (AuthError) event()       {}

// Alert slice events.

// SetAlert adds one transient alert.
type SetAlert struct{ Alert Alert }

// RemoveAlert drops the alert with the given id.
type RemoveAlert struct{ ID string }

func (SetAlert) event()    {}
func (RemoveAlert) event() {}

// AuthState is the authentication slice. Authenticated is nil until the
// first attempt resolves, so unknown is distinct from false.
type AuthState struct {
	Token         string
	Authenticated *bool
	Loading       bool
	User          interface{}
}

// Alert is one transient user-facing message.
type Alert struct {
	ID   string
	Msg  string
	Kind string
}

// NewAlert builds a danger alert with a fresh id.
func NewAlert(msg string) Alert {
	return Alert{ID: uuid.NewString(), Msg: msg, Kind: "danger"}
}

// ReduceAuth is a pure fold: current state and an event in, next state out.
func ReduceAuth(s AuthState, e Event) AuthState {
	switch ev := e.(type) {
	case RegisterSuccess:
		return AuthState{Token: ev.Token, Authenticated: boolPtr(true), Loading: false, User: s.User}
	case LoginSuccess:
		return AuthState{Token: ev.Token, Authenticated: boolPtr(true), Loading: false, User: s.User}
	case RegisterFail, LoginFail, AuthError:
		return AuthState{Token: "", Authenticated: boolPtr(false), Loading: false}
	case UserLoaded:
		return AuthState{Token: s.Token, Authenticated: boolPtr(true), Loading: false, User: ev.User}
	default:
		return s
	}
}

// ReduceAlerts folds alert events into the alert list.
func ReduceAlerts(alerts []Alert, e Event) []Alert {
	switch ev := e.(type) {
	case SetAlert:
		next := make([]Alert, 0, len(alerts)+1)
		next = append(next, alerts...)
		return append(next, ev.Alert)
	case RemoveAlert:
		next := make([]Alert, 0, len(alerts))
		for _, a := range alerts {
			if a.ID != ev.ID {
				next = append(next, a)
			}
		}
		return next
	default:
		return alerts
	}
}

// Store combines the slices behind a dispatch loop.
type Store struct {
	mu     sync.Mutex
	auth   AuthState
	alerts []Alert
}

// NewStore starts in the loading state, before any auth attempt resolves.
func NewStore() *Store {
	return &Store{auth: AuthState{Loading: true}}
}

// Dispatch folds one event into every slice.
func (s *Store) Dispatch(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = ReduceAuth(s.auth, e)
	s.alerts = ReduceAlerts(s.alerts, e)
}

// Auth returns a snapshot of the auth slice.
func (s *Store) Auth() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth
}

// Alerts returns a snapshot of the alert slice.
func (s *Store) Alerts() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

func boolPtr(b bool) *bool { return &b }
