// Package fetch owns the request lifecycle for the profile search screen:
// the current locator, the tri-state request state, and suppression of
// results from superseded requests.
package fetch

import (
	"fmt"

	"ghprofile/internal/github"
)

// State is the view of the latest fetch. Loading and Failed are never both true.
// A nil Profile means no fetch has succeeded yet.
type State struct {
	Loading bool
	Failed  bool
	Profile *github.UserProfile
}

// Loaded reports whether a profile has been received.
func (s State) Loaded() bool {
	return s.Profile != nil
}

// Action is a state transition. The set is closed: Init, Success, Failure.
type Action interface {
	action()
}

// Init marks the start of a fetch.
type Init struct{}

// Success carries the decoded profile of a completed fetch.
type Success struct {
	Profile *github.UserProfile
}

// Failure records a failed fetch. Err is kept for logging only.
type Failure struct {
	Err error
}

func (Init) action()    {}
func (Success) action() {}
func (Failure) action() {}

// Reduce applies a to s and returns the new state. Profile survives Init and
// Failure so the last good card stays visible. Reduce panics on an action
// outside the closed set.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Init:
		s.Loading = true
		s.Failed = false
	case Success:
		s.Loading = false
		s.Failed = false
		s.Profile = a.Profile
	case Failure:
		s.Loading = false
		s.Failed = true
	default:
		panic(fmt.Sprintf("fetch: unrecognized action %T", a))
	}
	return s
}
