// Package application implements the mock apply flow for a single job.
//
// Form states:
//
//	EMPTY ──► EDITING ──► SUBMITTED
//	  │          │
//	  └──────────┴──────► CANCELLED
//
// A rejected submit stays in EDITING. SUBMITTED and CANCELLED are terminal.
package application

import "fmt"

type State string

const (
	StateEmpty     State = "EMPTY"
	StateEditing   State = "EDITING"
	StateSubmitted State = "SUBMITTED"
	StateCancelled State = "CANCELLED"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[State][]State{
	StateEmpty:   {StateEditing, StateCancelled},
	StateEditing: {StateEditing, StateSubmitted, StateCancelled},
}

// ParseState converts a raw string to a State
func ParseState(s string) (State, error) {
	st := State(s)
	switch st {
	case StateEmpty, StateEditing, StateSubmitted, StateCancelled:
		return st, nil
	}
	return "", fmt.Errorf("unknown form state %q", s)
}

// IsTransitionAllowed reports whether moving from → to is permitted.
func IsTransitionAllowed(from, to State) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

func (s State) Terminal() bool {
	return s == StateSubmitted || s == StateCancelled
}
