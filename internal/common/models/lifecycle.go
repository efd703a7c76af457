package models

import "fmt"

// LifecycleState models the soft-delete lifecycle shared by users,
// locations, and templates. Entities move Active -> Deleted on delete
// and Deleted -> Active on restore; no other transitions exist.
type LifecycleState string

const (
	StateActive  LifecycleState = "active"
	StateDeleted LifecycleState = "deleted"
)

var lifecycleTransitions = map[LifecycleState][]LifecycleState{
	StateActive:  {StateDeleted},
	StateDeleted: {StateActive},
}

func (s LifecycleState) CanTransitionTo(next LifecycleState) bool {
	for _, allowed := range lifecycleTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition validates and applies a lifecycle change.
func (s LifecycleState) Transition(next LifecycleState) (LifecycleState, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("invalid lifecycle transition %s -> %s", s, next)
	}
	return next, nil
}

// StateFilter tells read paths which lifecycle states they want.
type StateFilter int

const (
	ActiveOnly StateFilter = iota
	AllStates
)
