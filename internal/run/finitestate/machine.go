// Package finitestate defines the lifecycle of a weekly run.
package finitestate

import (
	"log/slog"

	"github.com/robbyt/go-fsm"
)

// Run states
const (
	StateCreated           = "created"
	StateLoggingIn         = "logging_in"
	StateCreatingEvent     = "creating_event"
	StateConfiguringEvent  = "configuring_event"
	StateCreatingRounds    = "creating_rounds"
	StateConfiguringRounds = "configuring_rounds"
	StateCompleted         = "completed" // terminal
	StateFailed            = "failed"    // terminal
)

// RunTransitions lists the valid transitions of a run. Rounds are created and configured one
// after the other, so the two round states alternate.
var RunTransitions = map[string][]string{
	StateCreated:           {StateLoggingIn, StateFailed},
	StateLoggingIn:         {StateCreatingEvent, StateFailed},
	StateCreatingEvent:     {StateConfiguringEvent, StateFailed},
	StateConfiguringEvent:  {StateCreatingRounds, StateCompleted, StateFailed},
	StateCreatingRounds:    {StateConfiguringRounds, StateFailed},
	StateConfiguringRounds: {StateCreatingRounds, StateCompleted, StateFailed},
	StateCompleted:         {},
	StateFailed:            {},
}

// Machine is the part of the state machine a run uses.
type Machine interface {
	// Transition moves to state, failing when the transition is not allowed.
	Transition(state string) error

	// GetState returns the current state.
	GetState() string
}

// New creates a run state machine in StateCreated
func New(handler slog.Handler) (Machine, error) {
	return fsm.New(handler, StateCreated, RunTransitions)
}

// IsTerminal reports whether no transition leaves state
func IsTerminal(state string) bool {
	next, ok := RunTransitions[state]
	return ok && len(next) == 0
}
