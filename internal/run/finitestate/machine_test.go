package finitestate

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMachine(t *testing.T) Machine {
	t.Helper()
	machine, err := New(slog.NewTextHandler(os.Stdout, nil))
	require.NoError(t, err)
	return machine
}

func TestNew(t *testing.T) {
	t.Parallel()

	machine := newMachine(t)
	assert.Equal(t, StateCreated, machine.GetState())
}

func TestRunMachine(t *testing.T) {
	t.Parallel()

	t.Run("two rounds", func(t *testing.T) {
		machine := newMachine(t)
		for _, state := range []string{
			StateLoggingIn,
			StateCreatingEvent,
			StateConfiguringEvent,
			StateCreatingRounds,
			StateConfiguringRounds,
			StateCreatingRounds,
			StateConfiguringRounds,
			StateCompleted,
		} {
			require.NoError(t, machine.Transition(state), "transition to %s", state)
			assert.Equal(t, state, machine.GetState())
		}
	})

	t.Run("event without rounds", func(t *testing.T) {
		machine := newMachine(t)
		for _, state := range []string{StateLoggingIn, StateCreatingEvent, StateConfiguringEvent, StateCompleted} {
			require.NoError(t, machine.Transition(state))
		}
	})

	t.Run("every active state can fail", func(t *testing.T) {
		path := []string{
			StateLoggingIn,
			StateCreatingEvent,
			StateConfiguringEvent,
			StateCreatingRounds,
			StateConfiguringRounds,
		}
		for i := range path {
			machine := newMachine(t)
			for _, state := range path[:i] {
				require.NoError(t, machine.Transition(state))
			}
			require.NoError(t, machine.Transition(StateFailed), "fail from %s", machine.GetState())
		}
	})

	t.Run("invalid transitions", func(t *testing.T) {
		machine := newMachine(t)
		require.Error(t, machine.Transition(StateCreatingRounds))
		assert.Equal(t, StateCreated, machine.GetState())

		require.NoError(t, machine.Transition(StateFailed))
		require.Error(t, machine.Transition(StateLoggingIn))
		assert.Equal(t, StateFailed, machine.GetState())
	})
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTerminal(StateCompleted))
	assert.True(t, IsTerminal(StateFailed))
	assert.False(t, IsTerminal(StateCreated))
	assert.False(t, IsTerminal(StateConfiguringRounds))
	assert.False(t, IsTerminal("unknown"))
}
