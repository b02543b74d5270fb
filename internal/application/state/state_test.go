package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateDead, "Dead"},
		{StateReplayDone, "ReplayDone"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameState_Flags(t *testing.T) {
	tests := []struct {
		state        GameState
		acceptsInput bool
		simulates    bool
	}{
		{StatePlaying, true, true},
		{StatePaused, false, false},
		{StateDead, false, true},
		{StateReplayDone, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.acceptsInput, tt.state.AcceptsInput())
			assert.Equal(t, tt.simulates, tt.state.Simulates())
		})
	}
}
