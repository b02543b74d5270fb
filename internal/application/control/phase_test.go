package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJumpPhase_Next(t *testing.T) {
	tests := []struct {
		name string
		from JumpPhase
		ev   PhaseEvent
		want JumpPhase
	}{
		{"jump from waiting", PhaseWaiting, EventJumped, PhaseStarted},
		{"jump from canceled", PhaseCanceled, EventJumped, PhaseStarted},
		{"release while started", PhaseStarted, EventReleased, PhaseCanceled},
		{"release while waiting is ignored", PhaseWaiting, EventReleased, PhaseWaiting},
		{"release while canceled is ignored", PhaseCanceled, EventReleased, PhaseCanceled},
		{"cut after release", PhaseCanceled, EventCut, PhaseWaiting},
		{"cut while started is ignored", PhaseStarted, EventCut, PhaseStarted},
		{"reset from started", PhaseStarted, EventReset, PhaseWaiting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Next(tt.ev))
		})
	}
}

func TestJumpPhase_String(t *testing.T) {
	assert.Equal(t, "Waiting", PhaseWaiting.String())
	assert.Equal(t, "Started", PhaseStarted.String())
	assert.Equal(t, "Canceled", PhaseCanceled.String())
	assert.Equal(t, "Unknown", JumpPhase(7).String())
}
