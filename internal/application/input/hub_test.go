package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/charctl/internal/domain/entity"
)

func TestHub_PressRelease(t *testing.T) {
	h := NewHub()
	var edges []string
	h.Started(ActionJump).Connect(func(id ActionID) { edges = append(edges, "start "+id.String()) })
	h.Canceled(ActionJump).Connect(func(id ActionID) { edges = append(edges, "cancel "+id.String()) })

	h.BeginFrame(entity.Vec2{})
	h.Press(ActionJump)
	h.Press(ActionJump)

	assert.True(t, h.Triggered(ActionJump))
	assert.True(t, h.Held(ActionJump))

	h.BeginFrame(entity.Vec2{})
	assert.False(t, h.Triggered(ActionJump), "edge only counts for one frame")
	assert.True(t, h.Held(ActionJump))

	h.Release(ActionJump)
	h.Release(ActionJump)

	assert.Equal(t, []string{"start Jump", "cancel Jump"}, edges)
	assert.False(t, h.Held(ActionJump))
}

func TestHub_Apply(t *testing.T) {
	h := NewHub()
	var order []string
	h.Started(ActionInteract).Connect(func(ActionID) { order = append(order, "press") })
	h.Canceled(ActionInteract).Connect(func(ActionID) { order = append(order, "release") })

	h.Apply(Frame{
		Move:     entity.Vec2{X: 1, Y: -1},
		Pressed:  []ActionID{ActionInteract},
		Released: []ActionID{ActionInteract},
	})

	assert.Equal(t, []string{"press", "release"}, order)
	assert.True(t, h.Triggered(ActionInteract))
	assert.Equal(t, entity.Vec2{X: 1, Y: -1}, h.Move())
}

func TestHub_Disabled(t *testing.T) {
	h := NewHub()
	releases := 0
	h.Canceled(ActionPrimary).Connect(func(ActionID) { releases++ })

	h.BeginFrame(entity.Vec2{X: 1})
	h.Press(ActionPrimary)
	h.SetEnabled(false)

	require.False(t, h.Enabled())
	assert.Equal(t, 1, releases, "disabling cancels held actions")
	assert.Equal(t, entity.Vec2{}, h.Move())

	h.BeginFrame(entity.Vec2{X: 1})
	h.Press(ActionPrimary)
	assert.False(t, h.Triggered(ActionPrimary))
	assert.Equal(t, entity.Vec2{}, h.Move())

	h.SetEnabled(true)
	h.BeginFrame(entity.Vec2{X: -1})
	assert.Equal(t, entity.Vec2{X: -1}, h.Move())
}

func TestHub_InvalidActions(t *testing.T) {
	h := NewHub()
	fired := 0
	h.Started(ActionCount).Connect(func(ActionID) { fired++ })

	assert.NotPanics(t, func() {
		h.Press(ActionNone)
		h.Press(ActionCount)
		h.Release(ActionID(-3))
	})
	assert.False(t, h.Triggered(ActionCount))
	assert.Equal(t, 0, fired)
}

func TestSlotAction(t *testing.T) {
	assert.Equal(t, ActionPrimary, SlotAction(entity.SlotPrimary))
	assert.Equal(t, ActionSecondary, SlotAction(entity.SlotSecondary))
	assert.Equal(t, ActionSpecial, SlotAction(entity.SlotSpecial))
	assert.Equal(t, ActionNone, SlotAction(entity.SlotCount))
}

func TestActionID_String(t *testing.T) {
	tests := []struct {
		id       ActionID
		expected string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionInteract, "Interact"},
		{ActionSelfDestruct, "SelfDestruct"},
		{ActionCount, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.id.String())
		})
	}
}

func TestParseAction(t *testing.T) {
	for id := ActionJump; id < ActionCount; id++ {
		got, ok := ParseAction(id.String())
		require.True(t, ok, id.String())
		assert.Equal(t, id, got)
	}

	_, ok := ParseAction("None")
	assert.False(t, ok)
	_, ok = ParseAction("Fly")
	assert.False(t, ok)
}
