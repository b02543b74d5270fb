// Package input turns raw device state into per-frame control input:
// one continuous move axis plus discrete press/release edges per action.
package input

import (
	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/domain/event"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionPrimary
	ActionSecondary
	ActionSpecial
	ActionInteract
	ActionSelfDestruct
	ActionCount // Must be last - used for array sizing
)

// String returns the string representation of the action
func (a ActionID) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPrimary:
		return "Primary"
	case ActionSecondary:
		return "Secondary"
	case ActionSpecial:
		return "Special"
	case ActionInteract:
		return "Interact"
	case ActionSelfDestruct:
		return "SelfDestruct"
	default:
		return "Unknown"
	}
}

// ParseAction converts an action name back into its ActionID
func ParseAction(name string) (ActionID, bool) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		if id.String() == name {
			return id, true
		}
	}
	return ActionNone, false
}

// SlotAction maps an ability slot to its button
func SlotAction(slot entity.AbilitySlot) ActionID {
	switch slot {
	case entity.SlotPrimary:
		return ActionPrimary
	case entity.SlotSecondary:
		return ActionSecondary
	case entity.SlotSpecial:
		return ActionSpecial
	default:
		return ActionNone
	}
}

// Frame is one frame of input: the move axis and the edges that fired
type Frame struct {
	Move     entity.Vec2
	Pressed  []ActionID
	Released []ActionID
}

// Hub holds the input of the current frame and fans edges out to listeners.
// Edges are delivered synchronously from Press and Release.
type Hub struct {
	enabled   bool
	move      entity.Vec2
	held      [ActionCount]bool
	triggered [ActionCount]bool
	started   [ActionCount]event.Signal[ActionID]
	canceled  [ActionCount]event.Signal[ActionID]
}

// NewHub creates an enabled hub with no input
func NewHub() *Hub {
	return &Hub{enabled: true}
}

// Started returns the signal fired when the action is pressed
func (h *Hub) Started(id ActionID) *event.Signal[ActionID] {
	return &h.started[clampAction(id)]
}

// Canceled returns the signal fired when the action is released
func (h *Hub) Canceled(id ActionID) *event.Signal[ActionID] {
	return &h.canceled[clampAction(id)]
}

// BeginFrame starts a new frame with the given move axis.
// Edges from the previous frame stop counting as triggered.
func (h *Hub) BeginFrame(move entity.Vec2) {
	h.triggered = [ActionCount]bool{}
	if h.enabled {
		h.move = move
	}
}

// Apply runs a whole frame: presses are delivered before releases
func (h *Hub) Apply(f Frame) {
	h.BeginFrame(f.Move)
	for _, id := range f.Pressed {
		h.Press(id)
	}
	for _, id := range f.Released {
		h.Release(id)
	}
}

// Press delivers a press edge. Repeated presses without a release are ignored.
func (h *Hub) Press(id ActionID) {
	if !h.enabled || !validAction(id) || h.held[id] {
		return
	}
	h.held[id] = true
	h.triggered[id] = true
	h.started[id].Emit(id)
}

// Release delivers a release edge for a held action
func (h *Hub) Release(id ActionID) {
	if !validAction(id) || !h.held[id] {
		return
	}
	h.held[id] = false
	h.canceled[id].Emit(id)
}

// Move returns the move axis of the current frame
func (h *Hub) Move() entity.Vec2 {
	return h.move
}

// Triggered reports whether the action was pressed this frame
func (h *Hub) Triggered(id ActionID) bool {
	return validAction(id) && h.triggered[id]
}

// Held reports whether the action is currently held
func (h *Hub) Held(id ActionID) bool {
	return validAction(id) && h.held[id]
}

// Enabled reports whether player input is accepted
func (h *Hub) Enabled() bool {
	return h.enabled
}

// SetEnabled toggles player input. Disabling cancels held actions
// and zeroes the move axis.
func (h *Hub) SetEnabled(enabled bool) {
	if h.enabled == enabled {
		return
	}
	if !enabled {
		for id := ActionID(1); id < ActionCount; id++ {
			h.Release(id)
		}
		h.move = entity.Vec2{}
		h.triggered = [ActionCount]bool{}
	}
	h.enabled = enabled
}

func validAction(id ActionID) bool {
	return id > ActionNone && id < ActionCount
}

func clampAction(id ActionID) ActionID {
	if !validAction(id) {
		return ActionNone
	}
	return id
}
