package control

import (
	"github.com/younwookim/charctl/internal/application/input"
	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/domain/event"
)

// Locomotion owns the physics of the controlled body. Velocities are in
// world units per second with Y up.
type Locomotion interface {
	Grounded() bool
	VelocityGravity() entity.Vec2
	SetVelocityGravity(v entity.Vec2)
	VelocityMovement() entity.Vec2
	SetVelocityMovement(v entity.Vec2)
	Jump()
	// JumpWith jumps at powerPercent of full force. An empty action keeps
	// the default jump action.
	JumpWith(powerPercent float64, action string)
	DropThroughPlatform()
	QuickRecover(jumpPercent, speedPercent float64)
	// TimeSinceGrounded returns seconds since the body last touched ground
	TimeSinceGrounded() float64
	Speed() float64
	Tumbling() bool
}

// Facing flips the body left or right
type Facing interface {
	SetFacing(x float64)
	Facing() entity.Direction
}

// Actor is the character being controlled
type Actor interface {
	IsFree() bool
	CanAct() bool
	InputDir() entity.Vec2
	SetInputDir(dir entity.Vec2)
	MiddlePoint() entity.Vec2
	Events() *event.ActorEvents
}

// AbilitySource resolves the ability bound to a slot, or nil
type AbilitySource interface {
	Ability(slot entity.AbilitySlot) entity.Ability
}

// Killable is implemented by actors that support the development kill switch
type Killable interface {
	Kill(cause event.Cause)
}

// Interactable is something the actor can use while standing near it.
// Implementations must be comparable; pointer receivers are expected.
type Interactable interface {
	MiddlePosition() entity.Vec2
	CanInteractWith() bool
	MarkAsActive()
	MarkAsInactive()
	OnUse(actor Actor)
	OnStopUse(actor Actor)
}

// Mortal is implemented by interactables that can die
type Mortal interface {
	DeathSignal() *event.Signal[event.Death]
}

// GateFunc answers a traversal module's question about the actor
type GateFunc func(actor Actor) bool

// LedgeGate decides when the actor climbs onto a ledge
type LedgeGate interface {
	SetShouldGetOnLedge(fn GateFunc)
}

// ZiplineGate decides when the actor lets go of a zipline
type ZiplineGate interface {
	SetShouldJumpOff(fn GateFunc)
}

// HookGate decides when the actor lets go of a hook
type HookGate interface {
	SetShouldJumpOffHook(fn GateFunc)
}

// Input is the per-frame control input
type Input interface {
	Enabled() bool
	Move() entity.Vec2
	Triggered(id input.ActionID) bool
	Started(id input.ActionID) *event.Signal[input.ActionID]
	Canceled(id input.ActionID) *event.Signal[input.ActionID]
}

// Ports bundles the collaborators of the controller.
// Any field may be left nil; operations that need it become no-ops.
type Ports struct {
	Actor      Actor
	Locomotion Locomotion
	Facing     Facing
	Abilities  AbilitySource
	Ledge      LedgeGate
	Zipline    ZiplineGate
	Hook       HookGate
}
