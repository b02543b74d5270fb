package control

import (
	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/domain/event"
)

type fakeLocomotion struct {
	grounded      bool
	gravity       entity.Vec2
	movement      entity.Vec2
	sinceGrounded float64
	speed         float64
	tumbling      bool

	jumps        int
	jumpWith     []float64
	jumpActions  []string
	drops        int
	recovers     int
	recoverJump  float64
	recoverSpeed float64
}

func newFakeLocomotion() *fakeLocomotion {
	return &fakeLocomotion{speed: 8, sinceGrounded: 1}
}

func (f *fakeLocomotion) Grounded() bool                    { return f.grounded }
func (f *fakeLocomotion) VelocityGravity() entity.Vec2      { return f.gravity }
func (f *fakeLocomotion) SetVelocityGravity(v entity.Vec2)  { f.gravity = v }
func (f *fakeLocomotion) VelocityMovement() entity.Vec2     { return f.movement }
func (f *fakeLocomotion) SetVelocityMovement(v entity.Vec2) { f.movement = v }
func (f *fakeLocomotion) Jump()                             { f.jumps++ }
func (f *fakeLocomotion) DropThroughPlatform()              { f.drops++ }
func (f *fakeLocomotion) TimeSinceGrounded() float64        { return f.sinceGrounded }
func (f *fakeLocomotion) Speed() float64                    { return f.speed }
func (f *fakeLocomotion) Tumbling() bool                    { return f.tumbling }

func (f *fakeLocomotion) JumpWith(powerPercent float64, action string) {
	f.jumpWith = append(f.jumpWith, powerPercent)
	f.jumpActions = append(f.jumpActions, action)
}

func (f *fakeLocomotion) QuickRecover(jumpPercent, speedPercent float64) {
	f.recovers++
	f.recoverJump = jumpPercent
	f.recoverSpeed = speedPercent
	f.tumbling = false
}

type fakeFacing struct {
	dir   entity.Direction
	calls int
}

func (f *fakeFacing) SetFacing(x float64) {
	f.calls++
	f.dir = entity.DirectionOf(x, f.dir)
}

func (f *fakeFacing) Facing() entity.Direction { return f.dir }

type fakeActor struct {
	free     bool
	canAct   bool
	dir      entity.Vec2
	middle   entity.Vec2
	events   event.ActorEvents
	killedBy []event.Cause
}

func newFakeActor() *fakeActor {
	return &fakeActor{free: true, canAct: true}
}

func (f *fakeActor) IsFree() bool                { return f.free }
func (f *fakeActor) CanAct() bool                { return f.canAct }
func (f *fakeActor) InputDir() entity.Vec2       { return f.dir }
func (f *fakeActor) SetInputDir(dir entity.Vec2) { f.dir = dir }
func (f *fakeActor) MiddlePoint() entity.Vec2    { return f.middle }
func (f *fakeActor) Events() *event.ActorEvents  { return &f.events }
func (f *fakeActor) Kill(cause event.Cause)      { f.killedBy = append(f.killedBy, cause) }

type fakeAbility struct {
	presses  int
	releases int
}

func (f *fakeAbility) Press()   { f.presses++ }
func (f *fakeAbility) Release() { f.releases++ }

type fakeAbilities [entity.SlotCount]entity.Ability

func (f *fakeAbilities) Ability(slot entity.AbilitySlot) entity.Ability {
	return f[slot]
}

type fakeInteractable struct {
	name     string
	pos      entity.Vec2
	eligible bool
	active   bool
	marks    int
	uses     int
	stops    int
	death    event.Signal[event.Death]
}

func newFakeInteractable(name string, x float64, eligible bool) *fakeInteractable {
	return &fakeInteractable{name: name, pos: entity.Vec2{X: x}, eligible: eligible}
}

func (f *fakeInteractable) MiddlePosition() entity.Vec2 { return f.pos }
func (f *fakeInteractable) CanInteractWith() bool       { return f.eligible }
func (f *fakeInteractable) MarkAsActive()               { f.active = true; f.marks++ }
func (f *fakeInteractable) MarkAsInactive()             { f.active = false; f.marks++ }
func (f *fakeInteractable) OnUse(Actor)                 { f.uses++ }
func (f *fakeInteractable) OnStopUse(Actor)             { f.stops++ }

// fakeMortal is an interactable that can die
type fakeMortal struct {
	*fakeInteractable
}

func (f fakeMortal) DeathSignal() *event.Signal[event.Death] { return &f.death }

type fakeGate struct {
	ledge, zipline, hook GateFunc
	ledgeSet             int
}

func (f *fakeGate) SetShouldGetOnLedge(fn GateFunc)  { f.ledge = fn; f.ledgeSet++ }
func (f *fakeGate) SetShouldJumpOff(fn GateFunc)     { f.zipline = fn }
func (f *fakeGate) SetShouldJumpOffHook(fn GateFunc) { f.hook = fn }
