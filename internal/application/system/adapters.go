package system

import (
	"github.com/younwookim/charctl/internal/application/control"
	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/domain/event"
	"github.com/younwookim/charctl/internal/infrastructure/config"
)

// Unit conversions between the stage (pixels, Y down, 100x scale) and the
// control ports (world units, Y up).

// VelocityToWorld converts a scaled pixel velocity to world units per second
func VelocityToWorld(v float64) float64 {
	return v / (entity.PositionScale * entity.PixelsPerUnit)
}

// VelocityFromWorld converts world units per second to a scaled pixel velocity
func VelocityFromWorld(v float64) float64 {
	return v * entity.PositionScale * entity.PixelsPerUnit
}

// PointToWorld converts a pixel position to a world position
func PointToWorld(px, py float64) entity.Vec2 {
	return entity.Vec2{X: px / entity.PixelsPerUnit, Y: -py / entity.PixelsPerUnit}
}

// LocomotionAdapter exposes the character's physics as control.Locomotion
type LocomotionAdapter struct {
	c       *entity.Character
	cfg     *config.ControlConfig
	physics *PhysicsSystem
}

// NewLocomotionAdapter creates the locomotion port for c
func NewLocomotionAdapter(c *entity.Character, cfg *config.ControlConfig, physics *PhysicsSystem) *LocomotionAdapter {
	return &LocomotionAdapter{c: c, cfg: cfg, physics: physics}
}

// SetConfig swaps in a reloaded config
func (a *LocomotionAdapter) SetConfig(cfg *config.ControlConfig) {
	a.cfg = cfg
}

// Grounded is also true while hanging from a zipline or hook
func (a *LocomotionAdapter) Grounded() bool {
	return a.c.OnGround || a.c.Traversal != ""
}

func (a *LocomotionAdapter) VelocityGravity() entity.Vec2 {
	return entity.Vec2{Y: -VelocityToWorld(a.c.VY)}
}

func (a *LocomotionAdapter) SetVelocityGravity(v entity.Vec2) {
	a.c.VY = -VelocityFromWorld(v.Y)
}

func (a *LocomotionAdapter) VelocityMovement() entity.Vec2 {
	return entity.Vec2{X: VelocityToWorld(a.c.VX)}
}

func (a *LocomotionAdapter) SetVelocityMovement(v entity.Vec2) {
	a.c.VX = VelocityFromWorld(v.X)
}

// Jump performs a full jump
func (a *LocomotionAdapter) Jump() {
	launch(a.c, a.cfg, 1, "")
}

// JumpWith jumps at powerPercent of the full force
func (a *LocomotionAdapter) JumpWith(powerPercent float64, action string) {
	launch(a.c, a.cfg, powerPercent, action)
}

// DropThroughPlatform falls through the one-way platform underfoot
func (a *LocomotionAdapter) DropThroughPlatform() {
	if !a.c.OnGround || a.physics == nil || !a.physics.StandingOnPlatform(a.c) {
		return
	}
	a.c.DropThroughTime = a.cfg.Jump.DropThroughTime
	a.c.OnGround = false
}

// QuickRecover ends a tumble with a small hop and part of the run speed
// in the held direction.
func (a *LocomotionAdapter) QuickRecover(jumpPercent, speedPercent float64) {
	a.c.Tumbling = false
	launch(a.c, a.cfg, jumpPercent, "recover")

	dir := entity.Sign(a.c.InputDir.X)
	if dir == 0 {
		dir = facingSign(a.c)
	}
	a.c.VX = dir * a.cfg.Movement.MaxSpeed * speedPercent * entity.PositionScale
}

func (a *LocomotionAdapter) TimeSinceGrounded() float64 {
	return a.c.SinceGrounded
}

// Speed returns the top run speed in world units per second
func (a *LocomotionAdapter) Speed() float64 {
	return a.cfg.Movement.MaxSpeed / entity.PixelsPerUnit
}

func (a *LocomotionAdapter) Tumbling() bool {
	return a.c.Tumbling
}

// FacingAdapter exposes the character's facing as control.Facing
type FacingAdapter struct {
	c *entity.Character
}

// NewFacingAdapter creates the facing port for c
func NewFacingAdapter(c *entity.Character) *FacingAdapter {
	return &FacingAdapter{c: c}
}

func (a *FacingAdapter) SetFacing(x float64) {
	a.c.FacingRight = entity.DirectionOf(x, a.Facing()) == entity.DirRight
}

func (a *FacingAdapter) Facing() entity.Direction {
	if a.c.FacingRight {
		return entity.DirRight
	}
	return entity.DirLeft
}

// ActorAdapter exposes the character as control.Actor, control.AbilitySource
// and control.Killable.
type ActorAdapter struct {
	c *entity.Character
}

// NewActorAdapter creates the actor port for c
func NewActorAdapter(c *entity.Character) *ActorAdapter {
	return &ActorAdapter{c: c}
}

// Character returns the adapted character
func (a *ActorAdapter) Character() *entity.Character {
	return a.c
}

func (a *ActorAdapter) IsFree() bool {
	return a.c.IsFree()
}

func (a *ActorAdapter) CanAct() bool {
	return a.c.CanAct()
}

func (a *ActorAdapter) InputDir() entity.Vec2 {
	return a.c.InputDir
}

func (a *ActorAdapter) SetInputDir(dir entity.Vec2) {
	a.c.InputDir = dir
}

func (a *ActorAdapter) MiddlePoint() entity.Vec2 {
	return PointToWorld(a.c.MiddlePixel())
}

func (a *ActorAdapter) Events() *event.ActorEvents {
	return &a.c.Events
}

func (a *ActorAdapter) Kill(cause event.Cause) {
	a.c.Kill(cause)
}

// Ability returns the ability bound to slot, or nil
func (a *ActorAdapter) Ability(slot entity.AbilitySlot) entity.Ability {
	if slot < 0 || slot >= entity.SlotCount {
		return nil
	}
	return a.c.Abilities[slot]
}

// Bind puts ability in slot. Nil unbinds it.
func (a *ActorAdapter) Bind(slot entity.AbilitySlot, ability entity.Ability) {
	if slot < 0 || slot >= entity.SlotCount {
		return
	}
	a.c.Abilities[slot] = ability
}

// EnterVehicle boards the named vehicle
func (a *ActorAdapter) EnterVehicle(name string) {
	a.c.EnterVehicle(name)
}

// ExitVehicle leaves the current vehicle
func (a *ActorAdapter) ExitVehicle() {
	a.c.ExitVehicle()
}

// Vehicle returns the current vehicle, empty on foot
func (a *ActorAdapter) Vehicle() string {
	return a.c.Vehicle
}

// Heal restores health up to the maximum
func (a *ActorAdapter) Heal(amount int) {
	if a.c.Dead {
		return
	}
	a.c.Health = min(a.c.Health+amount, a.c.MaxHealth)
}

var (
	_ control.Locomotion    = (*LocomotionAdapter)(nil)
	_ control.Facing        = (*FacingAdapter)(nil)
	_ control.Actor         = (*ActorAdapter)(nil)
	_ control.AbilitySource = (*ActorAdapter)(nil)
	_ control.Killable      = (*ActorAdapter)(nil)
	_ control.LedgeGate     = (*LedgeModule)(nil)
	_ control.ZiplineGate   = (*ZiplineModule)(nil)
	_ control.HookGate      = (*HookModule)(nil)
)
