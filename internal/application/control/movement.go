package control

import (
	"math"

	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/infrastructure/config"
)

// Fixed tuning of the movement state machine
const (
	// DirectionThreshold is the axis magnitude that counts as a deliberate direction
	DirectionThreshold = 0.5
	// ShortHopMinVelocity is the rising speed above which a released jump is cut
	ShortHopMinVelocity = 1.0
	// ShortHopCut multiplies the rising speed when a jump is cut
	ShortHopCut = 0.6
	// FastFallSpeed is the terminal speed of a fast fall (negative is down)
	FastFallSpeed = -35.0
	// FastFallRate is how fast a fast fall approaches FastFallSpeed, per second
	FastFallRate = 100.0
	// JumpLeeway is the coyote time after leaving the ground, in seconds
	JumpLeeway = 0.15
)

// Movement is the jump state machine: short hop, fast fall, coyote jump,
// double jump, platform drop and quick recover.
type Movement struct {
	kit           config.KitConfig
	ports         *Ports
	phase         JumpPhase
	canDoubleJump bool
}

// NewMovement creates a movement state machine over the given ports
func NewMovement(kit config.KitConfig, ports *Ports) *Movement {
	if ports == nil {
		ports = &Ports{}
	}
	return &Movement{
		kit:   kit,
		ports: ports,
	}
}

// SetKit replaces the movement kit
func (m *Movement) SetKit(kit config.KitConfig) {
	m.kit = kit
}

// Phase returns the current jump phase
func (m *Movement) Phase() JumpPhase {
	return m.phase
}

// CanDoubleJump reports whether a double jump is available
func (m *Movement) CanDoubleJump() bool {
	return m.canDoubleJump
}

// Reset returns to the activation state
func (m *Movement) Reset() {
	m.phase = m.phase.Next(EventReset)
	m.canDoubleJump = false
}

// Tick applies the continuous part of the input for one frame
func (m *Movement) Tick(move entity.Vec2, dt float64) {
	loco := m.ports.Locomotion
	if loco != nil && loco.Grounded() {
		m.canDoubleJump = true
	}

	actor := m.ports.Actor
	if actor == nil || !actor.IsFree() {
		return
	}

	if loco != nil {
		m.shortHop(loco)
		m.fastFall(loco, move, dt)
	}

	if facing := m.ports.Facing; facing != nil && math.Abs(move.X) > DirectionThreshold {
		facing.SetFacing(move.X)
	}
}

func (m *Movement) shortHop(loco Locomotion) {
	if m.phase != PhaseCanceled {
		return
	}
	grav := loco.VelocityGravity()
	if grav.Y <= ShortHopMinVelocity {
		return
	}
	grav.Y *= ShortHopCut
	loco.SetVelocityGravity(grav)
	m.phase = m.phase.Next(EventCut)
}

func (m *Movement) fastFall(loco Locomotion, move entity.Vec2, dt float64) {
	grav := loco.VelocityGravity()
	if grav.Y >= 0 || move.Y >= 0 || grav.Y <= FastFallSpeed {
		return
	}
	grav.Y = moveTowards(grav.Y, FastFallSpeed, FastFallRate*dt)
	loco.SetVelocityGravity(grav)
}

// OnJumpPress handles the jump button going down
func (m *Movement) OnJumpPress() {
	actor := m.ports.Actor
	loco := m.ports.Locomotion
	if actor == nil || loco == nil || !actor.IsFree() {
		return
	}

	if loco.Tumbling() {
		loco.QuickRecover(m.kit.QuickRecoverJumpPercent, m.kit.QuickRecoverSpeedPercent)
		return
	}

	dir := actor.InputDir()
	switch {
	case dir.Y < -DirectionThreshold:
		loco.DropThroughPlatform()

	case loco.Grounded() || loco.TimeSinceGrounded() < JumpLeeway:
		loco.Jump()
		m.phase = m.phase.Next(EventJumped)

	case m.canDoubleJump:
		// Redirect only when changing direction; otherwise keep momentum.
		// Sign(0) is 0, so a standstill redirects toward either input side.
		vel := loco.VelocityMovement()
		if math.Abs(dir.X) > DirectionThreshold && entity.Sign(dir.X) != entity.Sign(vel.X) {
			vel.X = dir.X * loco.Speed()
			loco.SetVelocityMovement(vel)
		}

		loco.JumpWith(m.kit.DoubleJumpPercent, m.kit.DoubleJumpAction)
		m.canDoubleJump = false
		m.phase = m.phase.Next(EventJumped)
	}
}

// OnJumpRelease handles the jump button going up
func (m *Movement) OnJumpRelease() {
	m.phase = m.phase.Next(EventReleased)
}

// OnHit reacts to the actor being hit. disablesAction reports whether the
// actor was left unable to act.
func (m *Movement) OnHit(disablesAction bool) {
	if m.kit.HitstunRemovesDoubleJump && disablesAction {
		m.canDoubleJump = false
	}
}

// OnVehicleEnter forgets any held jump
func (m *Movement) OnVehicleEnter() {
	m.phase = m.phase.Next(EventReset)
}

// OnVehicleExit restores the double jump if the kit allows it
func (m *Movement) OnVehicleExit() {
	if m.kit.ExitingVehicleRestoresDoubleJump {
		m.canDoubleJump = true
	}
}

// RefreshSmallHop allows a new short hop
func (m *Movement) RefreshSmallHop() {
	m.phase = m.phase.Next(EventReset)
}

// RefreshDoubleJump makes the double jump available again
func (m *Movement) RefreshDoubleJump() {
	m.canDoubleJump = true
}

func moveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}
