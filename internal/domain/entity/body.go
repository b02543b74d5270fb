package entity

import "github.com/younwookim/charctl/internal/domain/event"

// PositionScale is the internal position scale factor.
// 1 pixel = 100 internal units. This provides 0.01 pixel precision.
const PositionScale = 100

// PixelsPerUnit converts pixels to world units (one tile = one unit).
const PixelsPerUnit = 16

// Body represents the physical body of an entity.
// Position is stored at 100x scale, Y down, in pixels.
// Velocity is stored as float in 100x scale units per second, Y down.
type Body struct {
	X, Y   int
	VX, VY float64

	OnGround    bool
	OnCeiling   bool
	OnWallLeft  bool
	OnWallRight bool
	FacingRight bool
	WasOnGround bool
}

// PixelX returns the pixel X position (internal X / PositionScale)
func (b *Body) PixelX() int {
	return b.X / PositionScale
}

// PixelY returns the pixel Y position (internal Y / PositionScale)
func (b *Body) PixelY() int {
	return b.Y / PositionScale
}

// SetPixelPos sets the position from pixel coordinates (converts to 100x scale)
func (b *Body) SetPixelPos(x, y int) {
	b.X = x * PositionScale
	b.Y = y * PositionScale
}

// ApplyVelocity applies velocity to position, returning integer units to move.
func (b *Body) ApplyVelocity(dt float64) (dx, dy int) {
	dx = int(b.VX * dt)
	dy = int(b.VY * dt)
	return dx, dy
}

// TrapezoidHitbox represents a hitbox approximated by three rects
// Head is narrow (corner correction), Feet is wide (coyote time)
type TrapezoidHitbox struct {
	Head HitboxRect
	Body HitboxRect
	Feet HitboxRect
}

// HitboxRect represents a single hitbox rectangle in pixels
type HitboxRect struct {
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// GetWorldRect returns the hitbox rect in world coordinates
func (hr HitboxRect) GetWorldRect(bodyX, bodyY int, facingRight bool, spriteWidth int) (x, y, w, h int) {
	offsetX := hr.OffsetX
	if !facingRight {
		offsetX = spriteWidth - hr.OffsetX - hr.Width
	}
	return bodyX + offsetX, bodyY + hr.OffsetY, hr.Width, hr.Height
}

// Character is the controllable actor of the sandbox
type Character struct {
	Body
	Hitbox TrapezoidHitbox
	Width  int // sprite width in pixels
	Height int // sprite height in pixels

	Health    int
	MaxHealth int

	// Timers (seconds)
	SinceGrounded   float64
	DropThroughTime float64
	DashTimer       float64
	DashCooldown    float64
	IframeTimer     float64
	StunTimer       float64

	// State
	Dashing  bool
	CanDash  bool
	Tumbling bool
	Dead     bool
	Vehicle  string // empty when on foot

	// Traversal names the module holding the character (zipline, hook).
	// Empty while physics moves it.
	Traversal string
	// JumpAction is the action of the last jump, for presentation
	JumpAction string

	InputDir  Vec2
	Abilities [SlotCount]Ability
	Events    event.ActorEvents
}

// NewCharacter creates a new character with default values.
// x, y are pixel coordinates which are internally stored at 100x scale.
func NewCharacter(x, y int, hitbox TrapezoidHitbox, maxHealth int) *Character {
	return &Character{
		Body: Body{
			X:           x * PositionScale,
			Y:           y * PositionScale,
			FacingRight: true,
		},
		Hitbox:    hitbox,
		Width:     16,
		Height:    24,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		CanDash:   true,
	}
}

// IsInvincible returns true if character is currently invincible
func (c *Character) IsInvincible() bool {
	return c.IframeTimer > 0 || c.Dashing
}

// IsStunned returns true if character is currently stunned
func (c *Character) IsStunned() bool {
	return c.StunTimer > 0
}

// IsFree reports whether the character fully responds to input
func (c *Character) IsFree() bool {
	return !c.Dead && !c.IsStunned() && !c.Dashing
}

// CanAct reports whether the character may act at all
func (c *Character) CanAct() bool {
	return !c.Dead && !c.IsStunned()
}

// MiddlePixel returns the center of the sprite in pixels, Y down
func (c *Character) MiddlePixel() (float64, float64) {
	return float64(c.X)/PositionScale + float64(c.Width)/2, float64(c.Y)/PositionScale + float64(c.Height)/2
}

// TakeHit applies damage, stun and tumble, then notifies listeners.
// Returns false if the hit was ignored.
func (c *Character) TakeHit(hit event.Hit, iframes float64) bool {
	if c.Dead || c.IsInvincible() {
		return false
	}

	c.Health -= hit.Damage
	c.StunTimer = hit.Stun
	c.IframeTimer = iframes
	if hit.Knockback {
		c.Tumbling = true
	}
	c.Events.Hit.Emit(hit)

	if c.Health <= 0 {
		cause := hit.Cause
		if cause == event.CauseUnknown {
			cause = event.CauseDamage
		}
		c.Kill(cause)
	}
	return true
}

// Kill marks the character dead and emits Death once
func (c *Character) Kill(cause event.Cause) {
	if c.Dead {
		return
	}
	c.Dead = true
	c.Health = 0
	c.Events.Death.Emit(event.Death{Cause: cause})
}

// EnterVehicle boards the named vehicle
func (c *Character) EnterVehicle(name string) {
	if c.Vehicle != "" || c.Dead {
		return
	}
	c.Vehicle = name
	c.Events.VehicleEnter.Emit(event.Vehicle{Name: name})
}

// ExitVehicle leaves the current vehicle, if any
func (c *Character) ExitVehicle() {
	if c.Vehicle == "" {
		return
	}
	name := c.Vehicle
	c.Vehicle = ""
	c.Events.VehicleExit.Emit(event.Vehicle{Name: name})
}
