package system

import (
	"math"

	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/infrastructure/config"
)

// vehicleSpeedBoost scales the top speed while riding a vehicle
const vehicleSpeedBoost = 1.5

// PhysicsSystem moves the character through the tile stage.
// Positions are 100x scaled, collisions are resolved per pixel.
type PhysicsSystem struct {
	config *config.ControlConfig
	stage  *entity.Stage
	ledge  *LedgeModule
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.ControlConfig, stage *entity.Stage) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		stage:  stage,
	}
}

// SetConfig swaps in a reloaded config
func (s *PhysicsSystem) SetConfig(cfg *config.ControlConfig) {
	s.config = cfg
}

// SetLedge attaches the module consulted before a ledge assist
func (s *PhysicsSystem) SetLedge(m *LedgeModule) {
	s.ledge = m
}

// Stage returns the stage being simulated
func (s *PhysicsSystem) Stage() *entity.Stage {
	return s.stage
}

// Update applies physics to the character
func (s *PhysicsSystem) Update(c *entity.Character, dt float64) {
	c.WasOnGround = c.OnGround
	if c.DropThroughTime > 0 {
		c.DropThroughTime -= dt
	}

	// Traversal modules own the position while attached
	if c.Traversal != "" {
		c.OnGround = false
		c.SinceGrounded += dt
		return
	}

	s.applyControl(c, dt)
	s.applyGravity(c, dt)

	dx, dy := c.ApplyVelocity(dt)
	s.applyMovement(c, dx, dy)

	if c.OnGround {
		c.SinceGrounded = 0
		c.CanDash = true
		if c.Tumbling && !c.IsStunned() {
			c.Tumbling = false
		}
	} else {
		c.SinceGrounded += dt
	}
}

// applyControl steers the horizontal velocity toward the input direction
func (s *PhysicsSystem) applyControl(c *entity.Character, dt float64) {
	if c.Dashing {
		return
	}
	if c.IsStunned() {
		c.VX *= 0.9
		return
	}

	mv := s.config.Movement
	target := 0.0
	if c.CanAct() && !c.Tumbling {
		target = clampUnit(c.InputDir.X) * mv.MaxSpeed * entity.PositionScale
		if c.Vehicle != "" {
			target *= vehicleSpeedBoost
		}
	}

	rate := mv.Acceleration
	if target == 0 {
		rate = mv.Deceleration
	}
	if !c.OnGround {
		rate *= mv.AirControl
	}
	c.VX = approach(c.VX, target, rate*entity.PositionScale*dt)
}

// applyGravity applies gravity acceleration to the character
func (s *PhysicsSystem) applyGravity(c *entity.Character, dt float64) {
	if c.Dashing {
		return
	}

	c.VY += s.config.Physics.Gravity * entity.PositionScale * dt

	maxFall := s.config.Physics.MaxFallSpeed * entity.PositionScale
	if c.VY > maxFall {
		c.VY = maxFall
	}
}

// applyMovement moves the character with per-pixel collision
func (s *PhysicsSystem) applyMovement(c *entity.Character, dx, dy int) {
	c.OnGround = false
	c.OnCeiling = false
	c.OnWallLeft = false
	c.OnWallRight = false

	s.resolveOverlap(c)
	s.moveX(c, dx)
	s.moveY(c, dy)
	s.resolveOverlap(c)

	// Resting contact produces no downward step, so probe one pixel below
	if !c.OnGround && c.VY >= 0 && s.blockedDown(c, toPixel(c.X), toPixel(c.Y)+1) {
		c.OnGround = true
		c.VY = 0
	}
}

// moveX moves the character horizontally with collision
func (s *PhysicsSystem) moveX(c *entity.Character, dx int) {
	if dx == 0 {
		return
	}

	step := sign(dx)
	for i := 0; i < abs(dx); i++ {
		next := c.X + step
		if toPixel(next) != toPixel(c.X) && s.blockedSide(c, toPixel(next), toPixel(c.Y)) {
			if s.tryLedgeAssist(c, toPixel(next)) {
				c.X = next
				continue
			}
			c.VX = 0
			if step > 0 {
				c.OnWallRight = true
			} else {
				c.OnWallLeft = true
			}
			return
		}
		c.X = next
	}
}

// moveY moves the character vertically with collision
func (s *PhysicsSystem) moveY(c *entity.Character, dy int) {
	if dy == 0 {
		return
	}

	step := sign(dy)
	for i := 0; i < abs(dy); i++ {
		next := c.Y + step
		if toPixel(next) != toPixel(c.Y) {
			px, py := toPixel(c.X), toPixel(next)
			if step > 0 && s.blockedDown(c, px, py) {
				c.VY = 0
				c.OnGround = true
				return
			}
			if step < 0 && s.blockedUp(c, px, py) {
				c.VY = 0
				c.OnCeiling = true
				s.tryCornerCorrection(c)
				return
			}
		}
		c.Y = next
	}
}

// tryLedgeAssist lifts a falling character over a ledge just below its feet
// when the ledge module agrees.
func (s *PhysicsSystem) tryLedgeAssist(c *entity.Character, nextX int) bool {
	assist := s.config.Collision.LedgeAssist
	if !assist.Enabled || s.ledge == nil || c.OnGround || c.VY < 0 {
		return false
	}

	py := toPixel(c.Y)
	for up := 1; up <= assist.Margin; up++ {
		if s.blockedSide(c, nextX, py-up) || s.blockedUp(c, nextX, py-up) {
			continue
		}
		if !s.ledge.ShouldGetOn() {
			return false
		}
		c.Y -= up * entity.PositionScale
		c.VY = 0
		s.ledge.grabbed()
		return true
	}
	return false
}

// tryCornerCorrection attempts to nudge the character around corners
func (s *PhysicsSystem) tryCornerCorrection(c *entity.Character) {
	if !s.config.Collision.CornerCorrection.Enabled {
		return
	}

	margin := s.config.Collision.CornerCorrection.Margin
	px, py := toPixel(c.X), toPixel(c.Y)-1

	for i := 1; i <= margin; i++ {
		for _, dir := range []int{-1, 1} {
			testX := px + dir*i
			if !s.blockedUp(c, testX, py) && !s.blockedSide(c, testX, toPixel(c.Y)) {
				c.X += dir * i * entity.PositionScale
				return
			}
		}
	}
}

// resolveOverlap pushes the character out of solid tiles it overlaps.
// Returns false if the character was stuck and sent back to spawn.
func (s *PhysicsSystem) resolveOverlap(c *entity.Character) bool {
	const maxPushOut = 8

	px, py := toPixel(c.X), toPixel(c.Y)
	if !s.blockedSide(c, px, py) {
		return true
	}

	type pushOption struct {
		dx, dy int
	}
	dirs := []pushOption{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	for dist := 1; dist <= maxPushOut; dist++ {
		for _, d := range dirs {
			tx, ty := px+d.dx*dist, py+d.dy*dist
			if s.blockedSide(c, tx, ty) {
				continue
			}
			c.X += d.dx * dist * entity.PositionScale
			c.Y += d.dy * dist * entity.PositionScale
			switch {
			case d.dx > 0:
				c.OnWallLeft = true
				c.VX = 0
			case d.dx < 0:
				c.OnWallRight = true
				c.VX = 0
			case d.dy > 0:
				c.OnCeiling = true
				c.VY = 0
			case d.dy < 0:
				c.OnGround = true
				c.VY = 0
			}
			return true
		}
	}

	c.SetPixelPos(s.stage.SpawnX, s.stage.SpawnY)
	c.VX = 0
	c.VY = 0
	return false
}

// StandingOnPlatform reports whether only one-way platforms hold the character up
func (s *PhysicsSystem) StandingOnPlatform(c *entity.Character) bool {
	px, py := toPixel(c.X), toPixel(c.Y)+1
	x, y, w, h := s.feetRect(c, px, py)
	if s.isSolidRect(x, y, w, h) {
		return false
	}
	return s.platformUnder(x, y+h-1, w)
}

// sideRect spans the body width from the body top down to the feet bottom
func (s *PhysicsSystem) sideRect(c *entity.Character, px, py int) (x, y, w, h int) {
	body := c.Hitbox.Body
	feet := c.Hitbox.Feet
	x, y, w, _ = body.GetWorldRect(px, py, c.FacingRight, c.Width)
	return x, y, w, feet.OffsetY + feet.Height - body.OffsetY
}

func (s *PhysicsSystem) feetRect(c *entity.Character, px, py int) (x, y, w, h int) {
	return c.Hitbox.Feet.GetWorldRect(px, py, c.FacingRight, c.Width)
}

func (s *PhysicsSystem) blockedSide(c *entity.Character, px, py int) bool {
	return s.isSolidRect(s.sideRect(c, px, py))
}

func (s *PhysicsSystem) blockedUp(c *entity.Character, px, py int) bool {
	return s.isSolidRect(c.Hitbox.Head.GetWorldRect(px, py, c.FacingRight, c.Width))
}

// blockedDown also treats the top pixel row of a one-way platform as solid,
// unless the character is dropping through.
func (s *PhysicsSystem) blockedDown(c *entity.Character, px, py int) bool {
	x, y, w, h := s.feetRect(c, px, py)
	if s.isSolidRect(x, y, w, h) {
		return true
	}
	if c.DropThroughTime > 0 {
		return false
	}
	return s.platformUnder(x, y+h-1, w)
}

// platformUnder reports whether row is the top pixel row of a one-way tile
// anywhere in [x, x+w).
func (s *PhysicsSystem) platformUnder(x, row, w int) bool {
	ts := s.tileSize()
	if row-entity.FloorDiv(row, ts)*ts != 0 {
		return false
	}
	for tx := entity.FloorDiv(x, ts); tx <= entity.FloorDiv(x+w-1, ts); tx++ {
		if s.stage.GetTile(tx, entity.FloorDiv(row, ts)).OneWay {
			return true
		}
	}
	return false
}

// isSolidRect checks if any tile in the rect is solid
// Iterates all tiles the rectangle overlaps to handle any hitbox size
func (s *PhysicsSystem) isSolidRect(x, y, w, h int) bool {
	ts := s.tileSize()

	startTX := entity.FloorDiv(x, ts)
	endTX := entity.FloorDiv(x+w-1, ts)
	startTY := entity.FloorDiv(y, ts)
	endTY := entity.FloorDiv(y+h-1, ts)

	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			if s.stage.GetTile(tx, ty).Solid {
				return true
			}
		}
	}
	return false
}

// tilesIn calls fn for every tile the rect overlaps
func (s *PhysicsSystem) tilesIn(x, y, w, h int, fn func(tx, ty int, tile entity.Tile)) {
	ts := s.tileSize()
	for ty := entity.FloorDiv(y, ts); ty <= entity.FloorDiv(y+h-1, ts); ty++ {
		for tx := entity.FloorDiv(x, ts); tx <= entity.FloorDiv(x+w-1, ts); tx++ {
			fn(tx, ty, s.stage.GetTile(tx, ty))
		}
	}
}

func (s *PhysicsSystem) tileSize() int {
	if s.stage.TileSize <= 0 {
		return 16
	}
	return s.stage.TileSize
}

// Helper functions
func toPixel(units int) int {
	return entity.FloorDiv(units, entity.PositionScale)
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

func approach(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}
