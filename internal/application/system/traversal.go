package system

import (
	"math"

	"github.com/younwookim/charctl/internal/application/control"
	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/infrastructure/config"
)

// Traversal names stored in Character.Traversal
const (
	TraversalZipline = "zipline"
	TraversalHook    = "hook"
)

const (
	// ZiplineSpeedFactor scales the top run speed while riding a zipline
	ZiplineSpeedFactor = 1.5
	// RegrabDelay keeps a released character from grabbing again at once
	RegrabDelay = 0.3
)

// LedgeModule answers the physics system's ledge assist through the
// installed gate. Without a gate the assist never fires.
type LedgeModule struct {
	actor  control.Actor
	should control.GateFunc
	grabs  int
}

// NewLedgeModule creates a ledge module for actor
func NewLedgeModule(actor control.Actor) *LedgeModule {
	return &LedgeModule{actor: actor}
}

// SetShouldGetOnLedge installs the gate. Nil removes it.
func (m *LedgeModule) SetShouldGetOnLedge(fn control.GateFunc) {
	m.should = fn
}

// ShouldGetOn asks the gate
func (m *LedgeModule) ShouldGetOn() bool {
	return m.should != nil && m.should(m.actor)
}

// Grabs returns how many ledges were climbed
func (m *LedgeModule) Grabs() int {
	return m.grabs
}

func (m *LedgeModule) grabbed() {
	m.grabs++
}

// grip holds the shared attach and release logic of zipline and hook
type grip struct {
	cfg      *config.ControlConfig
	physics  *PhysicsSystem
	actor    control.Actor
	should   control.GateFunc
	cooldown float64
}

// SetConfig swaps in a reloaded config
func (g *grip) SetConfig(cfg *config.ControlConfig) {
	g.cfg = cfg
}

func (g *grip) tick(dt float64) {
	if g.cooldown > 0 {
		g.cooldown -= dt
	}
}

func (g *grip) canGrab(c *entity.Character) bool {
	return g.cooldown <= 0 && c.Traversal == "" && !c.OnGround && c.CanAct() && !c.Dashing
}

func (g *grip) wantsOff() bool {
	return g.should != nil && g.should(g.actor)
}

// release lets go. A jump release launches the character at full force.
func (g *grip) release(c *entity.Character, jump bool, vx float64) {
	c.Traversal = ""
	g.cooldown = RegrabDelay
	c.VX = vx
	if jump {
		launch(c, g.cfg, 1, "")
	}
}

// gripPoint is the pixel the character hangs from, top center of the head
func gripPoint(c *entity.Character, px, py int) (int, int) {
	return px + c.Width/2, py
}

// hangFrom places the character so its grip point sits at the tile center row
func hangFrom(c *entity.Character, ts, ty int) {
	c.Y = (ty*ts + ts/2) * entity.PositionScale
	c.VY = 0
}

// ZiplineModule carries the character along zipline tiles
type ZiplineModule struct {
	grip
	dir   float64
	rides int
}

// NewZiplineModule creates a zipline module
func NewZiplineModule(cfg *config.ControlConfig, physics *PhysicsSystem, actor control.Actor) *ZiplineModule {
	return &ZiplineModule{grip: grip{cfg: cfg, physics: physics, actor: actor}}
}

// SetShouldJumpOff installs the gate. Nil removes it.
func (m *ZiplineModule) SetShouldJumpOff(fn control.GateFunc) {
	m.should = fn
}

// Rides returns how many times a zipline was grabbed
func (m *ZiplineModule) Rides() int {
	return m.rides
}

// Update grabs, rides and releases the zipline
func (m *ZiplineModule) Update(c *entity.Character, dt float64) {
	m.tick(dt)
	stage := m.physics.Stage()
	ts := m.physics.tileSize()
	px, py := toPixel(c.X), toPixel(c.Y)

	if c.Traversal == "" {
		gx, gy := gripPoint(c, px, py)
		if !m.canGrab(c) || stage.GetTileAtPixel(gx, gy).Type != entity.TileZipline {
			return
		}
		c.Traversal = TraversalZipline
		m.dir = entity.Sign(c.VX)
		if m.dir == 0 {
			m.dir = facingSign(c)
		}
		hangFrom(c, ts, entity.FloorDiv(gy, ts))
		m.rides++
		return
	}
	if c.Traversal != TraversalZipline {
		return
	}

	speed := m.cfg.Movement.MaxSpeed * ZiplineSpeedFactor * entity.PositionScale
	if !c.CanAct() {
		m.release(c, false, 0)
		return
	}
	if m.wantsOff() {
		m.release(c, true, m.dir*speed)
		return
	}

	next := c.X + int(m.dir*speed*dt)
	gx, gy := gripPoint(c, toPixel(next), py)
	if stage.GetTileAtPixel(gx, gy).Type != entity.TileZipline || m.physics.blockedSide(c, toPixel(next), py) {
		// End of the line
		m.release(c, false, m.dir*speed)
		return
	}
	c.X = next
	c.VX = m.dir * speed
	c.VY = 0
}

// HookModule hangs the character from hook tiles
type HookModule struct {
	grip
	hangs int
}

// NewHookModule creates a hook module
func NewHookModule(cfg *config.ControlConfig, physics *PhysicsSystem, actor control.Actor) *HookModule {
	return &HookModule{grip: grip{cfg: cfg, physics: physics, actor: actor}}
}

// SetShouldJumpOffHook installs the gate. Nil removes it.
func (m *HookModule) SetShouldJumpOffHook(fn control.GateFunc) {
	m.should = fn
}

// Hangs returns how many times a hook was grabbed
func (m *HookModule) Hangs() int {
	return m.hangs
}

// Update grabs and releases hooks
func (m *HookModule) Update(c *entity.Character, dt float64) {
	m.tick(dt)
	stage := m.physics.Stage()
	ts := m.physics.tileSize()

	if c.Traversal == "" {
		gx, gy := gripPoint(c, toPixel(c.X), toPixel(c.Y))
		if !m.canGrab(c) || stage.GetTileAtPixel(gx, gy).Type != entity.TileHook {
			return
		}
		c.Traversal = TraversalHook
		tx := entity.FloorDiv(gx, ts)
		c.X = (tx*ts + ts/2 - c.Width/2) * entity.PositionScale
		c.VX = 0
		hangFrom(c, ts, entity.FloorDiv(gy, ts))
		m.hangs++
		return
	}
	if c.Traversal != TraversalHook {
		return
	}

	if !c.CanAct() {
		m.release(c, false, 0)
		return
	}
	if m.wantsOff() {
		m.release(c, true, clampUnit(c.InputDir.X)*m.cfg.Movement.MaxSpeed*entity.PositionScale)
	}
}

func facingSign(c *entity.Character) float64 {
	if c.FacingRight {
		return 1
	}
	return -1
}

// launch starts a jump at percent of the configured force. A jump spends
// the coyote window so a second press in the air is a double jump.
func launch(c *entity.Character, cfg *config.ControlConfig, percent float64, action string) {
	if action == "" {
		action = "jump"
	}
	c.VY = -cfg.Jump.Force * percent * entity.PositionScale
	c.OnGround = false
	c.SinceGrounded = math.Inf(1)
	c.JumpAction = action
}
