package system

import (
	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/domain/event"
	"github.com/younwookim/charctl/internal/infrastructure/config"
)

// HazardSystem runs the character's status timers and applies damage from
// hazard tiles.
type HazardSystem struct {
	config  *config.ControlConfig
	physics *PhysicsSystem

	// OnHit is called after a hazard hit lands
	OnHit func(hit event.Hit)
}

// NewHazardSystem creates a new hazard system
func NewHazardSystem(cfg *config.ControlConfig, physics *PhysicsSystem) *HazardSystem {
	return &HazardSystem{config: cfg, physics: physics}
}

// SetConfig swaps in a reloaded config
func (s *HazardSystem) SetConfig(cfg *config.ControlConfig) {
	s.config = cfg
}

// Update ticks timers and checks hazard contact
func (s *HazardSystem) Update(c *entity.Character, dt float64) {
	s.updateTimers(c, dt)

	if c.Dead || c.IsInvincible() {
		return
	}
	if damage := s.damageAt(c); damage > 0 {
		s.damage(c, damage)
	}
}

// updateTimers updates the status timers
func (s *HazardSystem) updateTimers(c *entity.Character, dt float64) {
	if c.IframeTimer > 0 {
		c.IframeTimer -= dt
	}
	if c.StunTimer > 0 {
		c.StunTimer -= dt
	}
}

// damageAt returns the highest damage among the tiles the character touches
func (s *HazardSystem) damageAt(c *entity.Character) int {
	x, y, w, h := s.physics.sideRect(c, toPixel(c.X), toPixel(c.Y))
	worst := 0
	s.physics.tilesIn(x, y, w, h, func(_, _ int, tile entity.Tile) {
		if tile.Damage > worst {
			worst = tile.Damage
		}
	})
	return worst
}

func (s *HazardSystem) damage(c *entity.Character, damage int) {
	combat := s.config.Combat
	hit := event.Hit{
		Damage:    damage,
		Stun:      combat.StunDuration,
		Knockback: damage >= combat.TumbleDamage,
		Cause:     event.CauseHazard,
	}

	if !c.TakeHit(hit, combat.Iframes) {
		return
	}

	// VY is in 100x scale, config force is in pixels/sec
	c.VY = -combat.KnockUp * entity.PositionScale
	c.OnGround = false
	c.Traversal = ""
	if c.Dead {
		c.VX = 0
	}

	if s.OnHit != nil {
		s.OnHit(hit)
	}
}
