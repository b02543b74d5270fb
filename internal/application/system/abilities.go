package system

import (
	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/infrastructure/config"
)

// DashAbility bursts the character forward with brief invincibility
type DashAbility struct {
	c   *entity.Character
	cfg *config.ControlConfig
}

// NewDashAbility creates a dash for c
func NewDashAbility(c *entity.Character, cfg *config.ControlConfig) *DashAbility {
	return &DashAbility{c: c, cfg: cfg}
}

// SetConfig swaps in a reloaded config
func (a *DashAbility) SetConfig(cfg *config.ControlConfig) {
	a.cfg = cfg
}

// Press starts a dash in the facing direction
func (a *DashAbility) Press() {
	c := a.c
	if !c.CanDash || c.DashCooldown > 0 || !c.CanAct() || c.Dashing || c.Traversal != "" {
		return
	}

	dash := a.cfg.Dash
	c.Dashing = true
	c.DashTimer = dash.Duration
	c.DashCooldown = dash.Cooldown
	c.CanDash = false
	c.IframeTimer = dash.IframesDuration

	// VX is in 100x scale, config speed is in pixels/sec
	c.VX = facingSign(c) * dash.Speed * entity.PositionScale
	c.VY = 0
}

// Release does nothing; a dash always runs its full duration
func (a *DashAbility) Release() {}

// Update runs the dash timers
func (a *DashAbility) Update(dt float64) {
	c := a.c
	if c.DashTimer > 0 {
		c.DashTimer -= dt
		if c.DashTimer <= 0 {
			c.Dashing = false
		}
	}
	if c.DashCooldown > 0 {
		c.DashCooldown -= dt
	}
}

const (
	// MaxCharge is the hold time for a full charge, in seconds
	MaxCharge = 1.0
	// MinChargePower is the jump power of an uncharged leap
	MinChargePower = 0.6
	// MaxChargePower is the jump power of a fully charged leap
	MaxChargePower = 1.6
)

// ChargeAbility stores power while held on the ground and leaps on release
type ChargeAbility struct {
	c        *entity.Character
	cfg      *config.ControlConfig
	charging bool
	charge   float64
}

// NewChargeAbility creates a charged leap for c
func NewChargeAbility(c *entity.Character, cfg *config.ControlConfig) *ChargeAbility {
	return &ChargeAbility{c: c, cfg: cfg}
}

// SetConfig swaps in a reloaded config
func (a *ChargeAbility) SetConfig(cfg *config.ControlConfig) {
	a.cfg = cfg
}

// Charging reports whether the button is held with a charge building
func (a *ChargeAbility) Charging() bool {
	return a.charging
}

// Charge returns the charge level from 0 to 1
func (a *ChargeAbility) Charge() float64 {
	return a.charge / MaxCharge
}

// Press starts charging if the character stands on the ground
func (a *ChargeAbility) Press() {
	if !a.c.OnGround || !a.c.IsFree() {
		return
	}
	a.charging = true
	a.charge = 0
}

// Release leaps with the stored charge
func (a *ChargeAbility) Release() {
	if !a.charging {
		return
	}
	a.charging = false
	if !a.c.OnGround || !a.c.IsFree() {
		return
	}
	power := MinChargePower + (MaxChargePower-MinChargePower)*a.Charge()
	launch(a.c, a.cfg, power, "leap")
}

// Update builds the charge. Leaving the ground or losing control cancels it.
func (a *ChargeAbility) Update(dt float64) {
	if !a.charging {
		return
	}
	if !a.c.OnGround || !a.c.CanAct() {
		a.charging = false
		a.charge = 0
		return
	}
	a.charge = min(a.charge+dt, MaxCharge)
}
