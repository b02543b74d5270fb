// Package control is the character control core. It turns per-frame input
// into jump state transitions, forwards ability edges, picks the nearest
// usable interactable and answers traversal gates.
package control

import (
	"log/slog"

	"github.com/younwookim/charctl/internal/application/input"
	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/domain/event"
	"github.com/younwookim/charctl/internal/infrastructure/config"
)

// Controller wires the movement state machine, the interactable selector,
// the ability dispatcher and the gates to one actor.
type Controller struct {
	cfg    *config.ControlConfig
	input  Input
	ports  Ports
	logger *slog.Logger

	movement  *Movement
	selector  *Selector
	abilities *Dispatcher
	gates     *Gates

	subs        event.Group
	active      bool
	interaction bool
}

// NewController creates an inactive controller. cfg nil uses config.Default().
func NewController(cfg *config.ControlConfig, in Input, ports Ports, logger *slog.Logger) *Controller {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &Controller{
		cfg:         cfg,
		input:       in,
		ports:       ports,
		logger:      logger,
		interaction: true,
	}
	c.movement = NewMovement(cfg.Kit, &c.ports)
	c.selector = NewSelector(logger)
	c.abilities = NewDispatcher(ports.Abilities)
	c.gates = NewGates(&c.ports, in)
	return c
}

// Movement returns the jump state machine
func (c *Controller) Movement() *Movement { return c.movement }

// Selector returns the interactable selector
func (c *Controller) Selector() *Selector { return c.selector }

// Gates returns the traversal gate queries
func (c *Controller) Gates() *Gates { return c.gates }

// Active reports whether the controller is subscribed and driving the actor
func (c *Controller) Active() bool { return c.active }

// InteractionEnabled reports whether the selector may pick a choice
func (c *Controller) InteractionEnabled() bool { return c.interaction }

// SetInteractionEnabled toggles interaction. While disabled every candidate
// is inactive on the next tick.
func (c *Controller) SetInteractionEnabled(enabled bool) {
	c.interaction = enabled
}

// ApplyConfig swaps in a reloaded config
func (c *Controller) ApplyConfig(cfg *config.ControlConfig) {
	if cfg == nil {
		return
	}
	c.cfg = cfg
	c.movement.SetKit(cfg.Kit)
}

// Activate subscribes to input edges and actor events and installs the gates.
// Calling it while active does nothing.
func (c *Controller) Activate() {
	if c.active {
		return
	}
	c.active = true
	c.movement.Reset()

	if in := c.input; in != nil {
		c.subs.Add(
			in.Started(input.ActionJump).Connect(func(input.ActionID) { c.movement.OnJumpPress() }),
			in.Canceled(input.ActionJump).Connect(func(input.ActionID) { c.movement.OnJumpRelease() }),
			in.Started(input.ActionInteract).Connect(func(input.ActionID) { c.interact(true) }),
			in.Canceled(input.ActionInteract).Connect(func(input.ActionID) { c.interact(false) }),
		)
		for slot := entity.SlotPrimary; slot < entity.SlotCount; slot++ {
			action := input.SlotAction(slot)
			c.subs.Add(
				in.Started(action).Connect(func(input.ActionID) { c.abilities.OnPress(slot) }),
				in.Canceled(action).Connect(func(input.ActionID) { c.abilities.OnRelease(slot) }),
			)
		}
	}

	if actor := c.ports.Actor; actor != nil {
		if events := actor.Events(); events != nil {
			c.subs.Add(
				events.Hit.Connect(func(event.Hit) { c.movement.OnHit(!actor.CanAct()) }),
				events.VehicleEnter.Connect(func(event.Vehicle) { c.movement.OnVehicleEnter() }),
				events.VehicleExit.Connect(func(event.Vehicle) { c.movement.OnVehicleExit() }),
			)
		}
	}

	c.installGates(true)
	c.logger.Debug("controller activated", "subscriptions", c.subs.Len())
}

// Deactivate releases every subscription, removes the gates and drops all
// interactable candidates. Calling it while inactive does nothing.
func (c *Controller) Deactivate() {
	if !c.active {
		return
	}
	c.active = false
	released := c.subs.Len()
	c.subs.Release()
	c.installGates(false)
	c.selector.Clear()
	c.logger.Debug("controller deactivated", "released", released)
}

func (c *Controller) installGates(on bool) {
	var ledge, zipline, hook GateFunc
	if on {
		ledge = c.gates.ShouldGetOnLedge
		zipline = c.gates.ShouldJumpOffZipline
		hook = c.gates.ShouldJumpOffHook
	}
	if c.ports.Ledge != nil {
		c.ports.Ledge.SetShouldGetOnLedge(ledge)
	}
	if c.ports.Zipline != nil {
		c.ports.Zipline.SetShouldJumpOff(zipline)
	}
	if c.ports.Hook != nil {
		c.ports.Hook.SetShouldJumpOffHook(hook)
	}
}

// Update runs the continuous part of one frame
func (c *Controller) Update(dt float64) {
	if !c.active {
		return
	}
	actor := c.ports.Actor

	if c.input == nil || !c.input.Enabled() {
		c.selector.Tick(false, entity.Vec2{})
		return
	}

	move := c.input.Move()
	if actor != nil {
		actor.SetInputDir(move)
	}
	c.movement.Tick(move, dt)

	ready := c.interaction && actor != nil && actor.IsFree()
	var origin entity.Vec2
	if actor != nil {
		origin = actor.MiddlePoint()
	}
	c.selector.Tick(ready, origin)

	c.selfDestruct()
}

// Approach offers an interactable to the selector
func (c *Controller) Approach(obj Interactable) { c.selector.Approach(obj) }

// Leave withdraws an interactable from the selector
func (c *Controller) Leave(obj Interactable) { c.selector.Leave(obj) }

func (c *Controller) interact(pressed bool) {
	actor := c.ports.Actor
	loco := c.ports.Locomotion
	if actor == nil || loco == nil || !loco.Grounded() || !actor.IsFree() {
		return
	}
	obj := c.selector.Active()
	if obj == nil {
		return
	}
	if pressed {
		obj.OnUse(actor)
	} else {
		obj.OnStopUse(actor)
	}
}

func (c *Controller) selfDestruct() {
	if !c.cfg.Debug.SelfDestruct || !c.input.Triggered(input.ActionSelfDestruct) {
		return
	}
	if k, ok := c.ports.Actor.(Killable); ok {
		c.logger.Warn("self destruct triggered")
		k.Kill(event.CauseSelfDestruct)
	}
}
