package control

import (
	"github.com/younwookim/charctl/internal/application/input"
	"github.com/younwookim/charctl/internal/domain/entity"
)

// Gates answers traversal modules at their own decision points.
// All queries are read-only.
type Gates struct {
	ports *Ports
	input Input
}

// NewGates creates the gate queries
func NewGates(ports *Ports, in Input) *Gates {
	if ports == nil {
		ports = &Ports{}
	}
	return &Gates{ports: ports, input: in}
}

// ShouldGetOnLedge is true while the stick points into the ledge or up
func (g *Gates) ShouldGetOnLedge(Actor) bool {
	actor := g.ports.Actor
	if actor == nil {
		return false
	}
	dir := actor.InputDir()

	if dir.Y > DirectionThreshold {
		return true
	}
	facing := g.ports.Facing
	if facing == nil {
		return false
	}
	switch facing.Facing() {
	case entity.DirLeft:
		return dir.X < -DirectionThreshold
	case entity.DirRight:
		return dir.X > DirectionThreshold
	default:
		return false
	}
}

// ShouldJumpOffZipline is true on the frame jump is pressed
func (g *Gates) ShouldJumpOffZipline(Actor) bool {
	return g.jumpTriggered()
}

// ShouldJumpOffHook is true on the frame jump is pressed
func (g *Gates) ShouldJumpOffHook(Actor) bool {
	return g.jumpTriggered()
}

func (g *Gates) jumpTriggered() bool {
	return g.input != nil && g.input.Triggered(input.ActionJump)
}
