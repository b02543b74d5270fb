package entity

import "github.com/younwookim/charctl/internal/domain/event"

// PropKind represents the type of an interactable prop
type PropKind int

const (
	PropSign PropKind = iota
	PropCart
	PropWisp
)

// String returns the string representation of the prop kind
func (k PropKind) String() string {
	switch k {
	case PropSign:
		return "Sign"
	case PropCart:
		return "Cart"
	case PropWisp:
		return "Wisp"
	default:
		return "Unknown"
	}
}

// ParsePropKind converts a config name into a PropKind
func ParsePropKind(name string) (PropKind, bool) {
	switch name {
	case "sign":
		return PropSign, true
	case "cart":
		return PropCart, true
	case "wisp":
		return PropWisp, true
	default:
		return PropSign, false
	}
}

// Prop is an interactable object placed in the stage.
// Position and size are in pixels, Y down.
type Prop struct {
	ID    EntityID
	Kind  PropKind
	Label string
	X, Y  int
	W, H  int

	Active   bool // highlighted as the current choice
	InUse    bool
	Uses     int
	Disabled bool

	// Lifetime in seconds for wisps. Zero means the prop never expires.
	Lifetime float64
	Dead     bool
	Death    event.Signal[event.Death]
}

// NewProp creates a prop of the given kind at pixel coordinates
func NewProp(id EntityID, kind PropKind, x, y int) *Prop {
	p := &Prop{
		ID:   id,
		Kind: kind,
		X:    x,
		Y:    y,
		W:    16,
		H:    16,
	}
	if kind == PropCart {
		p.W = 24
	}
	return p
}

// Center returns the center of the prop in pixels, Y down
func (p *Prop) Center() (float64, float64) {
	return float64(p.X) + float64(p.W)/2, float64(p.Y) + float64(p.H)/2
}

// Usable reports whether the prop can currently be interacted with
func (p *Prop) Usable() bool {
	return !p.Dead && !p.Disabled
}

// Age advances the lifetime and kills the prop once it runs out.
// Returns true on the frame the prop expires.
func (p *Prop) Age(dt float64) bool {
	if p.Dead || p.Lifetime <= 0 {
		return false
	}
	p.Lifetime -= dt
	if p.Lifetime > 0 {
		return false
	}
	p.Kill(event.CauseExpired)
	return true
}

// Kill marks the prop dead and emits Death once
func (p *Prop) Kill(cause event.Cause) {
	if p.Dead {
		return
	}
	p.Dead = true
	p.Active = false
	p.Death.Emit(event.Death{Cause: cause})
}
