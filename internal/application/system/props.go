package system

import (
	"log/slog"

	"github.com/yohamta/donburi"

	"github.com/younwookim/charctl/internal/application/control"
	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/domain/event"
)

// WispHeal is the health restored by using a wisp
const WispHeal = 25

// Rider is an actor that can board vehicles
type Rider interface {
	EnterVehicle(name string)
	ExitVehicle()
	Vehicle() string
}

// Healable is an actor that can recover health
type Healable interface {
	Heal(amount int)
}

// PropAdapter exposes a prop as control.Interactable and control.Mortal
type PropAdapter struct {
	p *entity.Prop

	// Message is the text shown while a sign is in use
	Message string
}

// NewPropAdapter wraps p
func NewPropAdapter(p *entity.Prop) *PropAdapter {
	return &PropAdapter{p: p}
}

// Prop returns the wrapped prop
func (a *PropAdapter) Prop() *entity.Prop {
	return a.p
}

func (a *PropAdapter) MiddlePosition() entity.Vec2 {
	return PointToWorld(a.p.Center())
}

func (a *PropAdapter) CanInteractWith() bool {
	return a.p.Usable()
}

func (a *PropAdapter) MarkAsActive() {
	a.p.Active = true
}

func (a *PropAdapter) MarkAsInactive() {
	a.p.Active = false
}

// OnUse reads a sign, boards or leaves a cart, or consumes a wisp
func (a *PropAdapter) OnUse(actor control.Actor) {
	if !a.p.Usable() {
		return
	}
	a.p.InUse = true
	a.p.Uses++

	switch a.p.Kind {
	case entity.PropSign:
		a.Message = a.p.Label
	case entity.PropCart:
		rider, ok := actor.(Rider)
		if !ok {
			return
		}
		if rider.Vehicle() == "" {
			rider.EnterVehicle(a.p.Label)
		} else {
			rider.ExitVehicle()
		}
	case entity.PropWisp:
		if h, ok := actor.(Healable); ok {
			h.Heal(WispHeal)
		}
		a.p.Kill(event.CauseConsumed)
	}
}

// OnStopUse ends the interaction
func (a *PropAdapter) OnStopUse(control.Actor) {
	a.p.InUse = false
	a.Message = ""
}

func (a *PropAdapter) DeathSignal() *event.Signal[event.Death] {
	return &a.p.Death
}

var (
	_ control.Interactable = (*PropAdapter)(nil)
	_ control.Mortal       = (*PropAdapter)(nil)
)

// PropData is the donburi component of a prop entity
type PropData struct {
	Adapter *PropAdapter
}

// PropComponent tags prop entities
var PropComponent = donburi.NewComponentType[PropData]()

// PropWorld owns the stage's props as donburi entities and keeps the
// proximity sensor in sync with them.
type PropWorld struct {
	world  donburi.World
	sensor *ProximitySensor
	nextID entity.EntityID
	logger *slog.Logger
}

// NewPropWorld creates an empty prop world. sensor may be nil.
func NewPropWorld(sensor *ProximitySensor, logger *slog.Logger) *PropWorld {
	if logger == nil {
		logger = slog.Default()
	}
	return &PropWorld{
		world:  donburi.NewWorld(),
		sensor: sensor,
		nextID: 1,
		logger: logger,
	}
}

// Spawn creates a prop at pixel coordinates. A positive lifetime makes the
// prop expire.
func (w *PropWorld) Spawn(kind entity.PropKind, label string, x, y int, lifetime float64) *PropAdapter {
	p := entity.NewProp(w.nextID, kind, x, y)
	w.nextID++
	p.Label = label
	p.Lifetime = lifetime

	adapter := NewPropAdapter(p)
	e := w.world.Create(PropComponent)
	PropComponent.SetValue(w.world.Entry(e), PropData{Adapter: adapter})

	if w.sensor != nil {
		w.sensor.Add(adapter)
	}
	return adapter
}

// Update ages props and removes the dead ones
func (w *PropWorld) Update(dt float64) {
	var dead []donburi.Entity
	PropComponent.Each(w.world, func(entry *donburi.Entry) {
		adapter := PropComponent.Get(entry).Adapter
		p := adapter.Prop()
		p.Age(dt)
		if p.Dead {
			dead = append(dead, entry.Entity())
		}
	})

	for _, e := range dead {
		adapter := PropComponent.Get(w.world.Entry(e)).Adapter
		if w.sensor != nil {
			w.sensor.Remove(adapter)
		}
		w.world.Remove(e)
		w.logger.Debug("prop removed", "id", adapter.Prop().ID, "kind", adapter.Prop().Kind.String())
	}
}

// Each calls fn for every live prop
func (w *PropWorld) Each(fn func(a *PropAdapter)) {
	PropComponent.Each(w.world, func(entry *donburi.Entry) {
		fn(PropComponent.Get(entry).Adapter)
	})
}

// Len returns the number of props
func (w *PropWorld) Len() int {
	n := 0
	w.Each(func(*PropAdapter) { n++ })
	return n
}
