package control

import "github.com/younwookim/charctl/internal/domain/entity"

// Dispatcher forwards ability button edges to whatever is bound to the slot.
// It keeps no state; the binding is looked up on every edge.
type Dispatcher struct {
	source AbilitySource
}

// NewDispatcher creates a dispatcher over source, which may be nil
func NewDispatcher(source AbilitySource) *Dispatcher {
	return &Dispatcher{source: source}
}

// OnPress presses the ability bound to slot, if any
func (d *Dispatcher) OnPress(slot entity.AbilitySlot) {
	if a := d.lookup(slot); a != nil {
		a.Press()
	}
}

// OnRelease releases the ability bound to slot, if any
func (d *Dispatcher) OnRelease(slot entity.AbilitySlot) {
	if a := d.lookup(slot); a != nil {
		a.Release()
	}
}

func (d *Dispatcher) lookup(slot entity.AbilitySlot) entity.Ability {
	if d.source == nil || slot < 0 || slot >= entity.SlotCount {
		return nil
	}
	return d.source.Ability(slot)
}
