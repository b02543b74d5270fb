package system

import (
	"github.com/solarlune/resolv"

	"github.com/younwookim/charctl/internal/application/control"
)

const (
	tagProp  = "prop"
	tagProbe = "probe"
)

// ProximitySensor reports props entering and leaving the interaction box
// around the character. The box is square with a half-extent of radius.
// Broadphase is a resolv space; touching edges count as overlap.
type ProximitySensor struct {
	space   *resolv.Space
	probe   *resolv.Object
	objects map[*PropAdapter]*resolv.Object
	inside  map[*PropAdapter]bool
	radius  float64
}

// NewProximitySensor creates a sensor over a width x height pixel area
func NewProximitySensor(width, height int, radius float64) *ProximitySensor {
	space := resolv.NewSpace(width, height, 16, 16)
	probe := resolv.NewObject(0, 0, radius*2, radius*2, tagProbe)
	space.Add(probe)

	return &ProximitySensor{
		space:   space,
		probe:   probe,
		objects: make(map[*PropAdapter]*resolv.Object),
		inside:  make(map[*PropAdapter]bool),
		radius:  radius,
	}
}

// Add starts tracking a prop
func (s *ProximitySensor) Add(a *PropAdapter) {
	if _, ok := s.objects[a]; ok {
		return
	}
	p := a.Prop()
	obj := resolv.NewObject(float64(p.X), float64(p.Y), float64(p.W), float64(p.H), tagProp)
	obj.Data = a
	s.space.Add(obj)
	s.objects[a] = obj
}

// Remove stops tracking a prop without reporting it as left
func (s *ProximitySensor) Remove(a *PropAdapter) {
	obj, ok := s.objects[a]
	if !ok {
		return
	}
	s.space.Remove(obj)
	delete(s.objects, a)
	delete(s.inside, a)
}

// Inside reports whether a prop is currently in range
func (s *ProximitySensor) Inside(a *PropAdapter) bool {
	return s.inside[a]
}

// Update centers the box on the pixel point (cx, cy) and reports changes
func (s *ProximitySensor) Update(cx, cy float64, enter, leave func(control.Interactable)) {
	s.probe.X = cx - s.radius
	s.probe.Y = cy - s.radius
	s.probe.Update()

	now := make(map[*PropAdapter]bool)
	if check := s.probe.Check(0, 0, tagProp); check != nil {
		for _, obj := range check.ObjectsByTags(tagProp) {
			a, ok := obj.Data.(*PropAdapter)
			if ok && s.probe.Overlaps(obj) {
				now[a] = true
			}
		}
	}

	for a := range s.inside {
		if !now[a] {
			delete(s.inside, a)
			if leave != nil {
				leave(a)
			}
		}
	}
	for a := range now {
		if !s.inside[a] {
			s.inside[a] = true
			if enter != nil {
				enter(a)
			}
		}
	}
}
