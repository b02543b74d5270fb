package control

import (
	"log/slog"
	"sort"

	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/domain/event"
)

type candidate struct {
	obj   Interactable
	death *event.Subscription
}

// Selector tracks the interactables in range and picks the nearest usable one.
// The candidate list keeps insertion order until the first evaluation and is
// re-sorted by distance on every evaluation after that.
type Selector struct {
	candidates []candidate
	active     Interactable
	logger     *slog.Logger
}

// NewSelector creates an empty selector
func NewSelector(logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{logger: logger}
}

// Active returns the current choice, or nil
func (s *Selector) Active() Interactable {
	return s.active
}

// Len returns the number of candidates in range
func (s *Selector) Len() int {
	return len(s.candidates)
}

// Candidates returns the candidates in their current order
func (s *Selector) Candidates() []Interactable {
	out := make([]Interactable, len(s.candidates))
	for i, c := range s.candidates {
		out[i] = c.obj
	}
	return out
}

// Contains reports whether obj is a candidate
func (s *Selector) Contains(obj Interactable) bool {
	return s.index(obj) >= 0
}

// Approach adds obj to the candidates. Adding twice does nothing.
// Mortal candidates are dropped when they die.
func (s *Selector) Approach(obj Interactable) {
	if obj == nil || s.index(obj) >= 0 {
		return
	}

	c := candidate{obj: obj}
	if mortal, ok := obj.(Mortal); ok {
		if sig := mortal.DeathSignal(); sig != nil {
			var sub *event.Subscription
			sub = sig.Connect(func(event.Death) {
				sub.Release()
				s.Leave(obj)
			})
			c.death = sub
		}
	}
	s.candidates = append(s.candidates, c)
}

// Leave marks obj inactive and removes it from the candidates
func (s *Selector) Leave(obj Interactable) {
	if obj == nil {
		return
	}
	obj.MarkAsInactive()

	i := s.index(obj)
	if i < 0 {
		return
	}
	s.candidates[i].death.Release()
	s.candidates = append(s.candidates[:i], s.candidates[i+1:]...)

	if s.active == obj {
		s.setActive(nil)
	}
}

// Clear leaves every candidate
func (s *Selector) Clear() {
	for len(s.candidates) > 0 {
		s.Leave(s.candidates[len(s.candidates)-1].obj)
	}
	s.setActive(nil)
}

// Tick re-evaluates the active choice. When ready is false every candidate
// is marked inactive; otherwise the nearest candidate to origin that can be
// interacted with becomes active and all others inactive.
func (s *Selector) Tick(ready bool, origin entity.Vec2) {
	if !ready || len(s.candidates) == 0 {
		s.setActive(nil)
		for _, c := range s.snapshot() {
			c.obj.MarkAsInactive()
		}
		return
	}

	s.sortByDistance(origin)

	var next Interactable
	for _, c := range s.snapshot() {
		if next == nil && c.obj.CanInteractWith() {
			next = c.obj
			c.obj.MarkAsActive()
		} else {
			c.obj.MarkAsInactive()
		}
	}

	// A mark may have removed the winner
	if next != nil && s.index(next) < 0 {
		next = nil
	}
	s.setActive(next)
}

func (s *Selector) sortByDistance(origin entity.Vec2) {
	dist := make(map[Interactable]float64, len(s.candidates))
	for _, c := range s.candidates {
		dist[c.obj] = entity.Distance(c.obj.MiddlePosition(), origin)
	}
	sort.SliceStable(s.candidates, func(i, j int) bool {
		return dist[s.candidates[i].obj] < dist[s.candidates[j].obj]
	})
}

func (s *Selector) setActive(obj Interactable) {
	if s.active == obj {
		return
	}
	s.active = obj
	s.logger.Debug("active interactable changed", "active", obj != nil, "candidates", len(s.candidates))
}

func (s *Selector) snapshot() []candidate {
	out := make([]candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}

func (s *Selector) index(obj Interactable) int {
	for i, c := range s.candidates {
		if c.obj == obj {
			return i
		}
	}
	return -1
}
