// Package event provides synchronous signals with explicit registration
// handles, and the actor lifecycle events carried over them.
//
// Signals are not safe for concurrent use. Every Emit runs on the caller's
// goroutine and each handler runs to completion before the next one starts.
package event

// Signal is a list of handlers for one kind of event.
// The zero value is ready to use.
type Signal[T any] struct {
	slots []*slot[T]
}

type slot[T any] struct {
	fn   func(T)
	live bool
}

// Connect registers fn and returns the handle that removes it.
func (s *Signal[T]) Connect(fn func(T)) *Subscription {
	sl := &slot[T]{fn: fn, live: true}
	s.slots = append(s.slots, sl)
	return &Subscription{release: func() { s.remove(sl) }}
}

// Emit calls every connected handler in registration order.
// Handlers released during emission are skipped; handlers connected during
// emission first run on the next Emit.
func (s *Signal[T]) Emit(v T) {
	if len(s.slots) == 0 {
		return
	}
	snapshot := make([]*slot[T], len(s.slots))
	copy(snapshot, s.slots)
	for _, sl := range snapshot {
		if sl.live {
			sl.fn(v)
		}
	}
}

// Len returns the number of connected handlers.
func (s *Signal[T]) Len() int {
	return len(s.slots)
}

func (s *Signal[T]) remove(target *slot[T]) {
	target.live = false
	for i, sl := range s.slots {
		if sl == target {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return
		}
	}
}

// Subscription is the handle returned by Connect.
type Subscription struct {
	release func()
}

// Release disconnects the handler. Releasing twice, or releasing a nil
// subscription, does nothing.
func (s *Subscription) Release() {
	if s == nil || s.release == nil {
		return
	}
	release := s.release
	s.release = nil
	release()
}

// Active reports whether the handler is still connected.
func (s *Subscription) Active() bool {
	return s != nil && s.release != nil
}

// Group collects subscriptions so they can be released together.
type Group struct {
	subs []*Subscription
}

// Add appends subscriptions to the group. Nil entries are ignored.
func (g *Group) Add(subs ...*Subscription) {
	for _, sub := range subs {
		if sub != nil {
			g.subs = append(g.subs, sub)
		}
	}
}

// Release releases every subscription in the group and empties it.
func (g *Group) Release() {
	for _, sub := range g.subs {
		sub.Release()
	}
	g.subs = nil
}

// Len returns the number of subscriptions held.
func (g *Group) Len() int {
	return len(g.subs)
}
