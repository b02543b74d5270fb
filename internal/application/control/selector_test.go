package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/domain/event"
)

func TestSelector_NearestEligibleWins(t *testing.T) {
	s := NewSelector(nil)
	c1 := newFakeInteractable("c1", 5, true)
	c2 := newFakeInteractable("c2", 2, false)
	c3 := newFakeInteractable("c3", 8, true)
	s.Approach(c1)
	s.Approach(c2)
	s.Approach(c3)

	s.Tick(true, entity.Vec2{})

	assert.Same(t, c1, s.Active())
	assert.True(t, c1.active)
	assert.False(t, c2.active)
	assert.False(t, c3.active)
	for _, c := range []*fakeInteractable{c1, c2, c3} {
		assert.Equal(t, 1, c.marks, "%s marked once", c.name)
	}
}

func TestSelector_SortsByDistance(t *testing.T) {
	s := NewSelector(nil)
	far := newFakeInteractable("far", 9, true)
	near := newFakeInteractable("near", -1, true)
	mid := newFakeInteractable("mid", 4, true)
	s.Approach(far)
	s.Approach(near)
	s.Approach(mid)

	s.Tick(true, entity.Vec2{})

	assert.Equal(t, []Interactable{near, mid, far}, s.Candidates())
	assert.Same(t, near, s.Active())
}

func TestSelector_TiesKeepInsertionOrder(t *testing.T) {
	s := NewSelector(nil)
	a := newFakeInteractable("a", 3, true)
	b := newFakeInteractable("b", -3, true)
	s.Approach(a)
	s.Approach(b)

	s.Tick(true, entity.Vec2{})

	assert.Same(t, a, s.Active())
}

func TestSelector_NothingEligible(t *testing.T) {
	s := NewSelector(nil)
	c := newFakeInteractable("c", 1, false)
	s.Approach(c)

	s.Tick(true, entity.Vec2{})

	assert.Nil(t, s.Active())
	assert.False(t, c.active)
	assert.Equal(t, 1, c.marks)
}

func TestSelector_NotReadyClears(t *testing.T) {
	s := NewSelector(nil)
	c := newFakeInteractable("c", 1, true)
	s.Approach(c)
	s.Tick(true, entity.Vec2{})
	require.True(t, c.active)

	s.Tick(false, entity.Vec2{})

	assert.Nil(t, s.Active())
	assert.False(t, c.active)
	assert.Equal(t, 2, c.marks)
}

func TestSelector_FollowsOrigin(t *testing.T) {
	s := NewSelector(nil)
	left := newFakeInteractable("left", -5, true)
	right := newFakeInteractable("right", 5, true)
	s.Approach(left)
	s.Approach(right)

	s.Tick(true, entity.Vec2{X: -4})
	assert.Same(t, left, s.Active())

	s.Tick(true, entity.Vec2{X: 4})
	assert.Same(t, right, s.Active())
	assert.False(t, left.active)
}

func TestSelector_ApproachIsIdempotent(t *testing.T) {
	s := NewSelector(nil)
	c := newFakeInteractable("c", 1, true)

	s.Approach(c)
	s.Approach(c)
	s.Approach(nil)

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(c))
}

func TestSelector_Leave(t *testing.T) {
	t.Run("leaving the active choice clears it", func(t *testing.T) {
		s := NewSelector(nil)
		c := newFakeInteractable("c", 1, true)
		s.Approach(c)
		s.Tick(true, entity.Vec2{})
		require.Same(t, c, s.Active())

		s.Leave(c)

		assert.Nil(t, s.Active())
		assert.False(t, c.active)
		assert.Equal(t, 0, s.Len())

		s.Tick(true, entity.Vec2{})
		assert.Nil(t, s.Active())
	})

	t.Run("leaving an unknown candidate only marks it", func(t *testing.T) {
		s := NewSelector(nil)
		c := newFakeInteractable("c", 1, true)

		assert.NotPanics(t, func() { s.Leave(c) })
		assert.Equal(t, 1, c.marks)
		assert.NotPanics(t, func() { s.Leave(nil) })
	})

	t.Run("next nearest takes over", func(t *testing.T) {
		s := NewSelector(nil)
		near := newFakeInteractable("near", 1, true)
		far := newFakeInteractable("far", 3, true)
		s.Approach(near)
		s.Approach(far)
		s.Tick(true, entity.Vec2{})

		s.Leave(near)
		s.Tick(true, entity.Vec2{})

		assert.Same(t, far, s.Active())
	})
}

func TestSelector_Death(t *testing.T) {
	t.Run("dying candidate leaves", func(t *testing.T) {
		s := NewSelector(nil)
		m := fakeMortal{newFakeInteractable("wisp", 1, true)}
		s.Approach(m)
		s.Tick(true, entity.Vec2{})
		require.Equal(t, 1, m.death.Len())

		m.death.Emit(event.Death{Cause: event.CauseExpired})

		assert.Equal(t, 0, s.Len())
		assert.Nil(t, s.Active())
		assert.False(t, m.active)
		assert.Equal(t, 0, m.death.Len(), "death subscription released")
	})

	t.Run("leave releases the death subscription", func(t *testing.T) {
		s := NewSelector(nil)
		m := fakeMortal{newFakeInteractable("wisp", 1, true)}
		s.Approach(m)

		s.Leave(m)

		assert.Equal(t, 0, m.death.Len())
		assert.NotPanics(t, func() { m.death.Emit(event.Death{}) })
	})

	t.Run("approach twice subscribes once", func(t *testing.T) {
		s := NewSelector(nil)
		m := fakeMortal{newFakeInteractable("wisp", 1, true)}

		s.Approach(m)
		s.Approach(m)

		assert.Equal(t, 1, m.death.Len())
	})
}

func TestSelector_Clear(t *testing.T) {
	s := NewSelector(nil)
	a := newFakeInteractable("a", 1, true)
	m := fakeMortal{newFakeInteractable("b", 2, true)}
	s.Approach(a)
	s.Approach(m)
	s.Tick(true, entity.Vec2{})

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Active())
	assert.False(t, a.active)
	assert.Equal(t, 0, m.death.Len())
}
