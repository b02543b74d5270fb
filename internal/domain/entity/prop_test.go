package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/charctl/internal/domain/event"
)

func TestNewProp(t *testing.T) {
	cart := NewProp(1, PropCart, 40, 80)

	assert.Equal(t, 24, cart.W)
	assert.Equal(t, 16, cart.H)
	cx, cy := cart.Center()
	assert.InDelta(t, 52.0, cx, 0.001)
	assert.InDelta(t, 88.0, cy, 0.001)
	assert.True(t, cart.Usable())
}

func TestProp_Age(t *testing.T) {
	t.Run("expires once", func(t *testing.T) {
		wisp := NewProp(2, PropWisp, 0, 0)
		wisp.Lifetime = 0.1
		var causes []event.Cause
		wisp.Death.Connect(func(d event.Death) { causes = append(causes, d.Cause) })

		assert.False(t, wisp.Age(0.05))
		assert.True(t, wisp.Age(0.05))
		assert.False(t, wisp.Age(0.05))

		assert.True(t, wisp.Dead)
		assert.False(t, wisp.Usable())
		assert.Equal(t, []event.Cause{event.CauseExpired}, causes)
	})

	t.Run("zero lifetime never expires", func(t *testing.T) {
		sign := NewProp(3, PropSign, 0, 0)

		assert.False(t, sign.Age(100))
		assert.False(t, sign.Dead)
	})
}
