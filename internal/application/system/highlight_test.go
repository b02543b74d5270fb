package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/charctl/internal/application/control"
	"github.com/younwookim/charctl/internal/domain/entity"
)

func TestHighlight(t *testing.T) {
	t.Run("idle without a target", func(t *testing.T) {
		h := NewHighlight()

		h.Update(nil, frame)

		assert.Nil(t, h.Target())
		assert.Equal(t, float32(0), h.Value())
	})

	t.Run("pulses between low and high", func(t *testing.T) {
		h := NewHighlight()
		sign := NewPropAdapter(entity.NewProp(1, entity.PropSign, 0, 0))

		h.Update(sign, 0.1)
		first := h.Value()
		assert.Equal(t, control.Interactable(sign), h.Target())
		assert.Greater(t, first, float32(highlightLow))
		assert.Less(t, first, float32(highlightHigh))

		sawFall := false
		prev := first
		for i := 0; i < 60; i++ {
			h.Update(sign, frame)
			v := h.Value()
			assert.GreaterOrEqual(t, v, float32(highlightLow))
			assert.LessOrEqual(t, v, float32(highlightHigh))
			if v < prev {
				sawFall = true
			}
			prev = v
		}
		assert.True(t, sawFall, "the glow comes back down")
	})

	t.Run("restarts on a new target", func(t *testing.T) {
		h := NewHighlight()
		a := NewPropAdapter(entity.NewProp(1, entity.PropSign, 0, 0))
		b := NewPropAdapter(entity.NewProp(2, entity.PropSign, 16, 0))
		h.Update(a, 0.3)
		high := h.Value()

		h.Update(b, 0.01)

		assert.Equal(t, control.Interactable(b), h.Target())
		assert.Less(t, h.Value(), high)

		h.Update(nil, frame)
		assert.Equal(t, float32(0), h.Value())
	})
}
