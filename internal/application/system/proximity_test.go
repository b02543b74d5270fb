package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/charctl/internal/application/control"
	"github.com/younwookim/charctl/internal/domain/entity"
)

type proximityLog struct {
	entered []control.Interactable
	left    []control.Interactable
}

func (l *proximityLog) enter(i control.Interactable) { l.entered = append(l.entered, i) }
func (l *proximityLog) leave(i control.Interactable) { l.left = append(l.left, i) }

func TestProximitySensor(t *testing.T) {
	t.Run("enter and leave", func(t *testing.T) {
		sensor := NewProximitySensor(160, 96, 20)
		sign := NewPropAdapter(entity.NewProp(1, entity.PropSign, 64, 64))
		sensor.Add(sign)
		log := &proximityLog{}

		sensor.Update(72, 60, log.enter, log.leave)
		sensor.Update(74, 60, log.enter, log.leave)

		assert.Equal(t, []control.Interactable{sign}, log.entered, "entered once")
		assert.True(t, sensor.Inside(sign))

		sensor.Update(140, 20, log.enter, log.leave)

		assert.Equal(t, []control.Interactable{sign}, log.left)
		assert.False(t, sensor.Inside(sign))
	})

	t.Run("only overlapping props", func(t *testing.T) {
		sensor := NewProximitySensor(160, 96, 8)
		near := NewPropAdapter(entity.NewProp(1, entity.PropSign, 32, 64))
		far := NewPropAdapter(entity.NewProp(2, entity.PropSign, 112, 64))
		sensor.Add(near)
		sensor.Add(far)
		log := &proximityLog{}

		sensor.Update(40, 60, log.enter, log.leave)

		assert.Equal(t, []control.Interactable{near}, log.entered)
	})

	t.Run("same cell but no overlap", func(t *testing.T) {
		sensor := NewProximitySensor(160, 96, 2)
		sign := NewPropAdapter(entity.NewProp(1, entity.PropSign, 72, 72))
		sensor.Add(sign)
		log := &proximityLog{}

		// Probe spans 66..70, the prop starts at 72; both touch cell 4
		sensor.Update(68, 76, log.enter, log.leave)

		assert.Empty(t, log.entered)
	})

	t.Run("touching edges count as inside", func(t *testing.T) {
		sensor := NewProximitySensor(160, 96, 2)
		sign := NewPropAdapter(entity.NewProp(1, entity.PropSign, 72, 72))
		sensor.Add(sign)
		log := &proximityLog{}

		// Box spans 68..72 and meets the prop's left edge
		sensor.Update(70, 76, log.enter, log.leave)

		assert.Equal(t, []control.Interactable{sign}, log.entered)
	})

	t.Run("removed props are forgotten silently", func(t *testing.T) {
		sensor := NewProximitySensor(160, 96, 20)
		sign := NewPropAdapter(entity.NewProp(1, entity.PropSign, 64, 64))
		sensor.Add(sign)
		sensor.Add(sign)
		log := &proximityLog{}
		sensor.Update(72, 60, log.enter, log.leave)

		sensor.Remove(sign)
		sensor.Remove(sign)
		sensor.Update(72, 60, log.enter, log.leave)

		assert.Len(t, log.entered, 1)
		assert.Empty(t, log.left)
		assert.False(t, sensor.Inside(sign))
	})

	t.Run("nil callbacks", func(t *testing.T) {
		sensor := NewProximitySensor(160, 96, 20)
		sign := NewPropAdapter(entity.NewProp(1, entity.PropSign, 64, 64))
		sensor.Add(sign)

		assert.NotPanics(t, func() {
			sensor.Update(72, 60, nil, nil)
			sensor.Update(140, 20, nil, nil)
		})
	})
}
