package system

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/charctl/internal/application/control"
)

const (
	highlightLow    = 0.35
	highlightHigh   = 1.0
	highlightPeriod = 0.45
)

// Highlight pulses the glow of the active interactable
type Highlight struct {
	tween  *gween.Tween
	target control.Interactable
	rising bool
	value  float32
}

// NewHighlight creates an idle highlight
func NewHighlight() *Highlight {
	h := &Highlight{}
	h.restart(true)
	return h
}

// Target returns the interactable being highlighted
func (h *Highlight) Target() control.Interactable {
	return h.target
}

// Value returns the current glow, 0 when nothing is highlighted
func (h *Highlight) Value() float32 {
	return h.value
}

// Update follows the active interactable and advances the pulse
func (h *Highlight) Update(active control.Interactable, dt float64) {
	if active != h.target {
		h.target = active
		h.restart(true)
	}
	if h.target == nil {
		h.value = 0
		return
	}

	v, done := h.tween.Update(float32(dt))
	h.value = v
	if done {
		h.restart(!h.rising)
	}
}

func (h *Highlight) restart(rising bool) {
	h.rising = rising
	if rising {
		h.tween = gween.New(highlightLow, highlightHigh, highlightPeriod, ease.OutQuad)
	} else {
		h.tween = gween.New(highlightHigh, highlightLow, highlightPeriod, ease.InQuad)
	}
}
