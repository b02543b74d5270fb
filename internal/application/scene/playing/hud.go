package playing

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudTextSize    = 10
	hudMessageSize = 12
)

// hud draws text with the Go font. Faces are created on first use.
type hud struct {
	source  *text.GoTextFaceSource
	small   text.Face
	message text.Face
}

func (h *hud) load() bool {
	if h.source != nil {
		return true
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return false
	}
	h.source = src
	h.small = &text.GoTextFace{Source: src, Size: hudTextSize}
	h.message = &text.GoTextFace{Source: src, Size: hudMessageSize}
	return true
}

func (h *hud) draw(screen *ebiten.Image, msg string, face text.Face, size, x, y float64, align text.Align, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = size * 1.4
	op.PrimaryAlign = align
	text.Draw(screen, msg, face, op)
}

// status prints one line of state above the health bar
func (h *hud) status(screen *ebiten.Image, msg string, x, y int) {
	if !h.load() {
		ebitenutil.DebugPrintAt(screen, msg, x, y)
		return
	}
	h.draw(screen, msg, h.small, hudTextSize, float64(x), float64(y), text.AlignStart, colornames.Whitesmoke)
}

// sign shows a sign's message in a box along the top of the screen
func (h *hud) sign(screen *ebiten.Image, msg string, screenW int) {
	ebitenutil.DrawRect(screen, 8, 16, float64(screenW-16), 22, color.RGBA{0, 0, 0, 180})
	if !h.load() {
		ebitenutil.DebugPrintAt(screen, msg, 12, 20)
		return
	}
	h.draw(screen, msg, h.message, hudMessageSize, float64(screenW)/2, 20, text.AlignCenter, colornames.Lightyellow)
}

// banner centers msg on a tinted screen
func (h *hud) banner(screen *ebiten.Image, tint color.Color, msg string, screenW, screenH int) {
	ebitenutil.DrawRect(screen, 0, 0, float64(screenW), float64(screenH), tint)
	if !h.load() {
		ebitenutil.DebugPrintAt(screen, msg, screenW/2-60, screenH/2-20)
		return
	}
	h.draw(screen, msg, h.message, hudMessageSize, float64(screenW)/2, float64(screenH)/2-20, text.AlignCenter, colornames.White)
}
