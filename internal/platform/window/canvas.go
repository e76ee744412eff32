package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Debug font metrics in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// imageCanvas implements core.Canvas over an ebiten image in canvas pixels.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) FillRect(x, y, w, h float64, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col.RGBA(), false)
}

func (c imageCanvas) FillCircle(x, y, r float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), col.RGBA(), true)
}

// FillText draws with the debug font, which is fixed size and white; y is
// the baseline.
func (c imageCanvas) FillText(text string, x, y float64, _ core.Font, align core.Align, _ core.Color) {
	px, py := textOrigin(text, x, y, align)
	ebitenutil.DebugPrintAt(c.dst, text, px, py)
}

// textOrigin converts a baseline anchor into the top-left corner the debug
// printer expects.
func textOrigin(text string, x, y float64, align core.Align) (int, int) {
	w := len([]rune(text)) * glyphW
	px := int(x)
	switch align {
	case core.AlignCenter:
		px -= w / 2
	case core.AlignRight:
		px -= w
	}
	return px, int(y) - glyphH
}
