package core

import "math"

// Align is the horizontal anchoring of text relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font describes requested text styling. Backends honor what they can.
type Font struct {
	Size float64 // Pixel height on a canvas backend
	Bold bool
}

// Canvas is the renderer contract games draw against. Coordinates are canvas
// units (the game's logical pixels); nothing is returned to the caller.
type Canvas interface {
	FillRect(x, y, w, h float64, c Color)
	FillCircle(x, y, r float64, c Color)
	FillText(text string, x, y float64, font Font, align Align, c Color)
}

// Glyphs used when rasterizing canvas fills into terminal cells.
const (
	FillGlyph = '█'
	DotGlyph  = '●'
)

// Viewport rasterizes a canvas of CanvasW×CanvasH units into a region of a Screen.
type Viewport struct {
	screen  *Screen
	region  Rect
	canvasW float64
	canvasH float64
}

// NewViewport maps a canvasW×canvasH canvas onto region of dst.
func NewViewport(dst *Screen, region Rect, canvasW, canvasH float64) *Viewport {
	return &Viewport{screen: dst, region: region, canvasW: canvasW, canvasH: canvasH}
}

// Region returns the screen cells covered by the viewport.
func (v *Viewport) Region() Rect {
	return v.region
}

func (v *Viewport) scaleX() float64 { return float64(v.region.W) / v.canvasW }
func (v *Viewport) scaleY() float64 { return float64(v.region.H) / v.canvasH }

// cellSpan converts a canvas interval to a half-open cell interval that always
// covers at least one cell, so thin objects stay visible.
func cellSpan(from, to, scale float64) (int, int) {
	c0 := int(math.Round(from * scale))
	c1 := int(math.Round(to * scale))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	return c0, c1
}

func glyphFor(c Color) rune {
	if c == ColorBlack {
		return ' '
	}
	return FillGlyph
}

// FillRect implements Canvas.
func (v *Viewport) FillRect(x, y, w, h float64, c Color) {
	x0, x1 := cellSpan(x, x+w, v.scaleX())
	y0, y1 := cellSpan(y, y+h, v.scaleY())
	cells := Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
	if !cells.Intersects(v.bounds()) {
		return
	}
	cells = cells.Clip(v.region.W, v.region.H)
	cells.X += v.region.X
	cells.Y += v.region.Y
	v.screen.FillRect(cells, Cell{Rune: glyphFor(c), Color: c})
}

// FillCircle implements Canvas. Cells whose centers fall inside the circle are
// filled; a circle smaller than a cell in both directions is drawn as a dot.
func (v *Viewport) FillCircle(x, y, r float64, c Color) {
	sx, sy := v.scaleX(), v.scaleY()
	if 2*r*sx < 1 && 2*r*sy < 1 {
		cx, cy := int(x*sx), int(y*sy)
		if v.inside(cx, cy) {
			v.screen.SetCell(cx+v.region.X, cy+v.region.Y, Cell{Rune: DotGlyph, Color: c})
		}
		return
	}

	x0, x1 := cellSpan(x-r, x+r, sx)
	y0, y1 := cellSpan(y-r, y+r, sy)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			px := (float64(cx) + 0.5) / sx
			py := (float64(cy) + 0.5) / sy
			if (px-x)*(px-x)+(py-y)*(py-y) > r*r || !v.inside(cx, cy) {
				continue
			}
			v.screen.SetCell(cx+v.region.X, cy+v.region.Y, Cell{Rune: glyphFor(c), Color: c})
		}
	}
}

// FillText implements Canvas. The y coordinate is the text baseline.
func (v *Viewport) FillText(text string, x, y float64, _ Font, align Align, c Color) {
	col := int(math.Round(x * v.scaleX()))
	row := int(y * v.scaleY())
	if row >= v.region.H {
		row = v.region.H - 1
	}
	n := len([]rune(text))
	switch align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}
	i := 0
	for _, r := range text {
		if v.inside(col+i, row) {
			v.screen.SetCell(col+i+v.region.X, row+v.region.Y, Cell{Rune: r, Color: c})
		}
		i++
	}
}

// bounds is the viewport region in region-local cells.
func (v *Viewport) bounds() Rect {
	return NewRect(0, 0, v.region.W, v.region.H)
}

func (v *Viewport) inside(cx, cy int) bool {
	return v.bounds().Contains(cx, cy)
}

// ToCanvas converts a screen cell (as reported by the terminal) into canvas
// units, accounting for the viewport's offset on the screen. The point maps to
// the cell's center. ok is false for cells outside the viewport.
func (v *Viewport) ToCanvas(cellX, cellY int) (x, y float64, ok bool) {
	if !v.region.Contains(cellX, cellY) {
		return 0, 0, false
	}
	lx, ly := cellX-v.region.X, cellY-v.region.Y
	return (float64(lx) + 0.5) / v.scaleX(), (float64(ly) + 0.5) / v.scaleY(), true
}
