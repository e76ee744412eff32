package pong

import "github.com/vovakirdan/canvas-arcade/internal/core"

// recorder is a core.Canvas that keeps the text it was asked to draw.
type recorder struct {
	circles int
	texts   []string
}

func (r *recorder) FillRect(_, _, _, _ float64, _ core.Color) {}

func (r *recorder) FillCircle(_, _, _ float64, _ core.Color) {
	r.circles++
}

func (r *recorder) FillText(text string, _, _ float64, _ core.Font, _ core.Align, _ core.Color) {
	r.texts = append(r.texts, text)
}
