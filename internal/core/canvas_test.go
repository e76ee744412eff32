package core

import (
	"strings"
	"testing"
)

func TestViewportFillRectScales(t *testing.T) {
	s := NewScreen(10, 5)
	v := NewViewport(s, NewRect(0, 0, 10, 5), 100, 50)

	// 20x10 units at (10, 10) cover cells x 1..2, y 1
	v.FillRect(10, 10, 20, 10, ColorRed)

	for x := 1; x < 3; x++ {
		if c := s.GetCell(x, 1); c.Rune != FillGlyph || c.Color != ColorRed {
			t.Errorf("GetCell(%d, 1) = %+v, expected red fill", x, c)
		}
	}
	if s.Get(0, 1) != ' ' || s.Get(3, 1) != ' ' {
		t.Error("FillRect should not spill outside the scaled span")
	}
}

func TestViewportThinRectStaysVisible(t *testing.T) {
	s := NewScreen(10, 5)
	v := NewViewport(s, NewRect(0, 0, 10, 5), 1000, 500)

	v.FillRect(500, 100, 4, 4, ColorWhite)
	if s.Get(5, 1) != FillGlyph {
		t.Errorf("thin rect should occupy one cell, row 1 = %q", s.Row(1))
	}
}

func TestViewportBlackIsBackground(t *testing.T) {
	s := NewScreen(4, 2)
	v := NewViewport(s, NewRect(0, 0, 4, 2), 4, 2)
	v.FillRect(0, 0, 4, 2, ColorWhite)
	v.FillRect(0, 0, 4, 2, ColorBlack)

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("black fill should blank the cells, got %q", s.String())
	}
}

func TestViewportSmallCircleIsDot(t *testing.T) {
	s := NewScreen(10, 10)
	v := NewViewport(s, NewRect(0, 0, 10, 10), 100, 100)

	v.FillCircle(55, 55, 2, ColorWhite)
	if s.Get(5, 5) != DotGlyph {
		t.Errorf("small circle should render as a dot at (5, 5), got %q", s.Get(5, 5))
	}
}

func TestViewportTextAlignment(t *testing.T) {
	s := NewScreen(20, 3)
	v := NewViewport(s, NewRect(0, 0, 20, 3), 20, 3)

	v.FillText("WIN", 10, 1, Font{}, AlignCenter, ColorWhite)
	if got := s.Row(1)[9:12]; got != "WIN" {
		t.Errorf("centered text = %q, expected WIN at column 9", s.Row(1))
	}

	v.FillText("R", 20, 2, Font{}, AlignRight, ColorWhite)
	if s.Get(19, 2) != 'R' {
		t.Errorf("right-aligned text should end at the edge, row = %q", s.Row(2))
	}
}

func TestViewportIgnoresShapesOutsideCanvas(t *testing.T) {
	s := NewScreen(20, 10)
	v := NewViewport(s, NewRect(5, 2, 10, 5), 20, 10)

	v.FillRect(-10, 0, 4, 4, ColorRed)
	v.FillRect(25, 3, 4, 4, ColorRed)
	v.FillRect(0, 12, 4, 4, ColorRed)

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("shapes outside the canvas should draw nothing, got %q", s.String())
	}
}

func TestViewportOffsetAndToCanvas(t *testing.T) {
	s := NewScreen(20, 10)
	v := NewViewport(s, NewRect(5, 2, 10, 5), 20, 10)

	v.FillRect(0, 0, 2, 2, ColorRed)
	if s.Get(5, 2) != FillGlyph {
		t.Error("drawing at the canvas origin should land on the region origin")
	}

	x, y, ok := v.ToCanvas(5, 2)
	if !ok || x != 1 || y != 1 {
		t.Errorf("ToCanvas(5, 2) = (%v, %v, %v), expected (1, 1, true)", x, y, ok)
	}

	if _, _, ok := v.ToCanvas(0, 0); ok {
		t.Error("ToCanvas outside the region should report ok=false")
	}
}
