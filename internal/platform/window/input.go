package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// keyState reports whether a key is held, or was pressed this tick.
type keyState func(ebiten.Key) bool

// heldKeys map to actions for every tick the key is down.
var heldKeys = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
}

// pressedKeys map to actions once per press.
var pressedKeys = map[ebiten.Key]core.Action{
	ebiten.KeyP:      core.ActionPause,
	ebiten.KeySpace:  core.ActionPause,
	ebiten.KeyR:      core.ActionRestart,
	ebiten.KeyQ:      core.ActionQuit,
	ebiten.KeyEscape: core.ActionQuit,
}

// readKeys fills the frame from the current keyboard state.
func readKeys(frame *core.InputFrame, held, pressed keyState) {
	for k, a := range heldKeys {
		if held(k) {
			frame.Set(a)
		}
	}
	for k, a := range pressedKeys {
		if pressed(k) {
			frame.Set(a)
		}
	}
}

// pointerTracker reports the cursor only when it moved, so a still mouse
// does not override keyboard control.
type pointerTracker struct {
	x, y  int
	known bool
}

// update records the cursor and sets the frame pointer on movement inside
// the w×h canvas.
func (p *pointerTracker) update(frame *core.InputFrame, x, y int, w, h float64) {
	moved := !p.known || x != p.x || y != p.y
	p.x, p.y, p.known = x, y, true
	if !moved {
		return
	}
	if x < 0 || y < 0 || float64(x) >= w || float64(y) >= h {
		return
	}
	frame.SetPointer(float64(x), float64(y))
}
