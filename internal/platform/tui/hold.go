package tui

import (
	"github.com/vovakirdan/hopit/internal/core"
)

// HoldTracker turns discrete terminal events into per-frame hold actions.
// Terminals report key presses (and autorepeat) but never releases, so a key
// stays held for a fixed number of frames after its last press. Mouse
// buttons report releases and are held until then.
type HoldTracker struct {
	keyFrames int
	keys      map[core.Action]int
	mouse     core.Action
}

// NewHoldTracker creates a tracker that keeps keys held for frames ticks.
func NewHoldTracker(frames int) *HoldTracker {
	if frames < 1 {
		frames = 1
	}
	return &HoldTracker{
		keyFrames: frames,
		keys:      make(map[core.Action]int),
	}
}

// PressKey latches a direction. Pressing the opposite direction releases it.
func (h *HoldTracker) PressKey(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.keys, core.ActionRight)
	case core.ActionRight:
		delete(h.keys, core.ActionLeft)
	}
	h.keys[a] = h.keyFrames
}

// PressMouse holds an on-screen button until ReleaseMouse.
func (h *HoldTracker) PressMouse(a core.Action) {
	h.mouse = a
}

// ReleaseMouse ends the mouse hold.
func (h *HoldTracker) ReleaseMouse() {
	h.mouse = core.ActionNone
}

// Apply sets the held actions on frame and ages the key latches by one tick.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a, left := range h.keys {
		frame.Set(a)
		if left <= 1 {
			delete(h.keys, a)
		} else {
			h.keys[a] = left - 1
		}
	}
	if h.mouse != core.ActionNone {
		frame.Set(h.mouse)
	}
}

// Reset drops every hold.
func (h *HoldTracker) Reset() {
	clear(h.keys)
	h.mouse = core.ActionNone
}
