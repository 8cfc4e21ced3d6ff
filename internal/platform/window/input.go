package window

import (
	"github.com/vovakirdan/hopit/internal/core"
	"github.com/vovakirdan/hopit/internal/games/hopit"
)

// Point is a pointer position in world units.
type Point struct {
	X, Y float64
}

// Poll is the raw device state sampled once per tick.
type Poll struct {
	Left, Right bool // Direction keys held

	Start, Retry, Menu bool // Just pressed this tick
	Music, Sound, Quit bool

	Held    []Point // Mouse and touch points currently down
	Pressed []Point // Points that went down this tick
}

// Frame converts a poll into the game input for one tick. Held pointers over
// the movement buttons hold them; fresh presses on the toggles fire once.
func Frame(p Poll, controls hopit.Controls) core.InputFrame {
	frame := core.NewInputFrame()
	set := func(cond bool, a core.Action) {
		if cond {
			frame.Set(a)
		}
	}

	set(p.Left, core.ActionLeft)
	set(p.Right, core.ActionRight)
	set(p.Start, core.ActionStart)
	set(p.Retry, core.ActionRetry)
	set(p.Menu, core.ActionMenu)
	set(p.Music, core.ActionToggleMusic)
	set(p.Sound, core.ActionToggleSound)
	set(p.Quit, core.ActionQuit)

	for _, pt := range p.Held {
		switch a := controls.HitTest(pt.X, pt.Y); a {
		case core.ActionButtonLeft, core.ActionButtonRight:
			frame.Set(a)
		}
	}
	for _, pt := range p.Pressed {
		switch a := controls.HitTest(pt.X, pt.Y); a {
		case core.ActionToggleMusic, core.ActionToggleSound:
			frame.Set(a)
		}
	}
	return frame
}
