package hopit

import (
	"unicode/utf8"

	"github.com/vovakirdan/hopit/internal/config"
	"github.com/vovakirdan/hopit/internal/core"
)

// On-screen control geometry in world units.
const (
	buttonPadding = 30
	buttonSize    = 60
	toggleSize    = 36
)

// Controls holds the world-space regions of the on-screen buttons.
type Controls struct {
	Left  core.RectF
	Right core.RectF
	Music core.RectF
	Sound core.RectF
}

// ControlsFor lays out the movement buttons in the bottom corners and the
// audio toggles in the top-left corner below the score panel.
func ControlsFor(w config.WorldConfig) Controls {
	bottom := w.Height - buttonPadding - buttonSize
	return Controls{
		Left:  core.NewRectF(buttonPadding, bottom, buttonSize, buttonSize),
		Right: core.NewRectF(w.Width-buttonPadding-buttonSize, bottom, buttonSize, buttonSize),
		Music: core.NewRectF(10, 40, toggleSize, toggleSize),
		Sound: core.NewRectF(10+toggleSize+8, 40, toggleSize, toggleSize),
	}
}

// HitTest returns the action of the control containing the world point.
func (c Controls) HitTest(x, y float64) core.Action {
	p := core.NewRectF(x, y, 0, 0)
	switch {
	case contains(c.Left, p):
		return core.ActionButtonLeft
	case contains(c.Right, p):
		return core.ActionButtonRight
	case contains(c.Music, p):
		return core.ActionToggleMusic
	case contains(c.Sound, p):
		return core.ActionToggleSound
	default:
		return core.ActionNone
	}
}

func contains(r, p core.RectF) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Layout maps the world onto a terminal cell grid. Row 0 is the HUD and the
// last row holds the buttons; the field fills the rows between.
type Layout struct {
	W, H     int
	FieldTop int
	FieldH   int
	world    config.WorldConfig
}

// NewLayout computes a layout for a screen of w x h cells.
func NewLayout(world config.WorldConfig, w, h int) Layout {
	fieldH := h - 2
	if fieldH < 1 {
		fieldH = 1
	}
	return Layout{W: w, H: h, FieldTop: 1, FieldH: fieldH, world: world}
}

// ToCell converts a world point to a cell.
func (l Layout) ToCell(x, y float64) (int, int) {
	col := int(x * float64(l.W) / l.world.Width)
	row := l.FieldTop + int(y*float64(l.FieldH)/l.world.Height)
	return col, row
}

// CellRect converts a world rectangle to the cells it covers. Every visible
// rectangle covers at least one cell.
func (l Layout) CellRect(r core.RectF) core.Rect {
	x0, y0 := l.ToCell(r.Left(), r.Top())
	x1, y1 := l.ToCell(r.Right(), r.Bottom())
	w := core.Max(x1-x0, 1)
	h := core.Max(y1-y0, 1)
	return core.NewRect(x0, y0, w, h)
}

// LeftButton returns the cells of the left movement button.
func (l Layout) LeftButton() core.Rect {
	return core.NewRect(1, l.H-1, utf8.RuneCountInString(leftLabel), 1)
}

// RightButton returns the cells of the right movement button.
func (l Layout) RightButton() core.Rect {
	return core.NewRect(l.W-1-utf8.RuneCountInString(rightLabel), l.H-1, utf8.RuneCountInString(rightLabel), 1)
}

// MusicButton returns the cells of the music toggle.
func (l Layout) MusicButton() core.Rect {
	return core.NewRect(l.W/2-toggleWidth-1, l.H-1, toggleWidth, 1)
}

// SoundButton returns the cells of the sound toggle.
func (l Layout) SoundButton() core.Rect {
	return core.NewRect(l.W/2+1, l.H-1, toggleWidth, 1)
}

// HitTest returns the action bound to the cell, or ActionNone.
func (l Layout) HitTest(x, y int) core.Action {
	switch {
	case l.LeftButton().Contains(x, y):
		return core.ActionButtonLeft
	case l.RightButton().Contains(x, y):
		return core.ActionButtonRight
	case l.MusicButton().Contains(x, y):
		return core.ActionToggleMusic
	case l.SoundButton().Contains(x, y):
		return core.ActionToggleSound
	default:
		return core.ActionNone
	}
}
