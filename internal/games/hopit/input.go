package hopit

import (
	"github.com/vovakirdan/hopit/internal/config"
	"github.com/vovakirdan/hopit/internal/core"
)

// Intent is the normalized horizontal movement for one frame.
type Intent struct {
	DX float64
}

// Normalizer folds keyboard holds and on-screen button holds into a single
// Intent. Button holds are tiered: short holds move slowly, long holds fast.
type Normalizer struct {
	cfg       config.InputConfig
	leftHold  int
	rightHold int
}

// NewNormalizer creates a normalizer with zeroed hold counters.
func NewNormalizer(cfg config.InputConfig) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// Reset zeroes both hold counters.
func (n *Normalizer) Reset() {
	n.leftHold = 0
	n.rightHold = 0
}

// Holds returns the current left and right button hold counters.
func (n *Normalizer) Holds() (left, right int) {
	return n.leftHold, n.rightHold
}

// Normalize computes the intent for a frame and updates facingLeft when the
// intent is nonzero. Right is evaluated after left and wins when both are active.
func (n *Normalizer) Normalize(in core.InputFrame, facingLeft *bool) Intent {
	n.leftHold = n.track(n.leftHold, in.Has(core.ActionButtonLeft))
	n.rightHold = n.track(n.rightHold, in.Has(core.ActionButtonRight))

	var dx float64
	if v, ok := n.direction(in.Has(core.ActionLeft), in.Has(core.ActionButtonLeft), n.leftHold); ok {
		dx = -v
	}
	if v, ok := n.direction(in.Has(core.ActionRight), in.Has(core.ActionButtonRight), n.rightHold); ok {
		dx = v
	}

	if facingLeft != nil {
		switch {
		case dx < 0:
			*facingLeft = true
		case dx > 0:
			*facingLeft = false
		}
	}
	return Intent{DX: dx}
}

func (n *Normalizer) track(counter int, held bool) int {
	if !held {
		return 0
	}
	return counter + 1
}

// direction returns the magnitude for one side. Keyboard beats the button.
func (n *Normalizer) direction(key, button bool, hold int) (float64, bool) {
	switch {
	case key:
		return n.cfg.KeyboardSpeed, true
	case button && hold < n.cfg.HoldThreshold:
		return n.cfg.ButtonSlowSpeed, true
	case button:
		return n.cfg.ButtonFastSpeed, true
	default:
		return 0, false
	}
}
