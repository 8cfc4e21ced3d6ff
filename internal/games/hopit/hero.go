package hopit

import (
	"github.com/vovakirdan/hopit/internal/config"
	"github.com/vovakirdan/hopit/internal/core"
)

// AnimationPhase is the hero pose shown by renderers.
type AnimationPhase int

const (
	AscendA AnimationPhase = iota
	AscendB
	DescendA
	DescendB
	Powered
)

// String returns the pose name.
func (p AnimationPhase) String() string {
	switch p {
	case AscendA:
		return "AscendA"
	case AscendB:
		return "AscendB"
	case DescendA:
		return "DescendA"
	case DescendB:
		return "DescendB"
	case Powered:
		return "Powered"
	default:
		return "Unknown"
	}
}

// Hero is the player-controlled entity.
type Hero struct {
	Box           core.RectF
	VerticalSpeed float64 // Negative is up
	FacingLeft    bool
	HasPower      bool
	PowerTimer    int // Frames into the current charge
	PowerCharges  int // Charges consumed since collection
	Pose          AnimationPhase
	AnimTimer     int
}

// Reset places the hero at the spawn point with zero velocity and no power.
func (h *Hero) Reset(cfg config.HeroConfig) {
	*h = Hero{
		Box:  core.RectFromCenter(cfg.SpawnX, cfg.SpawnY, cfg.Width, cfg.Height),
		Pose: AscendA,
	}
}

// PowerUp enters the powered state with the given upward boost.
func (h *Hero) PowerUp(boost float64) {
	h.HasPower = true
	h.PowerTimer = 0
	h.PowerCharges = 0
	h.VerticalSpeed = boost
	h.Pose = Powered
}

// Bounce snaps the hero onto a surface and launches it upward.
func (h *Hero) Bounce(top, launch float64) {
	h.Box.Y = top - h.Box.H
	h.VerticalSpeed = launch
	h.Pose = AscendA
	h.AnimTimer = 0
}

// animate advances the pose and power timers by one frame. It runs after
// gravity, so a power-up suspends gravity for FramesPerCharge*Charges frames.
func (h *Hero) animate(speed int, power config.PowerConfig) {
	h.AnimTimer++

	if h.HasPower {
		h.Pose = Powered
		h.PowerTimer++
		if h.PowerTimer >= power.FramesPerCharge {
			h.PowerTimer = 0
			h.PowerCharges++
			if h.PowerCharges >= power.Charges {
				h.HasPower = false
				h.PowerCharges = 0
				h.Pose = AscendA
			}
		}
		return
	}

	if h.AnimTimer < speed {
		return
	}
	h.AnimTimer = 0
	if h.VerticalSpeed < 0 {
		if h.Pose == AscendA {
			h.Pose = AscendB
		} else {
			h.Pose = AscendA
		}
		return
	}
	if h.Pose == DescendA {
		h.Pose = DescendB
	} else {
		h.Pose = DescendA
	}
}
