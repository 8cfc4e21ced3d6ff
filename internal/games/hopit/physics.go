package hopit

import (
	"math"

	"github.com/vovakirdan/hopit/internal/config"
)

// Outcome reports what happened during one physics step.
type Outcome struct {
	CameraShift int
	Bounced     *Platform // Platform bounced off this frame, or nil
	Collected   bool      // Pickup collected this frame
}

// Physics moves the hero and resolves platform and pickup collisions.
type Physics struct {
	physics config.PhysicsConfig
	world   config.WorldConfig
	hero    config.HeroConfig
	power   config.PowerConfig
}

// NewPhysics creates a physics engine from the configuration.
func NewPhysics(cfg config.HopConfig) *Physics {
	return &Physics{
		physics: cfg.Physics,
		world:   cfg.World,
		hero:    cfg.Hero,
		power:   cfg.Power,
	}
}

// Step advances the hero one frame.
func (ph *Physics) Step(s *Session, in Intent) Outcome {
	h := &s.Hero
	var out Outcome

	// Gravity
	if !h.HasPower {
		h.VerticalSpeed += ph.physics.FallSpeed
	}
	dy := h.VerticalSpeed
	h.animate(ph.hero.AnimationSpeed, ph.power)

	// Horizontal, clamped to the remaining distance to each edge
	dx := in.DX
	if h.Box.Left()+dx < 0 {
		dx = -h.Box.Left()
	}
	if h.Box.Right()+dx > ph.world.Width {
		dx = ph.world.Width - h.Box.Right()
	}

	// Platforms
	if p := ph.landing(s, dy); p != nil {
		h.Bounce(p.Box.Top(), ph.physics.LaunchVelocity)
		dy = 0
		out.Bounced = p
	}

	// Pickup
	if s.Pickup != nil && h.Box.Intersects(s.Pickup.Box) {
		h.PowerUp(ph.physics.PickupBoost)
		s.Pickup = nil
		out.Collected = true
	}

	// Camera. The hero holds its row while the world scrolls; only the
	// whole-row part of the climb moves platforms and score.
	if h.Box.Top() <= ph.world.CameraBoundary && h.VerticalSpeed < 0 {
		out.CameraShift = int(math.Trunc(-dy))
		dy = 0
	}

	h.Box.X += dx
	h.Box.Y += dy
	return out
}

// landing selects the platform the hero bounces off, if any.
//
// Only a falling hero can land. A platform qualifies when the hero box
// displaced by dy overlaps it while the hero's bottom is still above the
// platform's centre line. Among qualifying platforms the surface nearest the hero's bottom wins;
// equal distances go to the earlier platform.
func (ph *Physics) landing(s *Session, dy float64) *Platform {
	h := &s.Hero
	if h.VerticalSpeed <= 0 {
		return nil
	}

	moved := h.Box.Offset(0, dy)
	bottom := h.Box.Bottom()

	var best *Platform
	bestDist := math.Inf(1)
	for _, p := range s.Platforms {
		if !p.Box.Intersects(moved) || bottom >= p.Box.CenterY() {
			continue
		}
		if d := math.Abs(p.Box.Top() - bottom); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// Fallen reports whether the hero's top is below the screen.
func (ph *Physics) Fallen(s *Session) bool {
	return s.Hero.Box.Top() > ph.world.Height
}
