package hopit

import (
	"math/rand"

	"github.com/vovakirdan/hopit/internal/config"
	"github.com/vovakirdan/hopit/internal/core"
)

// Pickup is a power-up that suspends gravity for a while.
type Pickup struct {
	Box core.RectF
}

// PickupGenerator spawns at most one pickup per height threshold.
//
// Thresholds are multiples of Interval. The generator latches the last
// threshold index it observed, so each crossing is consumed exactly once
// whether or not a pickup could be placed.
type PickupGenerator struct {
	rng       *rand.Rand
	cfg       config.PickupConfig
	world     config.WorldConfig
	threshold int
}

// NewPickupGenerator creates a generator drawing from rng.
func NewPickupGenerator(rng *rand.Rand, cfg config.PickupConfig, world config.WorldConfig) *PickupGenerator {
	return &PickupGenerator{rng: rng, cfg: cfg, world: world}
}

// Reset clears the threshold latch.
func (pg *PickupGenerator) Reset() {
	pg.threshold = 0
}

// Threshold returns the last threshold index consumed.
func (pg *PickupGenerator) Threshold() int {
	return pg.threshold
}

// Generate spawns a pickup above the highest platform when height crosses a
// new threshold, exceeds MinScore, and no pickup is live.
func (pg *PickupGenerator) Generate(s *Session, height int) *Pickup {
	if pg.cfg.Interval <= 0 {
		return nil
	}
	idx := height / pg.cfg.Interval
	if idx <= pg.threshold {
		return nil
	}
	pg.threshold = idx

	if s.Pickup != nil || height <= pg.cfg.MinScore || s.highest == nil {
		return nil
	}

	cx := between(pg.rng, pg.cfg.MarginX, int(pg.world.Width)-pg.cfg.MarginX)
	dy := between(pg.rng, pg.cfg.MinOffsetY, pg.cfg.MaxOffsetY)
	cy := s.highest.Box.Y - float64(dy)

	s.Pickup = &Pickup{Box: core.RectFromCenter(float64(cx), cy, pg.cfg.Size, pg.cfg.Size)}
	return s.Pickup
}

// Update scrolls the live pickup and drops it below the screen.
func (pg *PickupGenerator) Update(s *Session, shift int) {
	if s.Pickup == nil {
		return
	}
	s.Pickup.Box.Y += float64(shift)
	if s.Pickup.Box.Top() > pg.world.Height {
		s.Pickup = nil
	}
}
