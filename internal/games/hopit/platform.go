package hopit

import (
	"math/rand"

	"github.com/vovakirdan/hopit/internal/config"
	"github.com/vovakirdan/hopit/internal/core"
)

// Platform is a static or horizontally patrolling surface.
type Platform struct {
	Box       core.RectF
	Moving    bool
	Direction int // -1 or +1
	Speed     float64
	MoveTimer int
}

// move advances a patrolling platform one frame. The direction flips when the
// timer expires or the next position would leave [0, width].
func (p *Platform) move(width float64, flipAfter int) {
	if !p.Moving {
		return
	}
	p.MoveTimer++
	if p.MoveTimer >= flipAfter {
		p.flip()
	}
	next := p.Box.X + float64(p.Direction)*p.Speed
	if next < 0 || next+p.Box.W > width {
		p.flip()
		next = p.Box.X + float64(p.Direction)*p.Speed
	}
	// A platform wider than the speed margin can still overshoot after a flip.
	if next < 0 {
		next = 0
	} else if next+p.Box.W > width {
		next = width - p.Box.W
	}
	p.Box.X = next
}

func (p *Platform) flip() {
	p.Direction = -p.Direction
	p.MoveTimer = 0
}

// PlatformGenerator spawns, patrols, scrolls and culls platforms.
type PlatformGenerator struct {
	rng        *rand.Rand
	cfg        config.PlatformConfig
	world      config.WorldConfig
	difficulty *config.DifficultyManager
}

// NewPlatformGenerator creates a generator drawing from rng.
func NewPlatformGenerator(rng *rand.Rand, cfg config.PlatformConfig, world config.WorldConfig, diff *config.DifficultyManager) *PlatformGenerator {
	return &PlatformGenerator{
		rng:        rng,
		cfg:        cfg,
		world:      world,
		difficulty: diff,
	}
}

// Start returns the fixed starting platform placed under the spawn point.
func (pg *PlatformGenerator) Start() *Platform {
	return &Platform{
		Box:       core.NewRectF(pg.cfg.StartX, pg.cfg.StartY, pg.cfg.StartWidth, pg.cfg.Height),
		Direction: 1,
	}
}

// Generate spawns at most one platform above the highest one while the live
// count is below the cap. Returns the new platform or nil.
func (pg *PlatformGenerator) Generate(s *Session, height int) *Platform {
	if len(s.Platforms) >= pg.cfg.MaxLive || s.highest == nil {
		return nil
	}

	width := between(pg.rng, pg.cfg.MinWidth, pg.cfg.MaxWidth)
	x := between(pg.rng, 0, int(pg.world.Width)-width)
	gap := between(pg.rng, pg.cfg.MinGap, pg.cfg.MaxGap)
	heads := pg.rng.Intn(2) == 0

	p := &Platform{
		Box:       core.NewRectF(float64(x), s.highest.Box.Y-float64(gap), float64(width), pg.cfg.Height),
		Moving:    heads && height > pg.cfg.MovingAfter,
		MoveTimer: between(pg.rng, 0, pg.cfg.MaxInitialTimer),
		Direction: 1,
	}
	if pg.rng.Intn(2) == 0 {
		p.Direction = -1
	}
	base := float64(between(pg.rng, pg.cfg.MinSpeed, pg.cfg.MaxSpeed))
	p.Speed = pg.difficulty.PlatformSpeed(base, height)

	s.AddPlatform(p)
	return p
}

// Update patrols every platform, applies the camera shift and drops
// platforms whose top has passed the bottom of the screen.
func (pg *PlatformGenerator) Update(s *Session, shift int) {
	live := s.Platforms[:0]
	for _, p := range s.Platforms {
		p.move(pg.world.Width, pg.cfg.FlipAfter)
		p.Box.Y += float64(shift)
		if p.Box.Top() > pg.world.Height {
			continue
		}
		live = append(live, p)
	}
	for i := len(live); i < len(s.Platforms); i++ {
		s.Platforms[i] = nil
	}
	s.Platforms = live
}

// between returns a uniform int in [lo, hi]. An empty range yields lo.
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
