package hopit

import "math"

// Snapshot contains the simulation state for determinism checks and
// read-only renderers. Uses primitive types only.
type Snapshot struct {
	Tick  uint64
	Phase int

	HeroX, HeroY  float64
	HeroW, HeroH  float64
	VerticalSpeed float64
	FacingLeft    bool
	HasPower      bool
	PowerTimer    int
	PowerCharges  int
	Pose          int

	Height int
	Best   int
	Shift  int

	// Each platform is 7 values: X, Y, W, H, Moving, Direction, Speed
	PlatformCount int
	PlatformData  []float64

	HasPickup bool
	PickupX   float64
	PickupY   float64

	NewHighScore     bool
	InstructionTimer int
	BackgroundOffset float64
}

const platformStride = 7

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := &g.session
	h := s.Hero

	data := make([]float64, 0, len(s.Platforms)*platformStride)
	for _, p := range s.Platforms {
		moving := 0.0
		if p.Moving {
			moving = 1
		}
		data = append(data, p.Box.X, p.Box.Y, p.Box.W, p.Box.H, moving, float64(p.Direction), p.Speed)
	}

	snap := Snapshot{
		Tick:  uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase: int(g.phase),

		HeroX:         h.Box.X,
		HeroY:         h.Box.Y,
		HeroW:         h.Box.W,
		HeroH:         h.Box.H,
		VerticalSpeed: h.VerticalSpeed,
		FacingLeft:    h.FacingLeft,
		HasPower:      h.HasPower,
		PowerTimer:    h.PowerTimer,
		PowerCharges:  h.PowerCharges,
		Pose:          int(h.Pose),

		Height: s.Score.Height,
		Best:   s.Score.Best,
		Shift:  s.Score.Shift,

		PlatformCount: len(s.Platforms),
		PlatformData:  data,

		NewHighScore:     s.NewHighScore,
		InstructionTimer: s.InstructionTimer,
		BackgroundOffset: s.BackgroundOffset,
	}
	if s.Pickup != nil {
		snap.HasPickup = true
		snap.PickupX = s.Pickup.Box.X
		snap.PickupY = s.Pickup.Box.Y
	}
	return snap
}

// Platform returns the i-th platform rectangle and whether it moves.
func (snap *Snapshot) Platform(i int) (x, y, w, h float64, moving bool) {
	d := snap.PlatformData[i*platformStride:]
	return d[0], d[1], d[2], d[3], d[4] != 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.HeroX)
	h = h*31 + math.Float64bits(snap.HeroY)
	h = h*31 + math.Float64bits(snap.VerticalSpeed)
	h = h*31 + boolBit(snap.FacingLeft)
	h = h*31 + boolBit(snap.HasPower)
	h = h*31 + uint64(snap.PowerTimer)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerCharges)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pose)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Height)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Best)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shift)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlatformCount) //#nosec G115 -- hash computation

	for _, v := range snap.PlatformData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + boolBit(snap.HasPickup)
	h = h*31 + math.Float64bits(snap.PickupX)
	h = h*31 + math.Float64bits(snap.PickupY)
	h = h*31 + boolBit(snap.NewHighScore)

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
