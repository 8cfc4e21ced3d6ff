package hopit

// Session aggregates the entities of one run. The Game owns it and passes it
// to every component explicitly.
type Session struct {
	Hero      Hero
	Platforms []*Platform
	Pickup    *Pickup
	Score     ScoreTracker

	NewHighScore bool // Set at game over when Best was beaten
	bestBeaten   bool // Mid-run chime already emitted

	InstructionTimer int     // Frames the instruction overlay has been shown
	BackgroundOffset float64 // Accumulated scroll, wraps at the background period

	highest *Platform // Most recently inserted platform, always the topmost
}

// AddPlatform inserts a platform and makes it the highest one.
func (s *Session) AddPlatform(p *Platform) {
	s.Platforms = append(s.Platforms, p)
	s.highest = p
}

// Highest returns the most recently inserted platform, or nil.
func (s *Session) Highest() *Platform {
	return s.highest
}

// clear drops all entities and run flags. Best survives.
func (s *Session) clear() {
	for i := range s.Platforms {
		s.Platforms[i] = nil
	}
	s.Platforms = s.Platforms[:0]
	s.Pickup = nil
	s.highest = nil
	s.Score.Reset()
	s.NewHighScore = false
	s.bestBeaten = false
	s.InstructionTimer = 0
	s.BackgroundOffset = 0
}
