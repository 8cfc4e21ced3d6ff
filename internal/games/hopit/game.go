// Package hopit implements Hop.It, a vertically scrolling platform jumper.
// The hero bounces off procedurally generated platforms while the camera
// scrolls to follow it; the score is the height climbed.
package hopit

import (
	"math/rand"

	"github.com/vovakirdan/hopit/internal/config"
	"github.com/vovakirdan/hopit/internal/core"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseHome Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseHome:
		return "home"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Event is a notification emitted during a step.
type Event int

const (
	EventPowerUp Event = iota + 1
	EventBestBeaten
	EventRunEnded
	EventRunStarted
)

// Audio receives fire-and-forget sound events.
type Audio interface {
	PlayPowerUp()
	PlayRunEnded()
	PlayBestBeaten()
	StartAmbience()
	StopAmbience()
	SetAmbienceEnabled(bool)
	SetEffectsEnabled(bool)
}

// ScoreStore persists the best height. Implementations absorb their own errors.
type ScoreStore interface {
	Load() int
	Save(best int)
}

// NopAudio discards all audio events.
type NopAudio struct{}

// PlayPowerUp does nothing.
func (NopAudio) PlayPowerUp() {}

// PlayRunEnded does nothing.
func (NopAudio) PlayRunEnded() {}

// PlayBestBeaten does nothing.
func (NopAudio) PlayBestBeaten() {}

// StartAmbience does nothing.
func (NopAudio) StartAmbience() {}

// StopAmbience does nothing.
func (NopAudio) StopAmbience() {}

// SetAmbienceEnabled does nothing.
func (NopAudio) SetAmbienceEnabled(bool) {}

// SetEffectsEnabled does nothing.
func (NopAudio) SetEffectsEnabled(bool) {}

// memoryStore keeps the best height in memory only.
type memoryStore struct{ best int }

func (m *memoryStore) Load() int     { return m.best }
func (m *memoryStore) Save(best int) { m.best = best }

// ButtonVariant is the visual variant of a toggle button.
type ButtonVariant int

const (
	VariantOff ButtonVariant = iota
	VariantOn
)

// ToggleVariant maps a toggle state to its button variant.
func ToggleVariant(enabled bool) ButtonVariant {
	if enabled {
		return VariantOn
	}
	return VariantOff
}

// Option configures a Game.
type Option func(*Game)

// WithAudio sets the audio collaborator.
func WithAudio(a Audio) Option {
	return func(g *Game) {
		if a != nil {
			g.audio = a
		}
	}
}

// WithStore sets the best-score store.
func WithStore(s ScoreStore) Option {
	return func(g *Game) {
		if s != nil {
			g.store = s
		}
	}
}

// Game is the Home/Playing/GameOver state machine. It owns the session and
// all simulation components.
type Game struct {
	cfg     config.HopConfig
	runtime core.RuntimeConfig

	rng        *rand.Rand
	difficulty *config.DifficultyManager
	normalizer *Normalizer
	physics    *Physics
	platforms  *PlatformGenerator
	pickups    *PickupGenerator

	audio Audio
	store ScoreStore

	phase     Phase
	session   Session
	tickCount int
	events    []Event
	quit      bool

	ambienceOn bool
	effectsOn  bool
}

// New creates a game in the Home phase. The best height is loaded from the
// store once, here.
func New(cfg config.HopConfig, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		audio:      NopAudio{},
		store:      &memoryStore{},
		ambienceOn: true,
		effectsOn:  true,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.session.Score.Best = g.store.Load()
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hopit"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Hop.It"
}

// Reset reseeds the simulation and returns to Home. Best is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.normalizer = NewNormalizer(g.cfg.Input)
	g.physics = NewPhysics(g.cfg)
	g.platforms = NewPlatformGenerator(g.rng, g.cfg.Platforms, g.cfg.World, g.difficulty)
	g.pickups = NewPickupGenerator(g.rng, g.cfg.Pickup, g.cfg.World)
	g.tickCount = 0
	g.quit = false
	g.events = g.events[:0]

	g.resetSession()
	g.phase = PhaseHome
}

// resetSession is shared by start, retry and menu.
func (g *Game) resetSession() {
	g.session.clear()
	g.session.Hero.Reset(g.cfg.Hero)
	g.session.AddPlatform(g.platforms.Start())
	g.normalizer.Reset()
	g.pickups.Reset()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	if g.quit {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++

	if in.Has(core.ActionToggleMusic) {
		g.ambienceOn = !g.ambienceOn
		g.audio.SetAmbienceEnabled(g.ambienceOn)
	}
	if in.Has(core.ActionToggleSound) {
		g.effectsOn = !g.effectsOn
		g.audio.SetEffectsEnabled(g.effectsOn)
	}
	if in.Has(core.ActionQuit) {
		g.Quit()
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseHome:
		if in.Has(core.ActionStart) {
			g.begin(PhasePlaying)
		}
	case PhasePlaying:
		g.play(in)
	case PhaseGameOver:
		switch {
		case in.Has(core.ActionRetry):
			g.begin(PhasePlaying)
		case in.Has(core.ActionMenu):
			g.begin(PhaseHome)
		}
	}

	return core.StepResult{State: g.State()}
}

// begin runs the reset protocol and enters the target phase.
func (g *Game) begin(target Phase) {
	g.resetSession()
	g.audio.StartAmbience()
	g.phase = target
	if target == PhasePlaying {
		g.emit(EventRunStarted)
	}
}

// play runs one Playing frame.
func (g *Game) play(in core.InputFrame) {
	s := &g.session

	intent := g.normalizer.Normalize(in, &s.Hero.FacingLeft)
	out := g.physics.Step(s, intent)
	if out.Collected {
		g.audio.PlayPowerUp()
		g.emit(EventPowerUp)
	}

	s.BackgroundOffset += float64(out.CameraShift)
	if period := g.cfg.Presentation.BackgroundPeriod; period > 0 && s.BackgroundOffset >= period {
		s.BackgroundOffset = 0
	}

	// Generators position against the pre-shift world, then everything scrolls.
	height := s.Score.Height
	g.platforms.Generate(s, height)
	g.pickups.Generate(s, height)
	g.platforms.Update(s, out.CameraShift)
	g.pickups.Update(s, out.CameraShift)
	s.Score.Apply(out.CameraShift)

	if s.InstructionTimer <= g.cfg.Presentation.InstructionFrames {
		s.InstructionTimer++
	}

	if !s.bestBeaten && s.Score.Best > 0 && s.Score.Beaten() {
		s.bestBeaten = true
		g.audio.PlayBestBeaten()
		g.emit(EventBestBeaten)
	}

	if g.physics.Fallen(s) {
		g.endRun()
	}
}

// endRun enters GameOver, persisting a beaten best exactly once.
func (g *Game) endRun() {
	s := &g.session
	g.phase = PhaseGameOver
	if s.Score.Beaten() {
		s.NewHighScore = true
		s.Score.Best = s.Score.Height
		g.store.Save(s.Score.Best)
	}
	g.audio.StopAmbience()
	g.audio.PlayRunEnded()
	g.emit(EventRunEnded)
}

// Quit persists a beaten best and marks the game as finished. Safe to call
// more than once.
func (g *Game) Quit() {
	if g.quit {
		return
	}
	s := &g.session
	if s.Score.Beaten() {
		s.Score.Best = s.Score.Height
		g.store.Save(s.Score.Best)
	}
	g.audio.StopAmbience()
	g.quit = true
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// Events returns the events emitted by the last Step.
func (g *Game) Events() []Event {
	return g.events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score.Height,
		Best:     g.session.Score.Best,
		GameOver: g.phase == PhaseGameOver,
		Quit:     g.quit,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Session returns the live session. Callers must treat it as read-only.
func (g *Game) Session() *Session {
	return &g.session
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.HopConfig {
	return g.cfg
}

// NewHighScore reports whether the last finished run beat the best height.
func (g *Game) NewHighScore() bool {
	return g.session.NewHighScore
}

// ShowInstructions reports whether the instruction overlay is visible.
func (g *Game) ShowInstructions() bool {
	return g.phase == PhasePlaying && g.session.InstructionTimer <= g.cfg.Presentation.InstructionFrames
}

// AmbienceEnabled reports the music toggle state.
func (g *Game) AmbienceEnabled() bool {
	return g.ambienceOn
}

// EffectsEnabled reports the sound toggle state.
func (g *Game) EffectsEnabled() bool {
	return g.effectsOn
}

// ButtonHolds returns the on-screen button hold counters.
func (g *Game) ButtonHolds() (left, right int) {
	return g.normalizer.Holds()
}
