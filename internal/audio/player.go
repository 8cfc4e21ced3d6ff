// Package audio synthesizes Hop.It sound effects and ambience with beep.
// Every sound is generated at runtime; no asset files are loaded.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/hopit/internal/config"
	"github.com/vovakirdan/hopit/internal/games/hopit"
)

var _ hopit.Audio = (*Player)(nil)

// Player plays synthesized sounds through the system speaker. A Player whose
// speaker failed to open stays silent and every method is a no-op.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	ambience    *beep.Ctrl
	initialized bool

	ambienceOn bool
	effectsOn  bool
	playing    bool // Ambience requested by the game
}

// New opens the speaker when audio is enabled. Failures are logged and yield
// a silent Player.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	p := &Player{
		cfg:        cfg,
		rate:       beep.SampleRate(cfg.SampleRate),
		ambienceOn: true,
		effectsOn:  true,
	}
	if p.rate <= 0 {
		p.rate = 44100
	}
	if !cfg.Enabled {
		return p
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing silent", "err", err)
		}
		return p
	}

	bed, err := AmbienceStream(p.rate, cfg.AmbienceVolume)
	if err != nil {
		if logger != nil {
			logger.Warn("ambience unavailable", "err", err)
		}
		bed = beep.Silence(-1)
	}
	p.ambience = &beep.Ctrl{Streamer: bed, Paused: true}
	p.mixer = &beep.Mixer{}
	p.mixer.Add(p.ambience)
	speaker.Play(p.mixer)
	p.initialized = true
	return p
}

// Initialized reports whether the speaker is open.
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

func (p *Player) play(build func(beep.SampleRate, float64) beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || !p.effectsOn {
		return
	}
	s := build(p.rate, p.cfg.EffectsVolume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlayPowerUp plays the pickup chime.
func (p *Player) PlayPowerUp() { p.play(PowerUpSound) }

// PlayRunEnded plays the fall sound.
func (p *Player) PlayRunEnded() { p.play(RunEndedSound) }

// PlayBestBeaten plays the new best fanfare.
func (p *Player) PlayBestBeaten() { p.play(BestBeatenSound) }

// StartAmbience resumes the background bed if music is enabled.
func (p *Player) StartAmbience() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = true
	p.syncAmbience()
}

// StopAmbience pauses the background bed.
func (p *Player) StopAmbience() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	p.syncAmbience()
}

// SetAmbienceEnabled turns the background bed on or off.
func (p *Player) SetAmbienceEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ambienceOn = on
	p.syncAmbience()
}

// SetEffectsEnabled turns sound effects on or off. Playing effects finish.
func (p *Player) SetEffectsEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.effectsOn = on
}

// syncAmbience must be called with mu held.
func (p *Player) syncAmbience() {
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.ambience.Paused = !(p.playing && p.ambienceOn)
	speaker.Unlock()
}

// Close silences all output and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
