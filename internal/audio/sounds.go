package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with attack and release ramps over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// drone is an endless low hum with a slow swell.
type drone struct {
	rate  beep.SampleRate
	pos   int
	cycle int
}

func newDrone(rate beep.SampleRate) *drone {
	return &drone{rate: rate, cycle: rate.N(4 * time.Second)}
}

func (d *drone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(d.pos) / float64(d.rate)
		swell := 0.6 + 0.4*math.Sin(2*math.Pi*float64(d.pos%d.cycle)/float64(d.cycle))
		val := swell * (0.5*math.Sin(2*math.Pi*110*t) + 0.25*math.Sin(2*math.Pi*220.5*t))
		samples[i][0] = val
		samples[i][1] = val
		d.pos++
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }

// newVolume wraps s with a linear volume. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is one enveloped tone.
func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// PowerUpSound is a quick rising arpeggio.
func PowerUpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	step := 70 * time.Millisecond
	return newVolume(beep.Seq(
		note(523.25, step, WaveSquare, rate),
		note(659.25, step, WaveSquare, rate),
		note(783.99, step, WaveSquare, rate),
		note(1046.5, 2*step, WaveSquare, rate),
	), vol*0.5)
}

// BestBeatenSound is a two-note chime with an octave overtone.
func BestBeatenSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := 180 * time.Millisecond
	chime := func(freq float64) beep.Streamer {
		return beep.Mix(
			newVolume(note(freq, d, WaveSine, rate), 0.7),
			newVolume(note(freq*2, d, WaveSine, rate), 0.3),
		)
	}
	return newVolume(beep.Seq(chime(880), chime(1318.5)), vol)
}

// RunEndedSound is a falling three-note phrase.
func RunEndedSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := 160 * time.Millisecond
	return newVolume(beep.Seq(
		note(392, d, WaveTriangle, rate),
		note(311.13, d, WaveTriangle, rate),
		note(196, 3*d, WaveTriangle, rate),
	), vol)
}

// AmbienceStream is the endless background bed.
func AmbienceStream(rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	shimmer, err := generators.SineTone(rate, 330)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Mix(newDrone(rate), newVolume(shimmer, 0.08)), vol), nil
}
