// Package sound provides synthesized audio feedback for game events.
// All tones are generated at runtime, there are no audio assets.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Player mixes short synthesized effects for game events. A Player whose
// speaker failed to initialize stays usable and silently drops every Play
// call, so audio problems never break the game.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates a player and tries to open the speaker. The returned
// error is informational, the player works (silently) either way.
func NewPlayer() (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50))
	if err != nil {
		return p, err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return p, nil
}

// SetMuted toggles audio output without touching the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether output is currently suppressed.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Play queues the effect for the given event.
func (p *Player) Play(ev core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	switch ev {
	case core.EventHop:
		// Short high blip
		p.add(time.Millisecond*60, newToneGenerator(660))
	case core.EventWin:
		// Rising sweep
		p.add(time.Millisecond*350, newSweepGenerator(440, 880))
	case core.EventLose:
		// Falling sweep
		p.add(time.Millisecond*400, newSweepGenerator(440, 110))
	case core.EventHit:
		// Harsh low buzz
		p.add(time.Millisecond*180, newBuzzGenerator(110))
	}
}

// Cleanup silences the mixer. Pending effects are dropped.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.mixer.Clear()
	p.initialized = false
}

func (p *Player) add(d time.Duration, s beep.Streamer) {
	p.mixer.Add(beep.Take(sampleRate.N(d), s))
}

// toneGenerator produces a fixed-frequency sine with a short attack.
type toneGenerator struct {
	freq float64
	pos  int
}

func newToneGenerator(freq float64) *toneGenerator {
	return &toneGenerator{freq: freq}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)

		envelope := math.Min(t/0.005, 1.0)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }

// sweepGenerator glides between two frequencies over its lifetime.
type sweepGenerator struct {
	from  float64
	to    float64
	pos   int
	phase float64
}

func newSweepGenerator(from, to float64) *sweepGenerator {
	return &sweepGenerator{from: from, to: to}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	// Glide over roughly 350ms; Take truncates the stream to the exact length.
	span := float64(sampleRate.N(time.Millisecond * 350))

	for i := range samples {
		progress := math.Min(float64(g.pos)/span, 1.0)
		freq := g.from + (g.to-g.from)*progress

		// Accumulate phase so the glide stays click-free
		g.phase += 2 * math.Pi * freq / float64(sampleRate)

		envelope := 1.0 - progress*0.5
		sample := 0.18 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error { return nil }

// buzzGenerator layers harmonics over a base frequency for a harsh buzz.
type buzzGenerator struct {
	freq float64
	pos  int
}

func newBuzzGenerator(freq float64) *buzzGenerator {
	return &buzzGenerator{freq: freq}
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.25

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error { return nil }
