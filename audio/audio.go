// Package audio plays the procedural "whoosh" that accompanies a scare.
// Everything is synthesized; there are no sound assets.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker and a mixer new sounds get added to. A Player
// that failed to initialize stays usable; Play just does nothing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device. Safe to call more than once.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues one scare whoosh. No-op if the device never opened.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(NewWhoosh(sampleRate))
	speaker.Unlock()
}

// Cleanup silences everything. The speaker itself stays open; beep has no
// close call.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// whoosh sweeps a sine from high to low with a pinch of noise, shaped by
// a short attack and a long release.
type whoosh struct {
	rate     beep.SampleRate
	position int
	total    int
	attack   int
	release  int
	phase    float64
	noise    uint64
}

const (
	whooshDuration = 600 * time.Millisecond
	whooshAttack   = 50 * time.Millisecond
	whooshRelease  = 300 * time.Millisecond
	startFreq      = 620.0
	endFreq        = 110.0
	gain           = 0.4
)

// NewWhoosh builds the scare sound as a finite streamer.
func NewWhoosh(rate beep.SampleRate) beep.Streamer {
	return &whoosh{
		rate:    rate,
		total:   rate.N(whooshDuration),
		attack:  rate.N(whooshAttack),
		release: rate.N(whooshRelease),
		noise:   0x2545F4914F6CDD1D,
	}
}

func (w *whoosh) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if w.position >= w.total {
			return i, false
		}

		t := float64(w.position) / float64(w.total)
		freq := startFreq + (endFreq-startFreq)*t

		// xorshift noise keeps the streamer deterministic
		w.noise ^= w.noise << 13
		w.noise ^= w.noise >> 7
		w.noise ^= w.noise << 17
		noise := float64(int64(w.noise)) / float64(math.MaxInt64)

		val := math.Sin(2*math.Pi*w.phase)*0.8 + noise*0.2
		val *= w.envelope() * gain

		samples[i][0] = val
		samples[i][1] = val

		w.phase += freq / float64(w.rate)
		w.phase -= math.Floor(w.phase)
		w.position++
	}
	return len(samples), true
}

func (w *whoosh) envelope() float64 {
	if w.position < w.attack {
		return float64(w.position) / float64(w.attack)
	}
	if left := w.total - w.position; left < w.release {
		return float64(left) / float64(w.release)
	}
	return 1
}

func (w *whoosh) Err() error { return nil }
