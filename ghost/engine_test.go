package ghost

import (
	"image"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/chuwy79936/ghost-pet/config"
)

type fakeWindow struct {
	raised  int
	lowered int
}

func (w *fakeWindow) RaiseToFront() { w.raised++ }
func (w *fakeWindow) LowerToBack()  { w.lowered++ }

func newTestEngine(cfg *config.Config, seed int64) (*Engine, *fakeWindow) {
	w := &fakeWindow{}
	e := New(cfg, image.Rect(0, 0, 1920, 1080), rand.New(rand.NewSource(seed)), w, nil)
	return e, w
}

func TestSpeechFiringRateConvergesToChance(t *testing.T) {
	for _, p := range []float64{0.0, 0.25, 0.7, 1.0} {
		cfg := config.Defaults()
		cfg.SpeakChance = p
		e, _ := newTestEngine(&cfg, 7)

		const trials = 20000
		fired := 0
		for i := 0; i < trials; i++ {
			e.state.BubbleActive = false
			e.sayRandomPhrase()
			if e.state.BubbleActive {
				fired++
			}
		}

		rate := float64(fired) / trials
		if math.Abs(rate-p) > 0.02 {
			t.Errorf("speak_chance %v: empirical rate %v", p, rate)
		}
	}
}

func TestOpacityStaysWithinConfiguredBounds(t *testing.T) {
	cfg := config.Defaults()
	cfg.OpacityMin = 0.2
	cfg.OpacityMax = 0.8
	e, _ := newTestEngine(&cfg, 11)
	e.Start()

	for i := 0; i < 4000; i++ {
		e.Advance(50 * time.Millisecond)
		if e.state.ScareActive {
			continue
		}
		o := e.state.Opacity
		if o < cfg.OpacityMin-1e-9 || o > cfg.OpacityMax+1e-9 {
			t.Fatalf("tick %d: opacity %v outside [%v, %v]", i, o, cfg.OpacityMin, cfg.OpacityMax)
		}
	}
}

func TestScareDelayWithinMinuteBounds(t *testing.T) {
	cases := []struct{ min, max int }{
		{5, 10},
		{10, 5}, // inverted bounds still sample the same range
	}
	for _, tc := range cases {
		cfg := config.Defaults()
		cfg.ScareMinMinutes = tc.min
		cfg.ScareMaxMinutes = tc.max
		e, _ := newTestEngine(&cfg, 13)

		lo := 300000 * time.Millisecond
		hi := 600000 * time.Millisecond
		for i := 0; i < 1000; i++ {
			d := e.ScareDelay()
			if d < lo || d > hi {
				t.Fatalf("min=%d max=%d: sampled delay %v outside [%v, %v]",
					tc.min, tc.max, d, lo, hi)
			}
		}
	}
}

func TestWanderTargetsInsideMargin(t *testing.T) {
	cfg := config.Defaults()
	e, _ := newTestEngine(&cfg, 17)

	b := e.Bounds()
	for i := 0; i < 1000; i++ {
		e.pickNewDestination()
		tx, ty := e.state.TargetX, e.state.TargetY
		if tx < float64(b.Min.X+wanderMargin) || tx > float64(b.Max.X-wanderMargin) ||
			ty < float64(b.Min.Y+wanderMargin) || ty > float64(b.Max.Y-wanderMargin) {
			t.Fatalf("target (%v, %v) outside inset bounds", tx, ty)
		}
	}
}

func TestArrivalRepicksTargetSameTick(t *testing.T) {
	cfg := config.Defaults()
	e, _ := newTestEngine(&cfg, 19)
	e.pickNewDestination()

	// Park the ghost within one step of its target.
	e.state.X = e.state.TargetX - 1
	e.state.Y = e.state.TargetY
	oldX, oldY := e.state.TargetX, e.state.TargetY

	e.moveTick()

	if !e.state.Moving {
		t.Error("ghost idle after arrival; expected same-tick repick")
	}
	if e.state.X != oldX || e.state.Y != oldY {
		t.Errorf("expected position snapped to (%v, %v), got (%v, %v)",
			oldX, oldY, e.state.X, e.state.Y)
	}
	if e.state.TargetX == oldX && e.state.TargetY == oldY {
		t.Error("target unchanged after arrival")
	}
}

func TestDisablingScareCancelsPendingTimer(t *testing.T) {
	cfg := config.Defaults()
	e, w := newTestEngine(&cfg, 23)
	e.Start()

	if !e.scareTimer.Active() {
		t.Fatal("expected scare timer armed after Start")
	}

	cfg.ScareEnabled = false
	e.ApplyConfig()

	if e.scareTimer.Active() {
		t.Fatal("scare timer still pending after disable")
	}

	// Run well past the maximum scare delay; nothing may fire.
	for i := 0; i < 15; i++ {
		e.Advance(time.Minute)
		if e.state.ScareActive {
			t.Fatal("scare ran while disabled")
		}
	}
	if w.raised != 0 {
		t.Errorf("window raised %d times while scare disabled", w.raised)
	}

	// Re-enabling schedules a fresh delay.
	cfg.ScareEnabled = true
	e.ApplyConfig()
	if !e.scareTimer.Active() {
		t.Error("scare timer not rescheduled after re-enable")
	}
}

func TestApplyConfigRestartsSpeakTimer(t *testing.T) {
	cfg := config.Defaults()
	e, _ := newTestEngine(&cfg, 29)
	e.Start()

	e.Advance(4 * time.Second)
	cfg.SpeakInterval = 42
	e.ApplyConfig()

	if got := e.speakTimer.Remaining(); got != 42*time.Second {
		t.Errorf("speak timer remaining = %v, expected full new period", got)
	}
}

func TestGreetingSpokenAfterStartup(t *testing.T) {
	cfg := config.Defaults()
	cfg.SpeakChance = 0 // keep the random speech quiet
	e, _ := newTestEngine(&cfg, 31)
	e.Start()

	e.Advance(time.Second)
	if !e.state.BubbleActive || e.state.BubbleText != Greeting {
		t.Errorf("expected greeting bubble, got active=%v text=%q",
			e.state.BubbleActive, e.state.BubbleText)
	}

	// Bubble dismisses after the fixed 3s timeout.
	e.Advance(3 * time.Second)
	if e.state.BubbleActive {
		t.Error("bubble still visible after timeout")
	}
}

func TestCustomPhrasesReplaceBuiltins(t *testing.T) {
	cfg := config.Defaults()
	cfg.SpeakChance = 1.0
	cfg.CustomPhrases = []string{"only this"}
	e, _ := newTestEngine(&cfg, 37)
	e.ApplyConfig()

	for i := 0; i < 5; i++ {
		e.state.BubbleActive = false
		e.sayRandomPhrase()
		if e.state.BubbleText != "only this" {
			t.Fatalf("expected custom phrase, got %q", e.state.BubbleText)
		}
	}
}

func TestWindowPositionCentersBody(t *testing.T) {
	cfg := config.Defaults()
	e, _ := newTestEngine(&cfg, 41)
	e.state.X = 500
	e.state.Y = 400
	e.state.FloatOffset = 0

	x, y := e.WindowPosition(1.0)
	if x != 500-(BodyOffsetX+BodyCenterX) || y != 400-(BodyOffsetY+BodyCenterY) {
		t.Errorf("window position (%d, %d) does not center the body", x, y)
	}

	x2, _ := e.WindowPosition(2.0)
	if x2 != 500-2*(BodyOffsetX+BodyCenterX) {
		t.Errorf("scaled window position %d incorrect", x2)
	}
}
