package ghost

import (
	"math"
	"testing"
	"time"

	"github.com/chuwy79936/ghost-pet/config"
)

func TestScareOpacityProfile(t *testing.T) {
	cases := []struct{ t, want float64 }{
		{0.0, 0.0},
		{0.15, 0.5},
		{0.3, 1.0},
		{0.5, 1.0},
		{0.69, 1.0},
		{0.7, 1.0},
		{0.85, 0.5},
		{1.0, 0.0},
	}
	for _, tc := range cases {
		got := ScareOpacity(tc.t)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ScareOpacity(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestScareSequenceRaisesFadesAndLowers(t *testing.T) {
	cfg := config.Defaults()
	e, w := newTestEngine(&cfg, 43)

	e.ScareNow()

	if !e.state.ScareActive {
		t.Fatal("scare not active after ScareNow")
	}
	if w.raised != 1 {
		t.Fatalf("expected 1 raise, got %d", w.raised)
	}
	if e.state.Opacity != 0 {
		t.Errorf("scare should start fully transparent, opacity=%v", e.state.Opacity)
	}
	if !e.state.BubbleActive || e.state.BubbleText == "" {
		t.Error("expected a scare phrase bubble")
	}

	start := e.state.Clock
	for e.state.ScareActive {
		e.Advance(33 * time.Millisecond)
		if !e.state.ScareActive {
			break
		}
		elapsed := e.state.Clock - start
		want := ScareOpacity(elapsed / scareDuration.Seconds())
		if math.Abs(e.state.Opacity-want) > 1e-9 {
			t.Fatalf("at %vs: opacity %v, want profile value %v",
				elapsed, e.state.Opacity, want)
		}
		if elapsed > 6 {
			t.Fatal("scare never completed")
		}
	}

	if w.lowered != 1 {
		t.Errorf("expected 1 lower at completion, got %d", w.lowered)
	}
	if e.state.BubbleActive {
		t.Error("bubble still visible after scare completed")
	}
	if !e.scareTimer.Active() {
		t.Error("next scare not rescheduled while enabled")
	}
}

func TestScareNowBypassesEnabledFlag(t *testing.T) {
	cfg := config.Defaults()
	cfg.ScareEnabled = false
	e, w := newTestEngine(&cfg, 47)

	e.ScareNow()
	if !e.state.ScareActive || w.raised != 1 {
		t.Fatal("manual scare did not run while disabled")
	}

	for i := 0; i < 200 && e.state.ScareActive; i++ {
		e.Advance(33 * time.Millisecond)
	}
	if e.state.ScareActive {
		t.Fatal("manual scare never completed")
	}
	if e.scareTimer.Active() {
		t.Error("scare rescheduled despite being disabled")
	}
}

func TestTimedScareReschedulesWithoutFiringWhenDisabledLate(t *testing.T) {
	// The timer may already be in flight when the flag flips; the firing
	// itself must still respect it.
	cfg := config.Defaults()
	e, w := newTestEngine(&cfg, 53)
	e.Start()

	cfg.ScareEnabled = false
	e.scareFired()

	if e.state.ScareActive || w.raised != 0 {
		t.Error("scare ran despite disabled flag at firing time")
	}
}

func TestOpacityWaveSuspendedDuringScare(t *testing.T) {
	cfg := config.Defaults()
	e, _ := newTestEngine(&cfg, 59)
	e.Start()

	e.ScareNow()
	e.Advance(2 * time.Second) // inside the hold window

	if got := e.state.Opacity; got != 1.0 {
		t.Errorf("opacity during scare hold = %v, want 1.0 (wave must not interfere)", got)
	}
}
