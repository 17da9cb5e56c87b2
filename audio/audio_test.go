package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestWhooshLengthAndTermination(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(NewWhoosh(rate))

	want := rate.N(whooshDuration)
	if len(samples) != want {
		t.Fatalf("streamed %d samples, want %d", len(samples), want)
	}

	// A finished streamer must stay finished.
	s := NewWhoosh(rate)
	drain(s)
	if n, ok := s.Stream(make([][2]float64, 16)); n != 0 || ok {
		t.Errorf("exhausted streamer returned n=%d ok=%v", n, ok)
	}
}

func TestWhooshBoundedAndAudible(t *testing.T) {
	samples := drain(NewWhoosh(beep.SampleRate(44100)))

	var peak float64
	for _, s := range samples {
		for ch := 0; ch < 2; ch++ {
			if v := math.Abs(s[ch]); v > peak {
				peak = v
			}
			if math.Abs(s[ch]) > 1 {
				t.Fatalf("sample %v out of range", s[ch])
			}
		}
	}
	if peak < 0.1 {
		t.Errorf("peak amplitude %v, sound is essentially silent", peak)
	}
}

func TestWhooshEnvelopeEdges(t *testing.T) {
	samples := drain(NewWhoosh(beep.SampleRate(44100)))

	if v := math.Abs(samples[0][0]); v > 0.01 {
		t.Errorf("first sample %v, want near-silent attack start", v)
	}
	if v := math.Abs(samples[len(samples)-1][0]); v > 0.01 {
		t.Errorf("last sample %v, want near-silent release end", v)
	}
}

func TestPlayWithoutInitializeIsNoop(t *testing.T) {
	p := NewPlayer()
	// Must not panic or touch the speaker.
	p.Play()
	p.Cleanup()
}
