package settings

import (
	"reflect"
	"testing"

	"github.com/chuwy79936/ghost-pet/config"
)

func TestParseLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"   \n\n  ", []string{}},
		{"hello", []string{"hello"}},
		{"one\ntwo\nthree", []string{"one", "two", "three"}},
		{"  padded  \n\nmiddle blank\n", []string{"padded", "middle blank"}},
	}
	for _, c := range cases {
		got := ParseLines(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ParseLines(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestApplyCopiesControlValues(t *testing.T) {
	cfg := config.Defaults()
	f := NewForm(&cfg)

	f.speed.value = 7
	f.interval.value = 42
	f.chance.value = 35
	f.opacitySpeed.value = 25 // divisor 10 -> 2.5
	f.opacityMin.value = 10
	f.opacityMax.value = 90
	f.scareEnabled.checked = false
	f.scareMin.value = 3
	f.scareMax.value = 12
	f.scale.value = 15 // divisor 10 -> 1.5
	f.sound.checked = true
	f.phrases.text = "hi there\n\n  spooky  "
	f.scarePhrases.text = "BOO"

	f.apply()

	if cfg.Speed != 7 || cfg.SpeakInterval != 42 {
		t.Errorf("int fields not copied: speed=%d interval=%d", cfg.Speed, cfg.SpeakInterval)
	}
	if cfg.SpeakChance != 0.35 || cfg.OpacityMin != 0.10 || cfg.OpacityMax != 0.90 {
		t.Errorf("percent fields not copied: %v %v %v", cfg.SpeakChance, cfg.OpacityMin, cfg.OpacityMax)
	}
	if cfg.OpacitySpeed != 2.5 || cfg.GhostScale != 1.5 {
		t.Errorf("float sliders not copied: %v %v", cfg.OpacitySpeed, cfg.GhostScale)
	}
	if cfg.ScareEnabled || !cfg.SoundEnabled {
		t.Errorf("checkboxes not copied: scare=%v sound=%v", cfg.ScareEnabled, cfg.SoundEnabled)
	}
	if cfg.ScareMinMinutes != 3 || cfg.ScareMaxMinutes != 12 {
		t.Errorf("scare minutes not copied: %d %d", cfg.ScareMinMinutes, cfg.ScareMaxMinutes)
	}
	if !reflect.DeepEqual(cfg.CustomPhrases, []string{"hi there", "spooky"}) {
		t.Errorf("custom phrases = %v", cfg.CustomPhrases)
	}
	if !reflect.DeepEqual(cfg.CustomScarePhrases, []string{"BOO"}) {
		t.Errorf("custom scare phrases = %v", cfg.CustomScarePhrases)
	}
}

func TestRefreshReflectsReset(t *testing.T) {
	cfg := config.Defaults()
	f := NewForm(&cfg)

	f.speed.value = 19
	f.chance.value = 1
	f.scareEnabled.checked = false
	f.phrases.text = "leftover"

	cfg.Reset()
	f.refresh()

	def := config.Defaults()
	if f.speed.value != int(def.Speed) {
		t.Errorf("speed slider = %d, want default %d", f.speed.value, int(def.Speed))
	}
	if f.chance.value != int(def.SpeakChance*100) {
		t.Errorf("chance slider = %d, want %d", f.chance.value, int(def.SpeakChance*100))
	}
	if f.scareEnabled.checked != def.ScareEnabled {
		t.Errorf("scare checkbox = %v, want %v", f.scareEnabled.checked, def.ScareEnabled)
	}
	if f.phrases.text != "" {
		t.Errorf("phrase editor = %q, want empty", f.phrases.text)
	}
}

func TestFloatSliderRoundTrip(t *testing.T) {
	s := newFloatSlider("x", 1, 30, 0.7, 10)
	if s.value != 7 {
		t.Fatalf("initial raw value = %d, want 7", s.value)
	}
	if s.floatValue() != 0.7 {
		t.Fatalf("floatValue = %v, want 0.7", s.floatValue())
	}
	s.setFloat(2.0)
	if s.value != 20 {
		t.Fatalf("after setFloat raw = %d, want 20", s.value)
	}
}
