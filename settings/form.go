// Package settings renders the in-window configuration form. Every tunable
// gets one control; Apply copies the control values back into the config.
package settings

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/chuwy79936/ghost-pet/config"
)

// Event reports what the user did this frame.
type Event int

const (
	EventNone Event = iota
	// EventApplied means the config has new values that should be saved
	// and pushed into the running engine.
	EventApplied
	EventClosed
)

const (
	FormWidth  = 420
	FormHeight = 560

	margin       = 15
	contentWidth = FormWidth - 2*margin
	buttonBarH   = 46
)

// Form is the settings panel. It owns widget state; the config is only
// touched on Apply or Reset.
type Form struct {
	cfg *config.Config

	speed        *slider
	interval     *slider
	chance       *slider
	opacitySpeed *slider
	opacityMin   *slider
	opacityMax   *slider
	scareEnabled *checkbox
	scareMin     *slider
	scareMax     *slider
	scale        *slider
	sound        *checkbox
	phrases      *textArea
	scarePhrases *textArea

	resetBtn *button
	applyBtn *button
	closeBtn *button

	scroll int
}

func NewForm(cfg *config.Config) *Form {
	f := &Form{
		cfg:      cfg,
		resetBtn: &button{label: "Reset to Defaults"},
		applyBtn: &button{label: "Apply"},
		closeBtn: &button{label: "Close"},
	}
	f.speed = newSlider("Speed", 1, 20, int(cfg.Speed))
	f.interval = newSlider("Speak interval (seconds)", 5, 60, cfg.SpeakInterval)
	f.chance = newSlider("Speak chance (%)", 0, 100, int(cfg.SpeakChance*100))
	f.opacitySpeed = newFloatSlider("Opacity speed", 1, 30, cfg.OpacitySpeed, 10)
	f.opacityMin = newSlider("Minimum opacity (%)", 0, 100, int(cfg.OpacityMin*100))
	f.opacityMax = newSlider("Maximum opacity (%)", 0, 100, int(cfg.OpacityMax*100))
	f.scareEnabled = &checkbox{label: "Enable scare mode", checked: cfg.ScareEnabled}
	f.scareMin = newSlider("Minimum minutes between scares", 1, 30, cfg.ScareMinMinutes)
	f.scareMax = newSlider("Maximum minutes between scares", 1, 30, cfg.ScareMaxMinutes)
	f.scale = newFloatSlider("Ghost scale", 5, 30, cfg.GhostScale, 10)
	f.sound = &checkbox{label: "Play sound on scare", checked: cfg.SoundEnabled}
	f.phrases = newTextArea("Custom phrases (one per line):", strings.Join(cfg.CustomPhrases, "\n"))
	f.scarePhrases = newTextArea("Custom scare phrases (one per line):", strings.Join(cfg.CustomScarePhrases, "\n"))
	return f
}

// section pairs a header with the widgets under it, in display order.
type section struct {
	title string
	items []item
}

type item interface {
	height() int
}

func (f *Form) sections() []section {
	return []section{
		{"Movement", []item{f.speed}},
		{"Speech", []item{f.interval, f.chance, f.phrases}},
		{"Opacity", []item{f.opacitySpeed, f.opacityMin, f.opacityMax}},
		{"Scare", []item{f.scareEnabled, f.scareMin, f.scareMax, f.scarePhrases}},
		{"Appearance", []item{f.scale, f.sound}},
	}
}

const (
	sectionHeaderH = 24
	itemGap        = 6
)

func (f *Form) contentHeight() int {
	h := margin
	for _, s := range f.sections() {
		h += sectionHeaderH
		for _, it := range s.items {
			h += it.height() + itemGap
		}
		h += 8
	}
	return h
}

// Update handles input for one frame and reports whether the user applied
// or closed the form.
func (f *Form) Update() Event {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return EventClosed
	}

	_, wheelY := ebiten.Wheel()
	f.scroll -= int(wheelY * 20)
	maxScroll := f.contentHeight() - (FormHeight - buttonBarH)
	if maxScroll < 0 {
		maxScroll = 0
	}
	if f.scroll > maxScroll {
		f.scroll = maxScroll
	}
	if f.scroll < 0 {
		f.scroll = 0
	}

	// Buttons sit in a fixed bar below the scrolled content.
	barY := FormHeight - buttonBarH
	if f.resetBtn.update(rect{margin, barY + 8, 140, 30}, mx, my, clicked) {
		f.cfg.Reset()
		f.refresh()
		return EventApplied
	}
	if f.applyBtn.update(rect{FormWidth - margin - 150, barY + 8, 70, 30}, mx, my, clicked) {
		f.apply()
		return EventApplied
	}
	if f.closeBtn.update(rect{FormWidth - margin - 70, barY + 8, 70, 30}, mx, my, clicked) {
		return EventClosed
	}

	// Ignore content interaction under the button bar.
	inContent := my < barY
	y := margin - f.scroll
	for _, s := range f.sections() {
		y += sectionHeaderH
		for _, it := range s.items {
			r := rect{margin, y, contentWidth, it.height()}
			switch w := it.(type) {
			case *slider:
				if inContent || w.dragging {
					w.update(r, mx, my, pressed)
				}
			case *checkbox:
				if inContent {
					w.update(r, mx, my, clicked)
				}
			case *textArea:
				w.update(r, mx, my, clicked && inContent)
			}
			y += it.height() + itemGap
		}
		y += 8
	}

	return EventNone
}

// Draw paints the whole form. The window is opaque in settings mode.
func (f *Form) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})

	y := margin - f.scroll
	for _, s := range f.sections() {
		ebitenutil.DebugPrintAt(screen, "-- "+s.title+" --", margin, y+4)
		y += sectionHeaderH
		for _, it := range s.items {
			r := rect{margin, y, contentWidth, it.height()}
			switch w := it.(type) {
			case *slider:
				w.draw(screen, r)
			case *checkbox:
				w.draw(screen, r)
			case *textArea:
				w.draw(screen, r)
			}
			y += it.height() + itemGap
		}
		y += 8
	}

	// Button bar covers any content scrolled under it.
	barY := FormHeight - buttonBarH
	vector.DrawFilledRect(screen, 0, float32(barY), FormWidth, buttonBarH,
		color.RGBA{24, 24, 32, 255}, false)
	vector.StrokeLine(screen, 0, float32(barY), FormWidth, float32(barY), 1,
		color.RGBA{90, 90, 110, 255}, false)

	mx, my := ebiten.CursorPosition()
	f.resetBtn.draw(screen, rect{margin, barY + 8, 140, 30}, mx, my)
	f.applyBtn.draw(screen, rect{FormWidth - margin - 150, barY + 8, 70, 30}, mx, my)
	f.closeBtn.draw(screen, rect{FormWidth - margin - 70, barY + 8, 70, 30}, mx, my)
}

// apply copies every control value into the config.
func (f *Form) apply() {
	f.cfg.Speed = float64(f.speed.value)
	f.cfg.SpeakInterval = f.interval.value
	f.cfg.SpeakChance = float64(f.chance.value) / 100
	f.cfg.OpacitySpeed = f.opacitySpeed.floatValue()
	f.cfg.OpacityMin = float64(f.opacityMin.value) / 100
	f.cfg.OpacityMax = float64(f.opacityMax.value) / 100
	f.cfg.ScareEnabled = f.scareEnabled.checked
	f.cfg.ScareMinMinutes = f.scareMin.value
	f.cfg.ScareMaxMinutes = f.scareMax.value
	f.cfg.GhostScale = f.scale.floatValue()
	f.cfg.SoundEnabled = f.sound.checked
	f.cfg.CustomPhrases = ParseLines(f.phrases.text)
	f.cfg.CustomScarePhrases = ParseLines(f.scarePhrases.text)
}

// refresh pulls current config values back into the controls.
func (f *Form) refresh() {
	f.speed.value = int(f.cfg.Speed)
	f.interval.value = f.cfg.SpeakInterval
	f.chance.value = int(f.cfg.SpeakChance * 100)
	f.opacitySpeed.setFloat(f.cfg.OpacitySpeed)
	f.opacityMin.value = int(f.cfg.OpacityMin * 100)
	f.opacityMax.value = int(f.cfg.OpacityMax * 100)
	f.scareEnabled.checked = f.cfg.ScareEnabled
	f.scareMin.value = f.cfg.ScareMinMinutes
	f.scareMax.value = f.cfg.ScareMaxMinutes
	f.scale.setFloat(f.cfg.GhostScale)
	f.sound.checked = f.cfg.SoundEnabled
	f.phrases.text = strings.Join(f.cfg.CustomPhrases, "\n")
	f.scarePhrases.text = strings.Join(f.cfg.CustomScarePhrases, "\n")
}

// ParseLines turns editor text into a phrase list, dropping blank lines
// and surrounding whitespace.
func ParseLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}
