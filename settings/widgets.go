package settings

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(px, py int) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}

// slider is a horizontal drag control over an integer range. A non-zero
// divisor displays the value as value/divisor with one decimal, matching
// how fractional settings are stored.
type slider struct {
	label    string
	min, max int
	value    int
	divisor  int
	dragging bool
}

func newSlider(label string, min, max, value int) *slider {
	return &slider{label: label, min: min, max: max, value: value}
}

func newFloatSlider(label string, min, max int, value float64, divisor int) *slider {
	return &slider{label: label, min: min, max: max, value: int(value * float64(divisor)), divisor: divisor}
}

func (s *slider) floatValue() float64 {
	return float64(s.value) / float64(s.divisor)
}

func (s *slider) setFloat(v float64) {
	s.value = int(v * float64(s.divisor))
}

func (s *slider) height() int { return 34 }

func (s *slider) update(r rect, mx, my int, pressed bool) {
	track := rect{r.x, r.y + 18, r.w, 12}
	if pressed && !s.dragging && track.contains(mx, my) {
		s.dragging = true
	}
	if !pressed {
		s.dragging = false
	}
	if s.dragging {
		frac := float64(mx-track.x) / float64(track.w)
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		s.value = s.min + int(frac*float64(s.max-s.min)+0.5)
	}
}

func (s *slider) draw(screen *ebiten.Image, r rect) {
	text := fmt.Sprintf("%s: %d", s.label, s.value)
	if s.divisor != 0 {
		text = fmt.Sprintf("%s: %.1f", s.label, s.floatValue())
	}
	ebitenutil.DebugPrintAt(screen, text, r.x, r.y)

	track := rect{r.x, r.y + 18, r.w, 12}
	vector.DrawFilledRect(screen, float32(track.x), float32(track.y+4), float32(track.w), 4,
		color.RGBA{70, 70, 90, 255}, false)

	frac := float64(s.value-s.min) / float64(s.max-s.min)
	knobX := float32(track.x) + float32(frac*float64(track.w))
	vector.DrawFilledCircle(screen, knobX, float32(track.y+6), 6, color.RGBA{180, 180, 220, 255}, true)
}

type checkbox struct {
	label   string
	checked bool
}

func (c *checkbox) height() int { return 22 }

func (c *checkbox) update(r rect, mx, my int, clicked bool) {
	if clicked && r.contains(mx, my) {
		c.checked = !c.checked
	}
}

func (c *checkbox) draw(screen *ebiten.Image, r rect) {
	box := rect{r.x, r.y + 2, 14, 14}
	vector.StrokeRect(screen, float32(box.x), float32(box.y), 14, 14, 1,
		color.RGBA{180, 180, 220, 255}, false)
	if c.checked {
		vector.DrawFilledRect(screen, float32(box.x+3), float32(box.y+3), 8, 8,
			color.RGBA{120, 220, 120, 255}, false)
	}
	ebitenutil.DebugPrintAt(screen, c.label, r.x+22, r.y+1)
}

// textArea is a minimal multiline editor: typed characters append at the
// end, Backspace deletes, Enter starts a new line. Click to focus.
type textArea struct {
	label   string
	text    string
	focused bool
	repeat  map[ebiten.Key]int
}

func newTextArea(label, text string) *textArea {
	return &textArea{label: label, text: text, repeat: map[ebiten.Key]int{}}
}

func (t *textArea) height() int { return 16 + 72 }

func (t *textArea) update(r rect, mx, my int, clicked bool) {
	box := rect{r.x, r.y + 16, r.w, 72}
	if clicked {
		t.focused = box.contains(mx, my)
	}
	if !t.focused {
		return
	}

	for _, ch := range ebiten.AppendInputChars(nil) {
		if ch >= ' ' {
			t.text += string(ch)
		}
	}
	if t.keyTyped(ebiten.KeyEnter) {
		t.text += "\n"
	}
	if t.keyTyped(ebiten.KeyBackspace) && len(t.text) > 0 {
		t.text = t.text[:len(t.text)-1]
	}
}

// keyTyped reports a fresh press, then repeats while the key is held.
func (t *textArea) keyTyped(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 0 {
		return false
	}
	if d == 1 {
		return true
	}
	return d >= 24 && d%3 == 0
}

func (t *textArea) draw(screen *ebiten.Image, r rect) {
	ebitenutil.DebugPrintAt(screen, t.label, r.x, r.y)

	box := rect{r.x, r.y + 16, r.w, 72}
	bg := color.RGBA{20, 20, 28, 255}
	border := color.RGBA{90, 90, 110, 255}
	if t.focused {
		border = color.RGBA{150, 150, 200, 255}
	}
	vector.DrawFilledRect(screen, float32(box.x), float32(box.y), float32(box.w), float32(box.h), bg, false)
	vector.StrokeRect(screen, float32(box.x), float32(box.y), float32(box.w), float32(box.h), 1, border, false)

	lines := strings.Split(t.text, "\n")
	maxLines := (box.h - 8) / 13
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	for i, line := range lines {
		maxChars := (box.w - 8) / 6
		if len(line) > maxChars {
			line = line[len(line)-maxChars:]
		}
		ebitenutil.DebugPrintAt(screen, line, box.x+4, box.y+4+i*13)
	}
}

type button struct {
	label string
}

func (b *button) update(r rect, mx, my int, clicked bool) bool {
	return clicked && r.contains(mx, my)
}

func (b *button) draw(screen *ebiten.Image, r rect, mx, my int) {
	fill := color.RGBA{50, 50, 70, 255}
	if r.contains(mx, my) {
		fill = color.RGBA{70, 70, 100, 255}
	}
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), fill, false)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1,
		color.RGBA{120, 120, 150, 255}, false)
	tx := r.x + (r.w-len(b.label)*6)/2
	ebitenutil.DebugPrintAt(screen, b.label, tx, r.y+(r.h-13)/2)
}
