// Package menu implements the small context menu that opens on a
// right-click anywhere on the ghost.
package menu

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Action is the menu entry the user picked, if any.
type Action int

const (
	ActionNone Action = iota
	ActionSettings
	ActionScare
	ActionQuit
	ActionDismiss
)

const (
	itemHeight = 24
	menuWidth  = 120
)

var labels = []string{"Settings...", "Scare now!", "Quit"}

var actions = []Action{ActionSettings, ActionScare, ActionQuit}

// Menu is a click-to-pick list anchored where the user right-clicked.
type Menu struct {
	x, y    int
	hovered int
}

// Open places the menu at the cursor, clamped so it stays inside the window.
func Open(cursorX, cursorY, screenW, screenH int) *Menu {
	x, y := cursorX, cursorY
	if x+menuWidth > screenW {
		x = screenW - menuWidth
	}
	if h := len(labels) * itemHeight; y+h > screenH {
		y = screenH - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return &Menu{x: x, y: y, hovered: -1}
}

// Update tracks hover state and returns the chosen action. A left click
// outside the menu, or Escape, dismisses it.
func (m *Menu) Update() Action {
	mx, my := ebiten.CursorPosition()

	m.hovered = -1
	for i := range labels {
		if pointInRect(mx, my, rect{m.x, m.y + i*itemHeight, menuWidth, itemHeight}) {
			m.hovered = i
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ActionDismiss
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if m.hovered >= 0 {
			return actions[m.hovered]
		}
		return ActionDismiss
	}
	return ActionNone
}

// Draw renders the menu panel over whatever is already on screen.
func (m *Menu) Draw(screen *ebiten.Image) {
	h := len(labels) * itemHeight
	vector.DrawFilledRect(screen, float32(m.x), float32(m.y), menuWidth, float32(h),
		color.RGBA{30, 30, 40, 235}, false)
	vector.StrokeRect(screen, float32(m.x), float32(m.y), menuWidth, float32(h), 1,
		color.RGBA{90, 90, 110, 255}, false)

	for i, label := range labels {
		y := m.y + i*itemHeight
		if i == m.hovered {
			vector.DrawFilledRect(screen, float32(m.x+1), float32(y+1), menuWidth-2, itemHeight-2,
				color.RGBA{70, 70, 100, 235}, false)
		}
		ebitenutil.DebugPrintAt(screen, label, m.x+10, y+5)
	}
}

type rect struct {
	x, y, w, h int
}

func pointInRect(px, py int, r rect) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}
