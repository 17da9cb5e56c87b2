// Package display picks which monitor the ghost haunts.
package display

import (
	"fmt"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Names lists the attached monitors in the order the OS reports them.
func Names() []string {
	var names []string
	for _, m := range ebiten.AppendMonitors(nil) {
		names = append(names, m.Name())
	}
	return names
}

// Match finds the first name containing filter, case-insensitively. An
// empty filter matches the first entry.
func Match(names []string, filter string) (int, bool) {
	if len(names) == 0 {
		return 0, false
	}
	if filter == "" {
		return 0, true
	}
	f := strings.ToLower(filter)
	for i, n := range names {
		if strings.Contains(strings.ToLower(n), f) {
			return i, true
		}
	}
	return 0, false
}

// Select returns the monitor matching filter, or the primary one when the
// filter matches nothing. Errors only when no monitor is attached at all.
func Select(filter string) (*ebiten.MonitorType, error) {
	monitors := ebiten.AppendMonitors(nil)
	if len(monitors) == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}

	names := make([]string, len(monitors))
	for i, m := range monitors {
		names[i] = m.Name()
	}
	if i, ok := Match(names, filter); ok {
		return monitors[i], nil
	}
	return ebiten.Monitor(), nil
}

// Bounds is the pixel area the ghost may wander. Monitor origins are not
// exposed, so wandering is confined to the selected monitor.
func Bounds(m *ebiten.MonitorType) image.Rectangle {
	w, h := m.Size()
	return image.Rect(0, 0, w, h)
}
