// Package render maps ghost state to 2D vector drawing on an ebiten image.
// Drawing is a pure function of the state snapshot; nothing here mutates
// engine state. The geometry helpers in this file are plain math so the
// animation curves can be tested without a graphics context.
package render

import (
	"math"
	"strings"
)

// Debug-font cell size used for all text metrics.
const (
	charWidth  = 6
	lineHeight = 13
)

// HemOffsets returns the four phase-offset sine terms animating the wavy
// bottom hem of the ghost at the given engine clock.
func HemOffsets(clock float64) [4]float64 {
	wt := clock * 3
	return [4]float64{
		math.Sin(wt) * 4,
		math.Sin(wt+1.5) * 4,
		math.Sin(wt+3.0) * 4,
		math.Sin(wt+4.5) * 4,
	}
}

// ArmExtension returns how far the arm nubs are extended, 0..1, for the
// given seconds since the arms activated: cosine ease in over 0.4s, hold
// for 2.2s, ease out over 0.4s.
func ArmExtension(elapsed float64) float64 {
	var t float64
	switch {
	case elapsed < 0.4:
		t = elapsed / 0.4
	case elapsed < 2.6:
		t = 1.0
	default:
		t = math.Max(0, 1.0-(elapsed-2.6)/0.4)
	}
	return (1 - math.Cos(t*math.Pi)) / 2
}

// ArmWiggle returns the vertical wiggle offset of the arms, scaled by the
// current extension so the nubs settle as they retract.
func ArmWiggle(elapsed float64) float64 {
	return math.Sin(elapsed*4) * 2.5 * ArmExtension(elapsed)
}

// WrapText word-wraps text to at most maxChars columns. Words longer than a
// line are hard-split.
func WrapText(text string, maxChars int) []string {
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		for len(word) > maxChars {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			lines = append(lines, word[:maxChars])
			word = word[maxChars:]
		}
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= maxChars:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
