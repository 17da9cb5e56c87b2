package ghost

import (
	"time"

	"github.com/chuwy79936/ghost-pet/phrase"
)

// ScareDelay samples the delay until the next scare from the configured
// minute bounds. Inverted bounds are swapped before sampling.
func (e *Engine) ScareDelay() time.Duration {
	lo := time.Duration(e.cfg.ScareMinMinutes) * time.Minute
	hi := time.Duration(e.cfg.ScareMaxMinutes) * time.Minute
	return e.randDelay(lo, hi)
}

func (e *Engine) scheduleScare() {
	e.scareTimer.Start(e.ScareDelay())
}

// scareFired is the timer callback. The enabled flag is rechecked here so a
// stale firing never scares after the feature was turned off.
func (e *Engine) scareFired() {
	if !e.cfg.ScareEnabled {
		e.scheduleScare()
		return
	}
	e.doScare()
}

// ScareNow runs one scare sequence immediately, regardless of the enabled
// flag. This backs the "Scare now!" menu item.
func (e *Engine) ScareNow() {
	e.doScare()
}

func (e *Engine) doScare() {
	e.state.ScareActive = true
	e.scareStart = e.state.Clock

	if e.window != nil {
		e.window.RaiseToFront()
	}

	// Start fully transparent; the fade profile takes over from here.
	e.state.Opacity = 0

	e.say(phrase.Pick(e.rng, e.scarePool()))

	if e.chime != nil && e.cfg.SoundEnabled {
		e.chime.Play()
	}
}

// updateScare advances the fade. At completion the ghost sinks back behind
// other windows and, if still enabled, the next scare is scheduled.
func (e *Engine) updateScare() {
	t := (e.state.Clock - e.scareStart) / scareDuration.Seconds()

	if t >= 1 {
		e.state.ScareActive = false
		e.dismissBubble()
		if e.window != nil {
			e.window.LowerToBack()
		}
		if e.cfg.ScareEnabled {
			e.scheduleScare()
		}
		return
	}

	e.state.Opacity = ScareOpacity(t)
}

// ScareOpacity is the scare fade profile over normalized time t in [0,1):
// fade in over the first 30%, hold at full for the middle 40%, fade out
// over the last 30%.
func ScareOpacity(t float64) float64 {
	switch {
	case t < 0.3:
		return t / 0.3
	case t < 0.7:
		return 1.0
	default:
		return 1.0 - (t-0.7)/0.3
	}
}
