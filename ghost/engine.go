package ghost

import (
	"image"
	"math"
	"math/rand"
	"time"

	"github.com/chuwy79936/ghost-pet/config"
	"github.com/chuwy79936/ghost-pet/phrase"
	"github.com/chuwy79936/ghost-pet/timer"
)

// WindowController is how the engine asks the host shell for z-order
// changes. The engine never touches native window handles; a scare requests
// the front layer and releases it when the fade completes.
type WindowController interface {
	RaiseToFront()
	LowerToBack()
}

// Chime plays the scare sound. Implementations must not block.
type Chime interface {
	Play()
}

// Engine advances all time-driven ghost state. It is single-threaded:
// Advance must be called from the UI tick, and every timer callback runs
// inside it.
type Engine struct {
	cfg    *config.Config
	rng    *rand.Rand
	bounds image.Rectangle
	window WindowController
	chime  Chime

	timers timer.Set
	state  State

	opacityPhases [3]float64
	queue         *phrase.Queue
	scareStart    float64

	floatTimer  *timer.Timer
	moveTimer   *timer.Timer
	wanderTimer *timer.Timer
	speakTimer  *timer.Timer
	bubbleTimer *timer.Timer

	blinkTimer      *timer.Timer
	blinkEndTimer   *timer.Timer
	sparkleTimer    *timer.Timer
	sparkleEndTimer *timer.Timer
	mouthTimer      *timer.Timer
	mouthEndTimer   *timer.Timer
	armsTimer       *timer.Timer
	armsEndTimer    *timer.Timer

	scareTimer    *timer.Timer
	greetingTimer *timer.Timer
}

// New creates an engine over the given screen bounds. The rng drives every
// random draw, so a seeded source makes the whole engine deterministic.
// window and chime may be nil.
func New(cfg *config.Config, bounds image.Rectangle, rng *rand.Rand, window WindowController, chime Chime) *Engine {
	e := &Engine{
		cfg:    cfg,
		rng:    rng,
		bounds: bounds,
		window: window,
		chime:  chime,
	}

	// Random per-instance phases keep the opacity wave from looking the
	// same on every run.
	for i := range e.opacityPhases {
		e.opacityPhases[i] = rng.Float64() * 2 * math.Pi
	}

	e.queue = phrase.NewQueue(rng, e.speechPool())

	e.state.X = float64(bounds.Min.X+bounds.Max.X) / 2
	e.state.Y = float64(bounds.Min.Y+bounds.Max.Y) / 2
	e.state.Opacity = 1.0

	e.floatTimer = e.timers.New(e.floatTick)
	e.moveTimer = e.timers.New(e.moveTick)
	e.wanderTimer = e.timers.New(e.pickNewDestination)
	e.speakTimer = e.timers.New(e.sayRandomPhrase)
	e.bubbleTimer = e.timers.New(e.dismissBubble)

	e.blinkTimer = e.timers.New(e.startBlink)
	e.blinkEndTimer = e.timers.New(e.endBlink)
	e.sparkleTimer = e.timers.New(e.startSparkle)
	e.sparkleEndTimer = e.timers.New(e.endSparkle)
	e.mouthTimer = e.timers.New(e.startMouth)
	e.mouthEndTimer = e.timers.New(e.endMouth)
	e.armsTimer = e.timers.New(e.startArms)
	e.armsEndTimer = e.timers.New(e.endArms)

	e.scareTimer = e.timers.New(e.scareFired)
	e.greetingTimer = e.timers.New(func() { e.say(Greeting) })

	return e
}

// Start arms every behavior timer and picks the first wander destination.
func (e *Engine) Start() {
	e.floatTimer.StartRepeating(floatTickPeriod)
	e.moveTimer.StartRepeating(moveTickPeriod)
	e.wanderTimer.StartRepeating(wanderPeriod)
	e.speakTimer.StartRepeating(time.Duration(e.cfg.SpeakInterval) * time.Second)

	e.scheduleBlink()
	e.scheduleSparkle()
	e.scheduleMouth()
	e.scheduleArms()

	if e.cfg.ScareEnabled {
		e.scheduleScare()
	}

	e.pickNewDestination()
	e.greetingTimer.Start(greetingDelay)
}

// Advance moves the engine clock forward by dt, firing any due behavior
// timers and progressing an active scare fade.
func (e *Engine) Advance(dt time.Duration) {
	e.state.Clock += dt.Seconds()
	e.timers.Advance(dt)
	if e.state.ScareActive {
		e.updateScare()
	}
}

// ApplyConfig picks up live config changes: the speech timer restarts with
// the new period, the phrase queue reshuffles over the new pool, and the
// scare timer is cancelled or rescheduled to match the enabled flag.
func (e *Engine) ApplyConfig() {
	e.speakTimer.StartRepeating(time.Duration(e.cfg.SpeakInterval) * time.Second)
	e.queue.SetPool(e.speechPool())

	if !e.cfg.ScareEnabled {
		e.scareTimer.Stop()
	} else if !e.scareTimer.Active() && !e.state.ScareActive {
		e.scheduleScare()
	}
}

// State returns a copy of the current drawable state.
func (e *Engine) State() State {
	return e.state
}

// Bounds returns the virtual screen rectangle the ghost wanders in.
func (e *Engine) Bounds() image.Rectangle {
	return e.bounds
}

// WindowPosition converts the body-center position into the top-left corner
// of a window scaled by s, including the vertical bob.
func (e *Engine) WindowPosition(s float64) (int, int) {
	x := e.state.X - (BodyOffsetX+BodyCenterX)*s
	y := e.state.Y - (BodyOffsetY+BodyCenterY)*s + e.state.FloatOffset
	return int(math.Round(x)), int(math.Round(y))
}

func (e *Engine) speechPool() []string {
	if len(e.cfg.CustomPhrases) > 0 {
		return e.cfg.CustomPhrases
	}
	return phrase.Friendly
}

func (e *Engine) scarePool() []string {
	if len(e.cfg.CustomScarePhrases) > 0 {
		return e.cfg.CustomScarePhrases
	}
	return phrase.Scare
}

// randDelay samples uniformly from [lo, hi], swapping inverted bounds first.
func (e *Engine) randDelay(lo, hi time.Duration) time.Duration {
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == lo {
		return lo
	}
	return lo + time.Duration(e.rng.Int63n(int64(hi-lo)+1))
}
