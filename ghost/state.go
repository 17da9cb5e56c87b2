// Package ghost implements the animation and scheduling engine for the
// desktop pet: wandering, the opacity wave, speech, blinking, sparkles,
// mouth and arm expressions, and the scare sequence. Each behavior runs on
// its own timer; the engine owns all time-driven state and the render layer
// only ever reads a snapshot of it.
package ghost

import "time"

// BlinkStyle selects how the eyes close during a blink.
type BlinkStyle int

const (
	BlinkClosed BlinkStyle = iota // flat closed-eye lines
	BlinkSquint                   // >< squint
)

// MouthShape selects the mouth variant being drawn.
type MouthShape int

const (
	MouthNormal MouthShape = iota
	MouthO
	MouthHappy
)

// Window geometry in base (unscaled) coordinates. The ghost body occupies an
// 80px-wide area at (BodyOffsetX, BodyOffsetY) inside the window, leaving
// headroom for the speech bubble.
const (
	BaseWidth  = 220
	BaseHeight = 210

	BodyOffsetX = 70 // (BaseWidth - 80) / 2
	BodyOffsetY = 90

	// Body center within the 80px body area.
	BodyCenterX = 40
	BodyCenterY = 50
)

// Behavior timings.
const (
	floatTickPeriod = 50 * time.Millisecond
	moveTickPeriod  = 30 * time.Millisecond
	wanderPeriod    = 5 * time.Second

	bubbleTimeout = 3 * time.Second

	blinkDelayMin    = 3 * time.Second
	blinkDelayMax    = 7 * time.Second
	blinkClosedHold  = 150 * time.Millisecond
	blinkSquintHold  = 300 * time.Millisecond
	sparkleDelayMin  = 20 * time.Second
	sparkleDelayMax  = 40 * time.Second
	sparkleHold      = 2 * time.Second
	mouthDelayMin    = 10 * time.Second
	mouthDelayMax    = 25 * time.Second
	mouthOHold       = 1500 * time.Millisecond
	mouthHappyHold   = 2 * time.Second
	armsDelayMin     = 15 * time.Second
	armsDelayMax     = 35 * time.Second
	armsHold         = 3 * time.Second
	greetingDelay    = time.Second
	scareDuration    = 5 * time.Second
	wanderMargin     = 100
)

// Greeting is spoken once, shortly after startup.
const Greeting = "Boo! I'm your new friend!"

// State is the full drawable state of the ghost. Timestamps are seconds on
// the engine clock so the renderer can derive animation phases without its
// own notion of time.
type State struct {
	Clock float64 // seconds since the engine started

	// Position of the body center in virtual-screen coordinates.
	X, Y             float64
	TargetX, TargetY float64
	Moving           bool
	FacingLeft       bool

	Opacity     float64
	FloatOffset float64 // vertical bob, pixels

	Blinking   bool
	BlinkStyle BlinkStyle

	SparkleActive bool
	SparkleStart  float64

	Mouth      MouthShape
	MouthStart float64

	ArmsActive bool
	ArmsStart  float64

	BubbleText   string
	BubbleActive bool
	BubbleWidth  int

	ScareActive bool
}
