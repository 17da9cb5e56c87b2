package ghost

import "math"

// floatTick runs at 20 Hz: vertical bob plus the ghostly opacity wave. The
// wave is a weighted sum of three sines at distinct frequencies with the
// per-instance phase offsets, clamped to the configured bounds. While a
// scare is active the wave is suspended; the scare fade owns opacity.
func (e *Engine) floatTick() {
	t := e.state.Clock
	e.state.FloatOffset = math.Sin(t*2) * 5

	if e.state.ScareActive {
		return
	}

	sp := e.cfg.OpacitySpeed
	p := e.opacityPhases
	wave := math.Sin(t*0.3*sp+p[0])*0.35 +
		math.Sin(t*0.7*sp+p[1])*0.25 +
		math.Sin(t*1.1*sp+p[2])*0.15
	e.state.Opacity = math.Max(e.cfg.OpacityMin,
		math.Min(e.cfg.OpacityMax, 0.55+wave))
}

// pickNewDestination chooses a random target inside the screen bounds,
// inset by the wander margin, and turns the ghost toward it.
func (e *Engine) pickNewDestination() {
	e.state.TargetX = float64(e.randCoord(e.bounds.Min.X+wanderMargin, e.bounds.Max.X-wanderMargin))
	e.state.TargetY = float64(e.randCoord(e.bounds.Min.Y+wanderMargin, e.bounds.Max.Y-wanderMargin))
	e.state.Moving = true
	e.state.FacingLeft = e.state.TargetX <= e.state.X
}

// randCoord samples an integer in [lo, hi]. Degenerate ranges (screen
// smaller than twice the margin) collapse to lo.
func (e *Engine) randCoord(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + e.rng.Intn(hi-lo+1)
}

// moveTick steps toward the target at the configured speed. On arrival the
// next destination is picked in the same tick, so the ghost never idles.
func (e *Engine) moveTick() {
	if !e.state.Moving {
		return
	}

	speed := e.cfg.Speed
	dx := e.state.TargetX - e.state.X
	dy := e.state.TargetY - e.state.Y
	dist := math.Hypot(dx, dy)

	if dist < speed {
		e.state.X = e.state.TargetX
		e.state.Y = e.state.TargetY
		e.state.Moving = false
		e.pickNewDestination()
		return
	}

	e.state.X += dx / dist * speed
	e.state.Y += dy / dist * speed
}

// ── speech ──

func (e *Engine) say(text string) {
	e.state.BubbleText = text
	e.state.BubbleWidth = bubbleWidth(text)
	e.state.BubbleActive = true
	e.bubbleTimer.Start(bubbleTimeout)
}

func bubbleWidth(text string) int {
	w := len(text)*10 + 40
	if w < 150 {
		w = 150
	}
	return w
}

func (e *Engine) sayRandomPhrase() {
	if e.rng.Float64() < e.cfg.SpeakChance {
		if p := e.queue.Next(); p != "" {
			e.say(p)
		}
	}
}

func (e *Engine) dismissBubble() {
	e.state.BubbleActive = false
	e.bubbleTimer.Stop()
}

// ── blink ──

func (e *Engine) scheduleBlink() {
	e.blinkTimer.Start(e.randDelay(blinkDelayMin, blinkDelayMax))
}

func (e *Engine) startBlink() {
	// 2:1 weighting toward a full close over a squint.
	if e.rng.Intn(3) < 2 {
		e.state.BlinkStyle = BlinkClosed
		e.blinkEndTimer.Start(blinkClosedHold)
	} else {
		e.state.BlinkStyle = BlinkSquint
		e.blinkEndTimer.Start(blinkSquintHold)
	}
	e.state.Blinking = true
}

func (e *Engine) endBlink() {
	e.state.Blinking = false
	e.scheduleBlink()
}

// ── sparkle ──

func (e *Engine) scheduleSparkle() {
	e.sparkleTimer.Start(e.randDelay(sparkleDelayMin, sparkleDelayMax))
}

func (e *Engine) startSparkle() {
	e.state.SparkleActive = true
	e.state.SparkleStart = e.state.Clock
	e.sparkleEndTimer.Start(sparkleHold)
}

func (e *Engine) endSparkle() {
	e.state.SparkleActive = false
	e.scheduleSparkle()
}

// ── mouth ──

func (e *Engine) scheduleMouth() {
	e.mouthTimer.Start(e.randDelay(mouthDelayMin, mouthDelayMax))
}

func (e *Engine) startMouth() {
	if e.rng.Intn(2) == 0 {
		e.state.Mouth = MouthO
		e.mouthEndTimer.Start(mouthOHold)
	} else {
		e.state.Mouth = MouthHappy
		e.mouthEndTimer.Start(mouthHappyHold)
	}
	e.state.MouthStart = e.state.Clock
}

func (e *Engine) endMouth() {
	e.state.Mouth = MouthNormal
	e.scheduleMouth()
}

// ── arms ──

func (e *Engine) scheduleArms() {
	e.armsTimer.Start(e.randDelay(armsDelayMin, armsDelayMax))
}

func (e *Engine) startArms() {
	e.state.ArmsActive = true
	e.state.ArmsStart = e.state.Clock
	e.armsEndTimer.Start(armsHold)
}

func (e *Engine) endArms() {
	e.state.ArmsActive = false
	e.scheduleArms()
}
