package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/chuwy79936/ghost-pet/ghost"
)

var whiteImg *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImg == nil {
		whiteImg = ebiten.NewImage(1, 1)
		whiteImg.Fill(color.White)
	}
	return whiteImg
}

// xform maps base ghost coordinates to screen pixels. dx/dy shift in base
// space before mirroring, so the shadow offset flips with the ghost.
type xform struct {
	scale  float64
	mirror bool
	ox, oy float64
	dx, dy float64
}

func (t xform) pt(px, py float64) (float32, float32) {
	px += t.dx
	py += t.dy
	if t.mirror {
		px = 80 - px
	}
	return float32((t.ox + px) * t.scale), float32((t.oy + py) * t.scale)
}

// Draw renders the complete ghost window: speech bubble first, then the
// body with its animated hem, expression, and optional arms. The state is
// read-only; Draw has no side effects beyond pixels.
func Draw(dst *ebiten.Image, s ghost.State, scale float64) {
	if s.BubbleActive {
		drawBubble(dst, s, scale)
	}

	body := xform{scale: scale, mirror: s.FacingLeft, ox: ghost.BodyOffsetX, oy: ghost.BodyOffsetY}

	if s.ArmsActive {
		drawArms(dst, s, body)
	}

	hem := HemOffsets(s.Clock)
	shadow := body
	shadow.dx, shadow.dy = 2, 3
	fillPath(dst, bodyPath(shadow, hem), color.NRGBA{0, 0, 0, 40}, s.Opacity)

	p := bodyPath(body, hem)
	fillPath(dst, p, color.NRGBA{255, 255, 255, 230}, s.Opacity)
	strokePath(dst, p, 2*float32(scale), color.NRGBA{180, 180, 200, 255}, s.Opacity)

	drawBlush(dst, s, body)
	drawEyes(dst, s, body)
	drawMouth(dst, s, body)
}

const (
	cx = ghost.BodyCenterX
	cy = ghost.BodyCenterY
)

// bodyPath builds the ghost silhouette with the four hem wave offsets.
func bodyPath(t xform, hem [4]float64) *vector.Path {
	var p vector.Path
	moveTo(&p, t, float64(cx-30), float64(cy+45))
	quadTo(&p, t, float64(cx-35), float64(cy), float64(cx-30), float64(cy-25))
	quadTo(&p, t, float64(cx-25), float64(cy-40), float64(cx), float64(cy-42))
	quadTo(&p, t, float64(cx+25), float64(cy-40), float64(cx+30), float64(cy-25))
	quadTo(&p, t, float64(cx+35), float64(cy), float64(cx+30), float64(cy+45))

	wy := float64(cy + 45)
	quadTo(&p, t, float64(cx+22), wy+12+hem[0], float64(cx+15), wy+hem[0])
	quadTo(&p, t, float64(cx+7), wy-10+hem[1], float64(cx), wy+5+hem[1])
	quadTo(&p, t, float64(cx-7), wy+15+hem[2], float64(cx-15), wy+hem[2])
	quadTo(&p, t, float64(cx-22), wy-8+hem[3], float64(cx-30), wy+hem[3])
	p.Close()
	return &p
}

func drawBlush(dst *ebiten.Image, s ghost.State, t xform) {
	fillEllipse(dst, t, cx-22, cy+9, 6, 4, color.NRGBA{255, 180, 180, 100}, s.Opacity)
	fillEllipse(dst, t, cx+22, cy+9, 6, 4, color.NRGBA{255, 180, 180, 100}, s.Opacity)
}

func drawEyes(dst *ebiten.Image, s ghost.State, t xform) {
	ink := color.NRGBA{40, 40, 40, 255}

	if s.Blinking && s.BlinkStyle == ghost.BlinkSquint {
		// >< squint
		strokeLine(dst, t, cx-15, cy-5, cx-8, cy, 2.5, ink, s.Opacity)
		strokeLine(dst, t, cx-15, cy+5, cx-8, cy, 2.5, ink, s.Opacity)
		strokeLine(dst, t, cx+15, cy-5, cx+8, cy, 2.5, ink, s.Opacity)
		strokeLine(dst, t, cx+15, cy+5, cx+8, cy, 2.5, ink, s.Opacity)
		return
	}
	if s.Blinking {
		strokeLine(dst, t, cx-15, cy, cx-5, cy, 2, ink, s.Opacity)
		strokeLine(dst, t, cx+5, cy, cx+15, cy, 2, ink, s.Opacity)
		return
	}

	fillEllipse(dst, t, cx-10, cy-1, 5, 7, ink, s.Opacity)
	fillEllipse(dst, t, cx+10, cy-1, 5, 7, ink, s.Opacity)

	// Eye shine
	shine := color.NRGBA{255, 255, 255, 255}
	fillEllipse(dst, t, cx-11, cy-3, 2, 2, shine, s.Opacity)
	fillEllipse(dst, t, cx+9, cy-3, 2, 2, shine, s.Opacity)

	if s.SparkleActive {
		drawSparkles(dst, s, t)
	}
}

func drawSparkles(dst *ebiten.Image, s ghost.State, t xform) {
	st := (s.Clock - s.SparkleStart) * 4
	sz := 6 + math.Sin(st)*2

	for _, ex := range []float64{cx - 10, cx + 10} {
		ey := float64(cy - 1)
		var star vector.Path
		moveTo(&star, t, ex, ey-sz)
		lineTo(&star, t, ex+sz*0.3, ey-sz*0.3)
		lineTo(&star, t, ex+sz, ey)
		lineTo(&star, t, ex+sz*0.3, ey+sz*0.3)
		lineTo(&star, t, ex, ey+sz)
		lineTo(&star, t, ex-sz*0.3, ey+sz*0.3)
		lineTo(&star, t, ex-sz, ey)
		lineTo(&star, t, ex-sz*0.3, ey-sz*0.3)
		star.Close()
		strokePath(dst, &star, 1.5*float32(t.scale), color.NRGBA{255, 255, 100, 255}, s.Opacity)
	}

	// Tiny sparkle dots fading in and out on their own phases.
	dots := [][2]float64{{-18, -10}, {18, -12}, {-14, 8}, {16, 6}}
	for i, d := range dots {
		a := math.Sin(st*1.5 + float64(i)*1.7)
		if a <= 0 {
			continue
		}
		r := 1 + a*1.5
		px, py := t.pt(cx+d[0], cy+d[1])
		fade := fadeColor(color.NRGBA{255, 255, 200, 255}, s.Opacity)
		vector.DrawFilledCircle(dst, px, py, float32(r*t.scale), fade, true)
	}
}

func drawMouth(dst *ebiten.Image, s ghost.State, t xform) {
	ink := color.NRGBA{80, 80, 80, 255}
	fill := color.NRGBA{220, 100, 100, 140}

	switch s.Mouth {
	case ghost.MouthO:
		// Surprised O with a nervous shake.
		mt := s.Clock - s.MouthStart
		sx := math.Sin(mt*25) * 1.5
		sy := math.Cos(mt*30) * 1.0
		fillEllipse(dst, t, cx+sx, cy+18+sy, 4, 5, fill, s.Opacity)
		strokeEllipse(dst, t, cx+sx, cy+18+sy, 4, 5, 2*float32(t.scale), ink, s.Opacity)

	case ghost.MouthHappy:
		var grin vector.Path
		moveTo(&grin, t, cx-6, cy+15)
		lineTo(&grin, t, cx+6, cy+15)
		quadTo(&grin, t, cx+8, cy+22, cx, cy+24)
		quadTo(&grin, t, cx-8, cy+22, cx-6, cy+15)
		grin.Close()
		fillPath(dst, &grin, fill, s.Opacity)
		strokePath(dst, &grin, 2*float32(t.scale), ink, s.Opacity)

	default:
		var smile vector.Path
		moveTo(&smile, t, cx-5, cy+15)
		quadTo(&smile, t, cx, cy+20, cx+5, cy+15)
		strokePath(dst, &smile, 2*float32(t.scale), ink, s.Opacity)
	}
}

func drawArms(dst *ebiten.Image, s ghost.State, t xform) {
	elapsed := s.Clock - s.ArmsStart
	reach := 14 * ArmExtension(elapsed)
	wiggle := ArmWiggle(elapsed)
	armY := float64(cy + 10)

	body := color.NRGBA{255, 255, 255, 230}
	edge := color.NRGBA{180, 180, 200, 255}

	fillEllipse(dst, t, cx-28-reach, armY+wiggle, 7, 5, body, s.Opacity)
	strokeEllipse(dst, t, cx-28-reach, armY+wiggle, 7, 5, 2*float32(t.scale), edge, s.Opacity)

	fillEllipse(dst, t, cx+28+reach, armY-wiggle, 7, 5, body, s.Opacity)
	strokeEllipse(dst, t, cx+28+reach, armY-wiggle, 7, 5, 2*float32(t.scale), edge, s.Opacity)
}

func drawBubble(dst *ebiten.Image, s ghost.State, scale float64) {
	// Keep the bubble readable even when the ghost is nearly faded out.
	opacity := math.Max(s.Opacity, 0.6)

	bw := s.BubbleWidth
	if bw > ghost.BaseWidth-10 {
		bw = ghost.BaseWidth - 10
	}
	const bh = 60
	bx := float64(ghost.BaseWidth-bw) / 2
	by := 5.0

	t := xform{scale: scale}

	var p vector.Path
	roundedRect(&p, t, bx+5, by+5, float64(bw-10), bh-10, 15)

	// Tail pointing down toward the ghost.
	tailX := float64(ghost.BaseWidth) / 2
	tailTop := by + bh
	moveTo(&p, t, tailX-10, tailTop-5)
	lineTo(&p, t, tailX, tailTop+10)
	lineTo(&p, t, tailX+10, tailTop-5)
	p.Close()

	fillPath(dst, &p, color.NRGBA{255, 255, 255, 240}, opacity)
	strokePath(dst, &p, 2*float32(scale), color.NRGBA{200, 200, 200, 255}, opacity)

	drawBubbleText(dst, s.BubbleText, bx+5, by+5, bw-10, bh-10, scale, opacity)
}

// drawBubbleText renders word-wrapped, centered text. The debug font only
// draws white, so the text goes through an offscreen image and is tinted
// dark on the way in.
func drawBubbleText(dst *ebiten.Image, text string, bx, by float64, bw, bh int, scale, opacity float64) {
	if bw < charWidth || bh < lineHeight {
		return
	}

	lines := WrapText(text, (bw-10)/charWidth)
	if len(lines)*lineHeight > bh {
		lines = lines[:bh/lineHeight]
	}

	buf := ebiten.NewImage(bw, bh)
	defer buf.Deallocate()

	startY := (bh - len(lines)*lineHeight) / 2
	for i, line := range lines {
		x := (bw - len(line)*charWidth) / 2
		ebitenutil.DebugPrintAt(buf, line, x, startY+i*lineHeight)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(bx*scale, by*scale)
	opts.ColorScale.ScaleWithColor(color.NRGBA{60, 60, 60, 255})
	opts.ColorScale.ScaleAlpha(float32(opacity))
	dst.DrawImage(buf, opts)
}

// ── path plumbing ──

func moveTo(p *vector.Path, t xform, x, y float64) {
	px, py := t.pt(x, y)
	p.MoveTo(px, py)
}

func lineTo(p *vector.Path, t xform, x, y float64) {
	px, py := t.pt(x, y)
	p.LineTo(px, py)
}

func quadTo(p *vector.Path, t xform, cx, cy, x, y float64) {
	cpx, cpy := t.pt(cx, cy)
	px, py := t.pt(x, y)
	p.QuadTo(cpx, cpy, px, py)
}

func roundedRect(p *vector.Path, t xform, x, y, w, h, r float64) {
	x0, y0 := t.pt(x, y)
	x1, y1 := t.pt(x+w, y+h)
	rr := float32(r * t.scale)
	p.MoveTo(x0+rr, y0)
	p.LineTo(x1-rr, y0)
	p.ArcTo(x1, y0, x1, y0+rr, rr)
	p.LineTo(x1, y1-rr)
	p.ArcTo(x1, y1, x1-rr, y1, rr)
	p.LineTo(x0+rr, y1)
	p.ArcTo(x0, y1, x0, y1-rr, rr)
	p.LineTo(x0, y0+rr)
	p.ArcTo(x0, y0, x0+rr, y0, rr)
	p.Close()
}

// ellipsePath approximates an axis-aligned ellipse with four cubic
// segments (kappa approximation).
func ellipsePath(cx, cy, rx, ry float32) *vector.Path {
	const k = 0.5522847498
	var p vector.Path
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+k*ry, cx+k*rx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-k*rx, cy+ry, cx-rx, cy+k*ry, cx-rx, cy)
	p.CubicTo(cx-rx, cy-k*ry, cx-k*rx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+k*rx, cy-ry, cx+rx, cy-k*ry, cx+rx, cy)
	p.Close()
	return &p
}

func fillEllipse(dst *ebiten.Image, t xform, x, y, rx, ry float64, clr color.NRGBA, opacity float64) {
	if clr.A == 0 {
		return
	}
	px, py := t.pt(x, y)
	fillPath(dst, ellipsePath(px, py, float32(rx*t.scale), float32(ry*t.scale)), clr, opacity)
}

func strokeEllipse(dst *ebiten.Image, t xform, x, y, rx, ry float64, width float32, clr color.NRGBA, opacity float64) {
	px, py := t.pt(x, y)
	strokePath(dst, ellipsePath(px, py, float32(rx*t.scale), float32(ry*t.scale)), width, clr, opacity)
}

func strokeLine(dst *ebiten.Image, t xform, x0, y0, x1, y1, width float64, clr color.NRGBA, opacity float64) {
	ax, ay := t.pt(x0, y0)
	bx, by := t.pt(x1, y1)
	vector.StrokeLine(dst, ax, ay, bx, by, float32(width*t.scale), fadeColor(clr, opacity), true)
}

func fillPath(dst *ebiten.Image, p *vector.Path, clr color.NRGBA, opacity float64) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, clr, opacity)
}

func strokePath(dst *ebiten.Image, p *vector.Path, width float32, clr color.NRGBA, opacity float64) {
	op := &vector.StrokeOptions{Width: width}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, op)
	drawVertices(dst, vs, is, clr, opacity)
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.NRGBA, opacity float64) {
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255 * float32(opacity)
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	dst.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func fadeColor(clr color.NRGBA, opacity float64) color.NRGBA {
	clr.A = uint8(float64(clr.A) * opacity)
	return clr
}
