package viz

import (
	"math"

	"github.com/sahalpk007/inertia/internal/sim"
)

const starCount = 64

// Fixed irrational multipliers spread the starfield without randomness, so
// the background is identical every frame.
const (
	starPhiX = 0.6180339887498949
	starPhiY = 0.7548776662466927
)

// Renderer paints the simulation onto a braille canvas. It only reads the
// world; a nil gesture and an empty collection render fine.
type Renderer struct {
	Canvas *Canvas
	Theme  Theme
}

func NewRenderer(cols, rows int, theme Theme) *Renderer {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Renderer{Canvas: NewCanvas(cols, rows), Theme: theme}
}

// Resize recreates the canvas; calling it with the current size is a no-op.
func (r *Renderer) Resize(cols, rows int) {
	if cols < 1 || rows < 1 {
		return
	}
	if r.Canvas != nil && r.Canvas.Width == cols && r.Canvas.Height == rows {
		return
	}
	r.Canvas = NewCanvas(cols, rows)
}

// Render paints one frame back to front and returns the canvas text.
func (r *Renderer) Render(w *sim.World) string {
	if r.Canvas == nil || w == nil {
		return ""
	}
	c := r.Canvas
	c.Clear()

	cw, ch := c.Width*2, c.Height*4
	b := w.Bounds()
	if b.W <= 0 || b.H <= 0 {
		return c.String()
	}
	sx := float64(cw) / b.W
	sy := float64(ch) / b.H

	px := func(p sim.Vec2) (int, int) {
		return int(p.X * sx), int(p.Y * sy)
	}

	r.drawStars(cw, ch)

	for _, o := range w.Objects() {
		r.drawTrail(o, px)
	}
	for _, o := range w.Objects() {
		x, y := px(o.Pos)
		rad := int(math.Max(o.Radius*math.Min(sx, sy), 1))
		c.FillCircle(x, y, rad, o.Color)
		c.DrawCircle(x, y, rad+1, o.Color) // faint halo ring
	}
	for _, o := range w.Objects() {
		r.drawVelocity(o, px)
	}

	if g := w.Gesture(); g != nil {
		x0, y0 := px(g.Start)
		x1, y1 := px(g.Current)
		c.DrawDashedLine(x0, y0, x1, y1, string(r.Theme.Accent))
	}

	return c.String()
}

func (r *Renderer) drawStars(cw, ch int) {
	for i := 0; i < starCount; i++ {
		fx := math.Mod(float64(i+1)*starPhiX, 1)
		fy := math.Mod(float64(i+1)*starPhiY, 1)
		r.Canvas.Set(int(fx*float64(cw)), int(fy*float64(ch)), r.Theme.Star)
	}
}

func (r *Renderer) drawTrail(o *sim.Object, px func(sim.Vec2) (int, int)) {
	if len(o.Trail) < 2 {
		return
	}
	for i := 1; i < len(o.Trail); i++ {
		x0, y0 := px(o.Trail[i-1])
		x1, y1 := px(o.Trail[i])
		r.Canvas.DrawLine(x0, y0, x1, y1, o.Color)
	}
}

func (r *Renderer) drawVelocity(o *sim.Object, px func(sim.Vec2) (int, int)) {
	if o.Speed() <= sim.ArrowMinSpeed {
		return
	}
	// Arrow length tracks speed so faster discs get longer vectors.
	tip := o.Pos.Add(o.Vel.Scale(4))
	x0, y0 := px(o.Pos)
	x1, y1 := px(tip)
	r.Canvas.DrawArrow(x0, y0, x1, y1, string(r.Theme.Accent))
}
