package viz

import (
	"strings"
	"testing"

	"github.com/sahalpk007/inertia/internal/sim"
)

type nopStepper struct{}

func (nopStepper) Step(objs []*sim.Object, p sim.Params, b sim.Bounds) []sim.Event { return nil }

func newWorld() *sim.World {
	return sim.NewWorld(sim.Bounds{W: 800, H: 600}, nopStepper{}, &sim.SequenceSpawner{})
}

func TestRenderEmptyWorld(t *testing.T) {
	r := NewRenderer(40, 12, ThemeMono)
	out := r.Render(newWorld())
	if out == "" {
		t.Fatal("empty world should still render the background")
	}
	if lines := strings.Count(out, "\n"); lines != 12 {
		t.Errorf("expected 12 canvas rows, got %d", lines)
	}
}

func TestRenderNilWorld(t *testing.T) {
	r := NewRenderer(40, 12, ThemeMono)
	if out := r.Render(nil); out != "" {
		t.Error("rendering without a world must no-op")
	}
}

func TestStarfieldStableAcrossFrames(t *testing.T) {
	r := NewRenderer(40, 12, ThemeMono)
	w := newWorld()
	if r.Render(w) != r.Render(w) {
		t.Error("the starfield must be identical frame to frame")
	}
}

func TestRenderWithObjectsAndGesture(t *testing.T) {
	r := NewRenderer(40, 12, ThemeMono)
	w := newWorld()
	w.BeginGesture(sim.Vec2{X: 100, Y: 100})
	w.UpdateGesture(sim.Vec2{X: 300, Y: 200})
	w.ReleaseGesture()
	w.BeginGesture(sim.Vec2{X: 400, Y: 300})

	empty := NewRenderer(40, 12, ThemeMono).Render(newWorld())
	out := r.Render(w)
	if out == empty {
		t.Error("discs and preview line should change the frame")
	}
}

func TestResizeIdempotent(t *testing.T) {
	r := NewRenderer(40, 12, ThemeMono)
	c := r.Canvas
	r.Resize(40, 12)
	if r.Canvas != c {
		t.Error("resize to the same dimensions must keep the canvas")
	}
	r.Resize(80, 24)
	if r.Canvas.Width != 80 || r.Canvas.Height != 24 {
		t.Error("resize did not take")
	}
	r.Resize(0, -1)
	if r.Canvas.Width != 80 {
		t.Error("degenerate sizes must be ignored")
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(10, 5)
	// Out-of-range writes must be dropped, not panic.
	c.Set(-1, -1, "#fff")
	c.Set(1000, 1000, "#fff")
	c.DrawLine(-5, -5, 100, 100, "#fff")
	c.FillCircle(0, 0, 8, "#fff")
	c.DrawArrow(5, 5, 500, 5, "#fff")
}
