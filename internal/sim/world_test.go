package sim

import (
	"math"
	"testing"
)

// nopStepper counts frames without moving anything.
type nopStepper struct {
	calls  int
	events []Event
}

func (s *nopStepper) Step(objs []*Object, p Params, b Bounds) []Event {
	s.calls++
	return s.events
}

type captureObserver struct {
	frames []int
	events [][]Event
}

func (c *captureObserver) OnFrame(frame int, objs []*Object, events []Event) {
	c.frames = append(c.frames, frame)
	c.events = append(c.events, events)
}

func newTestWorld() (*World, *nopStepper) {
	st := &nopStepper{}
	return NewWorld(Bounds{W: 800, H: 600}, st, &SequenceSpawner{}), st
}

func TestReleaseGestureCreatesObject(t *testing.T) {
	w, _ := newTestWorld()

	w.BeginGesture(Vec2{X: 100, Y: 200})
	w.UpdateGesture(Vec2{X: 200, Y: 200})
	o := w.ReleaseGesture()

	if o == nil {
		t.Fatal("expected an object from a completed gesture")
	}
	if o.Pos != (Vec2{X: 100, Y: 200}) {
		t.Errorf("object should spawn at gesture start, got %+v", o.Pos)
	}
	if o.Vel != (Vec2{X: 20, Y: 0}) {
		t.Errorf("drag (100,0) should launch at (20,0), got %+v", o.Vel)
	}
	if o.Radius != DefaultRadius || o.Mass != 1 {
		t.Errorf("unexpected radius/mass: %v/%v", o.Radius, o.Mass)
	}
	if o.Color != Palette[0] {
		t.Errorf("expected first palette color, got %s", o.Color)
	}
	if len(w.Objects()) != 1 {
		t.Fatalf("expected 1 object, got %d", len(w.Objects()))
	}
	if w.Gesture() != nil {
		t.Error("gesture should be discarded after release")
	}
	if !w.Playing() {
		t.Error("first launch should start the simulation")
	}
	if math.Abs(w.Score()-20) > 1e-12 {
		t.Errorf("score should be |vx|+|vy| = 20, got %f", w.Score())
	}
}

func TestReleaseWithoutGestureIsRejected(t *testing.T) {
	w, _ := newTestWorld()

	if o := w.ReleaseGesture(); o != nil {
		t.Fatal("release with no recorded start must not create an object")
	}
	if len(w.Objects()) != 0 || w.Score() != 0 {
		t.Error("rejected release must not change objects or score")
	}
}

func TestUpdateGestureWithoutStart(t *testing.T) {
	w, _ := newTestWorld()
	w.UpdateGesture(Vec2{X: 10, Y: 10})
	if w.Gesture() != nil {
		t.Error("move without press must not create a gesture")
	}
}

func TestStepOnlyWhilePlaying(t *testing.T) {
	w, st := newTestWorld()

	w.Step()
	if st.calls != 0 {
		t.Error("step must be a no-op before the first launch")
	}

	w.BeginGesture(Vec2{X: 0, Y: 0})
	w.ReleaseGesture()
	w.Step()
	w.Step()
	if st.calls != 2 {
		t.Errorf("expected 2 stepper calls, got %d", st.calls)
	}
	if w.Frame() != 2 {
		t.Errorf("expected frame counter 2, got %d", w.Frame())
	}

	w.SetPlaying(false)
	w.Step()
	if st.calls != 2 {
		t.Error("pause must stop advancing")
	}
}

func TestObserversSeeEveryFrame(t *testing.T) {
	w, st := newTestWorld()
	st.events = []Event{{Kind: EventBounceX, ObjectID: "obj_1", Speed: 4}}
	obs := &captureObserver{}
	w.AddObserver(obs)

	w.BeginGesture(Vec2{X: 50, Y: 50})
	w.ReleaseGesture()
	w.Step()

	if len(obs.frames) != 2 { // launch notification + one frame
		t.Fatalf("expected 2 notifications, got %d", len(obs.frames))
	}
	if obs.events[0][0].Kind != EventLaunch {
		t.Error("launch should notify observers with a launch event")
	}
	if obs.events[1][0].Kind != EventBounceX {
		t.Error("stepper events should reach observers")
	}
}

func TestResetIdempotent(t *testing.T) {
	w, _ := newTestWorld()

	w.Reset()
	if len(w.Objects()) != 0 {
		t.Fatal("reset of an empty world must stay empty")
	}

	w.BeginGesture(Vec2{X: 10, Y: 10})
	w.ReleaseGesture()
	w.BeginGesture(Vec2{X: 20, Y: 20})
	w.Reset()
	if len(w.Objects()) != 0 || w.Gesture() != nil {
		t.Error("reset must clear objects and any active gesture")
	}
	score := w.Score()
	w.Reset()
	if w.Score() != score {
		t.Error("reset must leave the session score alone")
	}
}

func TestApplyPresetAtomic(t *testing.T) {
	w, _ := newTestWorld()
	w.BeginGesture(Vec2{})
	w.ReleaseGesture()

	w.ApplyPreset(3, 0.03, true)

	if len(w.Objects()) != 0 {
		t.Error("level transition must clear the object collection")
	}
	p := w.Params()
	if p.Level != 3 || p.Friction != 0.03 || !p.Gravity {
		t.Errorf("preset parameters not applied: %+v", p)
	}
}

func TestSetFrictionClamped(t *testing.T) {
	w, _ := newTestWorld()
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.05, 0.05},
		{0.1, 0.1},
		{2.0, 0.1},
	}
	for _, tt := range tests {
		w.SetFriction(tt.in)
		if got := w.Params().Friction; got != tt.want {
			t.Errorf("SetFriction(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestResizeClampsObjects(t *testing.T) {
	w, _ := newTestWorld()
	w.BeginGesture(Vec2{X: 780, Y: 580})
	w.ReleaseGesture()

	w.Resize(Bounds{W: 400, H: 300})
	o := w.Objects()[0]
	if o.Pos.X != 400-o.Radius || o.Pos.Y != 300-o.Radius {
		t.Errorf("resize must pull objects back in bounds, got %+v", o.Pos)
	}

	before := o.Pos
	w.Resize(Bounds{W: 400, H: 300})
	if o.Pos != before {
		t.Error("resize with the same dimensions must change nothing")
	}
}
