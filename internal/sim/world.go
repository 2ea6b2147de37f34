package sim

import "math"

// World owns the object collection, the global parameters, the in-progress
// launch gesture and the session score. All mutation goes through its
// methods; the stepper is the only writer during a frame, so a single
// goroutine driving Step observes no half-updated state.
type World struct {
	objects   []*Object
	params    Params
	bounds    Bounds
	gesture   *Gesture
	score     float64
	playing   bool
	frame     int
	spawner   Spawner
	stepper   Stepper
	observers []Observer
}

func NewWorld(b Bounds, stepper Stepper, spawner Spawner) *World {
	return &World{
		bounds:  b,
		stepper: stepper,
		spawner: spawner,
	}
}

func (w *World) AddObserver(o Observer) { w.observers = append(w.observers, o) }

func (w *World) Objects() []*Object { return w.objects }
func (w *World) Params() Params     { return w.params }
func (w *World) Bounds() Bounds     { return w.bounds }
func (w *World) Gesture() *Gesture  { return w.gesture }
func (w *World) Score() float64     { return w.score }
func (w *World) Playing() bool      { return w.playing }
func (w *World) Frame() int         { return w.frame }

func (w *World) SetPlaying(p bool) { w.playing = p }

// SetFriction clamps into [0, MaxFriction]; the level index is untouched and
// objects keep flying.
func (w *World) SetFriction(f float64) {
	w.params.Friction = math.Min(math.Max(f, 0), MaxFriction)
}

func (w *World) SetGravity(on bool) { w.params.Gravity = on }

// ApplyPreset atomically clears the object collection and overwrites
// friction and gravity; used for level transitions.
func (w *World) ApplyPreset(level int, friction float64, gravity bool) {
	w.objects = nil
	w.gesture = nil
	w.params.Level = level
	w.params.Gravity = gravity
	w.SetFriction(friction)
}

// Step advances every object by one frame and notifies observers. It is a
// no-op while the playing flag is unset.
func (w *World) Step() {
	if !w.playing {
		return
	}
	events := w.stepper.Step(w.objects, w.params, w.bounds)
	w.frame++
	for _, o := range w.observers {
		o.OnFrame(w.frame, w.objects, events)
	}
}

// BeginGesture stages a launch drag starting at p.
func (w *World) BeginGesture(p Vec2) {
	w.gesture = &Gesture{Start: p, Current: p}
}

// UpdateGesture moves the preview endpoint; ignored with no active gesture.
func (w *World) UpdateGesture(p Vec2) {
	if w.gesture == nil {
		return
	}
	w.gesture.Current = p
}

// CancelGesture discards the drag without launching.
func (w *World) CancelGesture() { w.gesture = nil }

// ReleaseGesture finalizes the drag: a new object appears at the gesture
// start with velocity = drag x LaunchScale, the score grows by the sum of
// the absolute velocity components, and the first launch starts the clock.
// A release with no recorded start is rejected silently.
func (w *World) ReleaseGesture() *Object {
	g := w.gesture
	w.gesture = nil
	if g == nil {
		return nil
	}
	vel := g.Drag().Scale(LaunchScale)
	o := &Object{
		ID:     w.spawner.NextID(),
		Pos:    g.Start,
		Vel:    vel,
		Radius: DefaultRadius,
		Color:  w.spawner.NextColor(),
		Mass:   1,
	}
	w.objects = append(w.objects, o)
	w.score += math.Abs(vel.X) + math.Abs(vel.Y)
	w.playing = true
	for _, obs := range w.observers {
		obs.OnFrame(w.frame, w.objects, []Event{{Kind: EventLaunch, ObjectID: o.ID, Speed: o.Speed()}})
	}
	return o
}

// Reset clears objects and any active gesture. Resetting an already empty
// world is a no-op; the session score survives.
func (w *World) Reset() {
	w.objects = nil
	w.gesture = nil
}

// Resize updates the surface bounds and pulls any object that ended up
// outside back into the legal range. Calling it twice with the same size
// changes nothing.
func (w *World) Resize(b Bounds) {
	w.bounds = b
	for _, o := range w.objects {
		o.Pos.X = math.Min(math.Max(o.Pos.X, o.Radius), b.W-o.Radius)
		o.Pos.Y = math.Min(math.Max(o.Pos.Y, o.Radius), b.H-o.Radius)
	}
}
