package sim

import "math"

// Vec2 is a point or vector in surface pixel coordinates.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Object is one launched disc. Position and velocity are mutated in place
// every frame; identity, radius, color and mass never change after creation.
type Object struct {
	ID     string
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Color  string // hex, assigned from the palette at launch
	Mass   float64
	Trail  []Vec2
}

// Speed returns the magnitude of the object's velocity.
func (o *Object) Speed() float64 { return o.Vel.Len() }

// Params are the global simulation parameters. Friction is a per-frame
// proportional damping factor in [0, 0.1]; gravity adds a constant downward
// acceleration when enabled.
type Params struct {
	Friction float64
	Gravity  bool
	Level    int
}

// Bounds is the simulation surface in pixels.
type Bounds struct {
	W float64
	H float64
}

// EventKind tags a simulation event emitted during a step.
type EventKind int

const (
	EventBounceX EventKind = iota
	EventBounceY
	EventLaunch
)

// Event records something that happened to one object during a frame.
// Speed is the object's speed after the event was applied.
type Event struct {
	Kind     EventKind
	ObjectID string
	Speed    float64
}

// Stepper advances every object by one frame, mutating them in place, and
// reports any wall contacts it resolved.
type Stepper interface {
	Step(objs []*Object, p Params, b Bounds) []Event
}

// Observer is notified after each completed frame.
type Observer interface {
	OnFrame(frame int, objs []*Object, events []Event)
}

// Gesture is an in-progress launch drag. It exists only between press and
// release and is discarded once the object is created.
type Gesture struct {
	Start   Vec2
	Current Vec2
}

// Drag returns the vector from the gesture start to the current pointer.
func (g *Gesture) Drag() Vec2 {
	return g.Current.Sub(g.Start)
}

// Power is the launch-power readout shown next to the preview line.
func (g *Gesture) Power() float64 {
	return g.Drag().Len() * LaunchScale
}
