// Package physics implements the per-frame kinematics of the sandbox:
// explicit Euler integration with proportional friction, optional constant
// gravity, bounded trails, and inelastic wall reflection.
package physics

import (
	"math"

	"github.com/sahalpk007/inertia/internal/sim"
)

// Stepper is the production sim.Stepper. It is stateless; the next frame is
// a pure function of (objects, params, bounds).
type Stepper struct{}

func New() *Stepper { return &Stepper{} }

// Step advances every object by one frame, in order: gravity, friction,
// integration, trail append, wall collision. Objects are mutated in place.
func (s *Stepper) Step(objs []*sim.Object, p sim.Params, b sim.Bounds) []sim.Event {
	var events []sim.Event
	for _, o := range objs {
		events = append(events, stepObject(o, p, b)...)
	}
	return events
}

func stepObject(o *sim.Object, p sim.Params, b sim.Bounds) []sim.Event {
	if p.Gravity {
		o.Vel.Y += sim.GravityAccel
	}

	// Proportional damping: velocity decays toward zero but never hits it.
	if p.Friction > 0 {
		k := 1 - p.Friction
		o.Vel.X *= k
		o.Vel.Y *= k
	}

	// One-frame explicit Euler, unit timestep.
	o.Pos.X += o.Vel.X
	o.Pos.Y += o.Vel.Y

	o.Trail = append(o.Trail, o.Pos)
	if len(o.Trail) > sim.TrailCap {
		o.Trail = o.Trail[len(o.Trail)-sim.TrailCap:]
	}

	// Axis-independent wall response; a corner hit resolves both axes in
	// the same frame. Clamping keeps fast objects from tunneling out.
	var events []sim.Event
	if bounced := reflect(&o.Pos.X, &o.Vel.X, o.Radius, b.W); bounced {
		events = append(events, sim.Event{Kind: sim.EventBounceX, ObjectID: o.ID, Speed: o.Speed()})
	}
	if bounced := reflect(&o.Pos.Y, &o.Vel.Y, o.Radius, b.H); bounced {
		events = append(events, sim.Event{Kind: sim.EventBounceY, ObjectID: o.ID, Speed: o.Speed()})
	}
	return events
}

// reflect handles one axis: if the disc crossed either wall, flip the
// velocity component scaled by restitution and clamp back into
// [radius, dim-radius].
func reflect(pos, vel *float64, radius, dim float64) bool {
	if *pos <= radius {
		*pos = radius
		*vel = -*vel * sim.Restitution
		return true
	}
	if *pos >= dim-radius {
		*pos = dim - radius
		*vel = -*vel * sim.Restitution
		return true
	}
	return false
}

// Stopped reports whether the object has effectively come to rest.
func Stopped(o *sim.Object) bool {
	return math.Abs(o.Vel.X) < sim.ArrowMinSpeed && math.Abs(o.Vel.Y) < sim.ArrowMinSpeed
}
