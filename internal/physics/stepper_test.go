package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sahalpk007/inertia/internal/physics"
	"github.com/sahalpk007/inertia/internal/sim"
)

// launch places a disc well away from every wall.
func launch(x, y, vx, vy float64) *sim.Object {
	return &sim.Object{
		ID:     "t1",
		Pos:    sim.Vec2{X: x, Y: y},
		Vel:    sim.Vec2{X: vx, Y: vy},
		Radius: sim.DefaultRadius,
		Color:  sim.Palette[0],
		Mass:   1,
	}
}

var _ = Describe("Stepper", func() {
	var (
		stepper *physics.Stepper
		bounds  sim.Bounds
	)

	BeforeEach(func() {
		stepper = physics.New()
		bounds = sim.Bounds{W: 800, H: 600}
	})

	step := func(o *sim.Object, p sim.Params, n int) []sim.Event {
		var events []sim.Event
		for i := 0; i < n; i++ {
			events = append(events, stepper.Step([]*sim.Object{o}, p, bounds)...)
		}
		return events
	}

	Describe("gravity", func() {
		It("accumulates vy by the gravity constant every frame", func() {
			o := launch(400, 100, 0, 0)
			p := sim.Params{Gravity: true}
			prev := o.Vel.Y
			for i := 0; i < 20; i++ {
				step(o, p, 1)
				Expect(o.Vel.Y).To(BeNumerically("~", prev+sim.GravityAccel, 1e-12))
				prev = o.Vel.Y
			}
		})

		It("ignores mass", func() {
			a := launch(200, 100, 0, 0)
			b := launch(600, 100, 0, 0)
			b.Mass = 7
			p := sim.Params{Gravity: true}
			stepper.Step([]*sim.Object{a, b}, p, bounds)
			Expect(a.Vel.Y).To(Equal(b.Vel.Y))
		})
	})

	Describe("friction", func() {
		It("decays speed geometrically without ever reaching zero", func() {
			f := 0.05
			o := launch(400, 300, 6, -4)
			v0 := o.Speed()
			n := 40
			step(o, sim.Params{Friction: f}, n)
			Expect(o.Speed()).To(BeNumerically("~", v0*math.Pow(1-f, float64(n)), 1e-9))
			Expect(o.Speed()).To(BeNumerically(">", 0))
		})

		It("tolerates the boundary values of the control range", func() {
			o := launch(400, 300, 5, 0)
			step(o, sim.Params{Friction: 0}, 1)
			Expect(o.Vel.X).To(Equal(5.0))
			step(o, sim.Params{Friction: sim.MaxFriction}, 1)
			Expect(o.Vel.X).To(BeNumerically("~", 5.0*0.9, 1e-12))
		})
	})

	Describe("integration", func() {
		It("keeps a frictionless, gravity-free object at constant velocity", func() {
			o := launch(100, 300, 20, 0)
			step(o, sim.Params{}, 10)
			Expect(o.Vel).To(Equal(sim.Vec2{X: 20, Y: 0}))
			Expect(o.Pos).To(Equal(sim.Vec2{X: 300, Y: 300}))
		})
	})

	Describe("trail", func() {
		It("holds the most recent positions in chronological order, capped", func() {
			o := launch(100, 300, 2, 0)
			step(o, sim.Params{}, 80)
			Expect(o.Trail).To(HaveLen(sim.TrailCap))
			for i := 1; i < len(o.Trail); i++ {
				Expect(o.Trail[i].X).To(BeNumerically(">", o.Trail[i-1].X))
			}
			Expect(o.Trail[len(o.Trail)-1]).To(Equal(o.Pos))
		})
	})

	Describe("wall collision", func() {
		It("reflects off the right wall at 0.8x speed and clamps", func() {
			o := launch(bounds.W-sim.DefaultRadius-1, 300, 50, 0)
			events := step(o, sim.Params{}, 1)
			Expect(o.Vel.X).To(BeNumerically("~", -40.0, 1e-12))
			Expect(o.Pos.X).To(Equal(bounds.W - sim.DefaultRadius))
			Expect(events).To(HaveLen(1))
			Expect(events[0].Kind).To(Equal(sim.EventBounceX))
		})

		It("reflects off the top wall independently of x", func() {
			o := launch(400, sim.DefaultRadius+1, 0, -10)
			step(o, sim.Params{}, 1)
			Expect(o.Vel.Y).To(BeNumerically("~", 8.0, 1e-12))
			Expect(o.Pos.Y).To(Equal(sim.DefaultRadius))
		})

		It("resolves both axes on a corner hit in the same frame", func() {
			o := launch(bounds.W-sim.DefaultRadius-1, bounds.H-sim.DefaultRadius-1, 30, 30)
			events := step(o, sim.Params{}, 1)
			Expect(o.Vel.X).To(BeNumerically("~", -24.0, 1e-12))
			Expect(o.Vel.Y).To(BeNumerically("~", -24.0, 1e-12))
			Expect(o.Pos).To(Equal(sim.Vec2{X: bounds.W - sim.DefaultRadius, Y: bounds.H - sim.DefaultRadius}))
			Expect(events).To(HaveLen(2))
		})

		It("never lets a disc tunnel outside, even at extreme speed", func() {
			o := launch(400, 300, 5000, -9000)
			for i := 0; i < 200; i++ {
				step(o, sim.Params{Gravity: true}, 1)
				Expect(o.Pos.X).To(BeNumerically(">=", o.Radius))
				Expect(o.Pos.X).To(BeNumerically("<=", bounds.W-o.Radius))
				Expect(o.Pos.Y).To(BeNumerically(">=", o.Radius))
				Expect(o.Pos.Y).To(BeNumerically("<=", bounds.H-o.Radius))
			}
		})
	})

	Describe("Stopped", func() {
		It("is true only below the arrow threshold on both axes", func() {
			Expect(physics.Stopped(launch(0, 0, 0.05, -0.05))).To(BeTrue())
			Expect(physics.Stopped(launch(0, 0, 0.5, 0))).To(BeFalse())
		})
	})
})
