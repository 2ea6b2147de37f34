package sim

// Tuning constants for the sandbox. Velocities are in pixels per frame and
// the timestep is one frame, so the simulation rate follows the display.
const (
	// GravityAccel is added to vy every frame while gravity is enabled.
	GravityAccel = 0.3

	// Restitution scales the reflected velocity component on a wall hit.
	Restitution = 0.8

	// LaunchScale converts a drag vector into an initial velocity.
	LaunchScale = 0.2

	// DefaultRadius is the visual and collision radius of every disc.
	DefaultRadius = 20.0

	// TrailCap bounds each object's position history.
	TrailCap = 50

	// ArrowMinSpeed is the speed below which no velocity arrow is drawn.
	ArrowMinSpeed = 0.1

	// MaxFriction is the upper end of the friction control range.
	MaxFriction = 0.1
)
