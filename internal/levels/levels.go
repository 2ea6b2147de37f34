// Package levels holds the preset table and the level state machine.
package levels

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sahalpk007/inertia/internal/sim"
)

// Level is one preset: a friction/gravity pair plus the goal text shown to
// the player.
type Level struct {
	Name     string  `yaml:"name"`
	Friction float64 `yaml:"friction"`
	Gravity  bool    `yaml:"gravity"`
	Goal     string  `yaml:"goal"`
}

// BuiltIn returns the four stock levels, ordered from pure inertia to
// friction plus gravity.
func BuiltIn() []Level {
	return []Level{
		{Name: "Deep Space", Friction: 0, Gravity: false,
			Goal: "No forces act. Launch a disc and watch it coast forever."},
		{Name: "Dusty Void", Friction: 0.02, Gravity: false,
			Goal: "Friction bleeds speed away every frame. Watch discs fade to a stop."},
		{Name: "Gravity Well", Friction: 0, Gravity: true,
			Goal: "Constant downward pull, no drag. Discs bounce in shrinking arcs."},
		{Name: "Planet Surface", Friction: 0.03, Gravity: true,
			Goal: "Gravity and friction together. Eventually everything settles."},
	}
}

// Controller steps through a fixed list of levels. Advancing clamps at the
// last preset; there is no wraparound.
type Controller struct {
	levels []Level
	index  int
}

func NewController(levels []Level) *Controller {
	if len(levels) == 0 {
		levels = BuiltIn()
	}
	return &Controller{levels: levels}
}

func (c *Controller) Index() int     { return c.index }
func (c *Controller) Count() int     { return len(c.levels) }
func (c *Controller) Current() Level { return c.levels[c.index] }
func (c *Controller) All() []Level   { return c.levels }
func (c *Controller) AtEnd() bool    { return c.index == len(c.levels)-1 }

// Advance moves to the next preset and reports whether the index changed.
func (c *Controller) Advance() bool {
	if c.AtEnd() {
		return false
	}
	c.index++
	return true
}

// Select jumps straight to a preset.
func (c *Controller) Select(i int) error {
	if i < 0 || i >= len(c.levels) {
		return fmt.Errorf("level index %d out of range [0, %d]", i, len(c.levels)-1)
	}
	c.index = i
	return nil
}

// Apply writes the current preset into the world: objects cleared, friction
// and gravity overwritten in one transition.
func (c *Controller) Apply(w *sim.World) {
	lv := c.Current()
	w.ApplyPreset(c.index, lv.Friction, lv.Gravity)
}

// LoadPack reads a custom level pack from a yaml file. Friction values are
// clamped into the control range at load so the physics core never sees an
// out-of-range parameter.
func LoadPack(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pack struct {
		Levels []Level `yaml:"levels"`
	}
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parse level pack %s: %w", path, err)
	}
	if len(pack.Levels) == 0 {
		return nil, fmt.Errorf("level pack %s defines no levels", path)
	}
	for i := range pack.Levels {
		pack.Levels[i].Friction = math.Min(math.Max(pack.Levels[i].Friction, 0), sim.MaxFriction)
	}
	return pack.Levels, nil
}
