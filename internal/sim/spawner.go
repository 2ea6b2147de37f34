package sim

import (
	"fmt"
	"math/rand"
)

// Palette holds the disc colors; one is drawn per launch.
var Palette = []string{
	"#ff6b6b", "#4ecdc4", "#ffe66d", "#5dade2",
	"#95e86e", "#cc5de8", "#ff922b", "#66d9e8",
}

// Spawner supplies identities and colors for new objects so tests can inject
// a deterministic sequence.
type Spawner interface {
	NextID() string
	NextColor() string
}

type randomSpawner struct {
	rng *rand.Rand
	n   int
}

// NewSpawner returns the production spawner: ids from a counter plus a random
// suffix, colors drawn from the palette.
func NewSpawner(seed int64) Spawner {
	return &randomSpawner{rng: rand.New(rand.NewSource(seed))}
}

func (s *randomSpawner) NextID() string {
	s.n++
	return fmt.Sprintf("obj_%d_%04x", s.n, s.rng.Intn(0x10000))
}

func (s *randomSpawner) NextColor() string {
	return Palette[s.rng.Intn(len(Palette))]
}

// SequenceSpawner is a deterministic Spawner for tests: sequential ids and
// palette colors in order.
type SequenceSpawner struct {
	ids    int
	colors int
}

func (s *SequenceSpawner) NextID() string {
	s.ids++
	return fmt.Sprintf("obj_%d", s.ids)
}

func (s *SequenceSpawner) NextColor() string {
	c := Palette[s.colors%len(Palette)]
	s.colors++
	return c
}
