// Package metrics provides per-frame observers summarizing a run.
package metrics

import "github.com/sahalpk007/inertia/internal/sim"

// Metric accumulates one scalar over the frames of a run. Metrics satisfy
// sim.Observer, so they attach straight to a world.
type Metric interface {
	sim.Observer
	Name() string
	Value() float64
	Reset()
}

// MeanSpeed averages the per-frame mean object speed.
type MeanSpeed struct {
	sum     float64
	samples int
}

func NewMeanSpeed() *MeanSpeed { return &MeanSpeed{} }

func (m *MeanSpeed) Name() string { return "mean_speed" }

func (m *MeanSpeed) OnFrame(frame int, objs []*sim.Object, events []sim.Event) {
	if len(objs) == 0 {
		return
	}
	total := 0.0
	for _, o := range objs {
		total += o.Speed()
	}
	m.sum += total / float64(len(objs))
	m.samples++
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.sum = 0
	m.samples = 0
}

// KineticEnergy tracks the peak total kinetic energy seen in any frame.
// Mass is always 1, so this is 0.5 * v^2 summed over objects.
type KineticEnergy struct {
	peak float64
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "peak_kinetic_energy" }

func (k *KineticEnergy) OnFrame(frame int, objs []*sim.Object, events []sim.Event) {
	total := 0.0
	for _, o := range objs {
		v := o.Speed()
		total += 0.5 * o.Mass * v * v
	}
	if total > k.peak {
		k.peak = total
	}
}

func (k *KineticEnergy) Value() float64 { return k.peak }

func (k *KineticEnergy) Reset() { k.peak = 0 }

// Bounces counts wall contacts across the whole run.
type Bounces struct {
	count int
}

func NewBounces() *Bounces { return &Bounces{} }

func (b *Bounces) Name() string { return "bounces" }

func (b *Bounces) OnFrame(frame int, objs []*sim.Object, events []sim.Event) {
	for _, e := range events {
		if e.Kind == sim.EventBounceX || e.Kind == sim.EventBounceY {
			b.count++
		}
	}
}

func (b *Bounces) Value() float64 { return float64(b.count) }

func (b *Bounces) Reset() { b.count = 0 }
