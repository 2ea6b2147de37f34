// Package audio plays short chimes for launches and wall bounces. Everything
// is best-effort: if the output device fails to open the sandbox stays
// silent and fully functional.
package audio

import (
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/sahalpk007/inertia/internal/sim"
)

const (
	SampleRate = 44100
	BufferSize = 512

	maxVoices = 8
)

// voice is one decaying sine chime.
type voice struct {
	freq  float64
	amp   float64
	phase float64
	decay float64
}

type Player struct {
	stream *portaudio.Stream

	mu     sync.Mutex
	voices []voice

	Active bool
}

func NewPlayer() *Player {
	return &Player{voices: make([]voice, 0, maxVoices)}
}

func (p *Player) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, p.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	p.stream = stream
	p.Active = true
	return nil
}

func (p *Player) Stop() {
	if p.stream != nil {
		p.stream.Stop()
		p.stream.Close()
	}
	portaudio.Terminate()
	p.Active = false
}

// Trigger queues a chime. Amplitude is clamped; the oldest voice is evicted
// when all slots are busy.
func (p *Player) Trigger(freq, amp float64) {
	if !p.Active {
		return
	}
	amp = math.Min(amp, 0.4)
	if amp <= 0 {
		return
	}
	p.mu.Lock()
	if len(p.voices) >= maxVoices {
		p.voices = p.voices[1:]
	}
	p.voices = append(p.voices, voice{freq: freq, amp: amp, decay: 0.9996})
	p.mu.Unlock()
}

// OnFrame turns simulation events into chimes: bounces pitch with impact
// speed, launches get a fixed soft tone. Satisfies sim.Observer.
func (p *Player) OnFrame(frame int, objs []*sim.Object, events []sim.Event) {
	for _, e := range events {
		switch e.Kind {
		case sim.EventBounceX, sim.EventBounceY:
			p.Trigger(220+e.Speed*8, e.Speed*0.02)
		case sim.EventLaunch:
			p.Trigger(440, 0.1)
		}
	}
}

func (p *Player) process(out [][]float32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range out[0] {
		var sample float64
		for v := range p.voices {
			s := math.Sin(2 * math.Pi * p.voices[v].phase)
			sample += s * p.voices[v].amp
			p.voices[v].phase += p.voices[v].freq / SampleRate
			p.voices[v].amp *= p.voices[v].decay
		}
		out[0][i] = float32(sample)
		out[1][i] = float32(sample)
	}

	// Drop voices that decayed to silence.
	alive := p.voices[:0]
	for _, v := range p.voices {
		if v.amp > 1e-4 {
			alive = append(alive, v)
		}
	}
	p.voices = alive
}
