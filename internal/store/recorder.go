package store

import "github.com/sahalpk007/inertia/internal/sim"

// ObjectRecord is one object's kinematic state in one frame.
type ObjectRecord struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

// FrameRecord snapshots every object after one frame.
type FrameRecord struct {
	Frame   int            `json:"frame"`
	Objects []ObjectRecord `json:"objects"`
}

// Recording is the full trajectory history of a headless run.
type Recording struct {
	Frames []FrameRecord `json:"frames"`
}

// Recorder captures a Recording as a sim.Observer.
type Recorder struct {
	rec Recording
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) OnFrame(frame int, objs []*sim.Object, events []sim.Event) {
	f := FrameRecord{Frame: frame, Objects: make([]ObjectRecord, 0, len(objs))}
	for _, o := range objs {
		f.Objects = append(f.Objects, ObjectRecord{
			ID: o.ID,
			X:  o.Pos.X,
			Y:  o.Pos.Y,
			VX: o.Vel.X,
			VY: o.Vel.Y,
		})
	}
	r.rec.Frames = append(r.rec.Frames, f)
}

func (r *Recorder) Recording() *Recording { return &r.rec }
