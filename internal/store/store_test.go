package store

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sahalpk007/inertia/internal/sim"
)

func sampleRecording() *Recording {
	r := NewRecorder()
	o := &sim.Object{ID: "obj_1", Pos: sim.Vec2{X: 100, Y: 200}, Vel: sim.Vec2{X: 20, Y: 0}, Mass: 1}
	r.OnFrame(1, []*sim.Object{o}, nil)
	o.Pos.X = 120
	r.OnFrame(2, []*sim.Object{o}, nil)
	return r.Recording()
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	meta := RunMetadata{
		Level:    "Deep Space",
		Frames:   2,
		Friction: 0,
		Gravity:  false,
		Seed:     42,
		Launches: 1,
		Score:    20,
		Metrics:  map[string]float64{"mean_speed": 20},
	}
	runID, err := s.Save(meta, sampleRecording())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "Deep_Space_") {
		t.Errorf("unexpected run id %s", runID)
	}

	loaded, err := s.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Level != "Deep Space" || loaded.Score != 20 || loaded.Seed != 42 {
		t.Errorf("metadata mangled: %+v", loaded)
	}

	rec, err := s.LoadTrajectories(runID)
	if err != nil {
		t.Fatalf("load trajectories failed: %v", err)
	}
	if len(rec.Frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(rec.Frames))
	}
	if rec.Frames[1].Objects[0].X != 120 {
		t.Errorf("trajectory row mangled: %+v", rec.Frames[1].Objects[0])
	}

	runs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Errorf("list should return the saved run, got %+v", runs)
	}
}

func TestListEmptyDir(t *testing.T) {
	s := New(t.TempDir() + "/missing")
	runs, err := s.List()
	if err != nil {
		t.Fatalf("missing base dir must not error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	s := New(t.TempDir())
	runID, err := s.Save(RunMetadata{Level: "Gravity Well", Frames: 2}, sampleRecording())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := s.ExportJSON(runID, &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if data.Meta.Level != "Gravity Well" || len(data.Frames) != 2 {
		t.Errorf("export content wrong: %+v", data.Meta)
	}
}

func TestExportCSV(t *testing.T) {
	s := New(t.TempDir())
	runID, err := s.Save(RunMetadata{Level: "Deep Space", Frames: 2}, sampleRecording())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := s.ExportCSV(runID, &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 { // header + 2 rows
		t.Fatalf("expected 3 csv lines, got %d", len(lines))
	}
	if lines[0] != "frame,id,x,y,vx,vy" {
		t.Errorf("unexpected header %q", lines[0])
	}
}
