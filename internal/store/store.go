// Package store persists headless runs: one directory per run holding
// metadata.json and trajectories.csv.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Level     string             `json:"level"`
	Timestamp time.Time          `json:"timestamp"`
	Frames    int                `json:"frames"`
	Friction  float64            `json:"friction"`
	Gravity   bool               `json:"gravity"`
	Seed      int64              `json:"seed"`
	Launches  int                `json:"launches"`
	Score     float64            `json:"score"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(meta RunMetadata, rec *Recording) (string, error) {
	runID := fmt.Sprintf("%s_%d", sanitize(meta.Level), time.Now().Unix())
	meta.ID = runID
	meta.Timestamp = time.Now()

	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectories.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"frame", "id", "x", "y", "vx", "vy"}); err != nil {
		return "", err
	}
	for _, f := range rec.Frames {
		for _, o := range f.Objects {
			row := []string{
				strconv.Itoa(f.Frame),
				o.ID,
				strconv.FormatFloat(o.X, 'f', 6, 64),
				strconv.FormatFloat(o.Y, 'f', 6, 64),
				strconv.FormatFloat(o.VX, 'f', 6, 64),
				strconv.FormatFloat(o.VY, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectories reads back the per-frame object rows of a stored run.
func (s *Store) LoadTrajectories(runID string) (*Recording, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectories.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	rec := &Recording{}
	var cur *FrameRecord
	for i := 1; i < len(records); i++ {
		row := records[i]
		if len(row) < 6 {
			continue
		}
		frame, err := strconv.Atoi(row[0])
		if err != nil {
			continue
		}
		obj := ObjectRecord{ID: row[1]}
		obj.X, _ = strconv.ParseFloat(row[2], 64)
		obj.Y, _ = strconv.ParseFloat(row[3], 64)
		obj.VX, _ = strconv.ParseFloat(row[4], 64)
		obj.VY, _ = strconv.ParseFloat(row[5], 64)

		if cur == nil || cur.Frame != frame {
			rec.Frames = append(rec.Frames, FrameRecord{Frame: frame})
			cur = &rec.Frames[len(rec.Frames)-1]
		}
		cur.Objects = append(cur.Objects, obj)
	}
	return rec, nil
}

func sanitize(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
