package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// ExportData bundles a run's metadata with its trajectories for JSON export.
type ExportData struct {
	Meta   RunMetadata   `json:"meta"`
	Frames []FrameRecord `json:"frames"`
}

// ExportJSON writes a stored run as indented JSON.
func (s *Store) ExportJSON(runID string, out io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	rec, err := s.LoadTrajectories(runID)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Meta: *meta, Frames: rec.Frames})
}

// ExportCSV writes a stored run's trajectory rows as CSV.
func (s *Store) ExportCSV(runID string, out io.Writer) error {
	rec, err := s.LoadTrajectories(runID)
	if err != nil {
		return err
	}
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"frame", "id", "x", "y", "vx", "vy"}); err != nil {
		return err
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
				return err
			}
		}
	}
	return nil
}
