package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/simone/internal/simone"
)

// WriteTrajectoryCSV writes a trajectory with the columns
// Iteration,x,y, one row per trajectory element.
func WriteTrajectoryCSV(out io.Writer, traj []simone.Point) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"Iteration", "x", "y"}); err != nil {
		return err
	}
	for i, p := range traj {
		row := []string{strconv.Itoa(i), formatCoord(p.X), formatCoord(p.Y)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// TrajectoryCSVName derives the conventional download filename for a
// parameter pair, e.g. trajectory_a1.7_b-0.3.csv.
func TrajectoryCSVName(par simone.Params) string {
	return fmt.Sprintf("trajectory_a%s_b%s.csv",
		strconv.FormatFloat(par.A, 'g', -1, 64),
		strconv.FormatFloat(par.B, 'g', -1, 64))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// ExportData is the JSON dump of a complete run.
type ExportData struct {
	ID         string             `json:"id"`
	Mode       string             `json:"mode"`
	A          float64            `json:"a"`
	B          float64            `json:"b"`
	Iterations int                `json:"iterations"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
	Trajectory [][]float64        `json:"trajectory,omitempty"`
	Frames     [][][]float64      `json:"frames,omitempty"`
}

func buildExport(meta *RunMetadata, traj []simone.Point, seq [][]simone.Point) ExportData {
	data := ExportData{
		ID:         meta.ID,
		Mode:       meta.Mode,
		A:          meta.A,
		B:          meta.B,
		Iterations: meta.Iterations,
		Metrics:    meta.Metrics,
	}
	if traj != nil {
		data.Trajectory = pairsOf(traj)
	}
	for _, snap := range seq {
		data.Frames = append(data.Frames, pairsOf(snap))
	}
	return data
}

func pairsOf(pts []simone.Point) [][]float64 {
	pairs := make([][]float64, len(pts))
	for i, p := range pts {
		pairs[i] = []float64{p.X, p.Y}
	}
	return pairs
}

// ExportJSON writes a run dump to path.
func ExportJSON(path string, meta *RunMetadata, traj []simone.Point, seq [][]simone.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return encodeExport(f, meta, traj, seq)
}

// ExportJSONTo writes a run dump to out.
func ExportJSONTo(out io.Writer, meta *RunMetadata, traj []simone.Point, seq [][]simone.Point) error {
	return encodeExport(out, meta, traj, seq)
}

func encodeExport(out io.Writer, meta *RunMetadata, traj []simone.Point, seq [][]simone.Point) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(buildExport(meta, traj, seq))
}
