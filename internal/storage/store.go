package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/simone/internal/simone"
)

// Store persists runs under a base directory, one subdirectory per run
// holding metadata.json plus the point data as CSV.
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
	ID         string             `json:"id"`
	Mode       string             `json:"mode"`
	Timestamp  time.Time          `json:"timestamp"`
	A          float64            `json:"a"`
	B          float64            `json:"b"`
	Iterations int                `json:"iterations"`
	X0         float64            `json:"x0,omitempty"`
	Y0         float64            `json:"y0,omitempty"`
	Shape      string             `json:"shape,omitempty"`
	Points     int                `json:"points,omitempty"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

const (
	trajectoryFile = "trajectory.csv"
	framesFile     = "frames.csv"
)

// SaveTrajectory stores a point-mode run and returns its id.
func (s *Store) SaveTrajectory(par simone.Params, p0 simone.Point, iterations int, traj []simone.Point, metrics map[string]float64) (string, error) {
	meta := RunMetadata{
		Mode:       "point",
		A:          par.A,
		B:          par.B,
		Iterations: iterations,
		X0:         p0.X,
		Y0:         p0.Y,
		Metrics:    metrics,
	}

	runID, runDir, err := s.createRun(&meta)
	if err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, trajectoryFile))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteTrajectoryCSV(f, traj); err != nil {
		return "", err
	}
	return runID, nil
}

// SaveCurves stores a curve-mode run and returns its id.
func (s *Store) SaveCurves(par simone.Params, shape string, points, iterations int, seq [][]simone.Point) (string, error) {
	meta := RunMetadata{
		Mode:       "curve",
		A:          par.A,
		B:          par.B,
		Iterations: iterations,
		Shape:      shape,
		Points:     points,
	}

	runID, runDir, err := s.createRun(&meta)
	if err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, framesFile))
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Frame", "Index", "x", "y"}); err != nil {
		return "", err
	}
	for frame, snap := range seq {
		for i, p := range snap {
			row := []string{
				strconv.Itoa(frame),
				strconv.Itoa(i),
				formatCoord(p.X),
				formatCoord(p.Y),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}
	return runID, nil
}

func (s *Store) createRun(meta *RunMetadata) (string, string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Mode, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	f, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", "", err
	}
	return runID, runDir, nil
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

// LoadTrajectory reads back the point sequence of a point-mode run.
func (s *Store) LoadTrajectory(runID string) ([]simone.Point, error) {
	records, err := s.readCSV(runID, trajectoryFile)
	if err != nil {
		return nil, err
	}

	traj := make([]simone.Point, 0, len(records))
	for _, record := range records {
		if len(record) < 3 {
			continue
		}
		x, errX := strconv.ParseFloat(record[1], 64)
		y, errY := strconv.ParseFloat(record[2], 64)
		if errX != nil || errY != nil {
			continue
		}
		traj = append(traj, simone.Point{X: x, Y: y})
	}
	return traj, nil
}

// LoadCurves reads back the snapshots of a curve-mode run.
func (s *Store) LoadCurves(runID string) ([][]simone.Point, error) {
	records, err := s.readCSV(runID, framesFile)
	if err != nil {
		return nil, err
	}

	seq := make([][]simone.Point, 0)
	for _, record := range records {
		if len(record) < 4 {
			continue
		}
		frame, err := strconv.Atoi(record[0])
		if err != nil || frame < 0 {
			continue
		}
		x, errX := strconv.ParseFloat(record[2], 64)
		y, errY := strconv.ParseFloat(record[3], 64)
		if errX != nil || errY != nil {
			continue
		}
		for len(seq) <= frame {
			seq = append(seq, nil)
		}
		seq[frame] = append(seq[frame], simone.Point{X: x, Y: y})
	}
	return seq, nil
}

func (s *Store) readCSV(runID, name string) ([][]string, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}
	return records[1:], nil
}
