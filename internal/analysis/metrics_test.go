package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/simone/internal/simone"
)

func TestPathLength(t *testing.T) {
	tests := []struct {
		name string
		pts  []simone.Point
		want float64
	}{
		{"empty", nil, 0},
		{"single", []simone.Point{{X: 1, Y: 1}}, 0},
		{"unit steps", []simone.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, 2},
		{"diagonal", []simone.Point{{X: 0, Y: 0}, {X: 3, Y: 4}}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PathLength(tt.pts); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("PathLength = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundsOf(t *testing.T) {
	pts := []simone.Point{{X: -1, Y: 2}, {X: 3, Y: -4}, {X: 0, Y: 0}}
	b := BoundsOf(pts)

	if b.MinX != -1 || b.MaxX != 3 || b.MinY != -4 || b.MaxY != 2 {
		t.Errorf("BoundsOf = %+v", b)
	}
	if b.RangeX() != 4 || b.RangeY() != 6 {
		t.Errorf("ranges = %v, %v, want 4, 6", b.RangeX(), b.RangeY())
	}
}

func TestSummary(t *testing.T) {
	traj, err := simone.Trajectory(simone.Point{X: 0.1, Y: 0.1}, simone.Params{A: 1.2, B: -0.8}, 100)
	if err != nil {
		t.Fatal(err)
	}

	m := Summary(traj)
	for _, key := range []string{"path_length", "x_range", "y_range", "final_x", "final_y"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing metric %q", key)
		}
	}

	last := traj[len(traj)-1]
	if m["final_x"] != last.X || m["final_y"] != last.Y {
		t.Error("final point metrics do not match trajectory")
	}
	if m["path_length"] <= 0 {
		t.Error("expected positive path length for a chaotic run")
	}
}

func TestSummary_Empty(t *testing.T) {
	if m := Summary(nil); len(m) != 0 {
		t.Errorf("Summary(nil) = %v, want empty", m)
	}
}

func TestPhaseASCII(t *testing.T) {
	pts := []simone.Point{{X: -1, Y: -1}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: -0.5}}
	out := PhaseASCII(pts, 40, 10)

	if out == "" {
		t.Fatal("expected non-empty plot")
	}
	if !strings.Contains(out, "●") {
		t.Error("expected late-trajectory marker in output")
	}
	if !strings.Contains(out, "legend") {
		t.Error("expected legend line")
	}
	lines := strings.Split(out, "\n")
	if len(lines) < 12 {
		t.Errorf("expected at least 12 output lines, got %d", len(lines))
	}
}

func TestPhaseASCII_Degenerate(t *testing.T) {
	if out := PhaseASCII(nil, 40, 10); out != "" {
		t.Error("empty input should produce empty plot")
	}
	// A fixed point still renders (ranges padded to avoid division by zero).
	out := PhaseASCII([]simone.Point{{X: 0.5, Y: 0.5}, {X: 0.5, Y: 0.5}}, 20, 5)
	if out == "" {
		t.Error("constant trajectory should still render")
	}
}
