package curve

import (
	"errors"
	"testing"

	"github.com/san-kum/simone/internal/simone"
)

func TestEvolve_Lengths(t *testing.T) {
	initial, err := Circle{Radius: 1}.Sample(32)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		k    int
		want int
	}{
		{0, 1},
		{1, 2},
		{20, 21},
	}

	for _, tt := range tests {
		seq, err := Evolve(initial, simone.Params{A: 0.5, B: -0.5}, tt.k)
		if err != nil {
			t.Fatalf("Evolve(k=%d): %v", tt.k, err)
		}
		if len(seq) != tt.want {
			t.Errorf("Evolve(k=%d) has %d snapshots, want %d", tt.k, len(seq), tt.want)
		}
		for i, snap := range seq {
			if len(snap) != len(initial) {
				t.Errorf("k=%d snapshot %d has %d points, want %d", tt.k, i, len(snap), len(initial))
			}
		}
	}
}

func TestEvolve_ZeroIterations(t *testing.T) {
	initial := []simone.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	seq, err := Evolve(initial, simone.Params{A: 3, B: 3}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != 1 {
		t.Fatalf("expected single snapshot, got %d", len(seq))
	}
	for i := range initial {
		if seq[0][i] != initial[i] {
			t.Errorf("point %d = %v, want %v unchanged", i, seq[0][i], initial[i])
		}
	}
}

func TestEvolve_DefensiveCopy(t *testing.T) {
	initial := []simone.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}
	seq, err := Evolve(initial, simone.Params{}, 2)
	if err != nil {
		t.Fatal(err)
	}

	initial[0] = simone.Point{X: 99, Y: 99}
	if seq[0][0] != (simone.Point{X: 1, Y: 0}) {
		t.Error("snapshot 0 aliased the caller's curve")
	}
}

func TestEvolve_MatchesScalarSteps(t *testing.T) {
	par := simone.Params{A: -1.1, B: 0.4}
	initial, err := Ellipse{RadiusX: 1, RadiusY: 2}.Sample(16)
	if err != nil {
		t.Fatal(err)
	}

	seq, err := Evolve(initial, par, 5)
	if err != nil {
		t.Fatal(err)
	}

	// Each sample point traces its own independent trajectory.
	for j, p0 := range initial {
		traj, err := simone.Trajectory(p0, par, 5)
		if err != nil {
			t.Fatal(err)
		}
		for i := range seq {
			if seq[i][j] != traj[i] {
				t.Fatalf("snapshot %d point %d = %v, scalar trajectory gives %v", i, j, seq[i][j], traj[i])
			}
		}
	}
}

func TestEvolve_NegativeIterations(t *testing.T) {
	_, err := Evolve([]simone.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, simone.Params{}, -3)
	if !errors.Is(err, simone.ErrIterations) {
		t.Errorf("expected ErrIterations, got %v", err)
	}
}

func TestEvolveShape(t *testing.T) {
	seq, err := EvolveShape(Circle{Radius: 1}, 100, simone.Params{A: 0.9, B: -0.6}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != 11 {
		t.Fatalf("got %d snapshots, want 11", len(seq))
	}
	for i, snap := range seq {
		if len(snap) != 100 {
			t.Errorf("snapshot %d has %d points, want 100", i, len(snap))
		}
	}
}

func TestEvolveShape_InvalidShape(t *testing.T) {
	_, err := EvolveShape(Circle{Radius: -1}, 10, simone.Params{}, 5)
	if !errors.Is(err, simone.ErrRadius) {
		t.Errorf("expected ErrRadius, got %v", err)
	}
}
