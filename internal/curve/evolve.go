package curve

import "github.com/san-kum/simone/internal/simone"

// Evolve applies the map element-wise to every point of initial, k
// times, and returns all k+1 snapshots. Snapshot 0 is an independent
// copy of initial; the caller's slice is never aliased. Every snapshot
// has the same length as initial. k=0 returns just the copied initial
// curve.
func Evolve(initial []simone.Point, par simone.Params, k int) ([][]simone.Point, error) {
	if k < 0 {
		return nil, &simone.ConfigError{Field: "iterations", Value: float64(k), Wrapped: simone.ErrIterations}
	}

	seq := make([][]simone.Point, k+1)
	seq[0] = simone.ClonePoints(initial)
	for i := 0; i < k; i++ {
		seq[i+1] = simone.Stepped(seq[i], par)
	}
	return seq, nil
}

// EvolveShape samples shape into n points and evolves the result.
// Validation happens before any iteration; no partial sequence is
// produced on error.
func EvolveShape(shape Shape, n int, par simone.Params, k int) ([][]simone.Point, error) {
	if k < 0 {
		return nil, &simone.ConfigError{Field: "iterations", Value: float64(k), Wrapped: simone.ErrIterations}
	}

	initial, err := shape.Sample(n)
	if err != nil {
		return nil, err
	}
	return Evolve(initial, par, k)
}
