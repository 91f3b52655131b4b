package simone

// Trajectory iterates the map n times from p0 and returns all n+1
// states, index 0 being p0 itself. n=0 yields a single-element
// trajectory. Non-finite inputs still produce a full-length result
// populated with the propagated NaN/Inf values.
func Trajectory(p0 Point, par Params, n int) ([]Point, error) {
	if n < 0 {
		return nil, &ConfigError{Field: "iterations", Value: float64(n), Wrapped: ErrIterations}
	}

	traj := make([]Point, n+1)
	traj[0] = p0
	for i := 0; i < n; i++ {
		traj[i+1] = Step(traj[i], par)
	}
	return traj, nil
}
