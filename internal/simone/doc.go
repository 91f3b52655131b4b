// Package simone provides the numeric core of the Simone attractor explorer.
//
// The system is the two-dimensional iterated map
//
//	x' = sin(x² − y² + a)
//	y' = cos(2xy + b)
//
// exposed through:
//
//   - [Step]: the one-step state transition
//   - [StepAll]: the element-wise form over point slices
//   - [Trajectory]: repeated application from a single initial point
//
// All functions are pure and deterministic. Non-finite inputs are not
// rejected; NaN and Inf propagate through sin/cos and the full-length
// result is still returned, so callers can detect and display the
// degenerate run.
package simone
