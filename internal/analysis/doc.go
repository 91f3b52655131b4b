// Package analysis derives summary metrics and phase-space views from
// computed trajectories: total path length, coordinate ranges, and an
// ASCII phase portrait with time-ordered markers.
package analysis
