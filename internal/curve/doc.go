// Package curve generates sampled initial curves and evolves them under
// the Simone map.
//
// A curve is a slice of [simone.Point] sampled from one of five
// parametric shapes:
//
//   - [Circle], [Ellipse]: sampled over [0, 2π] inclusive of both
//     endpoints, so the first and last sample coincide
//   - [HorizontalLine], [VerticalLine], [DiagonalLine]: evenly spaced
//     between their endpoints, inclusive
//
// [Evolve] applies the map element-wise to every sample point, returning
// one snapshot per iteration plus the initial curve. Points never
// interact; each traces its own trajectory.
package curve
