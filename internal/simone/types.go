package simone

import "math"

// Params are the two scalar parameters of the map. Immutable for the
// duration of one computation.
type Params struct {
	A float64
	B float64
}

// Point is a single state of the system.
type Point struct {
	X float64
	Y float64
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Dist returns the euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// ClonePoints returns an independent copy of ps.
func ClonePoints(ps []Point) []Point {
	c := make([]Point, len(ps))
	copy(c, ps)
	return c
}
