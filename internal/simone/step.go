package simone

import "math"

// Step applies the one-step transition of the map to p.
// No validation: sin/cos are total over the reals, and NaN/Inf inputs
// produce NaN outputs rather than an error.
func Step(p Point, par Params) Point {
	return Point{
		X: math.Sin(p.X*p.X - p.Y*p.Y + par.A),
		Y: math.Cos(2*p.X*p.Y + par.B),
	}
}

// StepAll applies Step element-wise, writing src[i] stepped into dst[i].
// dst and src must have equal length; dst may alias src. The result is
// numerically identical to calling Step on each element.
func StepAll(dst, src []Point, par Params) {
	for i, p := range src {
		dst[i] = Step(p, par)
	}
}

// Stepped returns a new slice holding Step applied to every element of ps.
func Stepped(ps []Point, par Params) []Point {
	next := make([]Point, len(ps))
	StepAll(next, ps, par)
	return next
}
