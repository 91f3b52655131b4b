package curve

import (
	"math"

	"github.com/san-kum/simone/internal/simone"
)

// Shape describes an initial curve that can be sampled into n points.
// Each implementation carries only its own parameters.
type Shape interface {
	// Sample returns n points along the shape. n must be >= 2.
	Sample(n int) ([]simone.Point, error)

	// Name returns the shape identifier used in configs and run metadata.
	Name() string
}

// Circle is a circle of the given radius around Center.
type Circle struct {
	Center simone.Point
	Radius float64
}

func (c Circle) Name() string { return "circle" }

func (c Circle) Sample(n int) ([]simone.Point, error) {
	if err := checkSamples(n); err != nil {
		return nil, err
	}
	if c.Radius <= 0 {
		return nil, &simone.ConfigError{Field: "radius", Value: c.Radius, Wrapped: simone.ErrRadius}
	}

	pts := make([]simone.Point, n)
	for i := range pts {
		t := angleAt(i, n)
		pts[i] = simone.Point{
			X: c.Center.X + c.Radius*math.Cos(t),
			Y: c.Center.Y + c.Radius*math.Sin(t),
		}
	}
	return pts, nil
}

// Ellipse is an axis-aligned ellipse around Center.
type Ellipse struct {
	Center  simone.Point
	RadiusX float64
	RadiusY float64
}

func (e Ellipse) Name() string { return "ellipse" }

func (e Ellipse) Sample(n int) ([]simone.Point, error) {
	if err := checkSamples(n); err != nil {
		return nil, err
	}
	if e.RadiusX <= 0 {
		return nil, &simone.ConfigError{Field: "radius_x", Value: e.RadiusX, Wrapped: simone.ErrRadius}
	}
	if e.RadiusY <= 0 {
		return nil, &simone.ConfigError{Field: "radius_y", Value: e.RadiusY, Wrapped: simone.ErrRadius}
	}

	pts := make([]simone.Point, n)
	for i := range pts {
		t := angleAt(i, n)
		pts[i] = simone.Point{
			X: e.Center.X + e.RadiusX*math.Cos(t),
			Y: e.Center.Y + e.RadiusY*math.Sin(t),
		}
	}
	return pts, nil
}

// HorizontalLine is a segment at height Y from Start to End.
type HorizontalLine struct {
	Y     float64
	Start float64
	End   float64
}

func (h HorizontalLine) Name() string { return "hline" }

func (h HorizontalLine) Sample(n int) ([]simone.Point, error) {
	if err := checkSamples(n); err != nil {
		return nil, err
	}

	pts := make([]simone.Point, n)
	for i := range pts {
		pts[i] = simone.Point{X: lerpAt(h.Start, h.End, i, n), Y: h.Y}
	}
	return pts, nil
}

// VerticalLine is a segment at abscissa X from Start to End.
type VerticalLine struct {
	X     float64
	Start float64
	End   float64
}

func (v VerticalLine) Name() string { return "vline" }

func (v VerticalLine) Sample(n int) ([]simone.Point, error) {
	if err := checkSamples(n); err != nil {
		return nil, err
	}

	pts := make([]simone.Point, n)
	for i := range pts {
		pts[i] = simone.Point{X: v.X, Y: lerpAt(v.Start, v.End, i, n)}
	}
	return pts, nil
}

// DiagonalLine is an arbitrary segment between two points.
type DiagonalLine struct {
	Start simone.Point
	End   simone.Point
}

func (d DiagonalLine) Name() string { return "diagonal" }

func (d DiagonalLine) Sample(n int) ([]simone.Point, error) {
	if err := checkSamples(n); err != nil {
		return nil, err
	}

	pts := make([]simone.Point, n)
	for i := range pts {
		pts[i] = simone.Point{
			X: lerpAt(d.Start.X, d.End.X, i, n),
			Y: lerpAt(d.Start.Y, d.End.Y, i, n),
		}
	}
	return pts, nil
}

// DefaultShape is the fallback for unrecognized shape names: a small
// circle around the origin.
func DefaultShape() Shape {
	return Circle{Radius: 0.5}
}

func checkSamples(n int) error {
	if n < 2 {
		return &simone.ConfigError{Field: "points", Value: float64(n), Wrapped: simone.ErrSamples}
	}
	return nil
}

// angleAt spreads n samples over [0, 2π] inclusive of both endpoints.
// The duplicate sample at 2π keeps closed shapes visually closed.
func angleAt(i, n int) float64 {
	return float64(i) * 2 * math.Pi / float64(n-1)
}

// lerpAt spreads n samples over [start, end] inclusive.
func lerpAt(start, end float64, i, n int) float64 {
	return start + (end-start)*float64(i)/float64(n-1)
}
