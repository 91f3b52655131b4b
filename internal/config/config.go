package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/simone/internal/curve"
	"github.com/san-kum/simone/internal/simone"
)

// Defaults mirror the explorer's initial UI state.
const (
	DefaultA          = 0.0
	DefaultB          = 0.0
	DefaultX0         = 0.1
	DefaultY0         = 0.1
	DefaultIterations = 100
	DefaultCurveIters = 10
	DefaultPoints     = 100
	DefaultRadius     = 1.0
)

// Mode selects which engine a run uses.
const (
	ModePoint = "point"
	ModeCurve = "curve"
)

type Config struct {
	Mode       string      `yaml:"mode"`
	A          float64     `yaml:"a"`
	B          float64     `yaml:"b"`
	Iterations int         `yaml:"iterations"`
	Point      PointConfig `yaml:"point"`
	Curve      CurveConfig `yaml:"curve"`
}

// PointConfig is the initial condition for point mode.
type PointConfig struct {
	X0 float64 `yaml:"x0"`
	Y0 float64 `yaml:"y0"`
}

// CurveConfig describes the initial curve for curve mode. Only the
// fields of the selected shape are consulted.
type CurveConfig struct {
	Shape  string `yaml:"shape"`
	Points int    `yaml:"points"`

	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Radius  float64 `yaml:"radius"`
	RadiusX float64 `yaml:"radius_x"`
	RadiusY float64 `yaml:"radius_y"`

	LineX     float64 `yaml:"line_x"`
	LineY     float64 `yaml:"line_y"`
	LineStart float64 `yaml:"line_start"`
	LineEnd   float64 `yaml:"line_end"`

	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	EndX   float64 `yaml:"end_x"`
	EndY   float64 `yaml:"end_y"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:       ModePoint,
		A:          DefaultA,
		B:          DefaultB,
		Iterations: DefaultIterations,
		Point:      PointConfig{X0: DefaultX0, Y0: DefaultY0},
		Curve: CurveConfig{
			Shape:     "circle",
			Points:    DefaultPoints,
			Radius:    DefaultRadius,
			RadiusX:   DefaultRadius,
			RadiusY:   0.5,
			LineStart: -1,
			LineEnd:   1,
			StartX:    -1, StartY: -1, EndX: 1, EndY: 1,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations before any computation starts.
func (c *Config) Validate() error {
	if c.Mode != ModePoint && c.Mode != ModeCurve {
		return fmt.Errorf("unknown mode %q (want %q or %q)", c.Mode, ModePoint, ModeCurve)
	}
	if c.Iterations < 0 {
		return &simone.ConfigError{Field: "iterations", Value: float64(c.Iterations), Wrapped: simone.ErrIterations}
	}
	if c.Mode == ModeCurve && c.Curve.Points < 2 {
		return &simone.ConfigError{Field: "points", Value: float64(c.Curve.Points), Wrapped: simone.ErrSamples}
	}
	return nil
}

func (c *Config) Params() simone.Params {
	return simone.Params{A: c.A, B: c.B}
}

func (c *Config) InitialPoint() simone.Point {
	return simone.Point{X: c.Point.X0, Y: c.Point.Y0}
}

// ShapeOf maps the configured shape name to its descriptor. Unknown
// names fall back to a small centered circle, the documented default.
func (c *CurveConfig) ShapeOf() curve.Shape {
	switch c.Shape {
	case "circle":
		return curve.Circle{
			Center: simone.Point{X: c.CenterX, Y: c.CenterY},
			Radius: c.Radius,
		}
	case "ellipse":
		return curve.Ellipse{
			Center:  simone.Point{X: c.CenterX, Y: c.CenterY},
			RadiusX: c.RadiusX,
			RadiusY: c.RadiusY,
		}
	case "hline":
		return curve.HorizontalLine{Y: c.LineY, Start: c.LineStart, End: c.LineEnd}
	case "vline":
		return curve.VerticalLine{X: c.LineX, Start: c.LineStart, End: c.LineEnd}
	case "diagonal":
		return curve.DiagonalLine{
			Start: simone.Point{X: c.StartX, Y: c.StartY},
			End:   simone.Point{X: c.EndX, Y: c.EndY},
		}
	default:
		return curve.DefaultShape()
	}
}
