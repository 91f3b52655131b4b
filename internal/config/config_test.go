package config

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/san-kum/simone/internal/curve"
	"github.com/san-kum/simone/internal/simone"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != ModePoint {
		t.Errorf("expected mode %q, got %q", ModePoint, cfg.Mode)
	}
	if cfg.Iterations <= 0 {
		t.Error("iterations should be positive")
	}
	if cfg.Point.X0 != DefaultX0 || cfg.Point.Y0 != DefaultY0 {
		t.Errorf("unexpected initial point: %+v", cfg.Point)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"negative iterations", func(c *Config) { c.Iterations = -1 }, simone.ErrIterations},
		{"curve too few points", func(c *Config) { c.Mode = ModeCurve; c.Curve.Points = 1 }, simone.ErrSamples},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidate_UnknownMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "spline"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Mode = ModeCurve
	cfg.A = 1.7
	cfg.B = -0.3
	cfg.Curve.Shape = "ellipse"
	cfg.Curve.RadiusX = 2.5

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Mode != ModeCurve || loaded.A != 1.7 || loaded.B != -0.3 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	if loaded.Curve.Shape != "ellipse" || loaded.Curve.RadiusX != 2.5 {
		t.Errorf("round trip lost curve values: %+v", loaded.Curve)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("a: 2.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.A != 2.5 {
		t.Errorf("a = %v, want 2.5", cfg.A)
	}
	if cfg.Iterations != DefaultIterations {
		t.Errorf("iterations = %v, want default %v", cfg.Iterations, DefaultIterations)
	}
}

func TestShapeOf(t *testing.T) {
	tests := []struct {
		shape string
		want  string
	}{
		{"circle", "circle"},
		{"ellipse", "ellipse"},
		{"hline", "hline"},
		{"vline", "vline"},
		{"diagonal", "diagonal"},
		{"hexagon", "circle"}, // unknown falls back to the default circle
		{"", "circle"},
	}

	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			cc := DefaultConfig().Curve
			cc.Shape = tt.shape
			if got := cc.ShapeOf().Name(); got != tt.want {
				t.Errorf("ShapeOf(%q).Name() = %q, want %q", tt.shape, got, tt.want)
			}
		})
	}
}

func TestShapeOf_FallbackRadius(t *testing.T) {
	cc := DefaultConfig().Curve
	cc.Shape = "unknown"

	pts, err := cc.ShapeOf().Sample(16)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range pts {
		if d := p.Dist(simone.Point{}); d < 0.49 || d > 0.51 {
			t.Fatalf("fallback shape point %v not on radius-0.5 circle", p)
		}
	}
}

func TestShapeOf_CarriesParameters(t *testing.T) {
	cc := CurveConfig{Shape: "diagonal", StartX: -1, StartY: -2, EndX: 3, EndY: 4}
	d, ok := cc.ShapeOf().(curve.DiagonalLine)
	if !ok {
		t.Fatalf("expected DiagonalLine, got %T", cc.ShapeOf())
	}
	if d.Start != (simone.Point{X: -1, Y: -2}) || d.End != (simone.Point{X: 3, Y: 4}) {
		t.Errorf("diagonal endpoints = %v -> %v", d.Start, d.End)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset(ModePoint, "swirl")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.A != 1.7 {
		t.Errorf("expected a=1.7, got %v", cfg.A)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset(ModePoint, "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "swirl"); cfg != nil {
		t.Error("expected nil for nonexistent mode")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets(ModeCurve)
	if len(names) == 0 {
		t.Fatal("expected curve presets")
	}
	sort.Strings(names)
	for _, name := range names {
		if GetPreset(ModeCurve, name) == nil {
			t.Errorf("listed preset %q not retrievable", name)
		}
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent mode")
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for mode, byName := range Presets {
		for name, cfg := range byName {
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s/%s invalid: %v", mode, name, err)
			}
		}
	}
}
