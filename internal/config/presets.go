package config

// Presets are named parameter sets worth revisiting, keyed by mode.
var Presets = map[string]map[string]*Config{
	ModePoint: {
		"origin": {
			Mode: ModePoint, A: 0, B: 0, Iterations: 100,
			Point: PointConfig{X0: 0.1, Y0: 0.1},
		},
		"swirl": {
			Mode: ModePoint, A: 1.7, B: -1.2, Iterations: 1000,
			Point: PointConfig{X0: 0.1, Y0: 0.1},
		},
		"scatter": {
			Mode: ModePoint, A: -2.4, B: 3.1, Iterations: 1000,
			Point: PointConfig{X0: 0.5, Y0: -0.5},
		},
		"bands": {
			Mode: ModePoint, A: 4.0, B: 0.3, Iterations: 500,
			Point: PointConfig{X0: 0.2, Y0: 0.0},
		},
	},
	ModeCurve: {
		"ring": {
			Mode: ModeCurve, A: 0.5, B: -0.5, Iterations: 10,
			Curve: CurveConfig{Shape: "circle", Points: 200, Radius: 1},
		},
		"ribbon": {
			Mode: ModeCurve, A: 1.1, B: 2.3, Iterations: 15,
			Curve: CurveConfig{Shape: "hline", Points: 150, LineY: 0.5, LineStart: -2, LineEnd: 2},
		},
		"fold": {
			Mode: ModeCurve, A: -1.8, B: 0.9, Iterations: 20,
			Curve: CurveConfig{Shape: "ellipse", Points: 200, RadiusX: 2, RadiusY: 0.5},
		},
	},
}

func GetPreset(mode, name string) *Config {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	cfg, ok := modePresets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(mode string) []string {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modePresets))
	for name := range modePresets {
		names = append(names, name)
	}
	return names
}
