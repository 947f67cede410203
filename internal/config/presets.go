package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"compact": {
		Width:          80,
		Height:         40,
		Camera:         CameraConfig{X: 0, Y: 2, Z: -5, SurfaceZ: DefaultSurfaceZ},
		AngleIncrement: DefaultAngleIncrement,
		FrameDelay:     DefaultFrameDelay,
	},
	"slow": {
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Camera:         CameraConfig{X: 0, Y: 2, Z: -5, SurfaceZ: DefaultSurfaceZ},
		AngleIncrement: 0.002,
		FrameDelay:     33 * time.Millisecond,
	},
	"fast": {
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Camera:         CameraConfig{X: 0, Y: 2, Z: -5, SurfaceZ: DefaultSurfaceZ},
		AngleIncrement: 0.05,
		FrameDelay:     DefaultFrameDelay,
	},
	"closeup": {
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Camera:         CameraConfig{X: 0, Y: 1, Z: -3.5, SurfaceZ: DefaultSurfaceZ},
		AngleIncrement: DefaultAngleIncrement,
		FrameDelay:     DefaultFrameDelay,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
