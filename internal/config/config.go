package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth          = 160
	DefaultHeight         = 80
	DefaultSurfaceZ       = 1.0
	DefaultAngleIncrement = 0.01
	DefaultFrameDelay     = 10 * time.Millisecond
)

type Config struct {
	Width          int           `yaml:"width"`
	Height         int           `yaml:"height"`
	Camera         CameraConfig  `yaml:"camera"`
	AngleIncrement float64       `yaml:"angle_increment"`
	FrameDelay     time.Duration `yaml:"frame_delay"`
}

type CameraConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	SurfaceZ float64 `yaml:"surface_z"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Camera:         CameraConfig{X: 0, Y: 2, Z: -5, SurfaceZ: DefaultSurfaceZ},
		AngleIncrement: DefaultAngleIncrement,
		FrameDelay:     DefaultFrameDelay,
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

// Validate rejects configurations that cannot produce frames. It runs
// once at startup; nothing inside the render loop re-checks these.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.AngleIncrement <= 0 {
		return fmt.Errorf("angle_increment must be positive, got %f", c.AngleIncrement)
	}
	if c.FrameDelay <= 0 {
		return fmt.Errorf("frame_delay must be positive, got %v", c.FrameDelay)
	}
	if c.Camera.SurfaceZ <= 0 {
		return fmt.Errorf("camera surface_z must be positive, got %f", c.Camera.SurfaceZ)
	}
	return nil
}
