package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate reports every setting the application cannot run with.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.MSAA < 0 {
		err = multierr.Append(err, fmt.Errorf("window: msaa %d must not be negative", c.Window.MSAA))
	}
	if c.Window.FOV <= 0 || c.Window.FOV >= 180 {
		err = multierr.Append(err, fmt.Errorf("window: fov %v must be in (0, 180)", c.Window.FOV))
	}

	if c.Terrain.Size <= 0 {
		err = multierr.Append(err, fmt.Errorf("terrain: size %v must be positive", c.Terrain.Size))
	}

	cam := c.Camera
	for _, f := range []struct {
		name  string
		value float32
	}{
		{"acceleration", cam.Acceleration},
		{"friction", cam.Friction},
		{"top_speed", cam.TopSpeed},
		{"sensitivity", cam.Sensitivity},
	} {
		if f.value < 0 {
			err = multierr.Append(err, fmt.Errorf("camera: %s %v must not be negative", f.name, f.value))
		}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logging: unknown level %q", c.Logging.Level))
	}

	return err
}
