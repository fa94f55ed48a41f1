// Package config handles application configuration loading and management.
package config

import "time"

// Config holds all application settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Terrain TerrainConfig `yaml:"terrain"`
	Camera  CameraConfig  `yaml:"camera"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display and rendering settings.
type WindowConfig struct {
	Title      string   `yaml:"title"`
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Resizable  bool     `yaml:"resizable"`
	VSync      bool     `yaml:"vsync"`
	MSAA       int      `yaml:"msaa"`        // samples, 0 or 1 disables
	Wireframe  bool     `yaml:"wireframe"`   // start in wireframe mode
	FOV        float32  `yaml:"fov"`         // vertical, degrees
	ClearColor [3]uint8 `yaml:"clear_color"` // RGB

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// TerrainConfig holds ground plane generation settings.
type TerrainConfig struct {
	Size     float32 `yaml:"size"`
	Segments uint32  `yaml:"segments"`
}

// CameraConfig holds flight camera tunables.
type CameraConfig struct {
	Acceleration  float32    `yaml:"acceleration"`
	Friction      float32    `yaml:"friction"`
	TopSpeed      float32    `yaml:"top_speed"`
	Sensitivity   float32    `yaml:"sensitivity"`
	StartPosition [3]float32 `yaml:"start_position"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`

	// How often frame diagnostics are logged at debug level. Zero disables them.
	DiagnosticsInterval time.Duration `yaml:"diagnostics_interval"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Procedural Mesh Testing",
			Width:      1280,
			Height:     720,
			Resizable:  false,
			VSync:      true,
			MSAA:       4,
			Wireframe:  false,
			FOV:        45,
			ClearColor: [3]uint8{21, 27, 30},

			ScreenshotDir: "screenshots",
		},
		Terrain: TerrainConfig{
			Size:     5.0,
			Segments: 40,
		},
		Camera: CameraConfig{
			Acceleration:  1.25,
			Friction:      1.0,
			TopSpeed:      0.25,
			Sensitivity:   0.2,
			StartPosition: [3]float32{2.5, 1.5, 7},
		},
		Logging: LoggingConfig{
			Level:               "info",
			LogFile:             "",
			DiagnosticsInterval: time.Second,
		},
	}
}
