package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagEnvFile   = flag.String("env", ".env", "Path to .env file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagWidth     = flag.Int("width", 0, "Window width")
	flagHeight    = flag.Int("height", 0, "Window height")
	flagSize      = flag.Float64("size", 0, "Ground plane size in world units")
	flagSegments  = flag.Int("segments", -1, "Ground plane subdivisions per side")
	flagWireframe = flag.Bool("wireframe", false, "Start in wireframe mode")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagSize > 0 {
		cfg.Terrain.Size = float32(*flagSize)
	}
	if *flagSegments >= 0 {
		cfg.Terrain.Segments = uint32(*flagSegments)
	}
	if *flagWireframe {
		cfg.Window.Wireframe = true
	}
}
