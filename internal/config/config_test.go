package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Window defaults
	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Resizable {
		t.Error("expected window to be fixed-size by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Window.MSAA != 4 {
		t.Errorf("expected 4x msaa, got %d", cfg.Window.MSAA)
	}
	if cfg.Window.ClearColor != [3]uint8{21, 27, 30} {
		t.Errorf("unexpected clear color %v", cfg.Window.ClearColor)
	}
	if cfg.Window.ScreenshotDir != "screenshots" {
		t.Errorf("expected screenshot dir 'screenshots', got %q", cfg.Window.ScreenshotDir)
	}

	// Terrain defaults
	if cfg.Terrain.Size != 5.0 {
		t.Errorf("expected terrain size 5, got %v", cfg.Terrain.Size)
	}
	if cfg.Terrain.Segments != 40 {
		t.Errorf("expected 40 segments, got %d", cfg.Terrain.Segments)
	}

	// Camera defaults
	if cfg.Camera.Acceleration != 1.25 || cfg.Camera.Friction != 1.0 ||
		cfg.Camera.TopSpeed != 0.25 || cfg.Camera.Sensitivity != 0.2 {
		t.Errorf("unexpected camera tunables %+v", cfg.Camera)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if cfg.Logging.DiagnosticsInterval != time.Second {
		t.Errorf("expected 1s diagnostics interval, got %v", cfg.Logging.DiagnosticsInterval)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  resizable: true
  vsync: false
  msaa: 8
  wireframe: true

terrain:
  size: 12.5
  segments: 64

camera:
  acceleration: 2
  friction: 0.5
  top_speed: 1
  sensitivity: 0.1
  start_position: [0, 3, 0]

logging:
  level: "debug"
  log_file: "groundplane.log"
  diagnostics_interval: 5s
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Resizable || cfg.Window.VSync || !cfg.Window.Wireframe {
		t.Errorf("window flags not loaded: %+v", cfg.Window)
	}
	if cfg.Window.MSAA != 8 {
		t.Errorf("expected msaa 8, got %d", cfg.Window.MSAA)
	}
	// Not in the file, so the default survives the merge.
	if cfg.Window.Title != "Procedural Mesh Testing" {
		t.Errorf("title default lost: %q", cfg.Window.Title)
	}

	if cfg.Terrain.Size != 12.5 || cfg.Terrain.Segments != 64 {
		t.Errorf("terrain not loaded: %+v", cfg.Terrain)
	}

	if cfg.Camera.Acceleration != 2 || cfg.Camera.Friction != 0.5 || cfg.Camera.TopSpeed != 1 || cfg.Camera.Sensitivity != 0.1 {
		t.Errorf("camera not loaded: %+v", cfg.Camera)
	}
	if cfg.Camera.StartPosition != [3]float32{0, 3, 0} {
		t.Errorf("start position not loaded: %v", cfg.Camera.StartPosition)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "groundplane.log" {
		t.Errorf("expected log file 'groundplane.log', got %s", cfg.Logging.LogFile)
	}
	if cfg.Logging.DiagnosticsInterval != 5*time.Second {
		t.Errorf("expected 5s interval, got %v", cfg.Logging.DiagnosticsInterval)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("terrain:\n  segments: 8\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "terrain flags",
			setup: func() {
				*flagSize = 20
				*flagSegments = 100
			},
			verify: func(cfg *Config) {
				if cfg.Terrain.Size != 20 || cfg.Terrain.Segments != 100 {
					t.Errorf("terrain flags not applied: %+v", cfg.Terrain)
				}
			},
			teardown: func() {
				*flagSize = 0
				*flagSegments = -1
			},
		},
		{
			name:  "zero segments is honoured",
			setup: func() { *flagSegments = 0 },
			verify: func(cfg *Config) {
				if cfg.Terrain.Segments != 0 {
					t.Errorf("expected 0 segments, got %d", cfg.Terrain.Segments)
				}
			},
			teardown: func() { *flagSegments = -1 },
		},
		{
			name:  "unset segments keeps default",
			setup: func() {},
			verify: func(cfg *Config) {
				if cfg.Terrain.Segments != 40 {
					t.Errorf("expected default 40 segments, got %d", cfg.Terrain.Segments)
				}
			},
			teardown: func() {},
		},
		{
			name:  "wireframe flag",
			setup: func() { *flagWireframe = true },
			verify: func(cfg *Config) {
				if !cfg.Window.Wireframe {
					t.Error("expected wireframe to be enabled")
				}
			},
			teardown: func() { *flagWireframe = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFile, "/tmp/gp.log")

	cfg := Default()
	applyEnv(cfg)

	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level from env, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "/tmp/gp.log" {
		t.Errorf("expected log file from env, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadDotEnv(t *testing.T) {
	tmpDir := t.TempDir()
	envPath := filepath.Join(tmpDir, ".env")
	if err := os.WriteFile(envPath, []byte("GROUNDPLANE_LOG_LEVEL=error\n# comment\n"), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	// Register cleanup for the variable godotenv is about to set.
	t.Setenv(EnvLogLevel, "")
	os.Unsetenv(EnvLogLevel)

	if err := loadDotEnv(envPath); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
	if got := os.Getenv(EnvLogLevel); got != "error" {
		t.Errorf("expected %s=error, got %q", EnvLogLevel, got)
	}

	if err := loadDotEnv(filepath.Join(tmpDir, "missing.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

func TestLoadDotEnvKeepsExisting(t *testing.T) {
	tmpDir := t.TempDir()
	envPath := filepath.Join(tmpDir, ".env")
	if err := os.WriteFile(envPath, []byte("GROUNDPLANE_LOG_FILE=from-dotenv.log\n"), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv(EnvLogFile, "from-shell.log")

	if err := loadDotEnv(envPath); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
	if got := os.Getenv(EnvLogFile); got != "from-shell.log" {
		t.Errorf("shell value overridden: %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{"defaults", func(*Config) {}, nil},
		{"zero size terrain", func(c *Config) { c.Terrain.Size = 0 }, []string{"terrain: size"}},
		{"zero segments allowed", func(c *Config) { c.Terrain.Segments = 0 }, nil},
		{"negative friction", func(c *Config) { c.Camera.Friction = -1 }, []string{"camera: friction"}},
		{"bad window", func(c *Config) { c.Window.Width = 0 }, []string{"window: size"}},
		{"bad fov", func(c *Config) { c.Window.FOV = 180 }, []string{"window: fov"}},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, []string{"unknown level"}},
		{
			name: "several problems reported together",
			mutate: func(c *Config) {
				c.Terrain.Size = -1
				c.Camera.TopSpeed = -2
				c.Window.MSAA = -4
			},
			wantErr: []string{"terrain: size", "camera: top_speed", "window: msaa"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()

			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not mention %q", err, want)
				}
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Terrain.Segments = 12
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Terrain.Segments != 12 {
		t.Errorf("expected 12 segments after reload, got %d", loaded.Terrain.Segments)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
logging:
  level: info
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagEnvFile = ""
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagEnvFile = ".env"
		*flagWidth = 0
	}()
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
	// Env beats the file
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level warn from env, got %s", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("terrain:\n  size: -3\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagEnvFile = ""
	defer func() {
		*flagConfig = ""
		*flagEnvFile = ".env"
	}()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject a negative terrain size")
	}
}
