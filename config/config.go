// Package config holds application configuration with optional overrides
// loaded from a lumen.toml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config controls paths, worker invocation and render defaults.
type Config struct {
	OutputDir  string `toml:"output_dir"`
	LogDir     string `toml:"log_dir"`
	WorkerPath string `toml:"worker_path"`

	DefaultWidth   int     `toml:"default_width"`
	DefaultHeight  int     `toml:"default_height"`
	DefaultSamples int     `toml:"default_samples"`
	DefaultDepth   int     `toml:"default_depth"`
	DefaultVariant string  `toml:"default_variant"`
	Exposure       float64 `toml:"exposure"`

	WindowWidth  int `toml:"window_width"`
	WindowHeight int `toml:"window_height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir:      "output",
		LogDir:         "logs",
		WorkerPath:     "lumen-worker",
		DefaultWidth:   512,
		DefaultHeight:  512,
		DefaultSamples: 64,
		DefaultDepth:   0, // keep each scene's own depth
		DefaultVariant: "scalar_rgb",
		Exposure:       1.0,
		WindowWidth:    1400,
		WindowHeight:   900,
	}
}

// Load reads overrides from path on top of the defaults. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("config: %v", err)
	}

	if err = toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %v", path, err)
	}
	return cfg, nil
}

// EnsureDirs creates the output and log directories if missing.
func (c Config) EnsureDirs() error {
	for _, dir := range []string{c.OutputDir, c.LogDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("config: %v", err)
		}
	}
	return nil
}

// OutputPath returns the predictable output location for a named scene.
func (c Config) OutputPath(sceneName string) string {
	return filepath.Join(c.OutputDir, sceneName+".png")
}

// TimestampedOutputPath returns a unique output location for interactive
// renders of a named scene.
func (c Config) TimestampedOutputPath(sceneName string, t time.Time) string {
	return filepath.Join(c.OutputDir, fmt.Sprintf("%s_%s.png", sceneName, t.Format("20060102-150405")))
}

// LogFile returns the application log file location.
func (c Config) LogFile() string {
	return filepath.Join(c.LogDir, "lumen.log")
}
