package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// user-adjustable defaults loaded from an optional TOML file
type Config struct {
	// output variant used when --to is not given (ass or ssa)
	DefaultFormat string `toml:"default_format"`
	// attribution comment written at the top of generated scripts;
	// empty keeps the built-in notice
	Notice string `toml:"notice"`
}

func Default() Config {
	return Config{
		DefaultFormat: "ass",
	}
}

// reads the config file at path, or the per-user default location when path
// is empty; a missing file yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = defaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lekha", "config.toml")
}
