package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads the game configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Keys missing from a file keep their default values. A custom path must
// exist; search path files are skipped only when absent, and one that is
// present but invalid is an error.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, _, err := loadFile(customPath, true)
		return cfg, err
	}

	paths := []string{filepath.Join("configs", "flappy.yaml")}
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		paths = append([]string{userCfgPath}, paths...)
	}
	for _, path := range paths {
		cfg, found, err := loadFile(path, false)
		if err != nil {
			return FlappyConfig{}, err
		}
		if found {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and parses one config file. A missing file is reported as
// not found unless required is set.
func loadFile(path string, required bool) (FlappyConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return FlappyConfig{}, false, nil
		}
		return FlappyConfig{}, false, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return FlappyConfig{}, true, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, true, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}
