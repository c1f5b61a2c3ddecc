package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const quantumFile = "quantum.yaml"

// LoadQuantum loads the game configuration.
// Search order: customPath -> ~/.quantum/configs/quantum.yaml -> ./configs/quantum.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadQuantum(customPath string) (QuantumConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return QuantumConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg := DefaultQuantumConfig()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return QuantumConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(quantumFile); userCfgPath != "" {
		if cfg, ok := readQuantum(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := readQuantum(filepath.Join("configs", quantumFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultQuantumConfig()
	if err := yaml.Unmarshal(defaultQuantumYAML, &cfg); err != nil {
		return DefaultQuantumConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readQuantum reads an optional config file. Missing or broken files are skipped.
func readQuantum(path string) (QuantumConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return QuantumConfig{}, false
	}
	cfg := DefaultQuantumConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return QuantumConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quantum", "configs", filename)
}

// ApplyQuantumPreset modifies the config based on a difficulty preset.
func ApplyQuantumPreset(cfg *QuantumConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Energy.Max = cfg.Energy.Max * 3 / 2
		cfg.Boundary.LimitMS *= 1.5
	case DifficultyHard:
		cfg.Energy.Max = max(1, cfg.Energy.Max*7/10)
		cfg.Boundary.LimitMS *= 0.6
	}
}
