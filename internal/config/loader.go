package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "hopit.yaml"

// LoadHop loads the Hop.It configuration.
// Search order: customPath -> ~/.hopit/configs/hopit.yaml -> ./configs/hopit.yaml -> embedded default
//
// Files are decoded over DefaultHopConfig, so a partial file only overrides
// the keys it names.
func LoadHop(customPath string) (HopConfig, error) {
	cfg := DefaultHopConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	if c, ok := tryLoad(filepath.Join("configs", configFile)); ok {
		return c, nil
	}

	if err := yaml.Unmarshal(defaultHopYAML, &cfg); err != nil {
		return DefaultHopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config location. Missing or broken files are skipped.
func tryLoad(path string) (HopConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HopConfig{}, false
	}
	cfg := DefaultHopConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HopConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hopit", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the loaded difficulty section untouched.
func ApplyPreset(cfg *HopConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "none" || cfg.Difficulty.Progression.Type == "" {
		cfg.Difficulty.Progression.Type = "score"
	}

	// Hard runs get moving platforms from the first screen.
	switch preset {
	case DifficultyEasy:
		cfg.Platforms.MovingAfter = 1000
	case DifficultyHard:
		cfg.Platforms.MovingAfter = 0
	}
}
