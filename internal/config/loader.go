package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const configFileName = "rebatedor.yaml"

// LoadRebatedor loads the game configuration.
// Search order: customPath -> ~/.rebatedor/configs/rebatedor.yaml ->
// ./configs/rebatedor.yaml -> embedded default. Values present in the file
// override the defaults; REBATEDOR_* environment variables override both.
func LoadRebatedor(customPath string) (RebatedorConfig, error) {
	cfg := DefaultRebatedorConfig()

	// Custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return finish(cfg)
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultRebatedorConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return finish(candidate)
		}
	}

	// Embedded default YAML, hardcoded defaults if that fails
	candidate := DefaultRebatedorConfig()
	if err := yaml.Unmarshal(defaultRebatedorYAML, &candidate); err == nil {
		cfg = candidate
	}
	return finish(cfg)
}

// finish applies environment overrides and validates the result.
func finish(cfg RebatedorConfig) (RebatedorConfig, error) {
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// searchPaths lists the implicit config file locations in priority order.
func searchPaths() []string {
	paths := make([]string, 0, 2)
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", configFileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rebatedor", "configs", filename)
}

// ApplyRebatedorPreset modifies the config based on a difficulty preset.
// An empty preset leaves cfg untouched.
func ApplyRebatedorPreset(cfg *RebatedorConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "score"
	}

	switch preset {
	case DifficultyEasy:
		cfg.Ball.Step = 0.4
	case DifficultyHard:
		cfg.Ball.Step = 0.6
	}
}

// Marshal renders the config as YAML, as printed by the config command.
func Marshal(cfg RebatedorConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
