package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration of a Night Walk variant.
// Search order: customPath -> ~/.nightwalk/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files overlay the hardcoded defaults, so partial files are fine.
func Load(gameID, customPath string) (NightwalkConfig, error) {
	cfg := DefaultFor(gameID)

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if overlay(&cfg, data) {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if overlay(&cfg, data) {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(gameID); data != nil {
		if overlay(&cfg, data) {
			return cfg, nil
		}
	}

	// Fallback to hardcoded if embed fails
	cfg = DefaultFor(gameID)
	cfg.Normalize()
	return cfg, nil
}

// overlay decodes data over cfg. On a parse error cfg is left untouched.
func overlay(cfg *NightwalkConfig, data []byte) bool {
	candidate := cfg.Clone()
	if err := yaml.Unmarshal(data, &candidate); err != nil {
		return false
	}
	candidate.Normalize()
	*cfg = candidate
	return true
}

// Clone returns a deep copy. Normalize and overlays work in place, so callers
// that keep the original clone first.
func (cfg NightwalkConfig) Clone() NightwalkConfig {
	out := cfg
	out.Terrain.Benches.Columns = append([]BenchColumn(nil), cfg.Terrain.Benches.Columns...)
	out.Terrain.GrassColumns = append([]int(nil), cfg.Terrain.GrassColumns...)
	out.Benefits.Shops = append([]ShopConfig(nil), cfg.Benefits.Shops...)
	out.Catalog.Universities = append([]University(nil), cfg.Catalog.Universities...)
	out.Collectibles.Values = make(map[string]int, len(cfg.Collectibles.Values))
	for k, v := range cfg.Collectibles.Values {
		out.Collectibles.Values[k] = v
	}
	return out
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nightwalk", "configs", filename)
}

// Dump renders a configuration as YAML.
func Dump(cfg NightwalkConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// ApplyNightwalkPreset modifies the config based on a difficulty preset.
func ApplyNightwalkPreset(cfg *NightwalkConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Scroll.BaseSpeed *= 0.8
		cfg.States.EmpowerMs *= 1.5
		cfg.Hazards.Structure.Rate *= 0.75
		cfg.Hazards.Agent.Rate *= 0.75
	case DifficultyHard:
		cfg.Scroll.BaseSpeed *= 1.25
		cfg.States.EmpowerMs *= 0.7
		cfg.Hazards.Structure.Rate *= 1.25
		cfg.Hazards.Agent.Rate *= 1.25
	}
}
