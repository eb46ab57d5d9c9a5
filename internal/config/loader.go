package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory name under $HOME.
const AppDir = ".termproject"

// LoadVortex loads the Vortex configuration and applies a difficulty preset.
// Search order: customPath -> ~/.termproject/configs/vortex.yaml -> ./configs/vortex.yaml -> embedded default
func LoadVortex(customPath string, preset DifficultyPreset) (VortexConfig, error) {
	cfg, err := load(customPath, "vortex", DefaultVortexConfig)
	if err != nil {
		return cfg, err
	}
	ApplyVortexPreset(&cfg, preset)
	return cfg, nil
}

// LoadNumbers loads the number puzzle configuration.
// Search order: customPath -> ~/.termproject/configs/numbers.yaml -> ./configs/numbers.yaml -> embedded default
func LoadNumbers(customPath string) (NumbersConfig, error) {
	return load(customPath, "numbers", DefaultNumbersConfig)
}

// LoadTrivia loads the quiz configuration and country bank.
// Search order: customPath -> ~/.termproject/configs/trivia.yaml -> ./configs/trivia.yaml -> embedded default
func LoadTrivia(customPath string) (TriviaConfig, error) {
	return load(customPath, "trivia", DefaultTriviaConfig)
}

// load resolves a game config. Only an explicit path reports errors; the
// other sources fall through to the next one on any failure.
// Files are decoded on top of the defaults, so omitted keys keep their default.
func load[T any](customPath, gameID string, defaults func() T) (T, error) {
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := defaults()
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}
