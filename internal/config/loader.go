package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/balance.yaml
var defaultBalanceYAML []byte

// LoadBalance loads balance tuning.
// Search order: customPath -> ~/.kapellmeister/balance.yaml -> ./configs/balance.yaml -> embedded default
func LoadBalance(customPath string) (Balance, error) {
	var bal Balance

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return bal, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &bal); err != nil {
			return bal, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return bal, nil
	}

	if userPath := userConfigPath("balance.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &bal); err == nil {
				return bal, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/balance.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &bal); err == nil {
			return bal, nil
		}
	}

	if err := yaml.Unmarshal(defaultBalanceYAML, &bal); err != nil {
		return DefaultBalance(), nil // fallback to hardcoded if embed fails
	}
	return bal, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kapellmeister", filename)
}
