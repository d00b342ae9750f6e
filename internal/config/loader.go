package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadInvaders loads the simulation configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.{yaml,toml} ->
// ./configs/invaders.{yaml,toml} -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. The result is validated before it is returned.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	cfg, err := loadInvaders(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadInvaders(customPath string) (InvadersConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("invaders.yaml"),
		userConfigPath("invaders.toml"),
		filepath.Join("configs", "invaders.yaml"),
		filepath.Join("configs", "invaders.toml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decode("invaders.yaml", defaultInvadersYAML)
	if err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data over the defaults, picking the format by extension.
func decode(path string, data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Encode writes cfg to w as "yaml" or "toml".
func Encode(w io.Writer, cfg InvadersConfig, format string) error {
	switch strings.ToLower(format) {
	case "yaml", "yml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("config: encode yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("config: encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("config: unknown format %q", format)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}
