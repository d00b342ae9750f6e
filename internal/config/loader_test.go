package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode("invaders.yaml", defaultInvadersYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultInvadersConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultInvadersConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoadInvadersPartialYAML(t *testing.T) {
	path := writeFile(t, "custom.yaml", "defender:\n  lives: 5\nfleet:\n  max_bombs: 1\n")

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if cfg.Defender.Lives != 5 {
		t.Errorf("Defender.Lives = %d, expected 5", cfg.Defender.Lives)
	}
	if cfg.Fleet.MaxBombs != 1 {
		t.Errorf("Fleet.MaxBombs = %d, expected 1", cfg.Fleet.MaxBombs)
	}
	if cfg.Defender.Step != 20 {
		t.Errorf("untouched Defender.Step = %d, expected default 20", cfg.Defender.Step)
	}
}

func TestLoadInvadersTOML(t *testing.T) {
	path := writeFile(t, "custom.toml", "[scale]\nspeed = 1.5\n\n[timing]\ntick_ms = 15\n")

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if cfg.Scale.Speed != 1.5 || cfg.Timing.TickMs != 15 {
		t.Errorf("TOML overrides not applied: speed=%v tick=%d", cfg.Scale.Speed, cfg.Timing.TickMs)
	}
	if cfg.Fleet.Columns != 11 {
		t.Errorf("Fleet.Columns = %d, expected default 11", cfg.Fleet.Columns)
	}
}

func TestLoadInvadersErrors(t *testing.T) {
	if _, err := LoadInvaders(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadInvaders() with missing file should fail")
	}

	bad := writeFile(t, "bad.yaml", "fleet: [not, a, map")
	if _, err := LoadInvaders(bad); err == nil {
		t.Error("LoadInvaders() with malformed YAML should fail")
	}

	invalid := writeFile(t, "invalid.yaml", "fleet:\n  rows: 2\n")
	_, err := LoadInvaders(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadInvaders() with mismatched row kinds = %v, expected ErrInvalid", err)
	}
}

func TestLoadInvadersSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".invaders", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "invaders.toml"), []byte("[defender]\nlives = 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if cfg.Defender.Lives != 9 {
		t.Errorf("user config not picked up, lives = %d", cfg.Defender.Lives)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
	}{
		{"zero scale", func(c *InvadersConfig) { c.Scale.Image = 0 }},
		{"zero speed", func(c *InvadersConfig) { c.Scale.Speed = 0 }},
		{"negative speed", func(c *InvadersConfig) { c.Scale.Speed = -1.5 }},
		{"negative start delay", func(c *InvadersConfig) { c.Timing.StartDelayMs = -1 }},
		{"no bombs", func(c *InvadersConfig) { c.Fleet.MaxBombs = 0 }},
		{"unknown kind", func(c *InvadersConfig) { c.Fleet.RowKinds[2] = "ufo" }},
		{"negative playfield", func(c *InvadersConfig) { c.Playfield.Width = -10 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestEncodeTOMLLoadsBack(t *testing.T) {
	cfg := DefaultInvadersConfig()
	cfg.Fleet.DropY = 25

	var buf bytes.Buffer
	if err := Encode(&buf, cfg, "toml"); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	path := writeFile(t, "dump.toml", buf.String())

	loaded, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("loaded %+v, expected %+v", loaded, cfg)
	}

	if err := Encode(&buf, cfg, "ini"); err == nil {
		t.Error("Encode() with unknown format should fail")
	}
}
