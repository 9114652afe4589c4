package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseHeli(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultHeliConfig() {
		t.Errorf("embedded YAML and DefaultHeliConfig differ:\n%+v\n%+v", cfg, DefaultHeliConfig())
	}
}

func TestDefaultDurations(t *testing.T) {
	cfg := DefaultHeliConfig()
	if cfg.SpawnInterval() != 2*time.Second {
		t.Errorf("SpawnInterval() = %v, expected 2s", cfg.SpawnInterval())
	}
	if cfg.GameOverDelay() != time.Second {
		t.Errorf("GameOverDelay() = %v, expected 1s", cfg.GameOverDelay())
	}
}

func TestParseHeliOverlaysDefaults(t *testing.T) {
	data := []byte(`
physics:
  gravity: 0.5
obstacles:
  gap_height_px: 200
collision:
  legacy_horizontal_bound: true
`)
	cfg, err := ParseHeli(data)
	if err != nil {
		t.Fatalf("ParseHeli: %v", err)
	}

	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.GapHeightPx != 200 {
		t.Errorf("gap_height_px = %d, expected 200", cfg.Obstacles.GapHeightPx)
	}
	if !cfg.Collision.LegacyHorizontalBound {
		t.Error("legacy_horizontal_bound should be true")
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Lift != -7 {
		t.Errorf("lift = %v, expected default -7", cfg.Physics.Lift)
	}
	if cfg.Playfield.Width != 1200 {
		t.Errorf("playfield.width = %d, expected default 1200", cfg.Playfield.Width)
	}
}

func TestParseHeliEmptyDocument(t *testing.T) {
	cfg, err := ParseHeli(nil)
	if err != nil {
		t.Fatalf("empty document should yield defaults: %v", err)
	}
	if cfg != DefaultHeliConfig() {
		t.Error("empty document should yield defaults")
	}
}

func TestParseHeliRejectsUnknownKeys(t *testing.T) {
	_, err := ParseHeli([]byte("physics:\n  gravty: 1\n"))
	if err == nil {
		t.Fatal("unknown key should be rejected")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HeliConfig)
	}{
		{"zero width", func(c *HeliConfig) { c.Playfield.Width = 0 }},
		{"negative height", func(c *HeliConfig) { c.Playfield.Height = -1 }},
		{"gap taller than playfield", func(c *HeliConfig) { c.Obstacles.GapHeightPx = 600 }},
		{"zero spawn interval", func(c *HeliConfig) { c.Obstacles.SpawnIntervalMS = 0 }},
		{"zero scroll speed", func(c *HeliConfig) { c.Obstacles.ScrollSpeedPx = 0 }},
		{"zero pipe width", func(c *HeliConfig) { c.Obstacles.PipeWidthPx = 0 }},
		{"zero terminal velocity", func(c *HeliConfig) { c.Physics.TerminalVelocity = 0 }},
		{"player taller than playfield", func(c *HeliConfig) { c.Player.Height = 600 }},
		{"negative delay", func(c *HeliConfig) { c.Session.GameOverDelayMS = -5 }},
	}

	if err := DefaultHeliConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHeliConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadHeliCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  scroll_speed_px: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadHeli(path)
	if err != nil {
		t.Fatalf("LoadHeli: %v", err)
	}
	if src != path {
		t.Errorf("source = %q, expected %q", src, path)
	}
	if cfg.Obstacles.ScrollSpeedPx != 9 {
		t.Errorf("scroll_speed_px = %d, expected 9", cfg.Obstacles.ScrollSpeedPx)
	}
}

func TestLoadHeliMissingCustomPath(t *testing.T) {
	_, _, err := LoadHeli(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing custom config should report not-exist, got %v", err)
	}
}

func TestLoadHeliFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, src, err := LoadHeli("")
	if err != nil {
		t.Fatalf("LoadHeli: %v", err)
	}
	if src != EmbeddedSource {
		t.Errorf("source = %q, expected embedded", src)
	}
	if cfg != DefaultHeliConfig() {
		t.Error("embedded config should equal defaults")
	}
}

func TestLoadHeliLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "heli.yaml"), []byte("physics:\n  lift: -9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadHeli("")
	if err != nil {
		t.Fatalf("LoadHeli: %v", err)
	}
	if src != filepath.Join("configs", "heli.yaml") {
		t.Errorf("source = %q, expected configs/heli.yaml", src)
	}
	if cfg.Physics.Lift != -9 {
		t.Errorf("lift = %v, expected -9", cfg.Physics.Lift)
	}
}

func TestResolveAsset(t *testing.T) {
	a := HeliAssets{Dir: "assets"}

	if got := a.ResolveAsset("sprites/heli.png"); got != filepath.Join("assets", "sprites", "heli.png") {
		t.Errorf("relative asset resolved to %q", got)
	}
	if got := a.ResolveAsset(BuiltinFont); got != BuiltinFont {
		t.Errorf("builtin font should be unchanged, got %q", got)
	}
	abs := filepath.Join(string(filepath.Separator), "tmp", "font.ttf")
	if got := a.ResolveAsset(abs); got != abs {
		t.Errorf("absolute path should be unchanged, got %q", got)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "heli.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.8\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case r := <-w.Updates():
			if r.Err != nil {
				// Editors may truncate before writing; wait for a parsable version
				continue
			}
			if r.Config.Physics.Gravity == 0.8 {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestWatcherCloseClosesUpdates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heli.yaml")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok := <-w.Updates(); ok {
		t.Error("Updates should be closed after Close")
	}
	// Second close is a no-op
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
