package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME and the working directory at empty temp dirs so only
// the embedded defaults are visible.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := DefaultConfig()
	if cfg != want {
		t.Errorf("embedded default = %+v, want %+v", cfg, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
rules:
  seed: 99
  spawn_on_unchanged_move: true
ssh:
  idle_timeout: 5m
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Rules.Seed != 99 || !cfg.Rules.SpawnOnUnchangedMove {
		t.Errorf("rules = %+v, want seed 99 and spawn_on_unchanged_move", cfg.Rules)
	}
	if cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("idle_timeout = %v, want 5m", cfg.SSH.IdleTimeout)
	}
	// Unset sections keep their defaults
	if cfg.Storage.DSN != ":memory:" || cfg.Storage.LeaderboardSize != 10 {
		t.Errorf("storage = %+v, want defaults", cfg.Storage)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing custom path should fail")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "storage:\n  leaderboard_size: 0\n")

	_, err := Load(path)
	if !errors.Is(err, ErrLeaderboardSize) {
		t.Errorf("Load error = %v, want ErrLeaderboardSize", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "t2048.yaml"), "rules:\n  seed: 2\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Rules.Seed != 2 {
		t.Errorf("local config seed = %d, want 2", cfg.Rules.Seed)
	}

	// User config wins over the local directory
	writeFile(t, filepath.Join(home, ".t2048", "config.yaml"), "rules:\n  seed: 1\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Rules.Seed != 1 {
		t.Errorf("user config seed = %d, want 1", cfg.Rules.Seed)
	}
}

func TestLoadSkipsBrokenUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".t2048", "config.yaml"), "rules: [not, a, map")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("broken user config should fall through to defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero leaderboard", func(c *Config) { c.Storage.LeaderboardSize = 0 }, false},
		{"empty dsn", func(c *Config) { c.Storage.DSN = "" }, false},
		{"zero idle timeout", func(c *Config) { c.SSH.IdleTimeout = 0 }, false},
		{"unknown log level", func(c *Config) { c.Log.Level = "chatty" }, false},
		{"debug level", func(c *Config) { c.Log.Level = "debug" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.t2048/host_key")
	if err != nil {
		t.Fatalf("ExpandHome failed: %v", err)
	}
	if want := filepath.Join(home, ".t2048", "host_key"); got != want {
		t.Errorf("ExpandHome = %q, want %q", got, want)
	}

	if got, _ := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome should leave absolute paths alone, got %q", got)
	}
}
