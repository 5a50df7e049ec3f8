package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Rules: RulesConfig{
			Seed:                 0,
			SpawnOnUnchangedMove: false,
		},
		Storage: StorageConfig{
			DSN:             ":memory:",
			LeaderboardSize: 10,
		},
		SSH: SSHConfig{
			Address:     ":23234",
			HostKeyPath: "",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}
