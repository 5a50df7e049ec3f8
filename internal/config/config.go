// Package config provides YAML-based configuration loading for the 2048 game,
// its terminal front end, the SSH server and the session leaderboard.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config contains all configuration for the application.
type Config struct {
	Rules   RulesConfig   `yaml:"rules"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
	Log     LogConfig     `yaml:"log"`
}

// RulesConfig defines game rule parameters.
type RulesConfig struct {
	Seed                 int64 `yaml:"seed"`                    // 0 = time-based
	SpawnOnUnchangedMove bool  `yaml:"spawn_on_unchanged_move"` // Spawn even when a move changes nothing
}

// StorageConfig defines the session leaderboard database.
type StorageConfig struct {
	DSN             string `yaml:"dsn"`              // ":memory:" keeps scores for the process lifetime only
	LeaderboardSize int    `yaml:"leaderboard_size"` // Entries shown on the game over screen
}

// SSHConfig defines the SSH server parameters.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"` // Auto-generated at ~/.t2048/host_key when empty
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logger output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = stderr for serve, discarded for play
}

// Validation errors.
var (
	ErrLeaderboardSize = errors.New("config: leaderboard_size must be positive")
	ErrIdleTimeout     = errors.New("config: idle_timeout must be positive")
	ErrEmptyDSN        = errors.New("config: storage dsn must not be empty")
)

// Validate checks the config for values the application cannot run with.
func (c Config) Validate() error {
	if c.Storage.DSN == "" {
		return ErrEmptyDSN
	}
	if c.Storage.LeaderboardSize <= 0 {
		return ErrLeaderboardSize
	}
	if c.SSH.IdleTimeout <= 0 {
		return ErrIdleTimeout
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log level %q: %w", c.Log.Level, err)
	}
	return nil
}
