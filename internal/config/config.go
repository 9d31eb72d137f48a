package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Simulator holds all configuration for the hostile simulator.
type Simulator struct {
	LogLevel     string        `yaml:"log_level"`     // debug, info, warn, error
	TickInterval time.Duration `yaml:"tick_interval"` // simulation step
	Workers      int           `yaml:"workers"`       // parallel ticks (0 = sequential)

	// Database is optional: when enabled, profiles stored in the
	// hostile_profiles table override the ones below by name.
	Database DatabaseConfig `yaml:"database"`

	Profiles map[string]Profile `yaml:"profiles"`
	Scene    Scene              `yaml:"scene"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultSimulator returns Simulator config with sensible defaults:
// one ranged and one melee hostile hunting a patrolling player.
func DefaultSimulator() Simulator {
	return Simulator{
		LogLevel:     "info",
		TickInterval: 50 * time.Millisecond,
		Workers:      4,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "hostile",
			Password: "hostile",
			DBName:   "hostile",
			SSLMode:  "disable",
		},
		Profiles: map[string]Profile{
			"laser_drone": DefaultProfile(),
			"grunt":       DefaultMeleeProfile(),
		},
		Scene: DefaultScene(),
	}
}

// LoadSimulator loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every profile and that scene spawns reference known profiles.
func (c Simulator) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	}
	for name, p := range c.Profiles {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}
	for i, h := range c.Scene.Hostiles {
		if _, ok := c.Profiles[h.Profile]; !ok && !c.Database.Enabled {
			return fmt.Errorf("scene hostile %d: unknown profile %q", i, h.Profile)
		}
	}
	return nil
}

// ParseLogLevel maps the config spelling to a slog level (info by default).
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
