package config

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config defines dashboard configuration.
type Config struct {
	DB    DBConfig    `yaml:"db"`
	Log   LogConfig   `yaml:"log"`
	Admin AdminConfig `yaml:"admin"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// AdminConfig holds the static shared secret for the admin login. The
// password is compared verbatim, never hashed.
type AdminConfig struct {
	Password string `yaml:"password"`
}

// Validate checks the assembled configuration.
func (c Config) Validate() error {
	if err := validation.ValidateStruct(&c.DB,
		validation.Field(&c.DB.Path, validation.Required),
	); err != nil {
		return fmt.Errorf("db: %w", err)
	}
	if err := validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
	); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := validation.ValidateStruct(&c.Admin,
		validation.Field(&c.Admin.Password, validation.Required),
	); err != nil {
		return fmt.Errorf("admin: %w", err)
	}
	return nil
}

// Load reads configuration from an optional YAML file and environment
// variables, in that order, on top of the defaults.
func Load() (Config, error) {
	cfg := Config{
		DB: DBConfig{
			Path: "dashboard.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Admin: AdminConfig{
			Password: "admin123",
		},
	}

	if path := os.Getenv("DASHBOARD_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("DASHBOARD_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("DASHBOARD_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if password := os.Getenv("DASHBOARD_ADMIN_PASSWORD"); password != "" {
		cfg.Admin.Password = password
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
