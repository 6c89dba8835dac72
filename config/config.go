package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultSecret is the development signing key. Production refuses it.
const DefaultSecret = "your-secret-key"

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

// Config holds application configuration
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

type ServerConfig struct {
	Port            string        `koanf:"port" validate:"required,numeric"`
	Env             string        `koanf:"env" validate:"oneof=development production test"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

type DatabaseConfig struct {
	URL         string `koanf:"url" validate:"required"`
	SeedOnStart bool   `koanf:"seed_on_start"`
}

type SecurityConfig struct {
	SecretKey     string        `koanf:"secret_key" validate:"required"`
	TokenTTL      time.Duration `koanf:"token_ttl" validate:"gt=0"`
	AdminUsername string        `koanf:"admin_username" validate:"required,max=80"`
	AdminPassword string        `koanf:"admin_password" validate:"required"`
	CORSOrigins   []string      `koanf:"cors_origins" validate:"dive,url|eq=*"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// IsProduction reports whether the server runs with production safeguards.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "5000",
			Env:             "development",
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			URL:         "sqlite:///tracker.db",
			SeedOnStart: true,
		},
		Security: SecurityConfig{
			SecretKey:     DefaultSecret,
			TokenTTL:      24 * time.Hour,
			AdminUsername: "admin",
			AdminPassword: "admin123",
			CORSOrigins: []string{
				"http://localhost:8000",
				"https://employee-tracker-frontend.vercel.app",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// envMappings maps environment variable names (lower-cased) to config keys.
var envMappings = map[string]string{
	"port":                    "server.port",
	"env":                     "server.env",
	"shutdown_timeout":        "server.shutdown_timeout",
	"database_url":            "database.url",
	"sqlalchemy_database_uri": "database.url",
	"seed_on_start":           "database.seed_on_start",
	"secret_key":              "security.secret_key",
	"jwt_secret":              "security.secret_key",
	"token_ttl":               "security.token_ttl",
	"admin_username":          "security.admin_username",
	"admin_password":          "security.admin_password",
	"cors_origins":            "security.cors_origins",
	"log_level":               "logging.level",
	"log_format":              "logging.format",
}

func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	// Unknown variables are dropped.
	return ""
}

// listKeys hold comma-separated lists when set through the environment.
var listKeys = map[string]bool{
	"security.cors_origins": true,
}

func envValueFunc(key, value string) (string, interface{}) {
	mapped := envTransformFunc(key)
	if mapped == "" || !listKeys[mapped] {
		return mapped, value
	}
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return mapped, items
}

// Load reads configuration in layers: defaults, then an optional YAML file,
// then .env and the process environment.
func Load() (*Config, error) {
	// Load environment variables
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envValueFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

var validate = validator.New()

// Validate checks field constraints and production safeguards.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.IsProduction() && c.Security.SecretKey == DefaultSecret {
		return fmt.Errorf("SECRET_KEY must be set in production")
	}
	return nil
}
