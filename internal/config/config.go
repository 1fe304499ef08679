// Package config loads the godex server configuration from YAML
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/godex/internal/errors"
)

// EnvPath names the environment variable holding the config file path
const EnvPath = "GODEX_CONFIG"

// DefaultPath is used when neither a flag nor EnvPath names a file
const DefaultPath = "config/godex.yaml"

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all configuration for the godex server
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Catalog CatalogConfig `yaml:"catalog"`
	Gym     GymConfig     `yaml:"gym"`
}

// ServerConfig holds the gRPC listener settings
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig selects the slog handler
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// CatalogConfig points at an on-disk catalog. An empty Dir selects the
// catalog embedded in the binary.
type CatalogConfig struct {
	Dir string `yaml:"dir"`
}

// GymConfig holds roster session settings. A negative SessionTTL keeps
// sessions until they are deleted.
type GymConfig struct {
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            50051,
			ShutdownTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatText,
		},
		Gym: GymConfig{
			SessionTTL: 30 * time.Minute,
		},
	}
}

// ResolvePath picks the config path: the flag value, then EnvPath, then
// DefaultPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads a YAML config over the defaults. A missing file yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.WrapWithCode(err, errors.CodeInvalidArgument, fmt.Sprintf("failed to parse config %s", path))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, nil
}

// Validate checks every field against its allowed values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	if c.Server.ShutdownTimeout <= 0 {
		vb.Field("server.shutdown_timeout", "must be positive")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		vb.Field("log.level", err.Error())
	}
	errors.ValidateEnum("log.format", c.Log.Format, []string{LogFormatText, LogFormatJSON}, vb)
	if c.Catalog.Dir != "" {
		if info, err := os.Stat(c.Catalog.Dir); err != nil || !info.IsDir() {
			vb.Fieldf("catalog.dir", "%s is not a directory", c.Catalog.Dir)
		}
	}

	return vb.Build()
}

// Address is the listen address for the gRPC server
func (s ServerConfig) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}

// SlogLevel returns the configured level, falling back to info
func (l LogConfig) SlogLevel() slog.Level {
	level, err := parseLevel(l.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewLogger builds a logger writing to w in the configured format
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown level %q", s)
	}
	return level, nil
}
