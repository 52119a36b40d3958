package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix namespaces every environment variable read by Load.
	EnvPrefix = "COURSEHUB_"
	// ConfigPathEnvVar overrides the YAML config file location.
	ConfigPathEnvVar = "COURSEHUB_CONFIG"
)

// DefaultConfigPaths are searched in order when ConfigPathEnvVar is unset.
var DefaultConfigPaths = []string{
	"coursehub.yaml",
	"coursehub.yml",
}

// ClientConfig holds settings for the backend API client.
type ClientConfig struct {
	// BaseURL includes the /api prefix, e.g. http://localhost:8080/api.
	BaseURL   string        `koanf:"base_url" validate:"required,url"`
	Timeout   time.Duration `koanf:"timeout" validate:"gte=0"`
	UserAgent string        `koanf:"user_agent"`
}

// ProxyConfig holds settings for the development reverse proxy.
type ProxyConfig struct {
	Port           string        `koanf:"port" validate:"required,numeric"`
	Target         string        `koanf:"target" validate:"required,url"`
	ChangeOrigin   bool          `koanf:"change_origin"`
	APITimeout     time.Duration `koanf:"api_timeout" validate:"gte=0"`
	UploadsTimeout time.Duration `koanf:"uploads_timeout" validate:"gte=0"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// TracingConfig toggles OpenTelemetry tracing. Exporter details come from the
// standard OTEL_* environment variables.
type TracingConfig struct {
	Enabled     bool   `koanf:"enabled"`
	ServiceName string `koanf:"service_name" validate:"required"`
}

// AppConfig is the centralized configuration struct for both binaries.
type AppConfig struct {
	Client  ClientConfig  `koanf:"client"`
	Proxy   ProxyConfig   `koanf:"proxy"`
	Logging LoggingConfig `koanf:"logging"`
	Tracing TracingConfig `koanf:"tracing"`
}

// Defaults returns the built-in configuration. The proxy defaults mirror the
// frontend dev server: port 5173 in front of a backend on localhost:8080, with a
// five minute /api timeout because the first recommendation model build is slow.
func Defaults() *AppConfig {
	return &AppConfig{
		Client: ClientConfig{
			BaseURL:   "http://localhost:8080/api",
			Timeout:   0,
			UserAgent: "coursehub/1.0",
		},
		Proxy: ProxyConfig{
			Port:           "5173",
			Target:         "http://localhost:8080",
			ChangeOrigin:   true,
			APITimeout:     5 * time.Minute,
			UploadsTimeout: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "coursehub",
		},
	}
}

// Load reads configuration in three layers: defaults, then an optional YAML file,
// then COURSEHUB_* environment variables. A .env file can be auto-loaded by importing
// _ "github.com/joho/godotenv/autoload" in main; real environment variables take precedence.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &AppConfig{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every section against its validate tags.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// envKey maps COURSEHUB_CLIENT_BASE_URL to client.base_url: the first segment after
// the prefix names the section, the rest is the field.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + field
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
