package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads
const EnvPrefix = "VOLUNTEER"

// Config holds all application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Matching MatchingConfig `mapstructure:"matching"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

// LogConfig holds structured logging settings
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// MatchingConfig selects the opportunity matching strategy
type MatchingConfig struct {
	Strategy string `mapstructure:"strategy" validate:"required,oneof=interest"`
}

// MetricsConfig toggles the Prometheus application observer
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SeedConfig holds the default seed file location
type SeedConfig struct {
	Path string `mapstructure:"path"`
}

var defaults = map[string]interface{}{
	"log.level":         "info",
	"log.format":        "text",
	"matching.strategy": "interest",
	"metrics.enabled":   false,
	"seed.path":         "",
}

// Load reads configuration from an optional config file and from
// VOLUNTEER_* environment variables, which take precedence. An empty path
// skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks that all configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		env := envName(fe.Namespace())
		switch fe.Tag() {
		case "required":
			errs = append(errs, fmt.Errorf("%s is required", env))
		case "oneof":
			errs = append(errs, fmt.Errorf("%s must be one of [%s], got '%v'", env, fe.Param(), fe.Value()))
		default:
			errs = append(errs, fmt.Errorf("%s failed %s validation", env, fe.Tag()))
		}
	}
	return errors.Join(errs...)
}

// envName turns a validator namespace such as "Config.log.level" into the
// matching environment variable name.
func envName(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return EnvPrefix + "_" + strings.ToUpper(strings.Join(parts, "_"))
}
