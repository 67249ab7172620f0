// Package config provides configuration loading from YAML files.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osa030/tweenbox/internal/domain/curve"
)

// Config represents the application configuration.
type Config struct {
	Server ServerConfig  `yaml:"server"`
	Engine EngineConfig  `yaml:"engine"`
	Show   ShowConfig    `yaml:"show"`
	Curves []CurveConfig `yaml:"curves" validate:"dive"`
}

// ServerConfig represents the frame feed server configuration.
type ServerConfig struct {
	Addr           string `yaml:"addr" default:":8080"`
	WriteTimeoutMs int    `yaml:"write_timeout_ms" default:"5000" validate:"gte=100,lte=60000"`
}

// EngineConfig represents tween engine configuration.
type EngineConfig struct {
	FPS       int     `yaml:"fps" default:"60" validate:"gte=1,lte=240"`
	TimeScale float64 `yaml:"time_scale" default:"1" validate:"gte=0"`
}

// ShowConfig represents the show to load on startup.
type ShowConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// CurveConfig represents a named keyframed curve to register at startup.
type CurveConfig struct {
	Name string           `yaml:"name" validate:"required"`
	Keys []curve.Keyframe `yaml:"keys" validate:"required,min=2"`
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("TWEENBOX_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("TWEENBOX_SHOW_PATH"); v != "" {
		c.Show.Path = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}

	if err := c.validateCurves(); err != nil {
		return err
	}

	return nil
}

// validateCurves checks that configured curve names are unique and do
// not shadow a built-in curve. Key content is validated when the curve
// is constructed.
func (c *Config) validateCurves() error {
	seen := make(map[string]bool, len(c.Curves))
	for _, cc := range c.Curves {
		if seen[cc.Name] {
			return errors.Newf("duplicate curve name: %s", cc.Name)
		}
		seen[cc.Name] = true

		if _, err := curve.Lookup(cc.Name); err == nil {
			return errors.Newf("curve name %s shadows a built-in curve", cc.Name)
		}
	}
	return nil
}

// RegisterCurves constructs the configured keyframed curves and
// registers them in the curve registry.
func (c *Config) RegisterCurves() error {
	for _, cc := range c.Curves {
		kf, err := curve.NewKeyframed(cc.Keys)
		if err != nil {
			return errors.Wrapf(err, "invalid curve %s", cc.Name)
		}
		curve.Register(cc.Name, kf)
	}
	return nil
}
