// SPDX-License-Identifier: MIT

// Package config resolves lvfuzzy runtime settings from defaults, an
// optional config file (TOML or YAML) and LVFUZZY_* environment variables,
// in ascending precedence, using github.com/spf13/viper.
//
//	model       = "spares.yaml"  # model document; "" selects the embedded spares model
//	resolution  = 0.01           # grid override for every domain; 0 keeps the document
//	defuzzifier = "centroid"     # overrides the document when set
//	implication = ""             # "clip" or "scale"; overrides the document when set
//
//	[log]
//	json  = false
//	level = "info"
//
// Environment keys replace dots with underscores: LVFUZZY_LOG_LEVEL=debug.
package config

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvfuzzy/logger"
	"github.com/katalvlaran/lvfuzzy/model"
	"github.com/katalvlaran/lvfuzzy/rules"
)

// EnvPrefix is prepended to every environment key.
const EnvPrefix = "LVFUZZY"

// ErrInvalid indicates a setting with an out-of-range or unknown value.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the resolved runtime configuration.
type Config struct {
	Model       string  `mapstructure:"model"`
	Resolution  float64 `mapstructure:"resolution"`
	Defuzzifier string  `mapstructure:"defuzzifier"`
	Implication string  `mapstructure:"implication"`
	Log         Log     `mapstructure:"log"`
}

// Log configures the zap logger.
type Log struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// SetDefaults registers every key, which also makes each one reachable
// through AutomaticEnv during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("model", "")
	v.SetDefault("resolution", 0.0)
	v.SetDefault("defuzzifier", "")
	v.SetDefault("implication", "")
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}

// NewViper returns a Viper instance with defaults and environment binding.
// When path is non-empty it is set as the config file; the format follows
// the extension.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	}

	return v
}

// Load reads the config file at path (skipped when path is "") and returns
// the validated configuration.
func Load(path string) (*Config, error) {
	v := NewViper(path)
	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %q", path)
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates a prepared Viper instance, e.g. one
// with command-line flags bound on top.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks value ranges and method names.
func (c *Config) Validate() error {
	if c.Resolution < 0 || math.IsNaN(c.Resolution) || math.IsInf(c.Resolution, 0) {
		return errors.Wrapf(ErrInvalid, "resolution %v must be finite and ≥ 0", c.Resolution)
	}
	if _, err := rules.ParseDefuzzifier(c.Defuzzifier); err != nil {
		return errors.Mark(errors.WithHint(err, "use centroid, bisector, mom, som or lom"), ErrInvalid)
	}
	if _, err := rules.ParseImplication(c.Implication); err != nil {
		return errors.Mark(errors.WithHint(err, "use clip or scale"), ErrInvalid)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return errors.Mark(err, ErrInvalid)
	}

	return nil
}

// BuildOptions validates c and translates the overrides into model build
// options. Empty method names leave the document's choice in place.
// Errors: ErrInvalid, as returned by Validate.
func (c *Config) BuildOptions(extra ...rules.Option) ([]model.BuildOption, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var ro []rules.Option
	if c.Defuzzifier != "" {
		d, err := rules.ParseDefuzzifier(c.Defuzzifier)
		if err != nil {
			return nil, errors.Mark(err, ErrInvalid)
		}
		ro = append(ro, rules.WithDefuzzifier(d))
	}
	if c.Implication != "" {
		i, err := rules.ParseImplication(c.Implication)
		if err != nil {
			return nil, errors.Mark(err, ErrInvalid)
		}
		ro = append(ro, rules.WithImplication(i))
	}
	ro = append(ro, extra...)

	opts := []model.BuildOption{model.WithRuleOptions(ro...)}
	if c.Resolution > 0 {
		opts = append(opts, model.WithResolution(c.Resolution))
	}

	return opts, nil
}

// OpenModel builds the configured model, falling back to the embedded
// spares model when no path is set. A Config that fails Validate is
// rejected before anything is loaded.
func (c *Config) OpenModel(extra ...rules.Option) (*model.Model, error) {
	opts, err := c.BuildOptions(extra...)
	if err != nil {
		return nil, err
	}
	if c.Model == "" {
		return model.Spares(opts...)
	}

	return model.Load(c.Model, opts...)
}
