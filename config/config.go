// Package config loads the solver settings from defaults, an optional
// config file, LPSOLVE_ environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"q.log/lpsolve/simplex"
)

const envPrefix = "LPSOLVE"

const (
	SolverSimplex = "simplex"
	SolverGLPK    = "glpk"
	SolverGonum   = "gonum"

	FormatText = "text"
	FormatMPS  = "mps"
)

type Config struct {
	// Solver selects the engine: the built-in tableau simplex or one of the
	// external solvers.
	Solver string `mapstructure:"solver" validate:"oneof=simplex glpk gonum"`
	// Format of the model file.
	Format string `mapstructure:"format" validate:"oneof=text mps"`
	// Sense of MPS models, which carry no direction.
	Sense         string  `mapstructure:"sense"          validate:"oneof=MAX MIN"`
	MaxIterations int     `mapstructure:"max_iterations" validate:"min=1"`
	Tolerance     float64 `mapstructure:"tolerance"      validate:"gt=0,lt=1"`
	// Quiet disables the per iteration tableau report.
	Quiet bool      `mapstructure:"quiet"`
	Log   LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("solver", SolverSimplex)
	v.SetDefault("format", FormatText)
	v.SetDefault("sense", "MAX")
	v.SetDefault("max_iterations", simplex.DefaultMaxIterations)
	v.SetDefault("tolerance", simplex.DefaultTolerance)
	v.SetDefault("quiet", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// BindFlags maps command line flags onto config keys. Flag names use dashes,
// keys use underscores and dots.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, flag := range map[string]string{
		"solver":         "solver",
		"format":         "format",
		"sense":          "sense",
		"max_iterations": "max-iterations",
		"tolerance":      "tolerance",
		"quiet":          "quiet",
		"log.level":      "log-level",
		"log.format":     "log-format",
	} {
		f := flags.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag %s", flag)
		}
	}
	return nil
}

// Load reads path when it is not empty, applies the environment and
// validates the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	c.Sense = strings.ToUpper(c.Sense)
	if err := validator.New().Struct(&c); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return &c, nil
}
