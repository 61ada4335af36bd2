package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalid is returned by Validate (via Load) when a loaded value is out
// of range for the field it fills.
var ErrInvalid = errors.New("config: invalid value")

// flagBindings maps each viper/mapstructure key to the cobra flag name that
// fills it — the two don't always match (cmd/pcsched's --timeout flag is
// shorter than its timeout_seconds field) so binding is explicit rather
// than a blanket BindPFlags.
var flagBindings = map[string]string{
	"machines":        "machines",
	"timeout_seconds": "timeout",
	"bound":           "bound",
	"input":           "input",
}

// Config is the runtime configuration for cmd/pcsched's solve command.
type Config struct {
	Machines       int    `mapstructure:"machines"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	Bound          string `mapstructure:"bound"`
	LogLevel       string `mapstructure:"log_level"`
	Input          string `mapstructure:"input"`
}

// Load builds a Config from defaults, an optional pcsched.yaml/json file
// (searched for in the current directory and /etc/pcsched), PCSCHED_-
// prefixed environment variables, and flags, then validates it.
//
// flags may be nil, in which case only the file/env/default layers apply.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("machines", 1)
	v.SetDefault("timeout_seconds", -1)
	v.SetDefault("bound", "fernandez")
	v.SetDefault("log_level", "info")

	v.SetConfigName("pcsched")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/pcsched")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading pcsched config file: %w", err)
		}
	}

	v.SetEnvPrefix("PCSCHED")
	v.AutomaticEnv()

	if flags != nil {
		for viperKey, flagName := range flagBindings {
			if f := flags.Lookup(flagName); f != nil {
				if err := v.BindPFlag(viperKey, f); err != nil {
					return nil, fmt.Errorf("config: binding --%s: %w", flagName, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the fields Load cannot enforce through viper defaults
// alone: Machines must be positive, and Bound must name a mode the solver
// actually understands.
func (c *Config) Validate() error {
	if c.Machines < 1 {
		return fmt.Errorf("%w: machines must be >= 1, got %d", ErrInvalid, c.Machines)
	}
	switch c.Bound {
	case "fernandez", "fujita", "none":
	default:
		return fmt.Errorf("%w: bound must be one of fernandez, fujita, none, got %q", ErrInvalid, c.Bound)
	}

	return nil
}
