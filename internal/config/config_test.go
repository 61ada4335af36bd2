package config_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvonhall/pcsched/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Machines)
	assert.Equal(t, -1, cfg.TimeoutSeconds)
	assert.Equal(t, "fernandez", cfg.Bound)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FlagsOverrideDefaults(t *testing.T) {
	flags := pflag.NewFlagSet("solve", pflag.ContinueOnError)
	flags.Int("machines", 1, "")
	flags.String("bound", "fernandez", "")
	require.NoError(t, flags.Set("machines", "4"))
	require.NoError(t, flags.Set("bound", "fujita"))

	cfg, err := config.Load(flags)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Machines)
	assert.Equal(t, "fujita", cfg.Bound)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("PCSCHED_MACHINES", "7")
	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Machines)
}

func TestConfig_ValidateRejectsZeroMachines(t *testing.T) {
	c := config.Config{Machines: 0, Bound: "fernandez"}
	assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
}

func TestConfig_ValidateRejectsUnknownBound(t *testing.T) {
	c := config.Config{Machines: 1, Bound: "not-a-mode"}
	assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
}

func TestConfig_ValidateAcceptsKnownBounds(t *testing.T) {
	for _, b := range []string{"fernandez", "fujita", "none"} {
		c := config.Config{Machines: 1, Bound: b}
		assert.NoError(t, c.Validate(), "bound=%s", b)
	}
}
