package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)
	require.Equal(t, "simulation-container", cfg.Container)
	require.Equal(t, 5, cfg.Width)
	require.Equal(t, 5, cfg.Height)
	require.Equal(t, 5, cfg.Depth)
	require.Equal(t, 60, cfg.Hz)
	require.True(t, cfg.HUD)
	require.False(t, cfg.Headless)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"LATTICE_CONTAINER": "viewer",
		"LATTICE_WIDTH":     "2",
		"LATTICE_HEADLESS":  "true",
		"LATTICE_TICKS":     "10",
	})
	require.NoError(t, err)
	require.Equal(t, "viewer", cfg.Container)
	require.Equal(t, 2, cfg.Width)
	require.True(t, cfg.Headless)
	require.Equal(t, uint64(10), cfg.Ticks)
}

func TestLoadFromRejectsMalformedValues(t *testing.T) {
	_, err := LoadFrom(map[string]string{"LATTICE_WIDTH": "five"})
	require.Error(t, err)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{"LATTICE_DEPTH": "7"})
	require.NoError(t, err)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-width", "3", "-container", "main"}))

	require.Equal(t, 3, cfg.Width)
	require.Equal(t, 7, cfg.Depth)
	require.Equal(t, "main", cfg.Container)
}

func TestValidate(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	bad := cfg
	bad.Container = ""
	bad.Width = -1
	bad.Hz = 0
	bad.Profile = "trace"
	err = bad.Validate()
	require.Error(t, err)
	require.ErrorContains(t, err, "container id is required")
	require.ErrorContains(t, err, "must not be negative")
	require.ErrorContains(t, err, "hz 0")
	require.ErrorContains(t, err, `unknown profile "trace"`)

	zero := cfg
	zero.Width, zero.Height, zero.Depth = 0, 0, 0
	require.NoError(t, zero.Validate())
}

func TestValidateBoundsLatticeSize(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	huge := cfg
	huge.Width, huge.Height, huge.Depth = 1<<20, 1<<20, 1<<21
	require.ErrorContains(t, huge.Validate(), "exceeds")

	big := cfg
	big.Width, big.Height, big.Depth = 2000, 2000, 2000
	require.ErrorContains(t, big.Validate(), "exceeds")

	edge := cfg
	edge.Width, edge.Height, edge.Depth = 128, 128, 64 // exactly MaxAtoms
	require.NoError(t, edge.Validate())
	edge.Depth++
	require.Error(t, edge.Validate())
}
