package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{EnvNozzleDiameter, EnvFilamentDiameter, EnvLogLevel, EnvDecimals} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Zero(t, cfg.NozzleDiameter)
	assert.Zero(t, cfg.FilamentDiameter)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultDecimals, cfg.Decimals)
}

func TestFromEnv_Values(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvNozzleDiameter, "0.4")
	t.Setenv(EnvFilamentDiameter, " 1.75 ")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvDecimals, "2")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.InDelta(t, 0.4, cfg.NozzleDiameter, 1e-12)
	assert.InDelta(t, 1.75, cfg.FilamentDiameter, 1e-12)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2, cfg.Decimals)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"nozzle not a number", EnvNozzleDiameter, "wide"},
		{"nozzle negative", EnvNozzleDiameter, "-0.4"},
		{"filament zero", EnvFilamentDiameter, "0"},
		{"decimals not an integer", EnvDecimals, "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv(EnvNozzleDiameter))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvNozzleDiameter+"=0.6\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.InDelta(t, 0.6, cfg.NozzleDiameter, 1e-12)
}
