package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "euclid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, Config{
		LogLevel:    "info",
		LogEncoding: "console",
		Precision:   4,
		Layout:      LayoutRows,
	}, *c)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "log_level: debug\nprecision: 2\nlayout: column-major\ndegrees: true\n")
	c, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "debug", c.LogLevel)
	require.Equal(t, 2, c.Precision)
	require.Equal(t, LayoutColumnMajor, c.Layout)
	require.True(t, c.Degrees)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "precision: 2\n")
	t.Setenv("EUCLID_PRECISION", "6")
	t.Setenv("EUCLID_LOG_LEVEL", "warn")
	c, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, 6, c.Precision)
	require.Equal(t, "warn", c.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(viper.New(), writeConfig(t, "layout: diagonal\n"))
	require.Error(t, err)

	_, err = Load(viper.New(), writeConfig(t, "precision: -1\n"))
	require.Error(t, err)

	_, err = Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
