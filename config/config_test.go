package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natbtree/diagram"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "natbtree.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("FileNotFound", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		require.NoError(t, err)
		assert.Equal(t, defaultConfig, *cfg)
	})

	t.Run("ValidConfig", func(t *testing.T) {
		path := writeConfig(t, `{
			"log_level": "debug",
			"log_format": "json",
			"log_file": "logs/natbtree.log",
			"color": false,
			"direction": "rtl",
			"mirror": true,
			"key_mode": "text",
			"http_address": ":9090",
			"seed_records": "50"
		}`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "logs/natbtree.log", cfg.LogFile)
		assert.False(t, cfg.Color)
		assert.True(t, cfg.Mirror)
		assert.Equal(t, KeyModeText, cfg.KeyMode)
		assert.Equal(t, ":9090", cfg.HTTPAddress)
		assert.Equal(t, 50, cfg.SeedRecords)
		assert.Equal(t, defaultConfig.LogMaxSizeMB, cfg.LogMaxSizeMB)

		dir, err := cfg.ParsedDirection()
		require.NoError(t, err)
		assert.Equal(t, diagram.RTL, dir)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		_, err := Load(writeConfig(t, `{"log_level": "debug"`))
		assert.Error(t, err)
	})

	t.Run("UnknownField", func(t *testing.T) {
		_, err := Load(writeConfig(t, `{"log_levle": "debug"}`))
		assert.Error(t, err)
	})

	t.Run("InvalidKeyMode", func(t *testing.T) {
		_, err := Load(writeConfig(t, `{"key_mode": "float"}`))
		assert.ErrorIs(t, err, ErrInvalidKeyMode)
	})

	t.Run("InvalidDirection", func(t *testing.T) {
		_, err := Load(writeConfig(t, `{"direction": "sideways"}`))
		assert.ErrorIs(t, err, diagram.ErrInvalidDirection)
	})

	t.Run("InvalidLogFormat", func(t *testing.T) {
		_, err := Load(writeConfig(t, `{"log_format": "xml"}`))
		assert.ErrorIs(t, err, ErrInvalidLogFormat)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, writeConfig(t, `{"http_address": ":7000"}`))
	t.Setenv(EnvLogLevel, "WARN")
	t.Setenv(EnvDirection, "ltr")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.HTTPAddress)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "ltr", cfg.Direction)

	t.Setenv(EnvAddress, ":7001")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7001", cfg.HTTPAddress)
}

func TestParseKeyMode(t *testing.T) {
	m, err := ParseKeyMode(" INT ")
	require.NoError(t, err)
	assert.Equal(t, KeyModeInt, m)

	_, err = ParseKeyMode("")
	assert.ErrorIs(t, err, ErrInvalidKeyMode)
}
