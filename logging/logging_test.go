package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natbtree/config"
)

func TestNewJSON(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = "json"
	cfg.LogLevel = "debug"

	var buf bytes.Buffer
	logger, err := NewWithOutput(cfg, &buf)
	require.NoError(t, err)

	treeLog := Module(logger, "tree")
	treeLog.Debug().Str("key", "پ").Msg("inserted")
	out := buf.String()
	assert.Contains(t, out, `"module":"tree"`)
	assert.Contains(t, out, `"key":"پ"`)
	assert.Contains(t, out, `"message":"inserted"`)
}

func TestNewLevelFilter(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	var buf bytes.Buffer
	logger, err := NewWithOutput(cfg, &buf)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "loud"
	_, err := NewWithOutput(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(ConsoleWriter(&buf, false)).With().Timestamp().Logger()
	logger.Info().Int("height", 2).Msg("root split")

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "root split")
	assert.Contains(t, out, "height=2")
}

func TestConsoleFormatForced(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = "console"
	cfg.Color = false

	var buf bytes.Buffer
	logger, err := NewWithOutput(cfg, &buf)
	require.NoError(t, err)
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "INF")
	assert.NotContains(t, buf.String(), `"level"`)
}

func TestFileLogging(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = "json"
	cfg.LogFile = filepath.Join(t.TempDir(), "natbtree.log")

	logger, err := NewWithOutput(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	logger.Info().Msg("to file")

	content, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "to file")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
