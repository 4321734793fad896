package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Config{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestNewWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unties.log")
	logger, err := New(Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Debug("registered unit", zap.String("symbol", "m"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.Contains(t, line, `"msg":"registered unit"`)
	assert.Contains(t, line, `"symbol":"m"`)
	assert.Contains(t, line, `"timestamp"`)
}

func TestLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unties.log")
	logger, err := New(Config{Level: "warn", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestInitialize(t *testing.T) {
	previous := Logger
	t.Cleanup(func() { Set(previous) })

	path := filepath.Join(t.TempDir(), "unties.log")
	require.NoError(t, Initialize(Config{Level: "info", Format: "json", Output: path}))
	Named("registry").Info("registry frozen")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"logger":"registry"`)

	assert.Error(t, Initialize(Config{Level: "loud"}))
}

func TestSetAndNamed(t *testing.T) {
	previous := Logger
	t.Cleanup(func() { Set(previous) })

	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))

	Named("catalog").Info("catalog loaded")
	Named("unitfile").Warn("unit file rejected")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "catalog", entries[0].LoggerName)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)

	Set(nil)
	assert.NotNil(t, Logger)
	Named("cli").Info("dropped")
	assert.Equal(t, 2, logs.Len())
}
