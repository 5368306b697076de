package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/logentry-manager/config"
)

func TestNewWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "app.log")
	cfg := &config.Config{AppEnv: "production", LogLevel: "info", LogFilePath: logPath, LogMaxSize: 1}

	logger, err := New(cfg)
	require.NoError(t, err)

	logger.Info("entry created")
	logger.Debug("below threshold")
	_ = logger.Sync()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "entry created")
	assert.NotContains(t, string(data), "below threshold")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&config.Config{AppEnv: "local", LogLevel: "chatty"})
	assert.Error(t, err)
}
