package shared

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, log.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, log.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, log.InfoLevel, ParseLevel("chatty"))
}

func TestSetupFileLogger(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chipstack.log")
	logger, closer, err := SetupFileLogger(path, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "winnings", 100)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
	assert.Contains(t, string(data), "winnings=100")

	_, _, err = SetupFileLogger(filepath.Join(t.TempDir(), "missing", "x.log"), "info")
	require.Error(t, err)
}
