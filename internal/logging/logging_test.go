package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, cleanup, err := New(Options{})
	require.NoError(t, err)
	defer cleanup()

	assert.False(t, logger.Core().Enabled(-1))
	logger.Info("dropped")
}

func TestNewWritesJSONWithSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sweetnote.log")

	logger, cleanup, err := New(Options{Path: path, Verbose: true})
	require.NoError(t, err)
	logger.Debug("transition")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "transition", entry["msg"])
	session, ok := entry["session"].(string)
	require.True(t, ok, "session field missing: %v", entry)
	_, err = uuid.Parse(session)
	assert.NoError(t, err)
}

func TestNewSkipsDebugUnlessVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweetnote.log")

	logger, cleanup, err := New(Options{Path: path})
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}
