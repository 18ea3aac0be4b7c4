package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for name, expected := range cases {
		level, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, level, name)
	}

	_, err := ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestNew_ConsoleLevel(t *testing.T) {
	var console bytes.Buffer

	logger, closer, err := New(&console, "warn", "")
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("generated table", "rows", 176)
	logger.Warn("opcodes overflow COP/MA field", "bits", 9)

	output := console.String()
	assert.NotContains(t, output, "generated table")
	assert.Contains(t, output, "opcodes overflow COP/MA field")
	assert.Contains(t, output, "bits=9")
}

func TestNew_FanoutToFile(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "isatable.log")

	logger, closer, err := New(&console, "info", path)
	require.NoError(t, err)

	logger.Debug("row", "opcode", 0)
	logger.Info("generated table", "rows", 176)
	require.NoError(t, closer.Close())

	assert.NotContains(t, console.String(), "opcode=0")
	assert.Contains(t, console.String(), "rows=176")

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	require.Len(t, lines, 2)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &record))
	assert.Equal(t, "generated table", record["msg"])
	assert.Equal(t, float64(176), record["rows"])
}

func TestNew_InvalidFile(t *testing.T) {
	_, _, err := New(&bytes.Buffer{}, "info", filepath.Join(t.TempDir(), "missing", "isatable.log"))
	assert.Error(t, err)
}
