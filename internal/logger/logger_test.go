package logger

import (
	"bytes"
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
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}

	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestWriterLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger("warn", &buf)

	log.Info("hidden")
	log.Warn("Nenhum dado para exportar")
	log.Error("Falha na consulta à API", "status", 500)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "status=500")
	assert.Contains(t, out, "time=")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger("error", &buf)

	log.Debug("first")
	log.With("k", "v").SetLevel("debug")
	log.Debug("second")

	assert.NotContains(t, buf.String(), "first")
	assert.Contains(t, buf.String(), "second")
}

func TestWithRunID(t *testing.T) {
	var buf bytes.Buffer
	log, id := NewWriterLogger("info", &buf).WithRunID()

	require.Len(t, id, 36)

	log.Info("run started")
	assert.Contains(t, buf.String(), "run_id="+id)
}

func TestNewFileLogger_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consulta.log")

	for _, msg := range []string{"primeira", "segunda"} {
		log, closer, err := NewFileLogger("info", path)
		require.NoError(t, err)
		log.Info(msg)
		require.NoError(t, closer.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "primeira")
	assert.Contains(t, lines[1], "segunda")
}

func TestNewFileLogger_BadPath(t *testing.T) {
	_, _, err := NewFileLogger("info", filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	assert.Error(t, err)
}
