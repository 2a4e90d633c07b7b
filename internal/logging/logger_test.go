package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestSetup(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		l := Setup("info", "json", &buf)

		l.Info("presets.converted", "makers", 3)
		assert.Contains(t, buf.String(), `"msg":"presets.converted"`)
		assert.Contains(t, buf.String(), `"makers":3`)
	})

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		l := Setup("warn", "text", &buf)

		l.Info("dropped")
		l.Warn("kept")
		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})
}
