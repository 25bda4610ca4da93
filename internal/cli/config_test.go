package cli

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.False(t, c.Verbose)
	assert.Equal(t, LogFormatText, c.LogFormat)
	require.NoError(t, c.Validate())
}

func TestValidateRejectsUnknownFormat(t *testing.T) {
	c := DefaultConfig()
	c.LogFormat = "yaml"
	assert.Error(t, c.Validate())
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	quiet := DefaultConfig().NewLogger(&buf)
	assert.False(t, quiet.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, quiet.Enabled(context.Background(), slog.LevelWarn))

	c := DefaultConfig()
	c.Verbose = true
	verbose := c.NewLogger(&buf)
	assert.True(t, verbose.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	c := DefaultConfig()
	c.LogFormat = LogFormatJSON
	c.NewLogger(&buf).Warn("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	c.LogFormat = LogFormatText
	c.NewLogger(&buf).Warn("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
