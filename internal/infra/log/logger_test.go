package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"backoffice/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for input, want := range tests {
		got, err := parseLogLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestBuild_JSONHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := build(&buf, config.Log{Level: "warn"})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", slog.String("k", "v"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
