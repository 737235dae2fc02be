package internal

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelError, ParseLogLevel("ERROR"))
	assert.Equal(t, LogLevelDebug, ParseLogLevel(" debug "))
	assert.Equal(t, LogLevelTrace, ParseLogLevel("TRACE"))
	assert.Equal(t, LogLevelInfo, ParseLogLevel(""))
	assert.Equal(t, LogLevelInfo, ParseLogLevel("verbose"))
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogLevelWarn).WithOutput(log.New(&buf, "", 0)).WithComponent("Loader")

	logger.Info("hidden")
	logger.Debug("hidden")
	logger.Warn("kept %d", 1)
	logger.Error("kept %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] [Loader] kept 1")
	assert.Contains(t, out, "[ERROR] [Loader] kept 2")
	assert.Equal(t, LogLevelWarn, logger.GetLevel())
}
