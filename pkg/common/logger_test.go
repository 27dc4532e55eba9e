package common

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "liyu1981.xyz/edms-report-service/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestGetLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	GetLoggerWith(LoggerNameIOTCore, zap.String(LoggerFieldIOTCategory, LoggerCategoryIOTReport)).
		Info("Stored report")
	GetLoggerWith(LoggerNameIOTCore).Debug("below capture level")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "Stored report", entry["msg"])
	assert.Equal(t, LoggerNameIOTCore, entry["logger"])
	assert.Equal(t, LoggerCategoryIOTReport, entry["category"])
}

func TestFileLogLevel(t *testing.T) {
	t.Setenv(EnvKeyIOTLogLevel, "debug")
	assert.Equal(t, zapcore.DebugLevel, fileLogLevel())

	t.Setenv(EnvKeyIOTLogLevel, "loud")
	assert.Equal(t, zapcore.InfoLevel, fileLogLevel())

	t.Setenv(EnvKeyIOTLogDir, "/var/log/edms")
	assert.Equal(t, "/var/log/edms", logsDir())
}
