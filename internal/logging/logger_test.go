package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobconnect-backend/internal/logging/types"
)

// captureAdapter records entries in memory for assertions.
type captureAdapter struct {
	entries []*types.LogEntry
}

func (a *captureAdapter) Write(entry *types.LogEntry) error {
	a.entries = append(a.entries, entry)
	return nil
}

func (a *captureAdapter) Close() error  { return nil }
func (a *captureAdapter) Health() error { return nil }
func (a *captureAdapter) Name() string  { return "capture" }

func TestMultiLoggerLevelFiltering(t *testing.T) {
	logger := NewMultiLogger()
	capture := &captureAdapter{}
	require.NoError(t, logger.AddAdapter(capture))
	logger.SetLevel(WarnLevel)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	require.Len(t, capture.entries, 2)
	assert.Equal(t, "warn message", capture.entries[0].Message)
	assert.Equal(t, "error message", capture.entries[1].Message)
}

func TestMultiLoggerFields(t *testing.T) {
	logger := NewMultiLogger()
	capture := &captureAdapter{}
	require.NoError(t, logger.AddAdapter(capture))

	logger.WithField("request_id", "req-1").Info("handled", map[string]interface{}{
		"status": 200,
	})

	require.Len(t, capture.entries, 1)
	assert.Equal(t, "req-1", capture.entries[0].Fields["request_id"])
	assert.Equal(t, 200, capture.entries[0].Fields["status"])
}

func TestMultiLoggerDuplicateAdapter(t *testing.T) {
	logger := NewMultiLogger()
	require.NoError(t, logger.AddAdapter(&captureAdapter{}))
	assert.Error(t, logger.AddAdapter(&captureAdapter{}))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLogLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLogLevel("WARNING"))
	assert.Equal(t, ErrorLevel, ParseLogLevel("error"))
	assert.Equal(t, InfoLevel, ParseLogLevel("unknown"))
}
