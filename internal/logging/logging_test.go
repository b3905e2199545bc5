package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	decoder := json.NewDecoder(buf)
	for decoder.More() {
		line := map[string]interface{}{}
		require.NoError(t, decoder.Decode(&line))
		lines = append(lines, line)
	}
	return lines
}

func TestSetLevel(t *testing.T) {
	logger := SetupLogging()

	require.NoError(t, SetLevel(logger, "debug"))
	assert.Equal(t, "debug", logger.GetLevel().String())

	assert.Error(t, SetLevel(logger, "chatty"))
	assert.Equal(t, "debug", logger.GetLevel().String())
}

func TestLogData_FieldsAndTimings(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := SetupLogging()
	logger.Out = buf

	logData := NewLogData(logger)
	logData.AddData("strategy", "avalanche")
	stop := logData.AddTiming("simulateMs")
	stop()
	logData.Log().Info("done")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "avalanche", lines[0]["strategy"])
	assert.Contains(t, lines[0], "simulateMs")
	assert.Equal(t, "info", lines[0]["loglevel"])
}

func TestGetLogData(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))

	logData := NewLogData(SetupLogging())
	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
}

func TestLoggingWrapper(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := SetupLogging()
	logger.Out = buf

	ok := LoggingWrapper("Ok", logger, func(w http.ResponseWriter, _ *http.Request, logData *LogData) error {
		logData.AddData("answer", 42)
		w.WriteHeader(http.StatusOK)
		return nil
	})
	failing := LoggingWrapper("Failing", logger, func(w http.ResponseWriter, _ *http.Request, _ *LogData) error {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("boom")
	})

	ok(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	failing(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "Handler.Ok.Complete", lines[0]["msg"])
	assert.Equal(t, float64(42), lines[0]["answer"])
	assert.Equal(t, "Handler.Failing.Error", lines[1]["msg"])
	assert.Equal(t, "boom", lines[1]["error"])
	assert.NotContains(t, lines[1], "answer", "each request gets fresh log data")
}
