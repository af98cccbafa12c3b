// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_RoleAndTimestampFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("evidence-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := logEntry(t, &buf)
	assert.Equal(t, "evidence-server", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNewLogger_GlobalSettings(t *testing.T) {
	NewLogger("settings")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewConsoleLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger("console")
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("screen-safe")

	assert.Equal(t, "console", logEntry(t, &buf)["role"])
}

func TestConsoleLogWriter_OpensFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs")

	w := consoleLogWriter(path)
	_, err := w.Write([]byte("a line\n"))
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a line\n", string(written))
}

func TestConsoleLogWriter_FallsBackToStdout(t *testing.T) {
	// a directory path cannot be opened as a file
	w := consoleLogWriter(t.TempDir())
	assert.Equal(t, os.Stdout, w)
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Logger = child.Output(&buf)
	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", logEntry(t, &buf)["role"])
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)
	l.Info().Msg("from context")

	assert.Equal(t, "ctx-value", logEntry(t, &buf)["ctx-key"])
}

func TestFromContext_BareContextIsUsable(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	l := FromRequest(req)
	require.NotNil(t, l)
	l.Info().Msg("from request")

	assert.Equal(t, "req-value", logEntry(t, &buf)["req-key"])
}
