package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/WIPACrepo/cvmfs/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlainLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newPlainLogger(t)

	lg.Info("cmd: spack arch")
	lg.Warn("repository already registered")

	out := buf.String()
	assert.Contains(t, out, "cmd: spack arch\n")
	assert.Contains(t, out, "! repository already registered\n")
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newPlainLogger(t)

	lg.Error(errors.New("simple failure"))
	assert.Equal(t, "✗ Error: simple failure\n", buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newPlainLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	lg, buf := newPlainLogger(t)
	lg.SetJSON(true)

	lg.Info("installing foo")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "installing foo", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name: "two entries with caused by",
			entries: []logger.ErrorEntry{
				{Message: "outer error"},
				{Message: "inner error"},
			},
			want: "Error: outer error\n\n  Caused by:\n    → inner error",
		},
		{
			name: "metadata sorted alphabetically",
			entries: []logger.ErrorEntry{
				{
					Message:  "command failed",
					Metadata: map[string]any{"stderr": "boom", "exit_code": 2},
				},
			},
			want: "Error: command failed\n       exit_code: 2\n       stderr: boom",
		},
		{
			name: "multiline transcript on cause",
			entries: []logger.ErrorEntry{
				{Message: "resolve foo"},
				{
					Message:  "dependency resolution did not converge",
					Metadata: map[string]any{"transcript": "line1\nline2"},
				},
			},
			want: "Error: resolve foo\n\n  Caused by:\n    → dependency resolution did not converge\n" +
				"      transcript: line1\n        line2",
		},
		{
			name:    "empty entries",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}

func TestCollectErrorEntries_Joined(t *testing.T) {
	err := errors.Join(errors.New("install failed"), errors.New("clean failed"))

	entries := logger.CollectErrorEntries(err)

	require.Len(t, entries, 2)
	assert.Equal(t, "install failed", entries[0].Message)
	assert.Equal(t, "clean failed", entries[1].Message)
	assert.True(t, strings.HasPrefix(logger.FormatErrorEntries(entries), "Error: install failed"))
}
