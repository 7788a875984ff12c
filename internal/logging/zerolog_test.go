package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestZerologLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(&buf, "debug")

	log.Debug(context.Background(), "dbg", "a", 1)
	log.Error(context.Background(), "failed", "err", errors.New("boom"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "dbg", lines[0]["message"])
	assert.EqualValues(t, 1, lines[0]["a"])

	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "boom", lines[1]["err"])
}

func TestZerologLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(&buf, "warn")

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["message"])
}

func TestZerologLogger_WithAndOddArgs(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(&buf, "info").With("request_id", "r-1")

	log.Info(context.Background(), "hello", "dangling")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "r-1", lines[0]["request_id"])
	assert.Equal(t, "dangling", lines[0]["!BADKEY"])
}

func TestZerologLogger_KeepsFieldOrderAndRepeats(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(&buf, "info").With("svc", "cli", "b", 1)

	log.Info(context.Background(), "m", "z", "first", "a", 2, "k", "x", "k", "y")

	line := buf.String()
	order := []string{`"svc":"cli"`, `"b":1`, `"z":"first"`, `"a":2`, `"k":"x"`, `"k":"y"`}
	last := -1
	for _, field := range order {
		i := strings.Index(line, field)
		require.GreaterOrEqual(t, i, 0, field)
		assert.Greater(t, i, last, field)
		last = i
	}
	assert.Equal(t, 2, strings.Count(line, `"k":`))
}

func TestNew_SelectsBackendByFormat(t *testing.T) {
	var buf bytes.Buffer

	_, ok := New(&buf, "info", "json").(*ZerologLogger)
	assert.True(t, ok)

	_, ok = New(&buf, "info", "text").(*SlogLogger)
	assert.True(t, ok)

	_, ok = New(&buf, "info", "").(*SlogLogger)
	assert.True(t, ok)
}

func TestNew_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "error", "text")

	log.Info(context.Background(), "hidden")
	log.Error(context.Background(), "shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
}
