package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/spiro/internal/config"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"":        LevelInfo,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriter(&buf, config.Log{Level: "debug"})
	require.NoError(t, err)

	logger.Info("pattern computed",
		String("guide", "circle"),
		Int("points", 300),
		Float64("radius", 2.5),
		Bool("inside", true),
		Duration("took", 1500*time.Millisecond),
		Error(errors.New("boom")),
		Any("extra", []int{1, 2}),
	)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	line := lines[0]
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "pattern computed", line["msg"])
	assert.Equal(t, "circle", line["guide"])
	assert.EqualValues(t, 300, line["points"])
	assert.EqualValues(t, 2.5, line["radius"])
	assert.Equal(t, true, line["inside"])
	assert.EqualValues(t, 1.5, line["took"])
	assert.Equal(t, "boom", line["error"])
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriter(&buf, config.Log{Level: "warn"})
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, logger.GetLevel())

	child := logger.With(String("component", "test"))
	child.Info("dropped")
	child.Warn("kept")

	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, child.GetLevel())
	child.Debug("now visible")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "kept", lines[0]["msg"])
	assert.Equal(t, "test", lines[0]["component"])
	assert.Equal(t, "now visible", lines[1]["msg"])
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.Log{Level: "loud"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Error("nothing happens", Error(errors.New("ignored")))
	assert.Equal(t, LevelInfo, logger.GetLevel())
}
