//nolint:whitespace // ok for tests
package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, InfoLevel).Named("test")
	l.Debug("hidden")
	l.Info("visible", String("driver", "VER"), Int("lap", 3))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"visible"`)
	assert.Contains(t, out, `"logger":"test"`)
	assert.Contains(t, out, `"driver":"VER"`)
	assert.Equal(t, InfoLevel, l.Level())
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, lvl)
	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestContext(t *testing.T) {
	assert.Same(t, Default(), GetFromContext(context.Background()))
	l := New(&bytes.Buffer{}, DebugLevel)
	ctx := AddToContext(context.Background(), l)
	assert.Same(t, l, GetFromContext(ctx))
}

func TestWithFilterRules(t *testing.T) {
	var buf bytes.Buffer
	filter, err := WithFilterRules("info+:* debug+:processing*")
	require.NoError(t, err)
	l := New(&buf, DebugLevel, filter)

	l.Named("session").Debug("session debug")
	l.Named("session").Info("session info")
	l.Named("processing").Debug("processing debug")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "session info")
	assert.Contains(t, lines[1], "processing debug")
}

func TestWithFilterRules_Empty(t *testing.T) {
	var buf bytes.Buffer
	filter, err := WithFilterRules("")
	require.NoError(t, err)
	New(&buf, DebugLevel, filter).Debug("kept")
	assert.Contains(t, buf.String(), "kept")
}
