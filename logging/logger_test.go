package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adventkit/adventkit/framework"
)

var _ framework.Logger = (*Logger)(nil)

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "debug", Format: FormatJSON}, &buf)
	require.NoError(t, err)

	logger.With("day", "Y9000D01").Printf("loaded %d bytes", 12)
	require.NoError(t, logger.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "loaded 12 bytes", entry["msg"])
	assert.Equal(t, "Y9000D01", entry["day"])
	assert.NotEmpty(t, entry["time"])
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{}, &buf)
	require.NoError(t, err)

	logger.Warnf("careful")
	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, "WARN")
	assert.True(t, strings.HasSuffix(line, "careful"), line)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn"}, &buf)
	require.NoError(t, err)

	logger.Debugf("hidden")
	logger.Printf("hidden too")
	assert.Empty(t, buf.String())

	logger.Warnf("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInvalidConfig(t *testing.T) {
	_, err := New(Config{Level: "loud"}, nil)
	assert.Error(t, err)

	_, err = New(Config{Format: "xml"}, nil)
	assert.EqualError(t, err, `invalid log format "xml"`)
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Printf("nothing")
	assert.NoError(t, logger.Sync())
}
