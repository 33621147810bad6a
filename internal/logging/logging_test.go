package logging

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatPretty, ParseFormat("pretty"))
	assert.Equal(t, FormatUndefined, ParseFormat("xml"))
	assert.Equal(t, FormatUndefined, ParseFormat(""))

	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "pretty", FormatPretty.String())
	assert.Equal(t, "undefined", FormatUndefined.String())
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(NewWithWriter(&buf, "debug", "json"), "planner")
	logger.Debug().Int("bar", 1).Msg("bar planned")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "planner", entry["component"])
	assert.Equal(t, "bar planned", entry["message"])
	assert.InDelta(t, 1, entry["bar"], 0)
	assert.Contains(t, entry, "time")
}

func TestNewWithWriterLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "warn", "json")
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWithWriterInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "chatty", "json")
	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWithWriterPretty(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "info", "pretty")
	logger.Info().Str("component", "cli").Msg("plan finished")

	out := buf.String()
	assert.Contains(t, out, "plan finished")
	assert.Contains(t, out, "component=cli")
	assert.NotContains(t, out, "{")
}
