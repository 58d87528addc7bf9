package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	logger.Debug().Str("k", "v").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "v", line["k"])
	assert.Equal(t, "debug", line["level"])
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})

	ctx := WithComponent(WithContext(context.Background(), logger), "poller")
	FromContext(ctx).Info().Msg("tick")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "poller", line["component"])
}

func TestWithEntry_AddsID(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})
	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	ctx := WithEntry(WithComponent(WithContext(context.Background(), logger), "history"), id)
	FromContext(ctx).Info().Msg("removed")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, id.String(), line["entry_id"])
	assert.Equal(t, "history", line["component"])
}

func TestFromContext_NoLoggerIsNoop(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	log.Info().Msg("discarded")
}

func TestNewWithFile_WritesBoth(t *testing.T) {
	var console, file bytes.Buffer
	logger := NewWithFile(Config{Level: zerolog.InfoLevel, Format: "json", Output: &console}, &file)

	logger.Info().Msg("both")
	logger.Debug().Msg("filtered")

	assert.Contains(t, console.String(), `"message":"both"`)
	assert.Contains(t, file.String(), `"message":"both"`)
	assert.NotContains(t, file.String(), "filtered")
}
