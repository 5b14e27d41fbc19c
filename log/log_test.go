package log

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLogAttrWire(t *testing.T) {
	tests := []struct {
		name     string
		attr     slog.Attr
		wantType string
		wantVal  string
	}{
		{
			name:     "string",
			attr:     slog.String("key", "value"),
			wantType: "string",
			wantVal:  "value",
		},
		{
			name:     "int64",
			attr:     slog.Int64("key", 123),
			wantType: "int64",
			wantVal:  "123",
		},
		{
			name:     "bool",
			attr:     slog.Bool("key", true),
			wantType: "bool",
			wantVal:  "true",
		},
		{
			name:     "float64",
			attr:     slog.Float64("key", 1.23),
			wantType: "float64",
			wantVal:  "1.230000",
		},
		{
			name:     "time",
			attr:     slog.Time("key", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
			wantType: "time",
			wantVal:  "2026-03-01T00:00:00Z",
		},
		{
			name:     "duration",
			attr:     slog.Duration("key", 90*time.Second),
			wantType: "duration",
			wantVal:  "1m30s",
		},
		{
			name:     "error",
			attr:     slog.Any("key", errors.New("hash failed")),
			wantType: "error",
			wantVal:  "hash failed",
		},
		{
			name:     "nil",
			attr:     slog.Any("key", nil),
			wantType: "any",
			wantVal:  "<nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire := toLogAttrWire(tt.attr)
			assert.Equal(t, tt.attr.Key, wire.Key)
			assert.Equal(t, tt.wantType, wire.Type)
			assert.Equal(t, tt.wantVal, wire.Value)
		})
	}
}

func TestToLogAttrWire_JSON(t *testing.T) {
	type digestEvent struct {
		Digest string `json:"digest"`
	}
	obj := digestEvent{Digest: "9595c9df"}
	wire := toLogAttrWire(slog.Any("event", obj))

	assert.Equal(t, "event", wire.Key)
	assert.Equal(t, "json", wire.Type)

	var decoded digestEvent
	err := json.Unmarshal([]byte(wire.Value), &decoded)
	require.NoError(t, err)
	assert.Equal(t, obj, decoded)
}

func TestToLogAttrWire_LogValuer(t *testing.T) {
	wire := toLogAttrWire(slog.Any("key", logValuer{val: "resolved"}))

	assert.Equal(t, "key", wire.Key)
	assert.Equal(t, "string", wire.Type)
	assert.Equal(t, "resolved", wire.Value)
}

type logValuer struct {
	val string
}

func (l logValuer) LogValue() slog.Value {
	return slog.StringValue(l.val)
}

func TestNewHandler_Defaults(t *testing.T) {
	h := NewHandler()
	assert.NotNil(t, h)
	assert.True(t, h.Enabled(context.TODO(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.TODO(), slog.LevelDebug))
}

func TestNewHandler_Options(t *testing.T) {
	h := NewHandler(
		WithLevel(slog.LevelDebug),
		WithSource(true),
	)
	assert.NotNil(t, h)
	assert.True(t, h.Enabled(context.TODO(), slog.LevelDebug))
}

func TestHandlerWithAttrsReturnsCopy(t *testing.T) {
	h := NewHandler()
	h2 := h.WithAttrs([]slog.Attr{slog.String("module", "verifier")})
	assert.NotNil(t, h2)
	assert.NotSame(t, h, h2)
}

func TestLogMessageWireRoundTrip(t *testing.T) {
	msg := LogMessageWire{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Level:     slog.LevelInfo.String(),
		Message:   "header hashed",
		Attrs: []LogAttrWire{
			{Key: "input_bytes", Type: "int64", Value: "80"},
		},
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded LogMessageWire
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, msg, decoded)
}
