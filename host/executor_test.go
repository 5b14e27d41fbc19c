package host

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btcverify-dev/btcverify-sdk/domain/entities"
	sdkerrors "github.com/btcverify-dev/btcverify-sdk/domain/errors"
	"github.com/btcverify-dev/btcverify-sdk/hostfuncs"
)

func TestNewExecutor(t *testing.T) {
	ctx := context.Background()
	e, err := NewExecutor(ctx)
	require.NoError(t, err)
	require.NotNil(t, e)

	// Default registry carries the digest bundle
	assert.True(t, e.registry.Has("hash256"))

	assert.NoError(t, e.Close(ctx))
}

func TestNewExecutor_CustomRegistry(t *testing.T) {
	ctx := context.Background()

	reg, err := hostfuncs.NewRegistry(
		hostfuncs.WithByteHandler("noop", func(ctx context.Context, payload []byte) ([]byte, error) {
			return nil, nil
		}),
	)
	require.NoError(t, err)

	e, err := NewExecutor(ctx, WithHostFunctions(reg))
	require.NoError(t, err)
	defer e.Close(ctx)

	assert.True(t, e.registry.Has("noop"))
	assert.False(t, e.registry.Has("hash256"))
}

func TestNewExecutor_ConfigApplied(t *testing.T) {
	ctx := context.Background()

	e, err := NewExecutor(ctx, WithConfig(entities.NewConfig(entities.WithMaxRequestBytes(64))))
	require.NoError(t, err)
	defer e.Close(ctx)

	assert.Equal(t, 64, e.config.MaxRequestBytes)
}

func TestContractInstance_HashHeader_RequestBound(t *testing.T) {
	// The size bound fires before any guest interaction, so an instance
	// with no module behind it is enough to exercise it.
	c := &ContractInstance{config: entities.NewConfig(entities.WithMaxRequestBytes(32))}

	_, err := c.HashHeader(context.Background(), strings.Repeat("ab", 64), nil)
	require.Error(t, err)

	var tooLarge *sdkerrors.InputTooLargeError
	assert.ErrorAs(t, err, &tooLarge)
}

func TestExecutor_LoadContract_InvalidModule(t *testing.T) {
	ctx := context.Background()
	e, err := NewExecutor(ctx)
	require.NoError(t, err)
	defer e.Close(ctx)

	_, err = e.LoadContract(ctx, []byte("not a wasm module"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instantiate")
}

func TestContractInstance_InvocationContext(t *testing.T) {
	t.Run("applies default timeout when no deadline", func(t *testing.T) {
		c := &ContractInstance{config: entities.NewConfig(entities.WithDefaultTimeout(5 * time.Second))}

		ctx, cancel := c.invocationContext(context.Background())
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
	})

	t.Run("keeps caller deadline", func(t *testing.T) {
		c := &ContractInstance{config: entities.NewConfig(entities.WithDefaultTimeout(time.Hour))}

		want := time.Now().Add(10 * time.Millisecond)
		parent, parentCancel := context.WithDeadline(context.Background(), want)
		defer parentCancel()

		ctx, cancel := c.invocationContext(parent)
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.Equal(t, want, deadline)
	})

	t.Run("zero timeout leaves context unbounded", func(t *testing.T) {
		c := &ContractInstance{config: entities.Config{}}

		ctx, cancel := c.invocationContext(context.Background())
		defer cancel()

		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})
}

func TestExecutor_InvokeHostFunction(t *testing.T) {
	reg, err := hostfuncs.NewRegistry(
		hostfuncs.WithByteHandler("echo", func(ctx context.Context, payload []byte) ([]byte, error) {
			return payload, nil
		}),
		hostfuncs.WithByteHandler("broken", func(ctx context.Context, payload []byte) ([]byte, error) {
			return nil, fmt.Errorf("handler exploded")
		}),
	)
	require.NoError(t, err)

	e := &Executor{registry: reg, config: entities.DefaultConfig()}
	ctx := context.Background()

	t.Run("success passes response through", func(t *testing.T) {
		resp := e.invokeHostFunction(ctx, "echo", []byte(`{"data_hex":"aabb"}`))
		assert.Equal(t, []byte(`{"data_hex":"aabb"}`), resp)
	})

	t.Run("handler error becomes ErrorResponse JSON", func(t *testing.T) {
		resp := e.invokeHostFunction(ctx, "broken", nil)

		var errResp hostfuncs.ErrorResponse
		require.NoError(t, json.Unmarshal(resp, &errResp))
		assert.Equal(t, "INTERNAL_ERROR", errResp.Error)
		assert.Contains(t, errResp.Message, "handler exploded")
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), "input %q", tt.in)
	}
}
