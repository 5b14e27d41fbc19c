package contract

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btcverify-dev/btcverify-sdk/domain/entities"
)

const exampleHeaderHex = "0200000000000000000000000000000000000000000000000000000000000000" +
	"000000003ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa4b1e5e4a" +
	"29ab5f49ffff001d1dac2b7c"

func TestVerifier_Describe(t *testing.T) {
	v := &Verifier{}
	meta, err := v.Describe(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Name, meta.Name)
	assert.NotEmpty(t, meta.Version)
	require.Len(t, meta.Capabilities, 1)
	assert.Equal(t, "digest:hash256", meta.Capabilities[0].String())
}

func TestVerifier_Schema(t *testing.T) {
	v := &Verifier{}
	data, err := v.Schema(context.Background())
	require.NoError(t, err)

	var schemaMap map[string]any
	require.NoError(t, json.Unmarshal(data, &schemaMap))
	props, ok := schemaMap["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "max_input_bytes")
	assert.Contains(t, props, "require_header_length")
}

func TestVerifier_HashHeader_Success(t *testing.T) {
	v := &Verifier{}
	result := v.HashHeader(context.Background(), entities.HashHeaderRequest{
		HeaderHex: exampleHeaderHex,
	})

	require.True(t, result.IsSuccess(), "unexpected result: %+v", result)
	digest, ok := result.Digest()
	require.True(t, ok)
	assert.Equal(t, "719d7cdbdde2be068e086616db3aa3f420244f8266023c5b4cf0484664dc3cdc", digest)
	assert.Equal(t, 80, result.Data["input_bytes"])

	require.NotNil(t, result.Metadata)
	assert.Equal(t, Name, result.Metadata.ContractID)
}

func TestVerifier_HashHeader_EmptyInput(t *testing.T) {
	v := &Verifier{}
	result := v.HashHeader(context.Background(), entities.HashHeaderRequest{HeaderHex: ""})

	require.True(t, result.IsSuccess())
	digest, _ := result.Digest()
	assert.Equal(t, "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456", digest)
}

func TestVerifier_HashHeader_DecodeError(t *testing.T) {
	v := &Verifier{}

	for _, input := range []string{"abc", "not hex at all", "zz"} {
		result := v.HashHeader(context.Background(), entities.HashHeaderRequest{HeaderHex: input})
		require.True(t, result.IsError(), "input %q should fail", input)
		require.NotNil(t, result.Error)
		assert.Equal(t, "decode", result.Error.Type)
		_, ok := result.Digest()
		assert.False(t, ok)
	}
}

func TestVerifier_HashHeader_ConfigHardening(t *testing.T) {
	v := &Verifier{}

	t.Run("input over configured bound", func(t *testing.T) {
		result := v.HashHeader(context.Background(), entities.HashHeaderRequest{
			HeaderHex: exampleHeaderHex,
			Config:    map[string]any{"max_input_bytes": 16},
		})
		require.True(t, result.IsError())
		assert.Equal(t, "input_too_large", result.Error.Type)
	})

	t.Run("header length enforced", func(t *testing.T) {
		result := v.HashHeader(context.Background(), entities.HashHeaderRequest{
			HeaderHex: "aabb",
			Config:    map[string]any{"require_header_length": true},
		})
		require.True(t, result.IsError())
		assert.Equal(t, "length", result.Error.Type)
	})

	t.Run("exact header passes both knobs", func(t *testing.T) {
		result := v.HashHeader(context.Background(), entities.HashHeaderRequest{
			HeaderHex: exampleHeaderHex,
			Config: map[string]any{
				"max_input_bytes":       80,
				"require_header_length": true,
			},
		})
		assert.True(t, result.IsSuccess())
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		result := v.HashHeader(context.Background(), entities.HashHeaderRequest{
			HeaderHex: exampleHeaderHex,
			Config:    map[string]any{"max_input_bytes": -5},
		})
		require.True(t, result.IsError())
		assert.Equal(t, "config", result.Error.Type)
	})
}

func TestVerifier_HashHeader_Deterministic(t *testing.T) {
	v := &Verifier{}
	req := entities.HashHeaderRequest{HeaderHex: "68656c6c6f"}

	first := v.HashHeader(context.Background(), req)
	require.True(t, first.IsSuccess())
	want, _ := first.Digest()
	assert.Equal(t, "9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50", want)

	for i := 0; i < 5; i++ {
		again := v.HashHeader(context.Background(), req)
		got, _ := again.Digest()
		assert.Equal(t, want, got)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
		assert.Equal(t, entities.DefaultMaxRequestBytes, cfg.MaxInputBytes)
		assert.False(t, cfg.RequireHeaderLength)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := LoadConfig(map[string]any{
			"max_input_bytes":       float64(128), // JSON numbers decode to float64
			"require_header_length": true,
		})
		require.NoError(t, err)
		assert.Equal(t, 128, cfg.MaxInputBytes)
		assert.True(t, cfg.RequireHeaderLength)
	})

	t.Run("negative bound rejected", func(t *testing.T) {
		_, err := LoadConfig(map[string]any{"max_input_bytes": -1})
		assert.Error(t, err)
	})
}

func TestPanicResult(t *testing.T) {
	var result entities.Result
	func() {
		defer func() {
			if r := recover(); r != nil {
				result = panicResult(r)
			}
		}()
		panic("allocation limit exceeded")
	}()

	require.True(t, result.IsError())
	require.NotNil(t, result.Error)
	assert.Equal(t, "panic", result.Error.Type)
	assert.Contains(t, result.Error.Message, "allocation limit exceeded")
	assert.NotEmpty(t, result.Error.Stack)
	assert.False(t, result.Timestamp.IsZero())
}
