package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type verifierSettings struct {
	MaxInputBytes       int  `json:"max_input_bytes" validate:"gte=0"`
	RequireHeaderLength bool `json:"require_header_length"`
}

func TestValidateConfig_Valid(t *testing.T) {
	var settings verifierSettings
	err := ValidateConfig(map[string]any{
		"max_input_bytes":       1024,
		"require_header_length": true,
	}, &settings)
	require.NoError(t, err)
	assert.Equal(t, 1024, settings.MaxInputBytes)
	assert.True(t, settings.RequireHeaderLength)
}

func TestValidateConfig_Invalid(t *testing.T) {
	var settings verifierSettings
	err := ValidateConfig(map[string]any{"max_input_bytes": -1}, &settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateConfig_EmptyMap(t *testing.T) {
	var settings verifierSettings
	err := ValidateConfig(map[string]any{}, &settings)
	require.NoError(t, err)
	assert.Zero(t, settings.MaxInputBytes)
}

func TestValidateConfig_TypeMismatch(t *testing.T) {
	var settings verifierSettings
	err := ValidateConfig(map[string]any{"max_input_bytes": "lots"}, &settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}
