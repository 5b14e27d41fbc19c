package contract

import (
	sdk "github.com/btcverify-dev/btcverify-sdk"
	"github.com/btcverify-dev/btcverify-sdk/application/config"
	"github.com/btcverify-dev/btcverify-sdk/domain/entities"
	"github.com/btcverify-dev/btcverify-sdk/domain/errors"
)

// VerifierConfig holds the contract's hardening knobs. The defaults keep
// the original contract behavior: any valid hex string is accepted, with
// only the host-level size bound applied.
type VerifierConfig struct {
	// MaxInputBytes bounds the decoded input size. Zero disables the bound.
	MaxInputBytes int `json:"max_input_bytes" jsonschema:"default=1048576" validate:"gte=0"`

	// RequireHeaderLength restricts input to exactly 80 decoded bytes,
	// the real Bitcoin block header size.
	RequireHeaderLength bool `json:"require_header_length" jsonschema:"default=false"`
}

// DefaultConfig returns the contract's default configuration.
func DefaultConfig() VerifierConfig {
	return VerifierConfig{
		MaxInputBytes:       entities.DefaultMaxRequestBytes,
		RequireHeaderLength: false,
	}
}

// LoadConfig extracts and validates the configuration from an invocation's
// config map. A nil or empty map yields the defaults.
func LoadConfig(cfgMap map[string]any) (VerifierConfig, error) {
	cfg := VerifierConfig{
		MaxInputBytes:       config.GetIntDefault(cfgMap, "max_input_bytes", entities.DefaultMaxRequestBytes),
		RequireHeaderLength: config.GetBoolDefault(cfgMap, "require_header_length", false),
	}

	if cfgMap != nil {
		var validated VerifierConfig
		if err := sdk.ValidateConfig(cfgMap, &validated); err != nil {
			return VerifierConfig{}, &errors.ConfigError{Err: err}
		}
	}

	return cfg, nil
}
