// Package contract implements the Bitcoin header verification contract.
//
// The contract exposes a single operation, hash_btc_header: decode a hex
// input, Hash256 it, return the digest hex. It declares no storage and no
// capabilities beyond digest computation; it is implementable and testable
// with no dependency on the host boundary.
package contract

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/btcverify-dev/btcverify-sdk"
	"github.com/btcverify-dev/btcverify-sdk/application/schema"
	"github.com/btcverify-dev/btcverify-sdk/domain/entities"
	"github.com/btcverify-dev/btcverify-sdk/domain/errors"
	"github.com/btcverify-dev/btcverify-sdk/header"
)

// Name identifies the contract to hosts.
const Name = "btc-header-verifier"

// Contract is the interface every verification contract implements.
// Hosts call the three methods through the corresponding WASM exports;
// tests call them directly.
type Contract interface {
	Describe(ctx context.Context) (entities.Metadata, error)
	Schema(ctx context.Context) ([]byte, error)
	HashHeader(ctx context.Context, req entities.HashHeaderRequest) entities.Result
}

// Verifier is the stateless header verification contract. The zero value
// is ready to use; per-invocation configuration arrives on the request.
type Verifier struct{}

var _ Contract = (*Verifier)(nil)

// Describe reports the contract's identity and capabilities.
func (v *Verifier) Describe(ctx context.Context) (entities.Metadata, error) {
	return entities.Metadata{
		Name:           Name,
		Version:        "1.0.0",
		Description:    "Double-SHA-256 (Hash256) verification of hex-encoded Bitcoin block headers",
		SDKVersion:     sdk.Version,
		MinHostVersion: sdk.MinHostVersion,
		Capabilities: []entities.Capability{
			entities.DigestCapability("hash256"),
		},
	}, nil
}

// Schema returns the JSON schema of the contract's configuration.
func (v *Verifier) Schema(ctx context.Context) ([]byte, error) {
	return schema.GenerateSchema(&VerifierConfig{})
}

// HashHeader runs the hash_btc_header operation. The outcome is always a
// Result, never a fault: a decode failure, oversized input, or bad config
// comes back as an error Result and the process carries on.
func (v *Verifier) HashHeader(ctx context.Context, req entities.HashHeaderRequest) entities.Result {
	start := time.Now().UTC()

	cfg, err := LoadConfig(req.Config)
	if err != nil {
		return v.errorResult(start, err)
	}

	opts := []header.Option{}
	if cfg.MaxInputBytes > 0 {
		opts = append(opts, header.WithMaxInputBytes(cfg.MaxInputBytes))
	}
	if cfg.RequireHeaderLength {
		opts = append(opts, header.WithHeaderLengthOnly())
	}

	digest, err := header.HashHex(req.HeaderHex, opts...)
	if err != nil {
		return v.errorResult(start, err)
	}

	inputBytes := len(req.HeaderHex) / 2
	result := entities.ResultSuccess(
		fmt.Sprintf("hashed %d-byte input", inputBytes),
		map[string]any{
			"digest":      digest,
			"input_bytes": inputBytes,
		},
	)
	return result.WithMetadata(v.runMetadata(start))
}

func (v *Verifier) errorResult(start time.Time, err error) entities.Result {
	result := entities.ResultError(errors.ToErrorDetail(err))
	return result.WithMetadata(v.runMetadata(start))
}

func (v *Verifier) runMetadata(start time.Time) *entities.RunMetadata {
	return entities.NewRunMetadata(start, time.Now().UTC()).
		WithSDKVersion(sdk.Version).
		WithContractID(Name)
}
