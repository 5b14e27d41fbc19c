// Package schema provides JSON schema generation for contract configs.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/btcverify-dev/btcverify-sdk/domain/errors"
)

// GenerateSchema creates a JSON schema from a Go config struct.
// It reflects on the struct with `invopop/jsonschema` and returns the
// schema as indented JSON. Hosts serve this from the contract's `schema`
// export so callers can validate configuration before invoking.
func GenerateSchema(v interface{}) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
	}
	s := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, &errors.SchemaError{
			Type: fmt.Sprintf("%T", v),
			Err:  err,
		}
	}

	return jsonBytes, nil
}
