package sdk

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a package-level singleton; constructing a validator on each
// call is expensive and the instance is safe for concurrent use.
var validate = validator.New()

// ValidateConfig validates a config map against a struct with `validate`
// tags. It marshals the map to JSON, unmarshals it into the target struct,
// then runs the validator on the populated struct. On success the target
// struct holds the decoded configuration.
func ValidateConfig(config map[string]any, targetStruct interface{}) error {
	jsonBytes, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config map: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, targetStruct); err != nil {
		return fmt.Errorf("failed to unmarshal config into struct: %w", err)
	}

	if err := validate.Struct(targetStruct); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}
