package entities

import (
	"time"
)

// ResultStatus represents the outcome status of a contract operation.
type ResultStatus string

const (
	// ResultStatusSuccess indicates the operation completed and produced a digest.
	ResultStatusSuccess ResultStatus = "success"

	// ResultStatusError indicates the operation could not complete,
	// e.g. the input failed to decode.
	ResultStatusError ResultStatus = "error"
)

// Result is the outcome of a contract operation. A caller receives either
// a success carrying operation data (the digest), or an error carrying a
// structured ErrorDetail. There is no third outcome: hashing itself cannot
// fail for any decodable input.
type Result struct {
	// Timestamp is when this result was created.
	Timestamp time.Time `json:"timestamp"`

	// Data contains operation-specific result data. For hash_btc_header
	// it carries "digest" (64-character lowercase hex) and "input_bytes".
	Data map[string]any `json:"data,omitempty"`

	// Metadata contains execution metadata (timing, versions).
	Metadata *RunMetadata `json:"metadata,omitempty"`

	// Error contains structured error information if Status is Error.
	Error *ErrorDetail `json:"error,omitempty"`

	// Status indicates whether the operation succeeded or errored.
	Status ResultStatus `json:"status"`

	// Message provides a human-readable description of the result.
	Message string `json:"message,omitempty"`
}

// ResultSuccess creates a successful Result with the given message and data.
func ResultSuccess(message string, data map[string]any) Result {
	return Result{
		Status:    ResultStatusSuccess,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// ResultError creates an error Result from the given error details.
func ResultError(err *ErrorDetail) Result {
	return Result{
		Status:    ResultStatusError,
		Message:   err.Message,
		Error:     err,
		Timestamp: time.Now().UTC(),
	}
}

// WithMetadata returns a copy of the Result with the given metadata attached.
func (r Result) WithMetadata(m *RunMetadata) Result {
	r.Metadata = m
	return r
}

// IsSuccess returns true if the result carries a digest.
func (r Result) IsSuccess() bool {
	return r.Status == ResultStatusSuccess
}

// IsError returns true if the operation could not complete.
func (r Result) IsError() bool {
	return r.Status == ResultStatusError
}

// Digest returns the digest carried by a successful result, or "" and
// false when the result is not a success or carries no digest.
func (r Result) Digest() (string, bool) {
	if r.Status != ResultStatusSuccess {
		return "", false
	}
	v, ok := r.Data["digest"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
