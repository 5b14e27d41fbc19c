package entities

import (
	"time"
)

// Metadata describes a verification contract to its host.
type Metadata struct {
	Name           string       `json:"name"`
	Version        string       `json:"version"`
	Description    string       `json:"description"`
	SDKVersion     string       `json:"sdk_version"`
	MinHostVersion string       `json:"min_host_version,omitempty"`
	Capabilities   []Capability `json:"capabilities,omitempty"`
}

// RunMetadata contains execution metadata for a contract operation.
type RunMetadata struct {
	// StartTime is when the operation started.
	StartTime time.Time `json:"start_time"`

	// EndTime is when the operation completed.
	EndTime time.Time `json:"end_time"`

	// SDKVersion is the version of the SDK that executed the operation.
	SDKVersion string `json:"sdk_version,omitempty"`

	// ContractID identifies the contract that ran the operation (if known).
	ContractID string `json:"contract_id,omitempty"`

	// Duration is the total execution time.
	Duration time.Duration `json:"duration_ns"`
}

// NewRunMetadata creates a new RunMetadata with the given start and end times.
func NewRunMetadata(start, end time.Time) *RunMetadata {
	return &RunMetadata{
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
}

// WithSDKVersion returns the RunMetadata with the SDK version set.
func (m *RunMetadata) WithSDKVersion(version string) *RunMetadata {
	m.SDKVersion = version
	return m
}

// WithContractID returns the RunMetadata with the contract ID set.
func (m *RunMetadata) WithContractID(id string) *RunMetadata {
	m.ContractID = id
	return m
}
