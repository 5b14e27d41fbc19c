// Package entities defines the core domain types of the SDK: the
// two-outcome Result model, structured error details, and the JSON wire
// format exchanged between a verification contract and its host.
package entities
