package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrEmptyNetwork = errors.New("network has no layers")
	ErrConfig       = errors.New("invalid network config")
)

// ConfigError reasons.
const (
	ReasonEmptyLine          = "empty layer line"
	ReasonUnknownActivation  = "unknown activation"
	ReasonInsufficientLayers = "insufficient layers"
	ReasonMisplacedInput     = "input activation on non-input layer"
	ReasonUnreadable         = "cannot read config"
)

// ConfigError describes why a network config was rejected.
// No partial network is ever built from a config that produced one.
type ConfigError struct {
	Line   int    // 1-based line number, 0 when the error is not tied to a line
	Reason string // One of the Reason* constants
	Detail string // Additional details (offending token, counts)
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := e.Reason
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Line > 0 {
		return fmt.Sprintf("config line %d: %s", e.Line, msg)
	}
	return "config: " + msg
}

// Unwrap lets errors.Is match ErrConfig.
func (e *ConfigError) Unwrap() error {
	return ErrConfig
}
