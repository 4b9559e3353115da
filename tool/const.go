// Package tool describes the encoding tools whose measurements end up in the cache.
// A Tool pairs a human readable label with the command template that produced
// the data, and a Registry maps the codec names found in measurement files to
// their Tool.
package tool

import (
	"errors"
	"fmt"
)

// Private constants (alphabetical)
const (
	// errorPrefix is used as a prefix for all error messages from this package.
	errorPrefix = "tool: "
)

// Public constants (alphabetical)
const (
	// DefaultConfigFile is the tool registry file read when none is given on the command line.
	DefaultConfigFile = "edc.yaml"
)

// Public variables (alphabetical)

var (
	// ErrConfigNotFound is returned when the tool registry file does not exist.
	ErrConfigNotFound = errors.New(errorPrefix + "config file not found")

	// ErrMissingTools is returned when the registry file has no "tools" key.
	ErrMissingTools = errors.New(errorPrefix + "config has no \"tools\" key")

	// ErrNoTools is returned when no entry under "tools" declares a codec.
	ErrNoTools = errors.New(errorPrefix + "config declares no tool with a codec")

	// ErrUnknownCodec is returned when a codec has no registered Tool.
	ErrUnknownCodec = errors.New(errorPrefix + "no tool registered for codec")
)

// Public functions (alphabetical)

// FormatError creates an error message carrying the package prefix.
func FormatError(format string, args ...interface{}) error {
	return fmt.Errorf(errorPrefix+format, args...)
}
