package variant

import "fmt"

// ConfigurationError reports invalid enumeration input: an empty dimension,
// an attribute-key collision between dimensions, or a duplicate variant
// name. These failures are deterministic and never worth retrying.
type ConfigurationError struct {
	// Dimension names the offending dimension, when one can be identified.
	Dimension string
	Reason    string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Dimension != "" {
		return fmt.Sprintf("invalid variant configuration for dimension %q: %s", e.Dimension, e.Reason)
	}
	return "invalid variant configuration: " + e.Reason
}

// configErrorf builds a ConfigurationError for the given dimension.
// An empty dimension name attributes the error to the whole configuration.
func configErrorf(dimension, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Dimension: dimension, Reason: fmt.Sprintf(format, args...)}
}
