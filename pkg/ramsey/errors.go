package ramsey

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrUnknownKind   = errors.New("unknown forbidden structure")
	ErrSizeTooSmall  = errors.New("forbidden size below minimum for structure")
	ErrNoColors      = errors.New("at least one color is required")
	ErrBadColoring   = errors.New("invalid coloring")
	ErrIllegalMove   = errors.New("illegal move")
	ErrIndexMismatch = errors.New("index out of sync with coloring")
)

// ConfigError reports a graph construction parameter that prevents a search
// from starting.
type ConfigError struct {
	Op    string // Operation that rejected the parameter (e.g. "New", "ParseKind")
	Field string // Parameter name (e.g. "structure", "sizes[1]")
	Value any    // Offending value
	Cause error  // Underlying sentinel
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s %s=%v: %v", e.Op, e.Field, e.Value, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *ConfigError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
