package site

import (
	"errors"
	"fmt"
)

// ErrConfigurationAssembly is matched by every failure to produce or
// validate a configuration.
var ErrConfigurationAssembly = errors.New("configuration assembly failed")

// AssemblyError names the input that prevented the configuration from being
// built. It matches ErrConfigurationAssembly and the wrapped cause.
type AssemblyError struct {
	Field  string
	Reason string
	Err    error
}

func (e *AssemblyError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrConfigurationAssembly, e.Field)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AssemblyError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConfigurationAssembly}
	}
	return []error{ErrConfigurationAssembly, e.Err}
}

func assemblyErr(field, reason string, err error) error {
	return &AssemblyError{Field: field, Reason: reason, Err: err}
}
