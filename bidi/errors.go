package bidi

import (
	"errors"
	"fmt"
)

// ErrUnimplemented marks a required capability that a concrete type left
// unset.
var ErrUnimplemented = errors.New("capability not implemented")

// UnimplementedError reports which capability of which type is missing.
// It signals a malformed implementation and is raised as a panic value.
type UnimplementedError struct {
	Capability string
	Type       string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s: %s does not implement %s", ContractName, e.Type, e.Capability)
}

// Unwrap returns ErrUnimplemented.
func (e *UnimplementedError) Unwrap() error {
	return ErrUnimplemented
}
