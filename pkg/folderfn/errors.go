// SPDX-License-Identifier: MPL-2.0

package folderfn

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnresolved is the sentinel error wrapped by UnresolvedError.
	ErrUnresolved = errors.New("folder root unresolved")
	// ErrNotDefined is the sentinel error wrapped by NotDefinedError.
	ErrNotDefined = errors.New("folder function not defined")
	// ErrEmptyName is returned by Define when the folder function name is empty.
	ErrEmptyName = errors.New("folder function name is empty")
)

type (
	// UnresolvedError is returned by Define (and Resolver.Resolve) when no
	// configuration source holds a nonempty value under any tried key.
	// It wraps ErrUnresolved for errors.Is() compatibility.
	UnresolvedError struct {
		// Name is the folder function or configuration name being resolved.
		Name string
		// Keys are the candidate keys that were tried, in order.
		Keys []string
	}

	// NotDefinedError is returned by Invoke when no folder function is
	// registered under the requested accessor name. It wraps ErrNotDefined
	// for errors.Is() compatibility.
	NotDefinedError struct {
		Accessor string
	}
)

// Error implements the error interface.
func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("%v: %q (tried %s)", ErrUnresolved, e.Name, strings.Join(e.Keys, ", "))
}

// Unwrap returns ErrUnresolved so callers can match with errors.Is.
func (e *UnresolvedError) Unwrap() error {
	return ErrUnresolved
}

// Error implements the error interface.
func (e *NotDefinedError) Error() string {
	return fmt.Sprintf("%v: %q", ErrNotDefined, e.Accessor)
}

// Unwrap returns ErrNotDefined so callers can match with errors.Is.
func (e *NotDefinedError) Unwrap() error {
	return ErrNotDefined
}
