// SPDX-License-Identifier: MPL-2.0

// Package types defines the bounded scalar Value Types shared by the car
// domain (horsepower, door count, wheel diameter) and by the CLI (exit codes).
// Each type wraps an int and enforces a closed numeric range at construction.
//
// This package is a leaf dependency: it imports only the standard library.
// Domain packages import it; it never imports domain packages.
package types

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the sentinel error wrapped by every OutOfRangeError.
// Callers use errors.Is(err, ErrOutOfRange) to detect range failures
// regardless of the quantity involved.
var ErrOutOfRange = errors.New("value out of range")

type (
	// Bounds is a closed integer interval [Min, Max].
	Bounds struct {
		Min int
		Max int
	}

	// OutOfRangeError is returned when a bounded scalar is constructed or
	// validated with a value outside its closed interval. It unwraps to both
	// ErrOutOfRange and the quantity-specific sentinel (e.g. ErrInvalidHorsePower).
	OutOfRangeError struct {
		Quantity string
		Value    int
		Bounds   Bounds

		sentinel error
	}
)

// Contains reports whether v lies within the closed interval.
func (b Bounds) Contains(v int) bool { return v >= b.Min && v <= b.Max }

// String renders the interval as "[min,max]".
func (b Bounds) String() string { return fmt.Sprintf("[%d,%d]", b.Min, b.Max) }

// check returns an *OutOfRangeError when v is outside b.
func (b Bounds) check(quantity string, v int, sentinel error) error {
	if b.Contains(v) {
		return nil
	}
	return &OutOfRangeError{Quantity: quantity, Value: v, Bounds: b, sentinel: sentinel}
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("wrong %s: %d (must be in range %d-%d)", e.Quantity, e.Value, e.Bounds.Min, e.Bounds.Max)
}

// Unwrap returns ErrOutOfRange and, when set, the quantity sentinel so that
// errors.Is matches either.
func (e *OutOfRangeError) Unwrap() []error {
	if e.sentinel == nil {
		return []error{ErrOutOfRange}
	}
	return []error{ErrOutOfRange, e.sentinel}
}
