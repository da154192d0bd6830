// SPDX-License-Identifier: MPL-2.0

package car

import (
	"errors"
	"fmt"

	"github.com/garagekit/garage/pkg/types"
)

var (
	// ErrInvalidOperation is the sentinel wrapped by FuelChangeError.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInconsistentWheels is the sentinel wrapped by WheelMismatchError.
	ErrInconsistentWheels = errors.New("wheels should have same diameter and tires")
	// ErrWheelIndex is the sentinel wrapped by WheelIndexError.
	ErrWheelIndex = errors.New("wheel index out of range")
)

type (
	// FuelChangeError is returned by Engine.ChangeFuelType when either side of
	// the requested transition is Electro.
	FuelChangeError struct {
		From FuelType
		To   FuelType
	}

	// WheelMismatchError is returned by the wheel consistency check. Index is
	// the 0-based position of the first wheel that differs from wheel 0.
	WheelMismatchError struct {
		Index        int
		WantDiameter types.Diameter
		WantTires    TireType
		GotDiameter  types.Diameter
		GotTires     TireType
	}

	// WheelIndexError is returned when a wheel position does not exist.
	WheelIndexError struct {
		Index int
		Count int
	}
)

// Error implements the error interface for FuelChangeError.
func (e *FuelChangeError) Error() string {
	return fmt.Sprintf("cannot change fuel type of an electric engine (%s -> %s)", e.From, e.To)
}

// Unwrap returns ErrInvalidOperation for errors.Is() compatibility.
func (e *FuelChangeError) Unwrap() error { return ErrInvalidOperation }

// Error implements the error interface for WheelMismatchError.
func (e *WheelMismatchError) Error() string {
	return fmt.Sprintf("%s: wheel %d has %d inch %s, wheel 1 has %d inch %s",
		ErrInconsistentWheels, e.Index+1, e.GotDiameter, e.GotTires, e.WantDiameter, e.WantTires)
}

// Unwrap returns ErrInconsistentWheels for errors.Is() compatibility.
func (e *WheelMismatchError) Unwrap() error { return ErrInconsistentWheels }

// Error implements the error interface for WheelIndexError.
func (e *WheelIndexError) Error() string {
	return fmt.Sprintf("wheel index %d out of range (car has %d wheels)", e.Index, e.Count)
}

// Unwrap returns ErrWheelIndex for errors.Is() compatibility.
func (e *WheelIndexError) Unwrap() error { return ErrWheelIndex }
