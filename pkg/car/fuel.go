// SPDX-License-Identifier: MPL-2.0

package car

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// FuelPetrol is a petrol engine.
	FuelPetrol FuelType = "Petrol"
	// FuelDiesel is a diesel engine.
	FuelDiesel FuelType = "Diesel"
	// FuelElectro is an electric drive. It is terminal: an engine can neither
	// switch to nor away from it.
	FuelElectro FuelType = "Electro"
)

// ErrInvalidFuelType is returned when a FuelType value is not recognized.
var ErrInvalidFuelType = errors.New("invalid fuel type")

type (
	// FuelType is the energy source of an Engine.
	FuelType string

	// InvalidFuelTypeError is returned when a FuelType value is not recognized.
	// It wraps ErrInvalidFuelType for errors.Is() compatibility.
	InvalidFuelTypeError struct {
		Value FuelType
	}
)

// FuelTypes returns every defined fuel type in declaration order.
func FuelTypes() []FuelType {
	return []FuelType{FuelPetrol, FuelDiesel, FuelElectro}
}

// ParseFuelType resolves s case-insensitively to a FuelType.
func ParseFuelType(s string) (FuelType, error) {
	for _, ft := range FuelTypes() {
		if strings.EqualFold(s, string(ft)) {
			return ft, nil
		}
	}
	return "", &InvalidFuelTypeError{Value: FuelType(s)}
}

// String returns the string representation of the FuelType.
func (ft FuelType) String() string { return string(ft) }

// IsValid returns whether the FuelType is one of the defined fuel types,
// and a list of validation errors if it is not.
func (ft FuelType) IsValid() (bool, []error) {
	switch ft {
	case FuelPetrol, FuelDiesel, FuelElectro:
		return true, nil
	default:
		return false, []error{&InvalidFuelTypeError{Value: ft}}
	}
}

// Error implements the error interface for InvalidFuelTypeError.
func (e *InvalidFuelTypeError) Error() string {
	return fmt.Sprintf("invalid fuel type %q (valid: Petrol, Diesel, Electro)", e.Value)
}

// Unwrap returns ErrInvalidFuelType for errors.Is() compatibility.
func (e *InvalidFuelTypeError) Unwrap() error { return ErrInvalidFuelType }
