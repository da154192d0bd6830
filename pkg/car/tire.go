// SPDX-License-Identifier: MPL-2.0

package car

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// TireSummer is a summer tire.
	TireSummer TireType = "Summer"
	// TireWinter is a winter tire.
	TireWinter TireType = "Winter"
	// TireAllSeasoned is an all-season tire.
	TireAllSeasoned TireType = "All-Seasoned"
)

// ErrInvalidTireType is returned when a TireType value is not recognized.
var ErrInvalidTireType = errors.New("invalid tire type")

type (
	// TireType is the tire fitted to a Wheel.
	TireType string

	// InvalidTireTypeError is returned when a TireType value is not recognized.
	// It wraps ErrInvalidTireType for errors.Is() compatibility.
	InvalidTireTypeError struct {
		Value TireType
	}
)

// TireTypes returns every defined tire type in declaration order.
func TireTypes() []TireType {
	return []TireType{TireSummer, TireWinter, TireAllSeasoned}
}

// ParseTireType resolves s case-insensitively to a TireType. Besides the
// canonical values it accepts "allseasoned" and "all_seasoned", which are
// easier to type on a command line.
func ParseTireType(s string) (TireType, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	for _, tt := range TireTypes() {
		if strings.EqualFold(norm, strings.ReplaceAll(string(tt), "-", "")) {
			return tt, nil
		}
	}
	return "", &InvalidTireTypeError{Value: TireType(s)}
}

// String returns the string representation of the TireType.
func (tt TireType) String() string { return string(tt) }

// IsValid returns whether the TireType is one of the defined tire types,
// and a list of validation errors if it is not.
func (tt TireType) IsValid() (bool, []error) {
	switch tt {
	case TireSummer, TireWinter, TireAllSeasoned:
		return true, nil
	default:
		return false, []error{&InvalidTireTypeError{Value: tt}}
	}
}

// Error implements the error interface for InvalidTireTypeError.
func (e *InvalidTireTypeError) Error() string {
	return fmt.Sprintf("invalid tire type %q (valid: Summer, Winter, All-Seasoned)", e.Value)
}

// Unwrap returns ErrInvalidTireType for errors.Is() compatibility.
func (e *InvalidTireTypeError) Unwrap() error { return ErrInvalidTireType }
