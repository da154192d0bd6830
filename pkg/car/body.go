// SPDX-License-Identifier: MPL-2.0

package car

import (
	"errors"
	"fmt"
	"strings"

	"github.com/garagekit/garage/pkg/types"
)

const (
	// BodyCoupe is a two-door coupe.
	BodyCoupe BodyType = "Coupe"
	// BodySUV is a sport utility vehicle.
	BodySUV BodyType = "SUV"
	// BodyConvertible has a retractable roof.
	BodyConvertible BodyType = "Convertible"
	// BodyPickup has an open cargo bed.
	BodyPickup BodyType = "Pickup"
	// BodyMPV is a multi-purpose vehicle.
	BodyMPV BodyType = "MPV"
	// BodyMinivan is a minivan.
	BodyMinivan BodyType = "Minivan"
	// BodySedan is a sedan.
	BodySedan BodyType = "Sedan"
)

// ErrInvalidBodyType is returned when a BodyType value is not recognized.
var ErrInvalidBodyType = errors.New("invalid body type")

type (
	// BodyType is the body style of a CarBody.
	BodyType string

	// InvalidBodyTypeError is returned when a BodyType value is not recognized.
	// It wraps ErrInvalidBodyType for errors.Is() compatibility.
	InvalidBodyTypeError struct {
		Value BodyType
	}

	// CarBody pairs a body style with a door count. It is read-only after
	// construction.
	CarBody struct {
		bodyType BodyType
		doors    types.Door
	}
)

// BodyTypes returns every defined body type in declaration order.
func BodyTypes() []BodyType {
	return []BodyType{BodyCoupe, BodySUV, BodyConvertible, BodyPickup, BodyMPV, BodyMinivan, BodySedan}
}

// ParseBodyType resolves s case-insensitively to a BodyType.
func ParseBodyType(s string) (BodyType, error) {
	for _, bt := range BodyTypes() {
		if strings.EqualFold(s, string(bt)) {
			return bt, nil
		}
	}
	return "", &InvalidBodyTypeError{Value: BodyType(s)}
}

// String returns the string representation of the BodyType.
func (bt BodyType) String() string { return string(bt) }

// IsValid returns whether the BodyType is one of the defined body types,
// and a list of validation errors if it is not.
func (bt BodyType) IsValid() (bool, []error) {
	switch bt {
	case BodyCoupe, BodySUV, BodyConvertible, BodyPickup, BodyMPV, BodyMinivan, BodySedan:
		return true, nil
	default:
		return false, []error{&InvalidBodyTypeError{Value: bt}}
	}
}

// Error implements the error interface for InvalidBodyTypeError.
func (e *InvalidBodyTypeError) Error() string {
	return fmt.Sprintf("invalid body type %q (valid: Coupe, SUV, Convertible, Pickup, MPV, Minivan, Sedan)", e.Value)
}

// Unwrap returns ErrInvalidBodyType for errors.Is() compatibility.
func (e *InvalidBodyTypeError) Unwrap() error { return ErrInvalidBodyType }

// NewCarBody builds a CarBody. It fails only when bodyType is unknown or
// doors is outside [1,8].
func NewCarBody(bodyType BodyType, doors types.Door) (CarBody, error) {
	if valid, errs := bodyType.IsValid(); !valid {
		return CarBody{}, errs[0]
	}
	if err := doors.Validate(); err != nil {
		return CarBody{}, err
	}
	return CarBody{bodyType: bodyType, doors: doors}, nil
}

// BodyType returns the body style.
func (b CarBody) BodyType() BodyType { return b.bodyType }

// Doors returns the door count.
func (b CarBody) Doors() types.Door { return b.doors }
