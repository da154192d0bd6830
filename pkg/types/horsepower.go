// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"strconv"
)

// ErrInvalidHorsePower is wrapped by the OutOfRangeError returned for horsepower values.
var ErrInvalidHorsePower = errors.New("invalid horsepower")

// HorsePowerBounds is the closed range accepted for an engine rating.
var HorsePowerBounds = Bounds{Min: 1, Max: 600}

// HorsePower is an engine power rating in hp, valid in [1,600].
type HorsePower int

// NewHorsePower returns v as a HorsePower, or an *OutOfRangeError when v is
// outside [1,600].
func NewHorsePower(v int) (HorsePower, error) {
	hp := HorsePower(v)
	if err := hp.Validate(); err != nil {
		return 0, err
	}
	return hp, nil
}

// Validate returns an error if the HorsePower is outside [1,600].
func (hp HorsePower) Validate() error {
	return HorsePowerBounds.check("number of hp", int(hp), ErrInvalidHorsePower)
}

// Int returns the raw rating.
func (hp HorsePower) Int() int { return int(hp) }

// String returns the decimal representation of the rating.
func (hp HorsePower) String() string { return strconv.Itoa(int(hp)) }
