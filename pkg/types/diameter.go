// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"strconv"
)

// ErrInvalidDiameter is wrapped by the OutOfRangeError returned for wheel diameters.
var ErrInvalidDiameter = errors.New("invalid diameter")

// DiameterBounds is the closed range of rim sizes, in inches.
var DiameterBounds = Bounds{Min: 14, Max: 30}

// Diameter is a wheel rim diameter in inches, valid in [14,30].
type Diameter int

// NewDiameter returns v as a Diameter, or an *OutOfRangeError when v is
// outside [14,30].
func NewDiameter(v int) (Diameter, error) {
	d := Diameter(v)
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d, nil
}

// Validate returns an error if the Diameter is outside [14,30].
func (d Diameter) Validate() error {
	return DiameterBounds.check("diameter", int(d), ErrInvalidDiameter)
}

// Int returns the raw diameter in inches.
func (d Diameter) Int() int { return int(d) }

// String returns the decimal representation of the diameter.
func (d Diameter) String() string { return strconv.Itoa(int(d)) }
