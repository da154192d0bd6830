// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"strconv"
)

// ErrInvalidDoor is wrapped by the OutOfRangeError returned for door counts.
var ErrInvalidDoor = errors.New("invalid door count")

// DoorBounds is the closed range accepted for a body's door count.
var DoorBounds = Bounds{Min: 1, Max: 8}

// Door is the number of doors on a car body, valid in [1,8].
type Door int

// NewDoor returns v as a Door, or an *OutOfRangeError when v is outside [1,8].
func NewDoor(v int) (Door, error) {
	d := Door(v)
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d, nil
}

// Validate returns an error if the Door count is outside [1,8].
func (d Door) Validate() error {
	return DoorBounds.check("number of doors", int(d), ErrInvalidDoor)
}

// Int returns the raw door count.
func (d Door) Int() int { return int(d) }

// String returns the decimal representation of the door count.
func (d Door) String() string { return strconv.Itoa(int(d)) }
