// SPDX-License-Identifier: MPL-2.0

package car

import "github.com/garagekit/garage/pkg/types"

// Wheel pairs a rim diameter with a tire type.
type Wheel struct {
	diameter types.Diameter
	tires    TireType
}

// NewWheel builds a Wheel.
func NewWheel(d types.Diameter, tires TireType) (*Wheel, error) {
	if err := validateWheel(d, tires); err != nil {
		return nil, err
	}
	return &Wheel{diameter: d, tires: tires}, nil
}

// Diameter returns the rim diameter.
func (w *Wheel) Diameter() types.Diameter { return w.diameter }

// TireType returns the fitted tire type.
func (w *Wheel) TireType() TireType { return w.tires }

// ChangeWheel replaces both the diameter and the tire type and returns the
// new pair. The wheel is untouched when d is out of range or tires is unknown.
func (w *Wheel) ChangeWheel(d types.Diameter, tires TireType) (types.Diameter, TireType, error) {
	if err := validateWheel(d, tires); err != nil {
		return 0, "", err
	}
	w.diameter = d
	w.tires = tires
	return d, tires, nil
}

// matches reports whether o has the same diameter and tire type.
func (w *Wheel) matches(o *Wheel) bool {
	return w.diameter == o.diameter && w.tires == o.tires
}

func validateWheel(d types.Diameter, tires TireType) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if valid, errs := tires.IsValid(); !valid {
		return errs[0]
	}
	return nil
}
