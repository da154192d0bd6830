// SPDX-License-Identifier: MPL-2.0

package garagefile

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/format"

	"github.com/garagekit/garage/pkg/car"
)

// EntryFromSnapshot turns the current state of a car back into a garage file
// entry. The car-level diameter and tires come from the first wheel; every
// wheel is listed so mixed sets survive the trip.
func EntryFromSnapshot(name string, s car.Snapshot) CarEntry {
	e := CarEntry{
		Name:       name,
		Make:       s.Make,
		Model:      s.Model,
		HorsePower: s.HorsePower,
		Fuel:       s.Fuel,
		Body:       s.Body,
		Doors:      s.Doors,
	}
	if len(s.Wheels) > 0 {
		e.Diameter = s.Wheels[0].Diameter
		e.Tires = s.Wheels[0].Tires
	}
	for _, w := range s.Wheels {
		e.Wheels = append(e.Wheels, WheelEntry(w))
	}
	return e
}

// Format renders the garage as CUE source accepted by Parse.
func (g *GarageFile) Format() ([]byte, error) {
	v := cuecontext.New().Encode(g)
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("failed to encode garage: %w", err)
	}
	out, err := format.Node(v.Syntax(cue.Concrete(true)))
	if err != nil {
		return nil, fmt.Errorf("failed to format garage: %w", err)
	}
	return out, nil
}
