// SPDX-License-Identifier: MPL-2.0

package car

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/garagekit/garage/pkg/types"
)

// DefaultWheelCount is the number of wheels on every shipped configuration.
const DefaultWheelCount = 4

type (
	// Spec holds the construction inputs for a Car.
	//
	// Wheels is used only for its length: New fits every wheel with the single
	// Diameter/Tires pair and ignores the individual entries, which may be nil.
	Spec struct {
		Make       string
		Model      string
		HorsePower types.HorsePower
		Fuel       FuelType
		Body       BodyType
		Doors      types.Door
		Diameter   types.Diameter
		Tires      TireType
		Wheels     []*Wheel
	}

	// Car aggregates one Engine, one CarBody and an ordered wheel sequence.
	Car struct {
		make   string
		model  string
		engine *Engine
		body   CarBody
		wheels []*Wheel
	}
)

// New builds a Car from spec. Every wheel is constructed fresh from
// spec.Diameter and spec.Tires; len(spec.Wheels) decides how many.
func New(spec Spec) (*Car, error) {
	engine, err := NewEngine(spec.HorsePower, spec.Fuel)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	body, err := NewCarBody(spec.Body, spec.Doors)
	if err != nil {
		return nil, fmt.Errorf("body: %w", err)
	}

	wheels := make([]*Wheel, 0, len(spec.Wheels))
	for range spec.Wheels {
		w, err := NewWheel(spec.Diameter, spec.Tires)
		if err != nil {
			return nil, fmt.Errorf("wheel: %w", err)
		}
		wheels = append(wheels, w)
	}

	return &Car{
		make:   spec.Make,
		model:  spec.Model,
		engine: engine,
		body:   body,
		wheels: wheels,
	}, nil
}

// Make returns the manufacturer name.
func (c *Car) Make() string { return c.make }

// Model returns the model name.
func (c *Car) Model() string { return c.model }

// Engine returns the car's engine. Changes made through it are visible on the car.
func (c *Car) Engine() *Engine { return c.engine }

// Body returns the car body.
func (c *Car) Body() CarBody { return c.body }

// Wheels returns the car's wheels in order. The slice is a copy but the
// wheels are not, so ChangeWheel on an element edits the car.
func (c *Car) Wheels() []*Wheel { return slices.Clone(c.wheels) }

// Wheel returns the wheel at the 0-based index i.
func (c *Car) Wheel(i int) (*Wheel, error) {
	if i < 0 || i >= len(c.wheels) {
		return nil, &WheelIndexError{Index: i, Count: len(c.wheels)}
	}
	return c.wheels[i], nil
}

// DisplayInfo writes "Car: <make>, Model: <model>" followed by a newline.
func (c *Car) DisplayInfo(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Car: %s, Model: %s\n", c.make, c.model)
	return err
}

// DisplayEngineInfo summarizes horsepower and fuel type.
func (c *Car) DisplayEngineInfo() string {
	return fmt.Sprintf("Horsepower: %d hp, Fuel: %s", c.engine.HorsePower(), c.engine.FuelType())
}

// DisplayCarBodyInfo summarizes body type and door count.
func (c *Car) DisplayCarBodyInfo() string {
	return fmt.Sprintf("Body_type: %s, Door: %d", c.body.BodyType(), c.body.Doors())
}

// CheckWheels returns a *WheelMismatchError (ErrInconsistentWheels) for the
// first wheel whose diameter or tire type differs from the first wheel's.
func (c *Car) CheckWheels() error {
	if len(c.wheels) == 0 {
		return nil
	}
	first := c.wheels[0]
	for i, w := range c.wheels {
		if !first.matches(w) {
			return &WheelMismatchError{
				Index:        i,
				WantDiameter: first.diameter,
				WantTires:    first.tires,
				GotDiameter:  w.diameter,
				GotTires:     w.tires,
			}
		}
	}
	return nil
}

// DisplayWheelInfo lists each wheel's diameter and tire type, 1-indexed and
// comma separated. It fails with ErrInconsistentWheels unless all wheels match.
func (c *Car) DisplayWheelInfo() (string, error) {
	if err := c.CheckWheels(); err != nil {
		return "", err
	}
	parts := make([]string, 0, len(c.wheels))
	for i, w := range c.wheels {
		parts = append(parts, fmt.Sprintf("Wheel%d Diameter: %d inch, Wheel%d Tires: %s", i+1, w.diameter, i+1, w.tires))
	}
	return strings.Join(parts, ", "), nil
}

// ChangeAllWheels applies ChangeWheel to every wheel in order and returns the
// pair. Inputs are validated before any wheel is touched; past that point the
// update is sequential, not transactional.
func (c *Car) ChangeAllWheels(d types.Diameter, tires TireType) (types.Diameter, TireType, error) {
	if err := validateWheel(d, tires); err != nil {
		return 0, "", err
	}
	for i, w := range c.wheels {
		if _, _, err := w.ChangeWheel(d, tires); err != nil {
			return 0, "", fmt.Errorf("wheel %d: %w", i+1, err)
		}
	}
	return d, tires, nil
}
