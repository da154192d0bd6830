// SPDX-License-Identifier: MPL-2.0

package car

import "github.com/garagekit/garage/pkg/types"

// Engine pairs a horsepower rating with a fuel type. The rating is fixed for
// the life of the engine; the fuel type can be switched between Petrol and
// Diesel with ChangeFuelType.
type Engine struct {
	horsepower types.HorsePower
	fuelType   FuelType
}

// NewEngine builds an Engine. It fails only when hp is outside [1,600] or
// fuel is not a defined FuelType.
func NewEngine(hp types.HorsePower, fuel FuelType) (*Engine, error) {
	if err := hp.Validate(); err != nil {
		return nil, err
	}
	if valid, errs := fuel.IsValid(); !valid {
		return nil, errs[0]
	}
	return &Engine{horsepower: hp, fuelType: fuel}, nil
}

// HorsePower returns the engine rating.
func (e *Engine) HorsePower() types.HorsePower { return e.horsepower }

// FuelType returns the current fuel type.
func (e *Engine) FuelType() FuelType { return e.fuelType }

// ChangeFuelType switches the engine to newFuel and returns it.
// A *FuelChangeError (ErrInvalidOperation) is returned, and the engine is left
// unchanged, when the engine is Electro or newFuel is Electro.
func (e *Engine) ChangeFuelType(newFuel FuelType) (FuelType, error) {
	if e.fuelType == FuelElectro || newFuel == FuelElectro {
		return "", &FuelChangeError{From: e.fuelType, To: newFuel}
	}
	if valid, errs := newFuel.IsValid(); !valid {
		return "", errs[0]
	}
	e.fuelType = newFuel
	return newFuel, nil
}
