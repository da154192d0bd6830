// SPDX-License-Identifier: MPL-2.0

// Package car models a car as a composition of validated value objects: an
// Engine, a CarBody and a sequence of Wheels, aggregated by Car.
//
// Construction is the validation boundary. Bounded scalars come from
// pkg/types and are re-validated when they enter an Engine, CarBody or
// Wheel. Mutation is limited to Engine.ChangeFuelType, Wheel.ChangeWheel and
// Car.ChangeAllWheels.
//
// Wheel uniformity is not enforced when wheels are edited. Car.CheckWheels
// and Car.DisplayWheelInfo verify it on read, so a car may be transiently
// inconsistent between single-wheel edits.
//
// Nothing in this package is safe for concurrent mutation.
package car
