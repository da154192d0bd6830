// SPDX-License-Identifier: MPL-2.0

// Package garagefile loads garage.cue files, which declare named cars, and
// builds car.Car values from them.
//
// A file is validated against the embedded #Garage schema before decoding;
// the schema mirrors the ranges of pkg/types and the enums of pkg/car, and
// car.New re-checks everything when a car is built.
package garagefile
