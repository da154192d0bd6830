// SPDX-License-Identifier: MPL-2.0

// Package cueutil holds the CUE decoding flow shared by the garage file
// parser and the config loader:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with the schema's root definition
//  3. Validate and decode into a Go value
//
// Errors are reported as "<file>: <json-path>: <message>" so that a bad
// horsepower in the third car reads "garage.cue: cars[2].horsepower: ...".
//
//	//go:embed garage_schema.cue
//	var schema []byte
//
//	res, err := cueutil.ParseAndDecode[GarageFile](schema, data, "#Garage",
//		cueutil.WithFilename("garage.cue"))
package cueutil
