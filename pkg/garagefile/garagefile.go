// SPDX-License-Identifier: MPL-2.0

package garagefile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/garagekit/garage/pkg/car"
	"github.com/garagekit/garage/pkg/cueutil"
	"github.com/garagekit/garage/pkg/types"
)

// FileName is the default garage file name looked up in the working directory.
const FileName = "garage.cue"

//go:embed garage_schema.cue
var schema []byte

var (
	// ErrCarNotFound is the sentinel wrapped by CarNotFoundError.
	ErrCarNotFound = errors.New("car not found")
	// ErrDuplicateCarName is returned when two cars share a name.
	ErrDuplicateCarName = errors.New("duplicate car name")
)

type (
	// GarageFile is the decoded form of a garage.cue file.
	GarageFile struct {
		// Path is where the file was read from; empty for the built-in garage.
		Path string     `json:"-"`
		Cars []CarEntry `json:"cars"`
	}

	// CarEntry declares one car.
	CarEntry struct {
		Name       string       `json:"name"`
		Make       string       `json:"make"`
		Model      string       `json:"model"`
		HorsePower int          `json:"horsepower"`
		Fuel       string       `json:"fuel"`
		Body       string       `json:"body"`
		Doors      int          `json:"doors"`
		Diameter   int          `json:"diameter"`
		Tires      string       `json:"tires"`
		Wheels     []WheelEntry `json:"wheels,omitempty"`
	}

	// WheelEntry is a per-wheel declaration. Its fields are accepted for
	// documentation but only the number of entries matters.
	WheelEntry struct {
		Diameter int    `json:"diameter,omitempty"`
		Tires    string `json:"tires,omitempty"`
	}

	// CarNotFoundError is returned by Lookup and Build for an unknown name.
	CarNotFoundError struct {
		Name      string
		Available []string
	}
)

// Error implements the error interface for CarNotFoundError.
func (e *CarNotFoundError) Error() string {
	return fmt.Sprintf("car %q not found (available: %v)", e.Name, e.Available)
}

// Unwrap returns ErrCarNotFound for errors.Is() compatibility.
func (e *CarNotFoundError) Unwrap() error { return ErrCarNotFound }

// Parse decodes and validates garage file contents. filename is used only in
// error messages.
func Parse(data []byte, filename string) (*GarageFile, error) {
	res, err := cueutil.ParseAndDecode[GarageFile](schema, data, "#Garage", cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}
	gf := res.Value
	gf.Path = filename

	seen := make(map[string]int, len(gf.Cars))
	for i, c := range gf.Cars {
		if first, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("%s: cars[%d]: %w %q (same as cars[%d])", filename, i, ErrDuplicateCarName, c.Name, first)
		}
		seen[c.Name] = i
	}
	return gf, nil
}

// Load reads and parses the garage file at path.
func Load(path string) (*GarageFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read garage file: %w", err)
	}
	return Parse(data, path)
}

// Default returns the built-in garage: the reference BMW X5 on 21" summer wheels.
func Default() *GarageFile {
	return &GarageFile{
		Cars: []CarEntry{{
			Name:       "x5",
			Make:       "BMW",
			Model:      "X5",
			HorsePower: 375,
			Fuel:       string(car.FuelDiesel),
			Body:       string(car.BodySedan),
			Doors:      4,
			Diameter:   21,
			Tires:      string(car.TireSummer),
		}},
	}
}

// Names returns the car names in declaration order.
func (g *GarageFile) Names() []string {
	names := make([]string, 0, len(g.Cars))
	for _, c := range g.Cars {
		names = append(names, c.Name)
	}
	return names
}

// Lookup returns the entry called name. An empty name selects the first car.
func (g *GarageFile) Lookup(name string) (CarEntry, error) {
	if name == "" && len(g.Cars) > 0 {
		return g.Cars[0], nil
	}
	i := slices.IndexFunc(g.Cars, func(c CarEntry) bool { return c.Name == name })
	if i < 0 {
		return CarEntry{}, &CarNotFoundError{Name: name, Available: g.Names()}
	}
	return g.Cars[i], nil
}

// Build constructs the car called name (the first car when name is empty).
func (g *GarageFile) Build(name string) (*car.Car, error) {
	entry, err := g.Lookup(name)
	if err != nil {
		return nil, err
	}
	c, err := entry.Build()
	if err != nil {
		return nil, fmt.Errorf("car %q: %w", entry.Name, err)
	}
	return c, nil
}

// WheelCount is the number of wheels the entry produces.
func (e CarEntry) WheelCount() int {
	if len(e.Wheels) == 0 {
		return car.DefaultWheelCount
	}
	return len(e.Wheels)
}

// Spec converts the entry into a car.Spec, validating every scalar.
func (e CarEntry) Spec() (car.Spec, error) {
	hp, err := types.NewHorsePower(e.HorsePower)
	if err != nil {
		return car.Spec{}, err
	}
	doors, err := types.NewDoor(e.Doors)
	if err != nil {
		return car.Spec{}, err
	}
	diameter, err := types.NewDiameter(e.Diameter)
	if err != nil {
		return car.Spec{}, err
	}
	fuel, err := car.ParseFuelType(e.Fuel)
	if err != nil {
		return car.Spec{}, err
	}
	body, err := car.ParseBodyType(e.Body)
	if err != nil {
		return car.Spec{}, err
	}
	tires, err := car.ParseTireType(e.Tires)
	if err != nil {
		return car.Spec{}, err
	}

	return car.Spec{
		Make:       e.Make,
		Model:      e.Model,
		HorsePower: hp,
		Fuel:       fuel,
		Body:       body,
		Doors:      doors,
		Diameter:   diameter,
		Tires:      tires,
		Wheels:     make([]*car.Wheel, e.WheelCount()),
	}, nil
}

// Build constructs the car described by the entry.
func (e CarEntry) Build() (*car.Car, error) {
	spec, err := e.Spec()
	if err != nil {
		return nil, err
	}
	return car.New(spec)
}
