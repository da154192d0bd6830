// SPDX-License-Identifier: MPL-2.0

package car

type (
	// Snapshot is a plain-data copy of a Car for exporters.
	Snapshot struct {
		Make       string          `json:"make" toml:"make" yaml:"make"`
		Model      string          `json:"model" toml:"model" yaml:"model"`
		HorsePower int             `json:"horsepower" toml:"horsepower" yaml:"horsepower"`
		Fuel       string          `json:"fuel" toml:"fuel" yaml:"fuel"`
		Body       string          `json:"body" toml:"body" yaml:"body"`
		Doors      int             `json:"doors" toml:"doors" yaml:"doors"`
		Wheels     []WheelSnapshot `json:"wheels" toml:"wheels" yaml:"wheels"`
	}

	// WheelSnapshot is a plain-data copy of a Wheel.
	WheelSnapshot struct {
		Diameter int    `json:"diameter" toml:"diameter" yaml:"diameter"`
		Tires    string `json:"tires" toml:"tires" yaml:"tires"`
	}
)

// Snapshot copies the car's current state.
func (c *Car) Snapshot() Snapshot {
	s := Snapshot{
		Make:       c.make,
		Model:      c.model,
		HorsePower: c.engine.HorsePower().Int(),
		Fuel:       c.engine.FuelType().String(),
		Body:       c.body.BodyType().String(),
		Doors:      c.body.Doors().Int(),
		Wheels:     make([]WheelSnapshot, 0, len(c.wheels)),
	}
	for _, w := range c.wheels {
		s.Wheels = append(s.Wheels, WheelSnapshot{Diameter: w.diameter.Int(), Tires: w.tires.String()})
	}
	return s
}
