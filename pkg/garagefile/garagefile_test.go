// SPDX-License-Identifier: MPL-2.0

package garagefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/garagekit/garage/pkg/car"
	"github.com/garagekit/garage/pkg/types"
)

const twoCars = `
cars: [{
	name:       "x5"
	make:       "BMW"
	model:      "X5"
	horsepower: 375
	fuel:       "Diesel"
	body:       "Sedan"
	doors:      4
	diameter:   16
	tires:      "Summer"
	wheels: [
		{diameter: 16, tires: "Summer"},
		{diameter: 16, tires: "Summer"},
		{diameter: 16, tires: "Summer"},
		{diameter: 16, tires: "Summer"},
	]
}, {
	name:       "leaf"
	make:       "Nissan"
	model:      "Leaf"
	horsepower: 147
	fuel:       "Electro"
	body:       "MPV"
	doors:      5
	diameter:   17
	tires:      "All-Seasoned"
	wheels: [{}, {}, {}]
}]
`

func TestParse(t *testing.T) {
	t.Parallel()

	gf, err := Parse([]byte(twoCars), "garage.cue")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := gf.Names(); len(got) != 2 || got[0] != "x5" || got[1] != "leaf" {
		t.Errorf("Names() = %v", got)
	}
	if gf.Path != "garage.cue" {
		t.Errorf("Path = %q", gf.Path)
	}

	x5, err := gf.Build("x5")
	if err != nil {
		t.Fatalf("Build(x5) error = %v", err)
	}
	info, err := x5.DisplayWheelInfo()
	if err != nil {
		t.Fatalf("DisplayWheelInfo() error = %v", err)
	}
	want := "Wheel1 Diameter: 16 inch, Wheel1 Tires: Summer, Wheel2 Diameter: 16 inch, Wheel2 Tires: Summer, " +
		"Wheel3 Diameter: 16 inch, Wheel3 Tires: Summer, Wheel4 Diameter: 16 inch, Wheel4 Tires: Summer"
	if info != want {
		t.Errorf("DisplayWheelInfo() = %q", info)
	}
}

func TestParse_WheelEntriesOnlyCounted(t *testing.T) {
	t.Parallel()

	gf, err := Parse([]byte(twoCars), "garage.cue")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	leaf, err := gf.Build("leaf")
	if err != nil {
		t.Fatalf("Build(leaf) error = %v", err)
	}
	wheels := leaf.Wheels()
	if len(wheels) != 3 {
		t.Fatalf("len(Wheels()) = %d, want 3", len(wheels))
	}
	if wheels[2].Diameter() != 17 || wheels[2].TireType() != car.TireAllSeasoned {
		t.Errorf("wheel 3 = (%d, %s)", wheels[2].Diameter(), wheels[2].TireType())
	}
	if leaf.DisplayCarBodyInfo() != "Body_type: MPV, Door: 5" {
		t.Errorf("DisplayCarBodyInfo() = %q", leaf.DisplayCarBodyInfo())
	}
}

func TestParse_SchemaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		replace [2]string
		field   string
	}{
		{"horsepower above range", [2]string{"horsepower: 375", "horsepower: 601"}, "horsepower"},
		{"doors above range", [2]string{"doors:      4", "doors:      9"}, "doors"},
		{"diameter below range", [2]string{"diameter:   17", "diameter:   13"}, "diameter"},
		{"unknown fuel", [2]string{`"Electro"`, `"Steam"`}, "fuel"},
		{"unknown body", [2]string{`"MPV"`, `"MVP"`}, "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := strings.Replace(twoCars, tt.replace[0], tt.replace[1], 1)
			_, err := Parse([]byte(src), "garage.cue")
			if err == nil {
				t.Fatal("expected schema error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error should mention %q, got: %v", tt.field, err)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte(`cars: []`), "garage.cue"); err == nil {
		t.Error("expected error for a garage without cars")
	}
}

func TestParse_DuplicateName(t *testing.T) {
	t.Parallel()

	src := strings.Replace(twoCars, `name:       "leaf"`, `name:       "x5"`, 1)
	_, err := Parse([]byte(src), "garage.cue")
	if !errors.Is(err, ErrDuplicateCarName) {
		t.Errorf("Parse() error = %v, want ErrDuplicateCarName", err)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	gf, err := Parse([]byte(twoCars), "garage.cue")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	first, err := gf.Lookup("")
	if err != nil || first.Name != "x5" {
		t.Errorf("Lookup(\"\") = %q, %v; want x5", first.Name, err)
	}

	_, err = gf.Build("beetle")
	var nfErr *CarNotFoundError
	if !errors.As(err, &nfErr) || !errors.Is(err, ErrCarNotFound) {
		t.Fatalf("Build(beetle) error = %v, want *CarNotFoundError", err)
	}
	if len(nfErr.Available) != 2 {
		t.Errorf("Available = %v", nfErr.Available)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(twoCars), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	gf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if gf.Path != path {
		t.Errorf("Path = %q, want %q", gf.Path, path)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.cue")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	c, err := Default().Build("")
	if err != nil {
		t.Fatalf("Default().Build() error = %v", err)
	}
	if c.Make() != "BMW" || c.Model() != "X5" {
		t.Errorf("default car = %s %s", c.Make(), c.Model())
	}
	if len(c.Wheels()) != car.DefaultWheelCount {
		t.Errorf("default car has %d wheels", len(c.Wheels()))
	}
	if c.Wheels()[0].Diameter() != 21 {
		t.Errorf("default diameter = %d, want 21", c.Wheels()[0].Diameter())
	}
}

func TestCarEntry_SpecRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	e := Default().Cars[0]
	e.HorsePower = 0
	if _, err := e.Spec(); !errors.Is(err, types.ErrInvalidHorsePower) {
		t.Errorf("Spec() error = %v, want ErrInvalidHorsePower", err)
	}
}
