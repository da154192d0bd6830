// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestBoundedConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		construct func(int) error
		bounds    Bounds
		sentinel  error
	}{
		{
			name:      "horsepower",
			construct: func(v int) error { _, err := NewHorsePower(v); return err },
			bounds:    HorsePowerBounds,
			sentinel:  ErrInvalidHorsePower,
		},
		{
			name:      "door",
			construct: func(v int) error { _, err := NewDoor(v); return err },
			bounds:    DoorBounds,
			sentinel:  ErrInvalidDoor,
		},
		{
			name:      "diameter",
			construct: func(v int) error { _, err := NewDiameter(v); return err },
			bounds:    DiameterBounds,
			sentinel:  ErrInvalidDiameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Sweep a window around both edges of the interval.
			for v := tt.bounds.Min - 3; v <= tt.bounds.Max+3; v++ {
				err := tt.construct(v)
				wantOK := v >= tt.bounds.Min && v <= tt.bounds.Max
				if wantOK && err != nil {
					t.Errorf("%s(%d) returned error: %v", tt.name, v, err)
					continue
				}
				if wantOK {
					continue
				}
				if err == nil {
					t.Errorf("%s(%d) succeeded, want out-of-range error", tt.name, v)
					continue
				}
				if !errors.Is(err, ErrOutOfRange) {
					t.Errorf("%s(%d) error should wrap ErrOutOfRange, got: %v", tt.name, v, err)
				}
				if !errors.Is(err, tt.sentinel) {
					t.Errorf("%s(%d) error should wrap %v, got: %v", tt.name, v, tt.sentinel, err)
				}
				var rangeErr *OutOfRangeError
				if !errors.As(err, &rangeErr) {
					t.Fatalf("%s(%d) error should be *OutOfRangeError, got: %T", tt.name, v, err)
				}
				if rangeErr.Value != v || rangeErr.Bounds != tt.bounds {
					t.Errorf("OutOfRangeError = %+v, want value %d bounds %v", rangeErr, v, tt.bounds)
				}
			}
		})
	}
}

func TestBoundedConstructors_ReturnValue(t *testing.T) {
	t.Parallel()

	hp, err := NewHorsePower(375)
	if err != nil || hp != HorsePower(375) {
		t.Errorf("NewHorsePower(375) = %v, %v", hp, err)
	}
	doors, err := NewDoor(4)
	if err != nil || doors != Door(4) {
		t.Errorf("NewDoor(4) = %v, %v", doors, err)
	}
	d, err := NewDiameter(16)
	if err != nil || d != Diameter(16) {
		t.Errorf("NewDiameter(16) = %v, %v", d, err)
	}
	if d.String() != "16" || d.Int() != 16 {
		t.Errorf("Diameter(16) renders as %q / %d", d.String(), d.Int())
	}
}

func TestBoundedConstructors_FailureReturnsZero(t *testing.T) {
	t.Parallel()

	if hp, err := NewHorsePower(601); err == nil || hp != 0 {
		t.Errorf("NewHorsePower(601) = %v, %v; want 0 and error", hp, err)
	}
	if d, err := NewDoor(0); err == nil || d != 0 {
		t.Errorf("NewDoor(0) = %v, %v; want 0 and error", d, err)
	}
	if d, err := NewDiameter(31); err == nil || d != 0 {
		t.Errorf("NewDiameter(31) = %v, %v; want 0 and error", d, err)
	}
}

func TestValidate_ConvertedValues(t *testing.T) {
	t.Parallel()

	if err := HorsePower(0).Validate(); !errors.Is(err, ErrInvalidHorsePower) {
		t.Errorf("HorsePower(0).Validate() = %v, want ErrInvalidHorsePower", err)
	}
	if err := Door(9).Validate(); !errors.Is(err, ErrInvalidDoor) {
		t.Errorf("Door(9).Validate() = %v, want ErrInvalidDoor", err)
	}
	if err := Diameter(13).Validate(); !errors.Is(err, ErrInvalidDiameter) {
		t.Errorf("Diameter(13).Validate() = %v, want ErrInvalidDiameter", err)
	}
	if err := Diameter(30).Validate(); err != nil {
		t.Errorf("Diameter(30).Validate() = %v, want nil", err)
	}
}

func TestOutOfRangeError_Message(t *testing.T) {
	t.Parallel()

	_, err := NewHorsePower(700)
	want := "wrong number of hp: 700 (must be in range 1-600)"
	if err == nil || err.Error() != want {
		t.Errorf("NewHorsePower(700) error = %v, want %q", err, want)
	}
}

func TestBounds_String(t *testing.T) {
	t.Parallel()

	if got := DiameterBounds.String(); got != "[14,30]" {
		t.Errorf("DiameterBounds.String() = %q, want %q", got, "[14,30]")
	}
}
