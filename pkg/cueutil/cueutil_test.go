// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `
#Wheel: {
	diameter: int & >=14 & <=30
	tires:    "Summer" | "Winter" | "All-Seasoned"
}
`

type testWheel struct {
	Diameter int    `json:"diameter"`
	Tires    string `json:"tires"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	res, err := ParseAndDecode[testWheel]([]byte(testSchema), []byte(`diameter: 16, tires: "Summer"`), "#Wheel")
	if err != nil {
		t.Fatalf("ParseAndDecode() error = %v", err)
	}
	if res.Value.Diameter != 16 || res.Value.Tires != "Summer" {
		t.Errorf("ParseAndDecode() = %+v", res.Value)
	}
}

func TestParseAndDecode_SchemaViolation(t *testing.T) {
	t.Parallel()

	_, err := ParseAndDecode[testWheel]([]byte(testSchema), []byte(`diameter: 40, tires: "Summer"`), "#Wheel",
		WithFilename("wheel.cue"))
	if err == nil {
		t.Fatal("expected error for diameter 40")
	}
	if !strings.HasPrefix(err.Error(), "wheel.cue: ") {
		t.Errorf("error should start with the file name, got: %v", err)
	}
	if !strings.Contains(err.Error(), "diameter") {
		t.Errorf("error should name the field, got: %v", err)
	}
}

func TestParseAndDecode_Incomplete(t *testing.T) {
	t.Parallel()

	if _, err := ParseAndDecode[testWheel]([]byte(testSchema), []byte(`diameter: 16`), "#Wheel"); err == nil {
		t.Error("expected error for missing tires with concrete validation")
	}
}

func TestParseAndDecode_FileTooLarge(t *testing.T) {
	t.Parallel()

	_, err := ParseAndDecode[testWheel]([]byte(testSchema), []byte(`diameter: 16, tires: "Summer"`), "#Wheel",
		WithMaxFileSize(4), WithFilename("big.cue"))
	if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("expected size error, got: %v", err)
	}
}

func TestParseAndDecode_MissingDefinition(t *testing.T) {
	t.Parallel()

	_, err := ParseAndDecode[testWheel]([]byte(testSchema), []byte(`diameter: 16`), "#Car")
	if err == nil || !strings.Contains(err.Error(), "#Car") {
		t.Errorf("expected missing-definition error, got: %v", err)
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	if FormatError(nil, "x.cue") != nil {
		t.Error("FormatError(nil) should be nil")
	}

	root := errors.New("boom")
	err := FormatError(root, "x.cue")
	if !errors.Is(err, root) || !strings.HasPrefix(err.Error(), "x.cue: ") {
		t.Errorf("FormatError(non-CUE) = %v", err)
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"cars"}, "cars"},
		{[]string{"ui", "verbose"}, "ui.verbose"},
		{[]string{"cars", "0", "doors"}, "cars[0].doors"},
		{[]string{"cars", "2", "wheels", "3", "tires"}, "cars[2].wheels[3].tires"},
	}

	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 100), 100, "a.cue"); err != nil {
		t.Errorf("at limit: %v", err)
	}
	err := CheckFileSize(make([]byte, 101), 100, "a.cue")
	if err == nil || !strings.Contains(err.Error(), "101") || !strings.Contains(err.Error(), "a.cue") {
		t.Errorf("over limit: %v", err)
	}
}
