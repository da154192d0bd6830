// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustSetenvRestores(t *testing.T) {
	const key = "GARAGE_TESTUTIL_PROBE"

	restore := MustSetenv(t, key, "one")
	if got := os.Getenv(key); got != "one" {
		t.Fatalf("Getenv = %q, want one", got)
	}
	restore()
	if _, ok := os.LookupEnv(key); ok {
		t.Errorf("%s should be unset after restore", key)
	}
}

func TestMustUnsetenvRestores(t *testing.T) {
	const key = "GARAGE_TESTUTIL_PROBE2"

	t.Cleanup(MustSetenv(t, key, "kept"))
	restore := MustUnsetenv(t, key)
	if _, ok := os.LookupEnv(key); ok {
		t.Fatalf("%s should be unset", key)
	}
	restore()
	if got := os.Getenv(key); got != "kept" {
		t.Errorf("Getenv = %q, want kept", got)
	}
}

func TestMustWriteAndReadFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")
	path := MustWriteFile(t, dir, "garage.cue", X5GarageFile)
	if path != filepath.Join(dir, "garage.cue") {
		t.Errorf("path = %q", path)
	}
	if got := MustReadFile(t, path); got != X5GarageFile {
		t.Errorf("MustReadFile() = %q", got)
	}
}

func TestMustChdirRestores(t *testing.T) {
	before, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	restore := MustChdir(t, dir)
	got, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if resolved, _ := filepath.EvalSymlinks(got); resolved != dir {
		t.Errorf("Getwd() = %q, want %q", resolved, dir)
	}
	restore()
	if got, _ := os.Getwd(); got != before {
		t.Errorf("Getwd() after restore = %q, want %q", got, before)
	}
}
