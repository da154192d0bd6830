// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers that fail the test on error instead of
// returning it: environment and directory management plus garage file
// fixtures.
package testutil
