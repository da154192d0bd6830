// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"strconv"
)

const (
	// ExitOK means the command completed.
	ExitOK ExitCode = 0
	// ExitFailure is the catch-all failure code.
	ExitFailure ExitCode = 1
	// ExitBadInput means an argument or a bounded value (horsepower, doors,
	// diameter, enum name) was rejected.
	ExitBadInput ExitCode = 2
	// ExitRejected means the model refused an operation (e.g. an Electro fuel change).
	ExitRejected ExitCode = 3
	// ExitInconsistent means the wheel consistency check failed.
	ExitInconsistent ExitCode = 4
)

// ErrInvalidExitCode is wrapped by the OutOfRangeError returned for exit codes.
var ErrInvalidExitCode = errors.New("invalid exit code")

// ExitCodeBounds is the POSIX exit status range.
var ExitCodeBounds = Bounds{Min: 0, Max: 255}

// ExitCode represents a process exit status code.
// The zero value (0) means success.
type ExitCode int

// Validate returns an error if the ExitCode is outside [0,255].
func (c ExitCode) Validate() error {
	return ExitCodeBounds.check("exit code", int(c), ErrInvalidExitCode)
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == ExitOK }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
