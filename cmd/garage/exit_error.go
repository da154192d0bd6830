// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/garagekit/garage/internal/issue"
	"github.com/garagekit/garage/pkg/car"
	"github.com/garagekit/garage/pkg/garagefile"
	"github.com/garagekit/garage/pkg/types"
)

// errBadArgument marks positional arguments and flag values that could not be parsed.
var errBadArgument = errors.New("bad argument")

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// failure is what the CLI knows about a domain error: how to exit, which
// help page to show and what to suggest.
type failure struct {
	code        types.ExitCode
	issueId     issue.Id
	suggestions []string
}

func classify(err error) failure {
	switch {
	case errors.Is(err, car.ErrInvalidOperation):
		return failure{
			code:        types.ExitRejected,
			issueId:     issue.FuelChangeRejectedId,
			suggestions: []string{"Only Petrol and Diesel engines can switch fuel, and only to each other"},
		}
	case errors.Is(err, car.ErrInconsistentWheels):
		return failure{
			code:        types.ExitInconsistent,
			issueId:     issue.WheelsInconsistentId,
			suggestions: []string{"Run 'garage rewheel <diameter> <tires>' without --wheel to fit a matching set"},
		}
	case errors.Is(err, types.ErrOutOfRange),
		errors.Is(err, car.ErrInvalidFuelType),
		errors.Is(err, car.ErrInvalidTireType),
		errors.Is(err, car.ErrInvalidBodyType):
		return failure{code: types.ExitBadInput, issueId: issue.ValueOutOfRangeId}
	case errors.Is(err, car.ErrWheelIndex), errors.Is(err, errBadArgument):
		return failure{code: types.ExitBadInput}
	case errors.Is(err, garagefile.ErrCarNotFound):
		return failure{
			code:        types.ExitFailure,
			issueId:     issue.CarNotFoundId,
			suggestions: []string{"Run 'garage list' to see the cars in the garage"},
		}
	default:
		return failure{code: types.ExitFailure}
	}
}

// commandError wraps a domain error with the operation that failed and the
// exit code its class maps to.
func commandError(operation, resource string, err error) error {
	if err == nil {
		return nil
	}
	f := classify(err)
	ae := issue.NewErrorContext().
		WithOperation(operation).
		WithResource(resource).
		WithIssue(f.issueId).
		WithSuggestions(f.suggestions...).
		Wrap(err).
		Build()
	return &ExitError{Code: f.code, Err: ae}
}

// badArgument reports an unparsable argument with exit code 2.
func badArgument(name, value string, err error) error {
	return commandError("parse "+name, value, fmt.Errorf("%w: %w", errBadArgument, err))
}

// exitCodeFor maps a command error to the process exit status.
func exitCodeFor(err error) types.ExitCode {
	if err == nil {
		return types.ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return classify(err).code
}
