/*
errors.go - Error taxonomy for the TVM engine

Two failure classes exist:
  1. InvalidArgument - structurally invalid input (per out of range,
     guess <= -1, rate == -1 for NPV, empty cash-flow series, ...)
  2. Numeric - an iterative solver could not make progress or ran out of
     iterations before meeting tolerance

NPER's log-domain violation is a subtype of InvalidArgument: ErrLogDomain
matches both itself and ErrInvalidArgument under errors.Is.
*/
package tvm

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidArgument is returned when an input violates an operation's
	// precondition.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNumeric is returned when a solver cannot converge: a zero secant
	// slope that nudging does not resolve, or an exhausted iteration budget.
	ErrNumeric = errors.New("numeric error")

	// ErrLogDomain is returned by NPER when the intermediate discount terms
	// are non-positive, making the logarithmic solve undefined.
	ErrLogDomain = fmt.Errorf("%w: log domain violated", ErrInvalidArgument)
)

// =============================================================================
// STRUCTURED ERROR - Carries the failing operation
// =============================================================================

// Error identifies which operation failed and why. Unwrap exposes the
// sentinel so callers can classify with errors.Is.
type Error struct {
	Op   string // "NPER", "RATE", "IRR", ...
	Msg  string
	Kind error // ErrInvalidArgument, ErrNumeric, or ErrLogDomain
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func invalidArgument(op, msg string) error {
	return &Error{Op: op, Msg: msg, Kind: ErrInvalidArgument}
}

func numericError(op, msg string) error {
	return &Error{Op: op, Msg: msg, Kind: ErrNumeric}
}

func logDomainError(op, msg string) error {
	return &Error{Op: op, Msg: msg, Kind: ErrLogDomain}
}
