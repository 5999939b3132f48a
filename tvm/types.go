/*
Package tvm implements time-value-of-money calculations: the closed-form
annuity formulas (PV, FV, PMT, NPER, IPMT, PPMT), cash-flow valuation (NPV),
and the two iterative solvers (RATE, IRR).

NUMERIC CONTRACT:
  Results match Excel's financial functions to 8 decimal places. Everything
  is float64 on purpose: the solvers and discount loops must reproduce
  spreadsheet-specific rounding behavior, which decimal arithmetic would
  change.

CONVENTIONS:
  - Cash flows are signed; the outflow convention is negative (a loan you
    receive is positive pv, the payments you make come back negative).
  - rate is the per-period rate as a fraction (5.25% annual paid monthly
    is 0.0525/12).
  - Payment timing is Arrears (end of period) or Advance (start of period).
    Advance payments earn one extra period of interest, expressed everywhere
    through the multiplier (1 + rate*type).

PURITY:
  Every operation is a pure function of its arguments. No shared state, no
  I/O; calls are safe to make concurrently without coordination. The only
  runtime bound is the solvers' fixed iteration ceilings.

SEE ALSO:
  - annuity.go:  PV, FV, PMT, NPER
  - periodic.go: IPMT, PPMT
  - cashflow.go: NPV and the residual evaluators
  - rate.go:     RATE secant solver
  - irr.go:      IRR secant solver
*/
package tvm

// =============================================================================
// PAYMENT TIMING
// =============================================================================

// PaymentTime says when within a period a payment falls due.
type PaymentTime int

const (
	// Arrears: payment due at the end of each period (the spreadsheet
	// default, type=0).
	Arrears PaymentTime = 0

	// Advance: payment due at the start of each period (annuity due, type=1).
	Advance PaymentTime = 1
)

// factor is the timing multiplier (1 + rate*type): 1 for arrears, 1+rate for
// advance. An advance payment accrues one extra period of interest.
func (t PaymentTime) factor(rate float64) float64 {
	return 1 + rate*float64(t)
}

// =============================================================================
// SOLVER DEFAULTS
// =============================================================================

// DefaultGuess is the seed rate for RATE and IRR when the caller has no
// better starting point.
const DefaultGuess = 0.1

// =============================================================================
// SIGN FILTERING
// =============================================================================

// SignFilter selects which cash flows a valuation includes. The public NPV
// always uses FilterNone; the filter exists as an extension point for
// evaluators that value only inflows or only outflows.
type SignFilter int

const (
	FilterNone SignFilter = iota
	FilterPositiveOnly
	FilterNegativeOnly
)

func (f SignFilter) includes(value float64) bool {
	switch f {
	case FilterPositiveOnly:
		return value > 0
	case FilterNegativeOnly:
		return value < 0
	default:
		return true
	}
}
