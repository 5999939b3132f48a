/*
irr.go - IRR: internal rate of return solver

Secant search for the rate at which internalPV (cashflow.go) values the
series to zero. Differences from the RATE solver that matter numerically:

  - The NPV tolerance scales with the series: epsNpv is the largest
    absolute cash flow times 1e-9, so a million-dollar series is not held
    to the same absolute residual as a hundred-dollar one.
  - Convergence needs BOTH the trial rates within 1e-7 of each other AND
    the residual below epsNpv.
  - A secant step that crosses -100% is clamped bisection-style to the
    midpoint of (rate1, -1); rates at or below -1 are meaningless.
  - The iteration budget is 40.
*/
package tvm

import "math"

const (
	irrMaxIterations = 40
	irrRateTolerance = 1e-7
	irrStep          = 1e-5
)

// IRR returns the internal rate of return of the cash-flow series, found by
// secant search seeded at guess. The series should contain at least one
// sign change; without one the search fails with ErrNumeric rather than
// being rejected up front. Fails with ErrInvalidArgument when guess <= -1
// or the series is empty.
func IRR(values []float64, guess float64) (float64, error) {
	if guess <= -1 {
		return 0, invalidArgument("IRR", "guess must be greater than -1")
	}
	if len(values) == 0 {
		return 0, invalidArgument("IRR", "at least one cash flow is required")
	}

	// Scale-aware residual tolerance.
	maxAbs := 0.0
	for _, v := range values {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	epsNpv := maxAbs * 1e-7 * 0.01

	rate0 := guess
	npv0 := internalPV(values, rate0)

	var rate1 float64
	if npv0 > 0 {
		rate1 = rate0 + irrStep
	} else {
		rate1 = rate0 - irrStep
	}
	if rate1 <= -1 {
		return 0, invalidArgument("IRR", "guess too close to -100%")
	}
	npv1 := internalPV(values, rate1)

	for i := 0; i < irrMaxIterations; i++ {
		if npv1 == npv0 {
			if rate1 > rate0 {
				rate0 -= irrStep
			} else {
				rate0 += irrStep
			}
			npv0 = internalPV(values, rate0)
			if npv1 == npv0 {
				return 0, numericError("IRR", "invalid values")
			}
		}

		rate0 = rate1 - (rate1-rate0)*npv1/(npv1-npv0)
		if rate0 <= -1 {
			rate0 = (rate1 - 1) / 2
		}
		npv0 = internalPV(values, rate0)

		if math.Abs(rate0-rate1) < irrRateTolerance && math.Abs(npv0) < epsNpv {
			return rate0, nil
		}

		rate0, rate1 = rate1, rate0
		npv0, npv1 = npv1, npv0
	}

	return 0, numericError("IRR", "iteration limit exceeded")
}
