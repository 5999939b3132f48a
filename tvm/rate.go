/*
rate.go - RATE: periodic interest rate solver

The annuity identity cannot be inverted for rate algebraically, so RATE
runs a secant search on the residual

  evalRate(r) = pv*(1+r)^nper + pmt*(1+r*type)*((1+r)^nper - 1)/r + fv

which is zero at the rate that makes the schedule balance. The protocol:

  1. Seed the bracket from the guess: the second trial point is guess/2
     when the residual is positive, guess*2 otherwise.
  2. Secant update rate0 <- rate1 - (rate1-rate0)*y1/(y1-y0).
  3. Equal ordinates (undefined slope) are resolved by nudging rate0 away
     from rate1 by a fixed 1e-5; if the ordinates are still equal the
     search fails.
  4. Converged when |evalRate(rate0)| < 1e-7; otherwise the trial points
     swap and the search continues, up to 128 iterations.
*/
package tvm

import "math"

const (
	rateMaxIterations = 128
	rateTolerance     = 1e-7
	rateNudge         = 1e-5
)

// Rate returns the per-period interest rate implied by a fixed payment
// schedule, found by secant search seeded at guess. Fails with
// ErrInvalidArgument when nper <= 0 and with ErrNumeric when the search
// stalls or exhausts its iteration budget.
func Rate(nper, pmt, pv, fv float64, when PaymentTime, guess float64) (float64, error) {
	if nper <= 0 {
		return 0, invalidArgument("RATE", "nper must be positive")
	}

	rate0 := guess
	y0 := evalRate(rate0, nper, pmt, pv, fv, when)

	var rate1 float64
	if y0 > 0 {
		rate1 = rate0 / 2
	} else {
		rate1 = rate0 * 2
	}
	y1 := evalRate(rate1, nper, pmt, pv, fv, when)

	for i := 0; i < rateMaxIterations; i++ {
		if y1 == y0 {
			if rate1 > rate0 {
				rate0 -= rateNudge
			} else {
				rate0 += rateNudge
			}
			y0 = evalRate(rate0, nper, pmt, pv, fv, when)
			if y1 == y0 {
				return 0, numericError("RATE", "#NUM!")
			}
		}

		rate0 = rate1 - (rate1-rate0)*y1/(y1-y0)
		y0 = evalRate(rate0, nper, pmt, pv, fv, when)
		if math.Abs(y0) < rateTolerance {
			return rate0, nil
		}

		rate0, rate1 = rate1, rate0
		y0, y1 = y1, y0
	}

	return 0, numericError("RATE", "did not converge")
}

// evalRate is the annuity residual: zero exactly when rate balances the
// schedule. At rate == 0 the identity degenerates to pv + pmt*nper + fv.
func evalRate(rate, nper, pmt, pv, fv float64, when PaymentTime) float64 {
	if rate == 0 {
		return pv + pmt*nper + fv
	}
	pvif := math.Pow(1+rate, nper)
	return pv*pvif + pmt*when.factor(rate)*(pvif-1)/rate + fv
}
