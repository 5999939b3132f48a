/*
annuity.go - Closed-form annuity formulas

All four operations are algebraic rearrangements of the single annuity
identity:

  pv*(1+rate)^nper + pmt*(1+rate*type)*((1+rate)^nper - 1)/rate + fv = 0

PV, FV and PMT solve it directly for their variable. NPER needs logarithms:
with factor = pmt*(1+rate*type)/rate the identity collapses to

  (1+rate)^nper = (factor - fv) / (pv + factor)

so nper = (ln(factor-fv) - ln(pv+factor)) / ln(1+rate). When both log
arguments are negative the ratio is still positive, so both are negated;
when exactly one is non-positive the solve is undefined and NPER fails.

Every formula has a separate rate == 0 branch (no compounding, the identity
degenerates to pv + pmt*nper + fv = 0).
*/
package tvm

import "math"

// PV returns the present value of an annuity: what a stream of nper payments
// of pmt, plus a final balance fv, is worth today at the given per-period
// rate.
func PV(rate, nper, pmt, fv float64, when PaymentTime) float64 {
	if rate == 0 {
		return -pmt*nper - fv
	}
	pvif := math.Pow(1+rate, nper)
	return (-fv - pmt*when.factor(rate)*(pvif-1)/rate) / pvif
}

// FV returns the future value: the balance remaining after nper payments of
// pmt against a starting value pv.
func FV(rate, nper, pmt, pv float64, when PaymentTime) float64 {
	if rate == 0 {
		return -pv - pmt*nper
	}
	pvif := math.Pow(1+rate, nper)
	return -pv*pvif - pmt*when.factor(rate)*(pvif-1)/rate
}

// PMT returns the fixed per-period payment that amortizes pv down to -fv
// over nper periods.
func PMT(rate, nper, pv, fv float64, when PaymentTime) float64 {
	if rate == 0 {
		return -(pv + fv) / nper
	}
	pvif := math.Pow(1+rate, nper)
	return (-fv - pv*pvif) / (when.factor(rate) * (pvif - 1) / rate)
}

// NPER returns how many periods it takes for payments of pmt to carry pv to
// -fv. Fails with ErrInvalidArgument when rate == 0 and pmt == 0 (nothing
// ever changes), and with ErrLogDomain when the logarithmic solve is
// undefined for the given inputs.
func NPER(rate, pmt, pv, fv float64, when PaymentTime) (float64, error) {
	if rate == 0 {
		if pmt == 0 {
			return 0, invalidArgument("NPER", "cannot calculate NPER: pmt is zero at zero rate")
		}
		return -(pv + fv) / pmt, nil
	}
	if rate <= -1 {
		return 0, invalidArgument("NPER", "rate must be greater than -1")
	}

	factor := pmt * when.factor(rate) / rate
	a := factor - fv
	b := pv + factor
	if a < 0 && b < 0 {
		a, b = -a, -b
	}
	if a <= 0 || b <= 0 {
		return 0, logDomainError("NPER", "cannot calculate NPER")
	}
	return (math.Log(a) - math.Log(b)) / math.Log(1+rate), nil
}
