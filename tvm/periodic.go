/*
periodic.go - Per-period payment split (IPMT / PPMT)

The interest share of period `per` is the outstanding balance at the start
of that period times the rate. The balance is obtained by rolling the loan
forward per-1 periods with FV; the principal share is whatever remains of
the fixed payment.
*/
package tvm

// IPMT returns the interest portion of the payment for the given period.
// per counts from 1. Fails with ErrInvalidArgument when per is outside
// [1, nper].
func IPMT(rate float64, per, nper int, pv, fv float64, when PaymentTime) (float64, error) {
	if per <= 0 || per > nper {
		return 0, invalidArgument("IPMT", "period out of range")
	}

	// An advance payment in period 1 is made before any interest accrues.
	if when == Advance && per == 1 {
		return 0, nil
	}

	pmt := PMT(rate, float64(nper), pv, fv, when)

	// With advance timing the first payment comes straight off the
	// principal, and the remaining balance lags one extra period.
	skip := 1
	if when == Advance {
		pv += pmt
		skip = 2
	}

	balance := FV(rate, float64(per-skip), pmt, pv, Arrears)
	return balance * rate, nil
}

// PPMT returns the principal portion of the payment for the given period:
// the fixed payment minus its interest share.
func PPMT(rate float64, per, nper int, pv, fv float64, when PaymentTime) (float64, error) {
	if per <= 0 || per > nper {
		return 0, invalidArgument("PPMT", "period out of range")
	}
	ipmt, err := IPMT(rate, per, nper, pv, fv, when)
	if err != nil {
		return 0, err
	}
	return PMT(rate, float64(nper), pv, fv, when) - ipmt, nil
}
