/*
cashflow.go - Cash-flow valuation

Two evaluators with deliberately different discount conventions:

  evalNPV     forward discounting; the FIRST flow is already one period out,
              so a period-0 outflow gets discounted by (1+rate)^1. This is
              the spreadsheet NPV convention, not the "economist" one.

  internalPV  backward (Horner) discounting anchored at period 0; used as
              the residual for the IRR solver. Leading zero flows are
              skipped, which re-anchors period 0 at the first nonzero entry.

Both must keep their exact summation order: the solvers' convergence
behavior depends on reproducing the reference arithmetic bit for bit.
*/
package tvm

// NPV returns the net present value of the cash-flow series at the given
// per-period rate. Fails with ErrInvalidArgument when no values are supplied
// or rate == -1 (zero discount factor).
func NPV(rate float64, values ...float64) (float64, error) {
	if len(values) < 1 {
		return 0, invalidArgument("NPV", "at least one cash flow is required")
	}
	if rate == -1 {
		return 0, invalidArgument("NPV", "rate must not be -100%")
	}
	return evalNPV(rate, values, FilterNone), nil
}

// evalNPV discounts each flow by one more period than the last, starting at
// (1+rate)^1 for values[0]. Flows excluded by the filter still advance the
// discount factor.
func evalNPV(rate float64, values []float64, filter SignFilter) float64 {
	rs := 1.0
	npv := 0.0
	for _, v := range values {
		rs *= 1 + rate
		if filter.includes(v) {
			npv += v / rs
		}
	}
	return npv
}

// internalPV values the series at period 0 via Horner's scheme, equivalent
// to sum(values[t] / (1+rate)^t) with t=0 at the first nonzero entry.
func internalPV(values []float64, rate float64) float64 {
	first := 0
	for first < len(values) && values[first] == 0 {
		first++
	}
	if first == len(values) {
		return 0
	}

	npv := values[len(values)-1]
	for i := len(values) - 2; i >= first; i-- {
		npv = npv/(1+rate) + values[i]
	}
	return npv
}
