/*
examples.go - Worked-example catalog

A small catalog of canonical calculations, one or two per operation, for
calculator frontends to show as presets. Results are computed by the
engine at request time rather than hard-coded, so the catalog can never
drift from the implementation.
*/
package api

import (
	"net/http"

	"github.com/warp/finance-engine/tvm"
)

// ListExamples returns the worked-example catalog.
// GET /api/examples
func (h *Handler) ListExamples(w http.ResponseWriter, r *http.Request) {
	examples := []ExampleDTO{
		{
			Operation:   "PV",
			Description: "Present value of five annual payments of 6000 at 5.25%",
			Request:     AnnuityRequest{Rate: 0.0525, Nper: 5, Pmt: 6000},
			Result:      tvm.PV(0.0525, 5, 6000, 0, tvm.Arrears),
		},
		{
			Operation:   "PV",
			Description: "Lease valued with advance payments (type=1)",
			Request:     AnnuityRequest{Rate: 0.006875, Nper: 60, Pmt: 3250, Type: 1},
			Result:      tvm.PV(0.006875, 60, 3250, 0, tvm.Advance),
		},
		{
			Operation:   "PMT",
			Description: "Payment to repay a 10000 loan over 5 periods at 5.25%",
			Request:     AnnuityRequest{Rate: 0.0525, Nper: 5, Pv: -10000},
			Result:      tvm.PMT(0.0525, 5, -10000, 0, tvm.Arrears),
		},
		{
			Operation:   "FV",
			Description: "Balance after 24 monthly deposits of 250 at 0.4%/month",
			Request:     AnnuityRequest{Rate: 0.004, Nper: 24, Pmt: -250},
			Result:      tvm.FV(0.004, 24, -250, 0, tvm.Arrears),
		},
		{
			Operation:   "IRR",
			Description: "Return on 1500 invested, paying back 500 for four periods",
			Request:     IRRRequest{Values: []float64{-1500, 500, 500, 500, 500}},
			Result:      mustSolve(tvm.IRR([]float64{-1500, 500, 500, 500, 500}, tvm.DefaultGuess)),
		},
		{
			Operation:   "NPV",
			Description: "Same series valued at an 8% discount rate",
			Request:     CashFlowRequest{Rate: 0.08, Values: []float64{-1500, 500, 500, 500, 500}},
			Result:      mustSolve(tvm.NPV(0.08, -1500, 500, 500, 500, 500)),
		},
		{
			Operation:   "RATE",
			Description: "Implied rate of a 10000 loan repaid by five payments of 2325.73",
			Request:     AnnuityRequest{Nper: 5, Pmt: 2325.73, Pv: -10000},
			Result:      mustSolve(tvm.Rate(5, 2325.73, -10000, 0, tvm.Arrears, tvm.DefaultGuess)),
		},
	}

	writeJSON(w, http.StatusOK, examples)
}

// mustSolve panics on error; only used for catalog entries known to
// converge.
func mustSolve(v float64, err error) float64 {
	if err != nil {
		panic(err)
	}
	return v
}
