/*
handlers.go - HTTP handlers for the TVM engine

PURPOSE:
  Exposes the engine via REST. Handlers decode JSON, apply the documented
  parameter defaults, call the engine, record the calculation in history,
  and translate typed engine errors to HTTP statuses.

ENDPOINTS:
  POST /api/tvm/pv     Present value
  POST /api/tvm/fv     Future value
  POST /api/tvm/pmt    Fixed payment
  POST /api/tvm/nper   Period count
  POST /api/tvm/ipmt   Interest portion of a period's payment
  POST /api/tvm/ppmt   Principal portion of a period's payment
  POST /api/tvm/npv    Net present value of a cash-flow series
  POST /api/tvm/irr    Internal rate of return
  POST /api/tvm/rate   Periodic interest rate
  POST /api/loans/schedule   Amortization schedule (cache-backed)
  GET  /api/history    Recent calculations
  GET  /api/examples   Worked examples per operation

ERROR HANDLING:
  - 400: invalid JSON, invalid payment type, engine ErrInvalidArgument
  - 422: engine ErrNumeric (solver could not converge)
  - 500: storage failures

HISTORY:
  Every engine call is recorded, successes and failures alike. A failed
  history write is logged but never fails the calculation (the audit trail
  is best-effort, the result is not).

SEE ALSO:
  - dto.go: Request/response shapes
  - server.go: Router setup and middleware
  - examples.go: The worked-example catalog
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/warp/finance-engine/cache"
	"github.com/warp/finance-engine/loan"
	"github.com/warp/finance-engine/store/sqlite"
	"github.com/warp/finance-engine/tvm"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
	Cache cache.Cache

	// seq disambiguates history IDs minted in the same nanosecond.
	seq atomic.Uint64
}

// NewHandler creates a handler with the given store and cache.
func NewHandler(store *sqlite.Store, c cache.Cache) *Handler {
	return &Handler{Store: store, Cache: c}
}

// =============================================================================
// ANNUITY HANDLERS
// =============================================================================

// CalcPV computes the present value of an annuity.
func (h *Handler) CalcPV(w http.ResponseWriter, r *http.Request) {
	var req AnnuityRequest
	if !h.decode(w, r, &req) {
		return
	}
	when, ok := paymentTime(w, req.Type)
	if !ok {
		return
	}

	result := tvm.PV(req.Rate, req.Nper, req.Pmt, req.Fv, when)
	h.record(r, "PV", req, &result, nil)
	writeJSON(w, http.StatusOK, ResultDTO{Operation: "PV", Result: result})
}

// CalcFV computes the future value of an annuity.
func (h *Handler) CalcFV(w http.ResponseWriter, r *http.Request) {
	var req AnnuityRequest
	if !h.decode(w, r, &req) {
		return
	}
	when, ok := paymentTime(w, req.Type)
	if !ok {
		return
	}

	result := tvm.FV(req.Rate, req.Nper, req.Pmt, req.Pv, when)
	h.record(r, "FV", req, &result, nil)
	writeJSON(w, http.StatusOK, ResultDTO{Operation: "FV", Result: result})
}

// CalcPMT computes the fixed per-period payment.
func (h *Handler) CalcPMT(w http.ResponseWriter, r *http.Request) {
	var req AnnuityRequest
	if !h.decode(w, r, &req) {
		return
	}
	when, ok := paymentTime(w, req.Type)
	if !ok {
		return
	}

	result := tvm.PMT(req.Rate, req.Nper, req.Pv, req.Fv, when)
	h.record(r, "PMT", req, &result, nil)
	writeJSON(w, http.StatusOK, ResultDTO{Operation: "PMT", Result: result})
}

// CalcNPER computes the number of periods.
func (h *Handler) CalcNPER(w http.ResponseWriter, r *http.Request) {
	var req AnnuityRequest
	if !h.decode(w, r, &req) {
		return
	}
	when, ok := paymentTime(w, req.Type)
	if !ok {
		return
	}

	result, err := tvm.NPER(req.Rate, req.Pmt, req.Pv, req.Fv, when)
	h.respondCalculation(w, r, "NPER", req, result, err)
}

// CalcRATE solves for the periodic interest rate.
func (h *Handler) CalcRATE(w http.ResponseWriter, r *http.Request) {
	var req AnnuityRequest
	if !h.decode(w, r, &req) {
		return
	}
	when, ok := paymentTime(w, req.Type)
	if !ok {
		return
	}

	result, err := tvm.Rate(req.Nper, req.Pmt, req.Pv, req.Fv, when, guessOrDefault(req.Guess))
	h.respondCalculation(w, r, "RATE", req, result, err)
}

// =============================================================================
// PERIODIC SPLIT HANDLERS
// =============================================================================

// CalcIPMT computes the interest portion of a period's payment.
func (h *Handler) CalcIPMT(w http.ResponseWriter, r *http.Request) {
	var req PeriodicRequest
	if !h.decode(w, r, &req) {
		return
	}
	when, ok := paymentTime(w, req.Type)
	if !ok {
		return
	}

	result, err := tvm.IPMT(req.Rate, req.Per, req.Nper, req.Pv, req.Fv, when)
	h.respondCalculation(w, r, "IPMT", req, result, err)
}

// CalcPPMT computes the principal portion of a period's payment.
func (h *Handler) CalcPPMT(w http.ResponseWriter, r *http.Request) {
	var req PeriodicRequest
	if !h.decode(w, r, &req) {
		return
	}
	when, ok := paymentTime(w, req.Type)
	if !ok {
		return
	}

	result, err := tvm.PPMT(req.Rate, req.Per, req.Nper, req.Pv, req.Fv, when)
	h.respondCalculation(w, r, "PPMT", req, result, err)
}

// =============================================================================
// CASH-FLOW HANDLERS
// =============================================================================

// CalcNPV computes the net present value of a cash-flow series.
func (h *Handler) CalcNPV(w http.ResponseWriter, r *http.Request) {
	var req CashFlowRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := tvm.NPV(req.Rate, req.Values...)
	h.respondCalculation(w, r, "NPV", req, result, err)
}

// CalcIRR solves for the internal rate of return.
func (h *Handler) CalcIRR(w http.ResponseWriter, r *http.Request) {
	var req IRRRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := tvm.IRR(req.Values, guessOrDefault(req.Guess))
	h.respondCalculation(w, r, "IRR", req, result, err)
}

// =============================================================================
// LOAN SCHEDULE HANDLER
// =============================================================================

// LoanSchedule returns a full amortization schedule. Schedules are the one
// expensive-to-serialize response, so they go through the cache.
func (h *Handler) LoanSchedule(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if !h.decode(w, r, &req) {
		return
	}

	key := fmt.Sprintf("schedule:%s:%s:%d",
		strconv.FormatFloat(req.Principal, 'g', -1, 64),
		strconv.FormatFloat(req.AnnualRatePercent, 'g', -1, 64),
		req.TermMonths,
	)
	if cached, ok := h.Cache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	entries, err := loan.Schedule(req.Principal, req.AnnualRatePercent, req.TermMonths)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid schedule request", err)
		return
	}
	summary := loan.Summarize(entries)

	dto := ScheduleDTO{
		MonthlyPayment: summary.MonthlyPayment.StringFixed(2),
		TotalPaid:      summary.TotalPaid.StringFixed(2),
		TotalInterest:  summary.TotalInterest.StringFixed(2),
		Entries:        make([]ScheduleEntryDTO, len(entries)),
	}
	for i, e := range entries {
		dto.Entries[i] = ScheduleEntryDTO{
			Period:           e.Period,
			Payment:          e.Payment.StringFixed(2),
			Interest:         e.Interest.StringFixed(2),
			Principal:        e.Principal.StringFixed(2),
			RemainingBalance: e.RemainingBalance.StringFixed(2),
		}
	}

	if body, err := json.Marshal(dto); err == nil {
		if err := h.Cache.Set(r.Context(), key, string(body)); err != nil {
			log.Printf("Warning: failed to cache schedule: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// HISTORY AND EXAMPLES
// =============================================================================

// GetHistory returns recent calculations, newest first.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := h.Store.ListCalculations(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list calculations", err)
		return
	}

	dtos := make([]CalculationDTO, len(records))
	for i, rec := range records {
		dtos[i] = CalculationDTO{
			ID:        rec.ID,
			Operation: rec.Operation,
			Inputs:    rec.InputsJSON,
			Result:    rec.Result,
			Error:     rec.Error,
			CreatedAt: rec.CreatedAt.Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// HELPERS
// =============================================================================

// respondCalculation records the outcome and writes either the result or
// the engine error mapped to the right status.
func (h *Handler) respondCalculation(w http.ResponseWriter, r *http.Request, op string, inputs any, result float64, err error) {
	if err != nil {
		h.record(r, op, inputs, nil, err)
		writeError(w, statusForError(err), "Calculation failed", err)
		return
	}
	h.record(r, op, inputs, &result, nil)
	writeJSON(w, http.StatusOK, ResultDTO{Operation: op, Result: result})
}

// record appends to the calculation history. Best-effort: failures are
// logged, never surfaced.
func (h *Handler) record(r *http.Request, op string, inputs any, result *float64, calcErr error) {
	inputsJSON, err := json.Marshal(inputs)
	if err != nil {
		inputsJSON = []byte("{}")
	}

	rec := sqlite.CalculationRecord{
		ID:         h.nextCalculationID(),
		Operation:  op,
		InputsJSON: string(inputsJSON),
		Result:     result,
		CreatedAt:  time.Now(),
	}
	if calcErr != nil {
		rec.Error = calcErr.Error()
	}

	if err := h.Store.SaveCalculation(r.Context(), rec); err != nil {
		log.Printf("Warning: failed to save calculation history: %v", err)
	}
}

// nextCalculationID mints a history ID. The atomic sequence keeps IDs
// unique even when concurrent requests land in the same nanosecond.
func (h *Handler) nextCalculationID() string {
	return fmt.Sprintf("calc-%d-%d", time.Now().UnixNano(), h.seq.Add(1))
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

// paymentTime validates the JSON type field (0 = arrears, 1 = advance).
func paymentTime(w http.ResponseWriter, t int) (tvm.PaymentTime, bool) {
	switch t {
	case 0:
		return tvm.Arrears, true
	case 1:
		return tvm.Advance, true
	default:
		writeError(w, http.StatusBadRequest, "Invalid payment type", fmt.Errorf("type must be 0 or 1, got %d", t))
		return 0, false
	}
}

func guessOrDefault(g *float64) float64 {
	if g == nil {
		return tvm.DefaultGuess
	}
	return *g
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, tvm.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, tvm.ErrNumeric):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
