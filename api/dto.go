/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for the API contract. Optional fields follow the
  documented engine defaults: fv=0, type=0 (arrears), guess=0.1. `guess`
  is a pointer so "omitted" and "zero" stay distinguishable (0 is a legal
  guess, just a bad one).

NAMING CONVENTION:
  - *Request: request body types from clients
  - *DTO: response types returned to clients

VALIDATION:
  Structural validation (per bounds, rate domain, empty series) lives in
  the engine; handlers only translate its typed errors to HTTP statuses.
*/
package api

// =============================================================================
// REQUEST TYPES
// =============================================================================

// AnnuityRequest carries the shared parameters of the closed-form
// operations (PV, FV, PMT, NPER, RATE). Each operation reads the fields it
// needs.
type AnnuityRequest struct {
	Rate  float64  `json:"rate"`
	Nper  float64  `json:"nper"`
	Pmt   float64  `json:"pmt"`
	Pv    float64  `json:"pv"`
	Fv    float64  `json:"fv"`
	Type  int      `json:"type"`
	Guess *float64 `json:"guess,omitempty"`
}

// PeriodicRequest is the request for IPMT/PPMT.
type PeriodicRequest struct {
	Rate float64 `json:"rate"`
	Per  int     `json:"per"`
	Nper int     `json:"nper"`
	Pv   float64 `json:"pv"`
	Fv   float64 `json:"fv"`
	Type int     `json:"type"`
}

// CashFlowRequest is the request for NPV.
type CashFlowRequest struct {
	Rate   float64   `json:"rate"`
	Values []float64 `json:"values"`
}

// IRRRequest is the request for IRR.
type IRRRequest struct {
	Values []float64 `json:"values"`
	Guess  *float64  `json:"guess,omitempty"`
}

// ScheduleRequest is the request for an amortization schedule.
type ScheduleRequest struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermMonths        int     `json:"term_months"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ResultDTO is the response for every scalar operation.
type ResultDTO struct {
	Operation string  `json:"operation"`
	Result    float64 `json:"result"`
}

// ScheduleEntryDTO is one period of an amortization schedule. Money values
// are decimal strings rounded to cents.
type ScheduleEntryDTO struct {
	Period           int    `json:"period"`
	Payment          string `json:"payment"`
	Interest         string `json:"interest"`
	Principal        string `json:"principal"`
	RemainingBalance string `json:"remaining_balance"`
}

// ScheduleDTO is the amortization schedule response.
type ScheduleDTO struct {
	MonthlyPayment string             `json:"monthly_payment"`
	TotalPaid      string             `json:"total_paid"`
	TotalInterest  string             `json:"total_interest"`
	Entries        []ScheduleEntryDTO `json:"entries"`
}

// CalculationDTO is one history record.
type CalculationDTO struct {
	ID        string   `json:"id"`
	Operation string   `json:"operation"`
	Inputs    string   `json:"inputs"`
	Result    *float64 `json:"result,omitempty"`
	Error     string   `json:"error,omitempty"`
	CreatedAt string   `json:"created_at"`
}

// ExampleDTO is a canned worked example for one operation.
type ExampleDTO struct {
	Operation   string  `json:"operation"`
	Description string  `json:"description"`
	Request     any     `json:"request"`
	Result      float64 `json:"result"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
