/*
Package loan builds amortization schedules on top of the tvm engine.

The fixed payment comes from tvm.PMT; the schedule itself is then rolled
forward in decimal cents with a running balance, the way a lender's ledger
would: each period's interest is the rounded balance-times-rate, the
principal share is the remainder of the payment, and the final period
absorbs the leftover cents. This keeps the schedule internally exact
(principal shares sum to the principal, final balance is zero to the cent)
while the float64 engine stays authoritative for the payment amount.
*/
package loan

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warp/finance-engine/tvm"
)

// Validation bounds. Inputs outside these are almost certainly unit
// mistakes (basis points passed as percent, months passed as years).
const (
	MaxPrincipal         = 1_000_000_000.0
	MaxAnnualRatePercent = 1000.0
	MaxTermMonths        = 600
)

var monthsPerYear = decimal.NewFromInt(12)

// Entry is one period of an amortization schedule. Money values are rounded
// to cents.
type Entry struct {
	Period           int
	Payment          decimal.Decimal
	Interest         decimal.Decimal
	Principal        decimal.Decimal
	RemainingBalance decimal.Decimal
}

// Summary aggregates a schedule.
type Summary struct {
	MonthlyPayment decimal.Decimal
	TotalPaid      decimal.Decimal
	TotalInterest  decimal.Decimal
}

// Schedule amortizes principal at the given annual percentage rate over the
// given number of monthly payments.
func Schedule(principal, annualRatePercent float64, months int) ([]Entry, error) {
	if principal <= 0 {
		return nil, errors.New("principal must be positive")
	}
	if principal > MaxPrincipal {
		return nil, fmt.Errorf("principal exceeds maximum of %.2f", float64(MaxPrincipal))
	}
	if annualRatePercent < 0 {
		return nil, errors.New("rate must not be negative")
	}
	if annualRatePercent > MaxAnnualRatePercent {
		return nil, fmt.Errorf("rate exceeds maximum of %.2f%%", float64(MaxAnnualRatePercent))
	}
	if months <= 0 {
		return nil, errors.New("term must be positive")
	}
	if months > MaxTermMonths {
		return nil, fmt.Errorf("term exceeds maximum of %d months", MaxTermMonths)
	}

	monthlyRate := annualRatePercent / 100 / 12

	// The engine's sign convention: money received (pv) positive, payments
	// made negative. The schedule presents everything as positive amounts.
	payment := decimal.NewFromFloat(-tvm.PMT(monthlyRate, float64(months), principal, 0, tvm.Arrears)).Round(2)

	rate := decimal.NewFromFloat(annualRatePercent).Div(decimal.NewFromInt(100)).Div(monthsPerYear)
	balance := decimal.NewFromFloat(principal).Round(2)

	entries := make([]Entry, 0, months)
	for per := 1; per <= months; per++ {
		interest := balance.Mul(rate).Round(2)
		principalShare := payment.Sub(interest)
		periodPayment := payment

		// The final period clears whatever cents remain.
		if per == months {
			principalShare = balance
			periodPayment = principalShare.Add(interest)
		}

		balance = balance.Sub(principalShare)
		entries = append(entries, Entry{
			Period:           per,
			Payment:          periodPayment,
			Interest:         interest,
			Principal:        principalShare,
			RemainingBalance: balance,
		})
	}

	return entries, nil
}

// Summarize aggregates the schedule's totals.
func Summarize(entries []Entry) Summary {
	var s Summary
	if len(entries) == 0 {
		return s
	}
	s.MonthlyPayment = entries[0].Payment
	s.TotalPaid = decimal.Zero
	s.TotalInterest = decimal.Zero
	for _, e := range entries {
		s.TotalPaid = s.TotalPaid.Add(e.Payment)
		s.TotalInterest = s.TotalInterest.Add(e.Interest)
	}
	return s
}
