package loan

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_30YearMortgage(t *testing.T) {
	// $100,000 at 5.00% for 360 months (30 years).
	entries, err := Schedule(100_000, 5.0, 360)
	require.NoError(t, err)
	require.Len(t, entries, 360)

	first := entries[0]
	assert.Equal(t, 1, first.Period)

	// Monthly payment for $100K at 5% over 30 years is $536.82.
	assert.True(t, first.Payment.Equal(decimal.NewFromFloat(536.82)),
		"first payment should be 536.82, got %s", first.Payment)

	// First month interest = 100000 * 0.05/12 = $416.67.
	assert.True(t, first.Interest.Equal(decimal.NewFromFloat(416.67)),
		"first interest should be 416.67, got %s", first.Interest)
	assert.True(t, first.Principal.Equal(first.Payment.Sub(first.Interest)))

	// Final balance clears to zero exactly.
	last := entries[359]
	assert.Equal(t, 360, last.Period)
	assert.True(t, last.RemainingBalance.Equal(decimal.Zero),
		"final balance should be zero, got %s", last.RemainingBalance)

	// Principal shares sum back to the principal exactly.
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Principal)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(100_000)),
		"principal shares should sum to 100000, got %s", total)
}

func TestSchedule_ZeroRate(t *testing.T) {
	entries, err := Schedule(1200, 0, 12)
	require.NoError(t, err)
	require.Len(t, entries, 12)

	for _, e := range entries {
		assert.True(t, e.Interest.Equal(decimal.Zero), "period %d: interest should be zero", e.Period)
		assert.True(t, e.Payment.Equal(decimal.NewFromInt(100)), "period %d: payment should be 100", e.Period)
	}
	assert.True(t, entries[11].RemainingBalance.Equal(decimal.Zero))
}

func TestSchedule_BalanceDeclinesMonotonically(t *testing.T) {
	entries, err := Schedule(25_000, 7.25, 48)
	require.NoError(t, err)

	prev := decimal.NewFromInt(25_000)
	for _, e := range entries {
		require.True(t, e.RemainingBalance.LessThan(prev),
			"period %d: balance %s did not decline from %s", e.Period, e.RemainingBalance, prev)
		prev = e.RemainingBalance
	}
}

func TestSchedule_InvalidInputs(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		months    int
	}{
		{"zero principal", 0, 5, 12},
		{"negative principal", -1000, 5, 12},
		{"excessive principal", MaxPrincipal + 1, 5, 12},
		{"negative rate", 1000, -1, 12},
		{"excessive rate", 1000, MaxAnnualRatePercent + 1, 12},
		{"zero term", 1000, 5, 0},
		{"excessive term", 1000, 5, MaxTermMonths + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Schedule(tt.principal, tt.rate, tt.months)
			assert.Error(t, err)
		})
	}
}

func TestSummarize(t *testing.T) {
	entries, err := Schedule(10_000, 12, 24)
	require.NoError(t, err)

	s := Summarize(entries)
	assert.True(t, s.MonthlyPayment.Equal(entries[0].Payment))

	// Total paid = principal + total interest.
	assert.True(t, s.TotalPaid.Equal(decimal.NewFromInt(10_000).Add(s.TotalInterest)),
		"total paid %s should equal principal plus interest %s", s.TotalPaid, s.TotalInterest)
	assert.True(t, s.TotalInterest.IsPositive())
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.TotalPaid.IsZero())
	assert.True(t, s.TotalInterest.IsZero())
}
