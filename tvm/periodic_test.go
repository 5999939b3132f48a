package tvm_test

import (
	"errors"
	"testing"

	"github.com/warp/finance-engine/tvm"
)

func TestIPMT_FirstPeriodInterest(t *testing.T) {
	// In period 1 (arrears) the whole balance is still outstanding, so the
	// interest share is exactly -pv*rate.
	got, err := tvm.IPMT(0.01, 1, 24, 10000, 0, tvm.Arrears)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	closeTo(t, got, -100, 1e-10)
}

func TestIPMT_AdvanceFirstPeriodIsZero(t *testing.T) {
	// An advance payment in period 1 happens before any interest accrues.
	got, err := tvm.IPMT(0.01, 1, 24, 10000, 0, tvm.Advance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("IPMT(advance, per=1) = %v, want 0", got)
	}
}

func TestIPMT_PPMT_Decomposition(t *testing.T) {
	// GIVEN: any valid period of a schedule
	// THEN: interest share + principal share is the fixed payment.

	tests := []struct {
		name string
		rate float64
		nper int
		pv   float64
		fv   float64
		when tvm.PaymentTime
	}{
		{"monthly loan", 0.01, 24, 10000, 0, tvm.Arrears},
		{"with future value", 0.0045, 60, 250000, -10000, tvm.Arrears},
		{"advance timing", 0.006875, 60, 160000, 0, tvm.Advance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pmt := tvm.PMT(tt.rate, float64(tt.nper), tt.pv, tt.fv, tt.when)

			for per := 1; per <= tt.nper; per++ {
				ipmt, err := tvm.IPMT(tt.rate, per, tt.nper, tt.pv, tt.fv, tt.when)
				if err != nil {
					t.Fatalf("IPMT(per=%d): %v", per, err)
				}
				ppmt, err := tvm.PPMT(tt.rate, per, tt.nper, tt.pv, tt.fv, tt.when)
				if err != nil {
					t.Fatalf("PPMT(per=%d): %v", per, err)
				}
				closeTo(t, ipmt+ppmt, pmt, 1e-8)
			}
		})
	}
}

func TestIPMT_InterestDeclinesAsPrincipalRetires(t *testing.T) {
	// Payments are negative, so "declining interest" means the magnitude
	// shrinks period over period.
	prev := -1e18
	for per := 1; per <= 24; per++ {
		ipmt, err := tvm.IPMT(0.01, per, 24, 10000, 0, tvm.Arrears)
		if err != nil {
			t.Fatalf("IPMT(per=%d): %v", per, err)
		}
		if ipmt <= prev {
			t.Fatalf("interest share not shrinking at per=%d: %v then %v", per, prev, ipmt)
		}
		prev = ipmt
	}
}

func TestPeriodBounds(t *testing.T) {
	for _, per := range []int{0, 25} {
		if _, err := tvm.IPMT(0.01, per, 24, 10000, 0, tvm.Arrears); !errors.Is(err, tvm.ErrInvalidArgument) {
			t.Errorf("IPMT(per=%d): want ErrInvalidArgument, got %v", per, err)
		}
		if _, err := tvm.PPMT(0.01, per, 24, 10000, 0, tvm.Arrears); !errors.Is(err, tvm.ErrInvalidArgument) {
			t.Errorf("PPMT(per=%d): want ErrInvalidArgument, got %v", per, err)
		}
	}
}
