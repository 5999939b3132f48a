package tvm_test

import (
	"errors"
	"math"
	"testing"

	"github.com/warp/finance-engine/tvm"
)

func TestIRR_ReferenceScenario(t *testing.T) {
	// 1500 out, four periods of 500 back: 12.59%.
	got, err := tvm.IRR([]float64{-1500, 500, 500, 500, 500}, tvm.DefaultGuess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	closeTo(t, got, 0.1259, 5e-5)
}

func TestIRR_ZeroesNPV(t *testing.T) {
	// GIVEN: the solved internal rate of return
	// THEN: discounting the series at that rate values it to ~0. NPV's
	// forward convention is one period offset from the solver's anchor,
	// which only rescales the residual by (1+rate).

	tests := []struct {
		name   string
		values []float64
	}{
		{"even returns", []float64{-1500, 500, 500, 500, 500}},
		{"uneven returns", []float64{-10000, 3000, 4200, 6800}},
		{"late payoff", []float64{-2000, 0, 0, 0, 3500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			irr, err := tvm.IRR(tt.values, tvm.DefaultGuess)
			if err != nil {
				t.Fatalf("IRR: %v", err)
			}

			npv, err := tvm.NPV(irr, tt.values...)
			if err != nil {
				t.Fatalf("NPV: %v", err)
			}

			maxAbs := 0.0
			for _, v := range tt.values {
				maxAbs = math.Max(maxAbs, math.Abs(v))
			}
			if math.Abs(npv) > maxAbs*1e-7*0.01 {
				t.Errorf("NPV at IRR = %v, want ~0", npv)
			}
		})
	}
}

func TestIRR_LeadingZerosDoNotChangeResult(t *testing.T) {
	// Leading zero flows shift the period-0 anchor without changing the
	// root, so the solved rate is identical.
	base := []float64{-1500, 500, 500, 500, 500}
	padded := append([]float64{0, 0}, base...)

	a, err := tvm.IRR(base, tvm.DefaultGuess)
	if err != nil {
		t.Fatalf("base: %v", err)
	}
	b, err := tvm.IRR(padded, tvm.DefaultGuess)
	if err != nil {
		t.Fatalf("padded: %v", err)
	}
	if a != b {
		t.Errorf("padded IRR %v != base IRR %v", b, a)
	}
}

func TestIRR_DeepLossClampsAboveMinusOne(t *testing.T) {
	// GIVEN: a near-total loss (1000 out, only 10 back), whose root sits
	// just above -100%
	// WHEN: solving from the default guess, which drives secant updates
	// past -1
	// THEN: the bisection clamp keeps every trial rate in (-1, inf) and the
	// solver still converges to -99%.
	got, err := tvm.IRR([]float64{-1000, 10}, tvm.DefaultGuess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	closeTo(t, got, -0.99, 1e-6)
	if got <= -1 {
		t.Errorf("IRR = %v, must stay above -1", got)
	}
}

func TestIRR_InvalidInputs(t *testing.T) {
	if _, err := tvm.IRR(nil, tvm.DefaultGuess); !errors.Is(err, tvm.ErrInvalidArgument) {
		t.Errorf("empty series: want ErrInvalidArgument, got %v", err)
	}
	if _, err := tvm.IRR([]float64{-100, 150}, -1); !errors.Is(err, tvm.ErrInvalidArgument) {
		t.Errorf("guess = -1: want ErrInvalidArgument, got %v", err)
	}
	if _, err := tvm.IRR([]float64{-100, 150}, -2); !errors.Is(err, tvm.ErrInvalidArgument) {
		t.Errorf("guess < -1: want ErrInvalidArgument, got %v", err)
	}
}

func TestIRR_NoSignChange(t *testing.T) {
	// All-outflow and all-zero series have no root; the solver fails with a
	// numeric error instead of pre-validating the sign pattern.
	if _, err := tvm.IRR([]float64{-100, -100}, tvm.DefaultGuess); !errors.Is(err, tvm.ErrNumeric) {
		t.Errorf("all outflows: want ErrNumeric, got %v", err)
	}
	if _, err := tvm.IRR([]float64{0, 0}, tvm.DefaultGuess); !errors.Is(err, tvm.ErrNumeric) {
		t.Errorf("all zeros: want ErrNumeric, got %v", err)
	}
}
