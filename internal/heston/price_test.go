package heston

import (
	"errors"
	"math"
	"testing"
)

func TestPriceEuropeanRejectsInvalidInputs(t *testing.T) {
	if _, err := PriceEuropean(nil, 100); !errors.Is(err, ErrNoPaths) {
		t.Errorf("empty sample: got %v, want ErrNoPaths", err)
	}
	if _, err := PriceEuropean([]float64{100}, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("zero strike: got %v, want ErrInvalidParameter", err)
	}
	if _, err := PriceEuropean([]float64{100}, -5); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative strike: got %v, want ErrInvalidParameter", err)
	}
}

func TestPriceEuropeanKnownSample(t *testing.T) {
	terminal := []float64{90, 100, 110, 120}
	q, err := PriceEuropean(terminal, 100)
	if err != nil {
		t.Fatalf("PriceEuropean: %v", err)
	}
	// payoffs: calls {0,0,10,20}, puts {10,0,0,0}
	if got, want := q.Call, 7.5; got != want {
		t.Errorf("Call = %g, want %g", got, want)
	}
	if got, want := q.Put, 2.5; got != want {
		t.Errorf("Put = %g, want %g", got, want)
	}
	if got, want := q.MeanTerminal, 105.0; got != want {
		t.Errorf("MeanTerminal = %g, want %g", got, want)
	}
	if q.Paths != 4 {
		t.Errorf("Paths = %d, want 4", q.Paths)
	}
}

func TestPriceEuropeanNonNegative(t *testing.T) {
	p := Params{Alpha: 1.5, B: 0.04, Sigma: 0.3, Rho: -0.7, Mu: 0.02, V0: 0.04, S0: 100}
	grid, err := NewTimeGrid(0, 1, 100)
	if err != nil {
		t.Fatalf("NewTimeGrid: %v", err)
	}
	batch, err := SimulatePaths(p, grid, 500, 11)
	if err != nil {
		t.Fatalf("SimulatePaths: %v", err)
	}
	for _, strike := range []float64{50, 100, 150} {
		q, err := PriceEuropean(batch.Terminal(), strike)
		if err != nil {
			t.Fatalf("PriceEuropean(K=%g): %v", strike, err)
		}
		if q.Call < 0 || q.Put < 0 {
			t.Errorf("K=%g: negative price estimate call=%g put=%g", strike, q.Call, q.Put)
		}
	}
}

// Undiscounted put-call parity holds path by path:
// max(S-K,0) - max(K-S,0) = S - K, so the estimate satisfies
// call - put = mean(S_T) - K up to floating-point rounding.
func TestPutCallParity(t *testing.T) {
	p := testParams()
	grid := testGrid(t, 200)
	batch, err := SimulatePaths(p, grid, 5000, 17)
	if err != nil {
		t.Fatalf("SimulatePaths: %v", err)
	}
	const strike = 100.0
	q, err := PriceEuropean(batch.Terminal(), strike)
	if err != nil {
		t.Fatalf("PriceEuropean: %v", err)
	}
	lhs := q.Call - q.Put
	rhs := q.MeanTerminal - strike
	if math.Abs(lhs-rhs) > 1e-9*math.Max(1, math.Abs(rhs)) {
		t.Errorf("parity violated: call-put = %.12f, mean-K = %.12f", lhs, rhs)
	}
}

// Reference scenario: alpha=2, b=0.01, rho=0, mu=0, sigma=0.1, v0=0.01,
// s0=105, K=100, 1000 steps on [0,1], 30000 paths. The estimate should
// land near call 7.07 and put 2.03; the payoff standard error at this
// path count is about 0.04, so 0.15 is a conservative gate.
func TestReferenceScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 30000-path scenario in short mode")
	}
	p := Params{Alpha: 2.0, B: 0.01, Sigma: 0.1, Rho: 0.0, Mu: 0.0, V0: 0.01, S0: 105.0}
	grid, err := NewTimeGrid(0, 1, 1000)
	if err != nil {
		t.Fatalf("NewTimeGrid: %v", err)
	}
	batch, err := SimulatePaths(p, grid, 30000, 1234)
	if err != nil {
		t.Fatalf("SimulatePaths: %v", err)
	}
	q, err := PriceEuropean(batch.Terminal(), 100)
	if err != nil {
		t.Fatalf("PriceEuropean: %v", err)
	}
	const tol = 0.15
	if math.Abs(q.Call-7.07) > tol {
		t.Errorf("call = %.4f, want 7.07 +/- %.2f (stderr %.4f)", q.Call, tol, q.CallStdErr)
	}
	if math.Abs(q.Put-2.03) > tol {
		t.Errorf("put = %.4f, want 2.03 +/- %.2f (stderr %.4f)", q.Put, tol, q.PutStdErr)
	}
}
