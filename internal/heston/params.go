// Package heston simulates the Heston stochastic-volatility model and
// prices European options from the simulated paths by Monte Carlo.
package heston

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParameter is returned when a model or simulation parameter
	// is outside its admissible range.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNoPaths is returned when pricing is attempted on an empty sample.
	ErrNoPaths = errors.New("no simulated paths")
)

// Params holds the Heston model parameters. The variance follows a
// mean-reverting square-root (CIR) process and the price a geometric
// process whose volatility is the square root of the variance.
type Params struct {
	Alpha float64 // mean-reversion speed of the variance
	B     float64 // long-run variance level
	Sigma float64 // volatility of variance
	Rho   float64 // correlation between price and variance shocks
	Mu    float64 // drift of the price process
	V0    float64 // initial variance
	S0    float64 // initial price
}

// Validate checks that every parameter is in its admissible range.
// The Feller condition is deliberately not part of validation: it is a
// diagnostic on the continuous-time process, not a precondition for
// simulating the discretized one.
func (p Params) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"alpha", p.Alpha},
		{"b", p.B},
		{"sigma", p.Sigma},
		{"rho", p.Rho},
		{"mu", p.Mu},
		{"v0", p.V0},
		{"s0", p.S0},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidParameter, f.name, f.value)
		}
	}
	if p.Alpha <= 0 {
		return fmt.Errorf("%w: alpha must be positive, got %g", ErrInvalidParameter, p.Alpha)
	}
	if p.B <= 0 {
		return fmt.Errorf("%w: b must be positive, got %g", ErrInvalidParameter, p.B)
	}
	if p.Sigma <= 0 {
		return fmt.Errorf("%w: sigma must be positive, got %g", ErrInvalidParameter, p.Sigma)
	}
	if p.Rho < -1 || p.Rho > 1 {
		return fmt.Errorf("%w: rho must be in [-1, 1], got %g", ErrInvalidParameter, p.Rho)
	}
	if p.V0 < 0 {
		return fmt.Errorf("%w: v0 must be non-negative, got %g", ErrInvalidParameter, p.V0)
	}
	if p.S0 <= 0 {
		return fmt.Errorf("%w: s0 must be positive, got %g", ErrInvalidParameter, p.S0)
	}
	return nil
}

// FellerSatisfied reports whether 2*alpha*b > sigma^2, the sufficient
// condition for the continuous-time variance process to stay strictly
// positive. Informational only: discretized paths can still go
// non-positive and the simulator handles that with a fixed truncation
// policy rather than consulting this check.
func FellerSatisfied(alpha, b, sigma float64) bool {
	return 2*alpha*b > sigma*sigma
}

// FellerSatisfied reports the Feller condition for these parameters.
func (p Params) FellerSatisfied() bool {
	return FellerSatisfied(p.Alpha, p.B, p.Sigma)
}
