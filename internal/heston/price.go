package heston

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Quote is the Monte Carlo price estimate for one strike: the sample
// means of the call and put payoffs over the terminal prices, with
// their standard errors. Prices are intentionally not discounted by
// exp(-r*T); callers wanting present value must apply the factor
// themselves.
type Quote struct {
	Strike       float64
	Call         float64
	Put          float64
	CallStdErr   float64
	PutStdErr    float64
	MeanTerminal float64
	Paths        int
}

// PriceEuropean evaluates the vanilla call and put payoffs at the given
// strike over the terminal column of a simulated batch and returns
// their sample means. Both estimates are non-negative and converge, as
// the path count grows, to the expectation under the discretization
// scheme that produced the sample.
func PriceEuropean(terminal []float64, strike float64) (Quote, error) {
	n := len(terminal)
	if n == 0 {
		return Quote{}, fmt.Errorf("%w: terminal sample is empty", ErrNoPaths)
	}
	if math.IsNaN(strike) || strike <= 0 {
		return Quote{}, fmt.Errorf("%w: strike must be positive, got %g", ErrInvalidParameter, strike)
	}

	callPayoff := make([]float64, n)
	putPayoff := make([]float64, n)
	for i, s := range terminal {
		callPayoff[i] = math.Max(s-strike, 0)
		putPayoff[i] = math.Max(strike-s, 0)
	}

	sqrtN := math.Sqrt(float64(n))
	return Quote{
		Strike:       strike,
		Call:         stat.Mean(callPayoff, nil),
		Put:          stat.Mean(putPayoff, nil),
		CallStdErr:   stat.StdDev(callPayoff, nil) / sqrtN,
		PutStdErr:    stat.StdDev(putPayoff, nil) / sqrtN,
		MeanTerminal: stat.Mean(terminal, nil),
		Paths:        n,
	}, nil
}
