package heston

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Increments holds two parallel paths-by-steps arrays of standard
// Gaussian shocks. At every (path, step) cell the pair
// (Price, Vol) is bivariate normal with zero mean, unit variances and
// covariance rho; cells are independent of each other. The batch is
// consumed once by the path simulator and never mutated.
type Increments struct {
	Price [][]float64
	Vol   [][]float64
}

// Paths returns the number of simulated paths in the batch.
func (inc *Increments) Paths() int {
	return len(inc.Price)
}

// Steps returns the number of time steps per path, or 0 for an empty batch.
func (inc *Increments) Steps() int {
	if len(inc.Price) == 0 {
		return 0
	}
	return len(inc.Price[0])
}

// Generator draws correlated standard-normal pairs from a single seeded
// source. Pairs are built through the Cholesky factor of the covariance
// matrix [[1, rho], [rho, 1]]:
//
//	w_price = z1
//	w_vol   = rho*z1 + sqrt(1-rho^2)*z2
//
// which is valid for every rho in [-1, 1] including the singular
// endpoints. The same seed always yields the same draw sequence.
type Generator struct {
	rho  float64
	comp float64 // sqrt(1 - rho^2), lower-right Cholesky entry
	norm distuv.Normal
}

// NewGenerator creates a generator for the given correlation and seed.
// The covariance matrix [[1, rho], [rho, 1]] is positive semi-definite
// exactly when rho is in [-1, 1]; anything else is rejected here.
func NewGenerator(rho float64, seed uint64) (*Generator, error) {
	if math.IsNaN(rho) || rho < -1 || rho > 1 {
		return nil, fmt.Errorf("%w: rho must be in [-1, 1], got %g", ErrInvalidParameter, rho)
	}
	return &Generator{
		rho:  rho,
		comp: math.Sqrt(1 - rho*rho),
		norm: distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)},
	}, nil
}

// Generate draws a paths-by-steps batch of correlated increment pairs.
// Draws come off the source sequentially, so the batch is a pure
// function of (rho, seed, paths, steps).
func (g *Generator) Generate(paths, steps int) (*Increments, error) {
	if paths <= 0 {
		return nil, fmt.Errorf("%w: path count must be positive, got %d", ErrInvalidParameter, paths)
	}
	if steps <= 0 {
		return nil, fmt.Errorf("%w: step count must be positive, got %d", ErrInvalidParameter, steps)
	}

	inc := &Increments{
		Price: make([][]float64, paths),
		Vol:   make([][]float64, paths),
	}
	for i := 0; i < paths; i++ {
		wp := make([]float64, steps)
		wv := make([]float64, steps)
		for j := 0; j < steps; j++ {
			z1 := g.norm.Rand()
			z2 := g.norm.Rand()
			wp[j] = z1
			wv[j] = g.rho*z1 + g.comp*z2
		}
		inc.Price[i] = wp
		inc.Vol[i] = wv
	}
	return inc, nil
}
