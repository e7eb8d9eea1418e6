package heston

import (
	"fmt"
	"math"
	"runtime"
	"sync"
)

// Batch holds the simulated trajectories: two parallel
// paths-by-(steps+1) arrays where row i is one path and column 0 is
// the initial condition (V0, S0). Returned as an immutable result;
// the simulator does not retain a reference.
type Batch struct {
	Variance [][]float64
	Price    [][]float64
	Times    []float64
}

// Paths returns the number of simulated paths.
func (b *Batch) Paths() int {
	return len(b.Price)
}

// Terminal returns a copy of the final price column, the only input
// the pricer needs.
func (b *Batch) Terminal() []float64 {
	terminal := make([]float64, len(b.Price))
	for i, row := range b.Price {
		terminal[i] = row[len(row)-1]
	}
	return terminal
}

// minWorkerPaths is the batch size below which the per-goroutine
// overhead outweighs fanning out.
const minWorkerPaths = 64

// Simulate applies the explicit Euler-Maruyama recursion to every path
// in the increment batch, producing variance and price trajectories of
// shape paths-by-(steps+1):
//
//	v[i+1] = v[i] + alpha*(b - v[i])*dt + sigma*sqrt(|v[i]|)*sqrt(dt)*Wv[i]
//	s[i+1] = s[i] + mu*dt*s[i] + sqrt(|v[i]|)*sqrt(dt)*Wp[i]*s[i]
//
// Truncation policy: the discretized variance can go negative at any
// step, so both recursions take the square root of its absolute value.
// This policy is fixed; changing it changes the distribution of the
// simulated paths. No error is raised for non-positive variance.
//
// Steps advance strictly in time order within a path; paths are
// independent and are fanned out over a bounded set of workers, each
// writing a disjoint row range, so the result is identical for any
// worker count.
func Simulate(p Params, grid TimeGrid, inc *Increments) (*Batch, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	n := inc.Paths()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty increment batch", ErrInvalidParameter)
	}
	if inc.Steps() != grid.Steps || len(inc.Vol) != n {
		return nil, fmt.Errorf("%w: increment batch shape (%d, %d) does not match %d paths of %d steps",
			ErrInvalidParameter, len(inc.Vol), inc.Steps(), n, grid.Steps)
	}

	m := grid.Steps
	dt := grid.Dt()
	sqrtDt := math.Sqrt(dt)

	batch := &Batch{
		Variance: make([][]float64, n),
		Price:    make([][]float64, n),
		Times:    grid.Times(),
	}

	workers := runtime.GOMAXPROCS(0)
	if n < minWorkerPaths {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				wp, wv := inc.Price[i], inc.Vol[i]
				v := make([]float64, m+1)
				s := make([]float64, m+1)
				v[0], s[0] = p.V0, p.S0
				for j := 0; j < m; j++ {
					vol := math.Sqrt(math.Abs(v[j]))
					v[j+1] = v[j] + p.Alpha*(p.B-v[j])*dt + p.Sigma*vol*sqrtDt*wv[j]
					s[j+1] = s[j] + p.Mu*dt*s[j] + vol*sqrtDt*wp[j]*s[j]
				}
				batch.Variance[i] = v
				batch.Price[i] = s
			}
		}(lo, hi)
	}
	wg.Wait()

	return batch, nil
}

// SimulatePaths draws a fresh correlated increment batch for the given
// seed and runs the recursion over it. This is the simulation entry
// point used by the surrounding collaborators.
func SimulatePaths(p Params, grid TimeGrid, paths int, seed uint64) (*Batch, error) {
	gen, err := NewGenerator(p.Rho, seed)
	if err != nil {
		return nil, err
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	inc, err := gen.Generate(paths, grid.Steps)
	if err != nil {
		return nil, err
	}
	return Simulate(p, grid, inc)
}
