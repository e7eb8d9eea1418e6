package heston

import (
	"fmt"
	"math"
)

// TimeGrid is a uniform grid of Steps+1 points on [Start, End].
// It is shared read-only by the increment generator and the path
// simulator; both receive it explicitly rather than through any
// ambient state.
type TimeGrid struct {
	Start float64
	End   float64
	Steps int
}

// NewTimeGrid builds a uniform grid and validates its shape.
func NewTimeGrid(start, end float64, steps int) (TimeGrid, error) {
	g := TimeGrid{Start: start, End: end, Steps: steps}
	if err := g.Validate(); err != nil {
		return TimeGrid{}, err
	}
	return g, nil
}

// Validate checks the grid parameters.
func (g TimeGrid) Validate() error {
	if math.IsNaN(g.Start) || math.IsNaN(g.End) || math.IsInf(g.Start, 0) || math.IsInf(g.End, 0) {
		return fmt.Errorf("%w: grid endpoints must be finite", ErrInvalidParameter)
	}
	if g.End <= g.Start {
		return fmt.Errorf("%w: grid end %g must be after start %g", ErrInvalidParameter, g.End, g.Start)
	}
	if g.Steps <= 0 {
		return fmt.Errorf("%w: step count must be positive, got %d", ErrInvalidParameter, g.Steps)
	}
	return nil
}

// Dt returns the uniform spacing (End - Start) / Steps.
func (g TimeGrid) Dt() float64 {
	return (g.End - g.Start) / float64(g.Steps)
}

// Horizon returns the total simulated time span.
func (g TimeGrid) Horizon() float64 {
	return g.End - g.Start
}

// Times returns the Steps+1 grid points.
func (g TimeGrid) Times() []float64 {
	dt := g.Dt()
	ts := make([]float64, g.Steps+1)
	for i := range ts {
		ts[i] = g.Start + float64(i)*dt
	}
	ts[g.Steps] = g.End
	return ts
}
