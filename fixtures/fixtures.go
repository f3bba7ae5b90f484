package fixtures

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sizeconstrained/scclust/dataset"
)

// TwoPairsOnALine builds two tight pairs far apart on a line: N=4, D=1,
// x=[0,1,10,11].
func TwoPairsOnALine() (*dataset.Dataset, error) {
	return dataset.NewFromRows(4, 1, []float64{0, 1, 10, 11})
}

// RegularHexagon builds six points on a regular hexagon of the given
// radius, vertex i at angle i*60 degrees, i=0..5.
func RegularHexagon(radius float64) (*dataset.Dataset, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("fixtures: radius=%v must be positive", radius)
	}
	data := make([]float64, 0, 12)
	for i := 0; i < 6; i++ {
		theta := float64(i) * math.Pi / 3
		data = append(data, radius*math.Cos(theta), radius*math.Sin(theta))
	}
	return dataset.NewFromRows(6, 2, data)
}

// Collinear builds n points at integer positions 0..n-1 on a line.
func Collinear(n int) (*dataset.Dataset, error) {
	if n <= 0 {
		return nil, fmt.Errorf("fixtures: n=%d must be positive", n)
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	return dataset.NewFromRows(n, 1, data)
}

// ThreePointsLine builds a minimal NN-search fixture: x=[0,1,2].
func ThreePointsLine() (*dataset.Dataset, error) {
	return dataset.NewFromRows(3, 1, []float64{0, 1, 2})
}

// EightCollinearForBreak builds an 8-point collinear layout sized for
// exercising BreakClustering: a caller-constructed 7-member cluster plus
// one singleton is a plausible starting Clustering for it (the scenario
// exercises the split itself, not seed selection, so the fixture only
// needs to supply coordinates, not a pre-built Clustering).
func EightCollinearForBreak() (*dataset.Dataset, error) {
	return Collinear(8)
}

// Grid builds a deterministic rows*cols orthogonal grid of 2-D points,
// spaced `spacing` apart, in row-major order. Adapted from
// builder.Grid's row-major vertex emission, generalized from graph
// vertices to point coordinates.
//
// Returns an error if rows or cols is not positive.
func Grid(rows, cols int, spacing float64) (*dataset.Dataset, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("fixtures: rows=%d cols=%d must be positive", rows, cols)
	}
	data := make([]float64, 0, rows*cols*2)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data = append(data, float64(c)*spacing, float64(r)*spacing)
		}
	}
	return dataset.NewFromRows(rows*cols, 2, data)
}

// defaultJitterSeed is the fixed "zero" seed used when callers pass
// seed==0, matching tsp.rngFromSeed's seed==0 policy.
const defaultJitterSeed int64 = 1

// JitteredGrid is Grid with each point displaced by independent
// uniform(-jitter, jitter) noise on both axes, using a deterministic RNG
// stream (seed==0 falls back to defaultJitterSeed) so the same seed
// always reproduces the same dataset.
func JitteredGrid(rows, cols int, spacing, jitter float64, seed int64) (*dataset.Dataset, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("fixtures: rows=%d cols=%d must be positive", rows, cols)
	}
	if seed == 0 {
		seed = defaultJitterSeed
	}
	rng := rand.New(rand.NewSource(seed))

	data := make([]float64, 0, rows*cols*2)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := float64(c)*spacing + (rng.Float64()*2-1)*jitter
			y := float64(r)*spacing + (rng.Float64()*2-1)*jitter
			data = append(data, x, y)
		}
	}
	return dataset.NewFromRows(rows*cols, 2, data)
}
