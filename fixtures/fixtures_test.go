package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sizeconstrained/scclust/fixtures"
	"github.com/sizeconstrained/scclust/ids"
)

func TestTwoPairsOnALine(t *testing.T) {
	ds, err := fixtures.TwoPairsOnALine()
	require.NoError(t, err)
	assert.Equal(t, 4, ds.RowCount())
	assert.Equal(t, 1, ds.ColCount())
}

func TestRegularHexagon(t *testing.T) {
	ds, err := fixtures.RegularHexagon(1.0)
	require.NoError(t, err)
	assert.Equal(t, 6, ds.RowCount())
	assert.Equal(t, 2, ds.ColCount())

	// adjacent vertices of a unit regular hexagon are distance 1 apart.
	d, err := ds.Distance(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-9)
}

func TestRegularHexagon_RejectsNonPositiveRadius(t *testing.T) {
	_, err := fixtures.RegularHexagon(0)
	assert.Error(t, err)
	_, err = fixtures.RegularHexagon(-1)
	assert.Error(t, err)
}

func TestCollinear(t *testing.T) {
	ds, err := fixtures.Collinear(5)
	require.NoError(t, err)
	assert.Equal(t, 5, ds.RowCount())
	d, err := ds.Distance(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)
}

func TestCollinear_RejectsNonPositiveN(t *testing.T) {
	_, err := fixtures.Collinear(0)
	assert.Error(t, err)
}

func TestThreePointsLine(t *testing.T) {
	ds, err := fixtures.ThreePointsLine()
	require.NoError(t, err)
	assert.Equal(t, 3, ds.RowCount())
}

func TestEightCollinearForBreak(t *testing.T) {
	ds, err := fixtures.EightCollinearForBreak()
	require.NoError(t, err)
	assert.Equal(t, 8, ds.RowCount())
}

func TestGrid(t *testing.T) {
	ds, err := fixtures.Grid(2, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 6, ds.RowCount())
	d, err := ds.Distance(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, d)
}

func TestGrid_RejectsNonPositiveDims(t *testing.T) {
	_, err := fixtures.Grid(0, 3, 1)
	assert.Error(t, err)
}

func TestJitteredGrid_Deterministic(t *testing.T) {
	a, err := fixtures.JitteredGrid(3, 3, 5, 1, 42)
	require.NoError(t, err)
	b, err := fixtures.JitteredGrid(3, 3, 5, 1, 42)
	require.NoError(t, err)

	da, err := a.PairwiseDistances(nil)
	require.NoError(t, err)
	db, err := b.PairwiseDistances(nil)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestJitteredGrid_ZeroSeedIsDeterministicDefault(t *testing.T) {
	a, err := fixtures.JitteredGrid(2, 2, 5, 1, 0)
	require.NoError(t, err)
	b, err := fixtures.JitteredGrid(2, 2, 5, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestJitteredGrid_StaysWithinVertexIDRange(t *testing.T) {
	ds, err := fixtures.JitteredGrid(2, 2, 1, 0.1, 7)
	require.NoError(t, err)
	assert.Less(t, ds.RowCount(), int(ids.VIDMax))
}
