package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sizeconstrained/scclust/cluster"
	"github.com/sizeconstrained/scclust/dataset"
	"github.com/sizeconstrained/scclust/digraph"
	"github.com/sizeconstrained/scclust/ids"
	"github.com/sizeconstrained/scclust/nnsearch"
	"github.com/sizeconstrained/scclust/seeds"
)

func mustDataset(t *testing.T, rows, cols int, data []float64) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.NewFromRows(rows, cols, data)
	require.NoError(t, err)
	return ds
}

func s1Setup(t *testing.T) (*dataset.Dataset, *digraph.Digraph, *seeds.SeedResult) {
	t.Helper()
	// spec.md S1: N=4, D=1, x=[0,1,10,11], c=2 => k=1.
	ds := mustDataset(t, 4, 1, []float64{0, 1, 10, 11})
	g, err := nnsearch.BuildNNG(ds, 1)
	require.NoError(t, err)
	sr, err := seeds.FindSeeds(g, seeds.Lexical, false)
	require.NoError(t, err)
	return ds, g, sr
}

func TestAssemble_S1(t *testing.T) {
	ds, g, sr := s1Setup(t)
	cl, err := cluster.Assemble(ds, g, sr, false)
	require.NoError(t, err)

	assert.True(t, cl.Valid())
	assert.Equal(t, 2, cl.NumClusters)

	l0, err := cl.LabelOf(0)
	require.NoError(t, err)
	l1, err := cl.LabelOf(1)
	require.NoError(t, err)
	l2, err := cl.LabelOf(2)
	require.NoError(t, err)
	l3, err := cl.LabelOf(3)
	require.NoError(t, err)

	assert.Equal(t, l0, l1)
	assert.Equal(t, l2, l3)
	assert.NotEqual(t, l0, l2)
}

func TestClustering_SetLabel_RejectsOutOfRange(t *testing.T) {
	ds, g, sr := s1Setup(t)
	cl, err := cluster.Assemble(ds, g, sr, false)
	require.NoError(t, err)

	err = cl.SetLabel(ids.VertexID(100), 0)
	assert.Error(t, err)
	err = cl.SetLabel(0, -1)
	assert.Error(t, err)
}

func TestClustering_IterateMembers(t *testing.T) {
	ds, g, sr := s1Setup(t)
	cl, err := cluster.Assemble(ds, g, sr, false)
	require.NoError(t, err)

	l0, _ := cl.LabelOf(0)
	members := cl.IterateMembers(l0)
	assert.ElementsMatch(t, []ids.VertexID{0, 1}, members)
}

func TestClustering_ClusterSizes(t *testing.T) {
	ds, g, sr := s1Setup(t)
	cl, err := cluster.Assemble(ds, g, sr, false)
	require.NoError(t, err)

	sizes := cl.ClusterSizes()
	require.Len(t, sizes, 2)
	assert.Equal(t, 2, sizes[0])
	assert.Equal(t, 2, sizes[1])
}

func TestAssemble_RejectsEmptySeedResult(t *testing.T) {
	ds, g, _ := s1Setup(t)
	_, err := cluster.Assemble(ds, g, &seeds.SeedResult{}, false)
	assert.Error(t, err)
}

func TestAssemble_GreedyAssignment_BothModes(t *testing.T) {
	// 6 points on a line: two mutual pairs become seeds, each with a
	// nearby straggler (vertex 2 and vertex 5) whose own nearest
	// neighbor is already claimed, so they are left for greedy
	// assignment.
	ds := mustDataset(t, 6, 1, []float64{0, 1, 3, 100, 101, 103})
	g, err := nnsearch.BuildNNG(ds, 1)
	require.NoError(t, err)
	sr, err := seeds.FindSeeds(g, seeds.Lexical, false)
	require.NoError(t, err)
	require.NotEmpty(t, sr.Seeds)

	for _, batch := range []bool{false, true} {
		cl, err := cluster.Assemble(ds, g, sr, batch)
		require.NoError(t, err, "batch=%v", batch)
		assert.True(t, cl.Valid(), "batch=%v", batch)
		assert.Len(t, cl.Labels, 6)

		l0, _ := cl.LabelOf(0)
		l2, _ := cl.LabelOf(2)
		l3, _ := cl.LabelOf(3)
		l5, _ := cl.LabelOf(5)
		assert.Equal(t, l0, l2, "straggler 2 should join the near cluster, batch=%v", batch)
		assert.Equal(t, l3, l5, "straggler 5 should join the near cluster, batch=%v", batch)
	}
}
