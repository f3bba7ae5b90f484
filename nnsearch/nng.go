package nnsearch

import (
	"fmt"

	"github.com/sizeconstrained/scclust/dataset"
	"github.com/sizeconstrained/scclust/digraph"
	"github.com/sizeconstrained/scclust/ids"
	"github.com/sizeconstrained/scclust/scerr"
)

// BuildNNG constructs the k-nearest-neighbor graph of ds: vertex v has an
// arc to each of its k nearest points, excluding v itself, ties broken by
// ascending vertex index. A vertex with zero admissible neighbors
// (possible only under radius search) is isolated — it ends up with
// out-degree 0 rather than an error.
//
// Returns ErrInvalidInput if k <= 0 or k >= N.
func BuildNNG(ds *dataset.Dataset, k int) (*digraph.Digraph, error) {
	return buildNNG(ds, k, false, 0)
}

// BuildNNGRadius is BuildNNG restricted to neighbors within radius: a
// candidate s is admitted only if d(v,s) < radius. Vertices with no
// admissible neighbor under this restriction become isolated.
func BuildNNGRadius(ds *dataset.Dataset, k int, radius float64) (*digraph.Digraph, error) {
	return buildNNG(ds, k, true, radius)
}

func buildNNG(ds *dataset.Dataset, k int, useRadius bool, radius float64) (*digraph.Digraph, error) {
	n := ds.RowCount()
	if k <= 0 || k >= n {
		return nil, fmt.Errorf("nnsearch: k=%d, N=%d: %w", k, n, scerr.ErrInvalidInput)
	}

	all := make([]ids.VertexID, n)
	for i := range all {
		all[i] = ids.VertexID(i)
	}

	kern, err := NewKernel(ds, all)
	if err != nil {
		return nil, err
	}

	results, err := kern.NNSearch(all, k, useRadius, radius)
	if err != nil {
		return nil, err
	}

	rows := make([][]ids.VertexID, n)
	for v, r := range results {
		row := make([]ids.VertexID, 0, k)
		for _, u := range r.Neighbors {
			if u == ids.VIDSentinel {
				continue
			}
			row = append(row, u)
		}
		rows[v] = row
	}

	// rows only ever contains vertex IDs returned by NNSearch against
	// `all`, already bound to [0, n), so NewFromRows cannot fail here.
	g, _ := digraph.NewFromRows(rows)
	return g, nil
}
