package cluster

import (
	"fmt"

	"github.com/sizeconstrained/scclust/dataset"
	"github.com/sizeconstrained/scclust/digraph"
	"github.com/sizeconstrained/scclust/ids"
	"github.com/sizeconstrained/scclust/nnsearch"
	"github.com/sizeconstrained/scclust/scerr"
	"github.com/sizeconstrained/scclust/seeds"
)

// Assemble expands a SeedResult into a full Clustering.
//
// Stage 1 (seed expansion): seed i and its NNG-successors become cluster
// i, in seed order.
// Stage 2 (greedy assignment): every point the seeds didn't cover is
// placed into the cluster of its nearest candidate. The candidate pool is
// fixed at the end of stage 1; points placed in stage 2 never become
// candidates. batchAssign selects the pool: true searches every point
// assigned in stage 1 (a point can end up riding along with a non-seed
// neighbor of a seed), false restricts the search to the seed vertices
// themselves.
//
// Returns ErrInvalidInput if sr has no seeds, ErrNoNeighbors if some
// unassigned point has no candidate in the search pool.
func Assemble(ds *dataset.Dataset, g *digraph.Digraph, sr *seeds.SeedResult, batchAssign bool) (*Clustering, error) {
	if len(sr.Seeds) == 0 {
		return nil, fmt.Errorf("cluster: seed result is empty: %w", scerr.ErrInvalidInput)
	}

	cl := newClustering(g.N)
	for i, s := range sr.Seeds {
		label := ids.Label(i)
		if err := cl.SetLabel(s, label); err != nil {
			return nil, err
		}
		for _, u := range g.Successors(s) {
			if err := cl.SetLabel(u, label); err != nil {
				return nil, err
			}
		}
	}

	var unassigned []ids.VertexID
	for v, l := range cl.Labels {
		if l == ids.Unassigned {
			unassigned = append(unassigned, ids.VertexID(v))
		}
	}
	if len(unassigned) == 0 {
		return cl, nil
	}

	var pool []ids.VertexID
	if batchAssign {
		for v, l := range cl.Labels {
			if l != ids.Unassigned {
				pool = append(pool, ids.VertexID(v))
			}
		}
	} else {
		pool = append(pool, sr.Seeds...)
	}

	kern, err := nnsearch.NewKernel(ds, pool)
	if err != nil {
		return nil, err
	}
	results, err := kern.NNSearch(unassigned, 1, false, 0)
	if err != nil {
		return nil, err
	}

	for i, v := range unassigned {
		nearest := results[i].Neighbors[0]
		if nearest == ids.VIDSentinel {
			return nil, fmt.Errorf("cluster: vertex %d: %w", v, scerr.ErrNoNeighbors)
		}
		if err := cl.SetLabel(v, cl.Labels[nearest]); err != nil {
			return nil, err
		}
	}

	return cl, nil
}
