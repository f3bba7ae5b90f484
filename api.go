package scclust

import (
	"github.com/sizeconstrained/scclust/cluster"
	"github.com/sizeconstrained/scclust/dataset"
	"github.com/sizeconstrained/scclust/nnsearch"
	"github.com/sizeconstrained/scclust/scerr"
	"github.com/sizeconstrained/scclust/seeds"
)

// Re-exported so callers need not import the seeds package for the
// common case of selecting a heuristic.
type SeedMethod = seeds.Method

const (
	Lexical           = seeds.Lexical
	InwardsOrder      = seeds.InwardsOrder
	InwardsUpdating   = seeds.InwardsUpdating
	ExclusionOrder    = seeds.ExclusionOrder
	ExclusionUpdating = seeds.ExclusionUpdating
)

// Cluster computes a size-constrained clustering of ds:
//
//  1. build the k=(sizeConstraint-1)-nearest-neighbor graph,
//  2. run the seed finder with the chosen heuristic,
//  3. expand seeds into clusters and greedily place leftover points.
//
// Returns ErrInvalidInput if ds is nil or sizeConstraint < 2.
func Cluster(ds *dataset.Dataset, sizeConstraint int, method SeedMethod, batchAssign bool) (*cluster.Clustering, error) {
	if ds == nil {
		return nil, scerr.ErrInvalidInput
	}
	if sizeConstraint < 2 {
		return nil, scerr.ErrInvalidInput
	}

	g, err := nnsearch.BuildNNG(ds, sizeConstraint-1)
	if err != nil {
		return nil, err
	}
	sr, err := seeds.FindSeeds(g, method, false)
	if err != nil {
		return nil, err
	}
	return cluster.Assemble(ds, g, sr, batchAssign)
}

// BreakClustering re-splits every cluster of cl larger than
// 2*sizeConstraint-1, recursively re-seeding each on its own induced NNG
// so that every resulting cluster still satisfies the size constraint.
func BreakClustering(cl *cluster.Clustering, ds *dataset.Dataset, sizeConstraint int, batchAssign bool) (*cluster.Clustering, error) {
	return cluster.BreakClustering(cl, ds, sizeConstraint, batchAssign)
}
