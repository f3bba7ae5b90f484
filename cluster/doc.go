// Package cluster implements the clustering assembler and label store:
// expanding a SeedResult into a Clustering, greedily placing leftover
// points, and optionally re-splitting oversized clusters
// (BreakClustering).
//
// Clustering is a plain, non-locking struct: the engine is single-threaded
// with no suspension points, so the sync.RWMutex-guarded mutation pattern
// lvlath/core.Graph uses is deliberately not carried over here.
package cluster
