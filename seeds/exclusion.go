package seeds

import (
	"github.com/sizeconstrained/scclust/digraph"
	"github.com/sizeconstrained/scclust/ids"
)

// buildExclusionGraph builds E = union(G, Gᵀ, G·Gᵀ), restricted to rows
// (and columns) with out-degree > 0 in G: an E-arc u-w holds iff N⁺(u) and
// N⁺(w) overlap in G, so E-independence implies G-seed disjointness.
// Vertices with zero G-out-degree can never be a seed, so they — and arcs
// into them — are dropped from E entirely.
func buildExclusionGraph(g *digraph.Digraph) (*digraph.Digraph, []bool) {
	keep := make([]bool, g.N)
	for v := 0; v < g.N; v++ {
		keep[v] = g.OutDegree(ids.VertexID(v)) > 0
	}

	gt := digraph.Transpose(g)
	ggt := digraph.AdjacencyProduct(g, gt, false, false)
	e := digraph.UnionAndDelete([]*digraph.Digraph{g, gt, ggt}, keep)

	return e, keep
}

// findExclusion implements EXCLUSION_ORDER (updating=false) and
// EXCLUSION_UPDATING (updating=true).
func findExclusion(g *digraph.Digraph, updating bool, stable bool) []ids.VertexID {
	e, keep := buildExclusionGraph(g)
	inDeg := e.InDegrees()
	var result []ids.VertexID

	if !updating {
		excluded := make([]bool, g.N)
		order := sortedByKey(intsOf(inDeg))
		for _, v := range order {
			if !keep[v] || excluded[v] {
				continue
			}
			result = append(result, v)
			for _, w := range closedNeighborhood(e, v) {
				excluded[w] = true
			}
		}
		return result
	}

	bs := newBucketSort(intsOf(inDeg), stable)
	visited := make([]bool, g.N)
	excluded := make([]bool, g.N)

	for cur := 0; cur < g.N; cur++ {
		v := bs.sorted[cur]
		if visited[v] {
			continue
		}
		visited[v] = true

		if !keep[v] || excluded[v] {
			continue
		}

		closure := closedNeighborhood(e, v)
		result = append(result, v)
		for _, w := range closure {
			excluded[w] = true
		}

		for _, m := range closure {
			for _, w := range e.Successors(m) {
				if excluded[w] || visited[w] {
					continue
				}
				if bs.position[w] > cur {
					bs.decrement(w, cur)
				}
			}
		}
	}

	return result
}
