package seeds

import (
	"fmt"
	"sort"

	"github.com/sizeconstrained/scclust/digraph"
	"github.com/sizeconstrained/scclust/ids"
	"github.com/sizeconstrained/scclust/scerr"
)

// Method selects the seed-finder's candidate ordering heuristic.
type Method int

const (
	// Lexical scans v=0..N-1 once, appending v whenever it is valid.
	Lexical Method = iota
	// InwardsOrder scans vertices sorted by static in-degree ascending.
	InwardsOrder
	// InwardsUpdating is InwardsOrder with live in-degree updates.
	InwardsUpdating
	// ExclusionOrder scans the exclusion graph sorted by in-degree ascending.
	ExclusionOrder
	// ExclusionUpdating is ExclusionOrder with live in-degree updates.
	ExclusionUpdating
)

func (m Method) String() string {
	switch m {
	case Lexical:
		return "Lexical"
	case InwardsOrder:
		return "InwardsOrder"
	case InwardsUpdating:
		return "InwardsUpdating"
	case ExclusionOrder:
		return "ExclusionOrder"
	case ExclusionUpdating:
		return "ExclusionUpdating"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// SeedResult is the ordered sequence of chosen seed vertices.
type SeedResult struct {
	Seeds []ids.VertexID
}

// MaxSeedCount is a safety ceiling on the number of vertices a seed
// finder will process. Go's allocator does not expose recoverable
// out-of-memory errors the way the scclust C library's allocation-guard
// pattern does; this package-level var is the idiomatic Go stand-in —
// tests can lower it to deterministically exercise the ErrOutOfMemory
// path without a real allocator-failure injection harness.
var MaxSeedCount = 1 << 28

// FindSeeds selects a maximal set of pairwise-disjoint closed
// k-neighborhoods from NNG g using the given heuristic.
//
// Returns ErrInvalidInput if g is nil, ErrOutOfMemory if g.N exceeds
// MaxSeedCount, and ErrNotImplemented for an unrecognized Method. Writes
// no partial result on failure.
func FindSeeds(g *digraph.Digraph, method Method, stable bool) (*SeedResult, error) {
	if g == nil {
		return nil, fmt.Errorf("seeds: nil digraph: %w", scerr.ErrInvalidInput)
	}
	if g.N > MaxSeedCount {
		return nil, fmt.Errorf("seeds: N=%d exceeds MaxSeedCount=%d: %w", g.N, MaxSeedCount, scerr.ErrOutOfMemory)
	}

	switch method {
	case Lexical:
		return &SeedResult{Seeds: findLexical(g)}, nil
	case InwardsOrder:
		return &SeedResult{Seeds: findInwards(g, false, stable)}, nil
	case InwardsUpdating:
		return &SeedResult{Seeds: findInwards(g, true, stable)}, nil
	case ExclusionOrder:
		return &SeedResult{Seeds: findExclusion(g, false, stable)}, nil
	case ExclusionUpdating:
		return &SeedResult{Seeds: findExclusion(g, true, stable)}, nil
	default:
		return nil, fmt.Errorf("seeds: method=%d: %w", int(method), scerr.ErrNotImplemented)
	}
}

// closedNeighborhood returns {v} ∪ successors_g(v).
func closedNeighborhood(g *digraph.Digraph, v ids.VertexID) []ids.VertexID {
	succ := g.Successors(v)
	out := make([]ids.VertexID, 0, len(succ)+1)
	out = append(out, v)
	out = append(out, succ...)
	return out
}

// isValidSeed reports whether v may still become a seed: uncovered, with
// at least one out-arc, and every successor also uncovered.
func isValidSeed(g *digraph.Digraph, marks []bool, v ids.VertexID) bool {
	if marks[v] || g.OutDegree(v) == 0 {
		return false
	}
	for _, u := range g.Successors(v) {
		if marks[u] {
			return false
		}
	}
	return true
}

// findLexical implements the LEXICAL heuristic.
func findLexical(g *digraph.Digraph) []ids.VertexID {
	marks := make([]bool, g.N)
	var result []ids.VertexID

	for v := 0; v < g.N; v++ {
		vv := ids.VertexID(v)
		if isValidSeed(g, marks, vv) {
			result = append(result, vv)
			for _, u := range closedNeighborhood(g, vv) {
				marks[u] = true
			}
		}
	}

	return result
}

// sortedByKey returns vertices 0..n-1 sorted ascending by keys[v], ties
// broken by ascending vertex ID.
func sortedByKey(keys []int) []ids.VertexID {
	n := len(keys)
	order := make([]ids.VertexID, n)
	for v := range order {
		order[v] = ids.VertexID(v)
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if keys[a] != keys[b] {
			return keys[a] < keys[b]
		}
		return a < b
	})
	return order
}

// findInwards implements INWARDS_ORDER (updating=false) and
// INWARDS_UPDATING (updating=true).
func findInwards(g *digraph.Digraph, updating bool, stable bool) []ids.VertexID {
	inDeg := g.InDegrees()
	marks := make([]bool, g.N)
	var result []ids.VertexID

	if !updating {
		order := sortedByKey(intsOf(inDeg))
		for _, v := range order {
			if isValidSeed(g, marks, v) {
				result = append(result, v)
				for _, u := range closedNeighborhood(g, v) {
					marks[u] = true
				}
			}
		}
		return result
	}

	bs := newBucketSort(intsOf(inDeg), stable)
	visited := make([]bool, g.N)

	for cur := 0; cur < g.N; cur++ {
		v := bs.sorted[cur]
		if visited[v] {
			continue
		}
		visited[v] = true

		if !isValidSeed(g, marks, v) {
			continue
		}

		closure := closedNeighborhood(g, v)
		result = append(result, v)
		for _, m := range closure {
			marks[m] = true
		}

		for _, m := range closure {
			for _, w := range g.Successors(m) {
				if marks[w] || visited[w] {
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

func intsOf(u32s []uint32) []int {
	out := make([]int, len(u32s))
	for i, v := range u32s {
		out[i] = int(v)
	}
	return out
}
