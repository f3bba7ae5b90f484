package digraph

import (
	"fmt"
	"sort"

	"github.com/sizeconstrained/scclust/ids"
	"github.com/sizeconstrained/scclust/scerr"
)

// Digraph is a compact CSR directed graph over 0-indexed vertices 0..N-1.
type Digraph struct {
	N       int
	TailPtr []uint32
	Head    []ids.VertexID
	MaxArcs int
}

// NewFromRows builds a Digraph from an explicit per-vertex successor list.
// rows[v] lists v's out-arcs in the order they should appear in Head; the
// caller is responsible for any dedup/sort it wants reflected in the
// result (NewFromRows performs none). MaxArcs is set to the exact arc
// count (capacity == usage).
//
// Returns ErrInvalidInput if any target is >= len(rows).
func NewFromRows(rows [][]ids.VertexID) (*Digraph, error) {
	n := len(rows)
	tailPtr := make([]uint32, n+1)
	total := 0
	for v := 0; v < n; v++ {
		total += len(rows[v])
		tailPtr[v+1] = uint32(total)
	}

	head := make([]ids.VertexID, total)
	cursor := 0
	for v := 0; v < n; v++ {
		for _, u := range rows[v] {
			if int(u) >= n {
				return nil, fmt.Errorf("digraph: arc %d->%d targets out-of-range vertex: %w", v, u, scerr.ErrInvalidInput)
			}
			head[cursor] = u
			cursor++
		}
	}

	return &Digraph{N: n, TailPtr: tailPtr, Head: head, MaxArcs: total}, nil
}

// Successors returns v's out-arcs in Head order. The returned slice
// aliases the Digraph's backing array and must not be mutated.
func (g *Digraph) Successors(v ids.VertexID) []ids.VertexID {
	return g.Head[g.TailPtr[v]:g.TailPtr[v+1]]
}

// OutDegree returns the number of arcs leaving v.
func (g *Digraph) OutDegree(v ids.VertexID) int {
	return int(g.TailPtr[v+1] - g.TailPtr[v])
}

// InDegrees computes, for every vertex, its in-degree in g: the number of
// arcs targeting it, counted with multiplicity. This is the key the seed
// finder's bucket-sort structure sorts vertices on.
func (g *Digraph) InDegrees() []uint32 {
	in := make([]uint32, g.N)
	for _, u := range g.Head[:g.TailPtr[g.N]] {
		in[u]++
	}
	return in
}

// dedupSorted sorts row ascending and removes duplicate targets in place,
// returning the deduplicated slice.
func dedupSorted(row []ids.VertexID) []ids.VertexID {
	if len(row) == 0 {
		return row
	}
	sort.Slice(row, func(i, j int) bool { return row[i] < row[j] })
	out := row[:1]
	for _, v := range row[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
