package digraph

import "github.com/sizeconstrained/scclust/ids"

// Transpose builds Gᵀ: an arc v→u in g becomes u→v in the result. Uses the
// classic two-pass CSR transpose — first count in-degrees to size the
// output TailPtr, then scatter arcs into place with a cursor array —
// rather than materializing per-vertex slices, since the output degree of
// each vertex is already known after the first pass.
func Transpose(g *Digraph) *Digraph {
	tailPtr := make([]uint32, g.N+1)
	m := int(g.TailPtr[g.N])

	// Pass 1: count in-degrees (== out-degree of the transpose).
	for _, u := range g.Head[:m] {
		tailPtr[u+1]++
	}
	for v := 0; v < g.N; v++ {
		tailPtr[v+1] += tailPtr[v]
	}

	// Pass 2: scatter. cursor[v] tracks the next free slot in v's row.
	cursor := make([]uint32, g.N)
	copy(cursor, tailPtr[:g.N])
	head := make([]ids.VertexID, m)
	for v := 0; v < g.N; v++ {
		for _, u := range g.Successors(ids.VertexID(v)) {
			head[cursor[u]] = ids.VertexID(v)
			cursor[u]++
		}
	}

	return &Digraph{N: g.N, TailPtr: tailPtr, Head: head, MaxArcs: m}
}

// AdjacencyProduct builds C = A·B: an arc u→w exists in C iff some v has
// an A-arc u→v and a B-arc v→w. forceDiagonal inserts u→u into C
// unconditionally (used to include a seed in its own closed neighborhood);
// ignoreDiagonal drops u→u from the output. Output arcs are deduplicated
// and sorted ascending per source row for deterministic output.
//
// A and B must have the same vertex count.
func AdjacencyProduct(a, b *Digraph, forceDiagonal, ignoreDiagonal bool) *Digraph {
	rows := make([][]ids.VertexID, a.N)
	for u := 0; u < a.N; u++ {
		var row []ids.VertexID
		if forceDiagonal {
			row = append(row, ids.VertexID(u))
		}
		for _, v := range a.Successors(ids.VertexID(u)) {
			row = append(row, b.Successors(v)...)
		}
		row = dedupSorted(row)
		if ignoreDiagonal {
			row = removeValue(row, ids.VertexID(u))
		}
		rows[u] = row
	}

	// rows only ever contains vertex IDs copied out of a and b, both
	// already bound to [0, a.N), so NewFromRows cannot fail here.
	g, _ := NewFromRows(rows)
	return g
}

// UnionAndDelete builds U such that vertex v's arc set is the union of
// v's arc sets across gs, restricted to targets w with keepMask[w]; if
// keepMask[v] is false, v's row is empty regardless of its arcs in gs.
// Output arcs are deduplicated and sorted ascending per row.
//
// All graphs in gs must share the same vertex count as len(keepMask).
func UnionAndDelete(gs []*Digraph, keepMask []bool) *Digraph {
	n := len(keepMask)
	rows := make([][]ids.VertexID, n)
	for v := 0; v < n; v++ {
		if !keepMask[v] {
			continue
		}
		var row []ids.VertexID
		for _, g := range gs {
			for _, w := range g.Successors(ids.VertexID(v)) {
				if keepMask[w] {
					row = append(row, w)
				}
			}
		}
		rows[v] = dedupSorted(row)
	}

	// rows only ever contains vertex IDs copied out of gs, all already
	// bound to [0, n), so NewFromRows cannot fail here.
	g, _ := NewFromRows(rows)
	return g
}

func removeValue(row []ids.VertexID, target ids.VertexID) []ids.VertexID {
	out := row[:0]
	for _, v := range row {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}
