package digraph

// Valid reports whether g's slices have internally consistent shape: a
// TailPtr of length N+1 and a Head capacity of at least MaxArcs. Valid is
// a shallow structural check; Sound is the stronger semantic one.
//
// Grounded on original_source/tests/assert_digraph.h's thm_valid_digraph.
func Valid(g *Digraph) bool {
	if len(g.TailPtr) != g.N+1 {
		return false
	}
	if g.MaxArcs < 0 || g.MaxArcs > len(g.Head) {
		return false
	}
	return true
}

// Sound reports whether g's CSR buffers are semantically well-formed:
// tail_ptr monotonically non-decreasing, every tail_ptr[v+1] within
// max_arcs, and every arc target within [0, N).
//
// Grounded on original_source/tests/assert_digraph.h's thm_sound_digraph.
func Sound(g *Digraph) bool {
	if !Valid(g) {
		return false
	}
	if g.TailPtr[0] != 0 {
		return false
	}
	for v := 0; v < g.N; v++ {
		if g.TailPtr[v] > g.TailPtr[v+1] {
			return false
		}
		if int(g.TailPtr[v+1]) > g.MaxArcs {
			return false
		}
	}
	m := int(g.TailPtr[g.N])
	for i := 0; i < m; i++ {
		if int(g.Head[i]) >= g.N {
			return false
		}
	}
	return true
}

// Empty reports whether g is sound and has no arcs at all.
func Empty(g *Digraph) bool {
	return Sound(g) && g.TailPtr[g.N] == 0
}

// Balanced reports whether g is sound and every vertex has exactly
// arcsPerVertex out-arcs (tail_ptr[v] == v*arcsPerVertex for every v). A
// sound, arc-free digraph is vacuously balanced, matching
// thm_balanced_digraph's "skip the check when empty" behavior.
func Balanced(g *Digraph, arcsPerVertex uint32) bool {
	if !Sound(g) {
		return false
	}
	if g.TailPtr[g.N] == 0 {
		return true
	}
	for v := 0; v <= g.N; v++ {
		if g.TailPtr[v] != uint32(v)*arcsPerVertex {
			return false
		}
	}
	return true
}

// Equal reports whether g1 and g2 have the same vertex count and, for
// every vertex, the same *set* of out-arc targets (duplicates and arc
// order are ignored). Used to verify transpose is an involution
// (Transpose(Transpose(g)) is equal, though not necessarily identical, to g).
func Equal(g1, g2 *Digraph) bool {
	if g1.N != g2.N {
		return false
	}
	for v := 0; v < g1.N; v++ {
		s1 := asSet(g1.Successors(vidOf(v)))
		s2 := asSet(g2.Successors(vidOf(v)))
		if len(s1) != len(s2) {
			return false
		}
		for u := range s1 {
			if !s2[u] {
				return false
			}
		}
	}
	return true
}

// Identical reports whether g1 and g2 have byte-for-byte identical CSR
// buffers: same N, same MaxArcs, same TailPtr, and the same Head contents
// over [0, MaxArcs) (including any unused capacity beyond TailPtr[N]).
//
// Grounded on original_source/tests/assert_digraph.h's
// thm_digraphs_identical, which compares raw buffers rather than arc sets.
func Identical(g1, g2 *Digraph) bool {
	if g1.N != g2.N || g1.MaxArcs != g2.MaxArcs {
		return false
	}
	if len(g1.TailPtr) != len(g2.TailPtr) {
		return false
	}
	for i := range g1.TailPtr {
		if g1.TailPtr[i] != g2.TailPtr[i] {
			return false
		}
	}
	for i := 0; i < g1.MaxArcs; i++ {
		if g1.Head[i] != g2.Head[i] {
			return false
		}
	}
	return true
}
