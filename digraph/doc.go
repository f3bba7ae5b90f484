// Package digraph implements a compact CSR (Compressed Sparse Row)
// directed graph and the algebraic operations the clustering engine builds
// on top of it: Transpose, AdjacencyProduct, and UnionAndDelete.
//
// # Representation
//
// A Digraph stores N vertices as offsets into a flat arc array:
//
//	TailPtr[0..N]  monotonically non-decreasing offsets into Head
//	Head[0..M)     destination vertex of each arc, M = TailPtr[N]
//	MaxArcs >= M   allocation capacity of Head
//
// Arcs leaving vertex v occupy Head[TailPtr[v]:TailPtr[v+1]]. Duplicates
// and self-loops are permitted by the container. NNGs contain neither
// (the NN search skips the query point itself); the seed finder's
// exclusion graph is deduplicated but keeps a self-loop on every vertex
// it retains.
//
// # Soundness
//
// Valid checks the struct's shape (consistent slice lengths and capacity).
// Sound additionally requires tail_ptr[v] <= tail_ptr[v+1] <= max_arcs for
// every vertex and every arc target < N — the property every algorithm in
// this package must preserve in its output.
//
// Equal compares two digraphs as sets of arcs per vertex (used to verify
// transpose is an involution); Identical compares the underlying CSR
// buffers byte-for-byte, mirroring the distinct "equal" vs "identical"
// oracles from the scclust C library's assert_digraph.h.
package digraph
