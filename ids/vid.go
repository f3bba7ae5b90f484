//go:build !scclust_vid64

// Package ids defines the build-time-selectable vertex and label ID types
// shared by digraph, nnsearch, seeds, and cluster.
//
// VertexID defaults to 32-bit unsigned. Build with the "scclust_vid64" tag
// to switch to a 64-bit VertexID (see vid64.go); the two files are mutually
// exclusive build-tag variants of the same type so exactly one compiles.
package ids

// VertexID identifies a point/vertex by its row index in a Dataset or
// Digraph. 0-indexed.
type VertexID = uint32

// VIDMax is the largest representable VertexID.
const VIDMax VertexID = ^VertexID(0)

// VIDSentinel marks "no vertex" (e.g. an unfilled NNSearch slot). It is
// always VIDMax, so a Dataset with exactly VIDMax rows cannot be fully
// addressed; ProblemTooLarge guards against this at construction.
const VIDSentinel VertexID = VIDMax
