//go:build scclust_vid64

package ids

// VertexID identifies a point/vertex by its row index in a Dataset or
// Digraph. Built with "scclust_vid64": widens VertexID to 64 bits for
// datasets exceeding the 32-bit default's ~4.29e9 row ceiling.
type VertexID = uint64

// VIDMax is the largest representable VertexID.
const VIDMax VertexID = ^VertexID(0)

// VIDSentinel marks "no vertex" (e.g. an unfilled NNSearch slot).
const VIDSentinel VertexID = VIDMax
