package ids

// Label identifies a cluster. Width governs the maximum cluster count;
// 32 bits is ample headroom for any problem size this engine's VertexID
// width can address, so unlike VertexID it is not build-tag selectable.
type Label = int32

// Unassigned marks a point that has not yet been placed into a cluster.
const Unassigned Label = -1
