package cluster

import (
	"fmt"

	"github.com/sizeconstrained/scclust/ids"
	"github.com/sizeconstrained/scclust/scerr"
)

// Clustering is the label store: a flat assignment of every point to a
// cluster index, plus the cluster count. Clustering carries no mutex; the
// engine has no suspension points, so there is no concurrent-mutation
// hazard to guard against the way lvlath/core.Graph's sync.RWMutex does
// for its adjacency maps.
type Clustering struct {
	Labels      []ids.Label
	NumClusters int
}

// newClustering allocates a label store over n points, every point
// initially Unassigned.
func newClustering(n int) *Clustering {
	labels := make([]ids.Label, n)
	for i := range labels {
		labels[i] = ids.Unassigned
	}
	return &Clustering{Labels: labels}
}

// LabelOf returns the cluster index of v, or ids.Unassigned if v has not
// been placed.
//
// Returns ErrInvalidIndex if v is out of range.
func (c *Clustering) LabelOf(v ids.VertexID) (ids.Label, error) {
	if int(v) >= len(c.Labels) {
		return 0, fmt.Errorf("cluster: vertex %d: %w", v, scerr.ErrInvalidIndex)
	}
	return c.Labels[v], nil
}

// SetLabel assigns v to cluster label, extending NumClusters if label is
// a new high-water mark.
//
// Returns ErrInvalidIndex if v is out of range, ErrInvalidInput if label
// is negative.
func (c *Clustering) SetLabel(v ids.VertexID, label ids.Label) error {
	if int(v) >= len(c.Labels) {
		return fmt.Errorf("cluster: vertex %d: %w", v, scerr.ErrInvalidIndex)
	}
	if label < 0 {
		return fmt.Errorf("cluster: label %d: %w", label, scerr.ErrInvalidInput)
	}
	c.Labels[v] = label
	if int(label)+1 > c.NumClusters {
		c.NumClusters = int(label) + 1
	}
	return nil
}

// IterateMembers returns every vertex currently assigned to label, in
// ascending vertex ID order.
func (c *Clustering) IterateMembers(label ids.Label) []ids.VertexID {
	var out []ids.VertexID
	for v, l := range c.Labels {
		if l == label {
			out = append(out, ids.VertexID(v))
		}
	}
	return out
}

// ClusterSizes returns the member count of every cluster 0..NumClusters-1.
func (c *Clustering) ClusterSizes() []int {
	sizes := make([]int, c.NumClusters)
	for _, l := range c.Labels {
		if l == ids.Unassigned {
			continue
		}
		sizes[l]++
	}
	return sizes
}

// Valid reports whether every point has been assigned to some cluster in
// [0, NumClusters) and every cluster has at least one member.
func (c *Clustering) Valid() bool {
	sizes := make([]int, c.NumClusters)
	for _, l := range c.Labels {
		if l == ids.Unassigned || int(l) >= c.NumClusters {
			return false
		}
		sizes[l]++
	}
	for _, n := range sizes {
		if n == 0 {
			return false
		}
	}
	return true
}

// renumber produces a fresh Clustering whose labels are a contiguous
// 0..K-1 relabeling of the cluster indices in labels, preserving the
// relative order of first appearance. BreakClustering uses this to
// compact label space after replacing an oversized cluster with several
// smaller ones.
func renumber(labels []ids.Label) *Clustering {
	mapping := make(map[ids.Label]ids.Label)
	next := ids.Label(0)
	out := make([]ids.Label, len(labels))
	for v, l := range labels {
		if l == ids.Unassigned {
			out[v] = ids.Unassigned
			continue
		}
		nl, ok := mapping[l]
		if !ok {
			nl = next
			mapping[l] = nl
			next++
		}
		out[v] = nl
	}
	return &Clustering{Labels: out, NumClusters: int(next)}
}
