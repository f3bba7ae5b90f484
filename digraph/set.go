package digraph

import "github.com/sizeconstrained/scclust/ids"

func vidOf(v int) ids.VertexID { return ids.VertexID(v) }

func asSet(xs []ids.VertexID) map[ids.VertexID]bool {
	s := make(map[ids.VertexID]bool, len(xs))
	for _, x := range xs {
		s[x] = true
	}
	return s
}
