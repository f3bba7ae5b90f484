package seeds

import (
	"sort"

	"github.com/sizeconstrained/scclust/ids"
)

// bucketSort is the mutable counting-sort priority structure shared by the
// InwardsUpdating and ExclusionUpdating heuristics.
//
// sorted holds a permutation of 0..N-1 ordered by ascending key (in-degree
// in the relevant graph), ties broken by ascending vertex ID. position is
// its inverse: position[sorted[i]] == i always holds. bucketStart[k] is
// the first index in sorted belonging to key k; since buckets are packed
// contiguously in ascending key order, bucketStart[k] also equals the
// end-exclusive boundary of bucket k-1, which is what lets a single
// decrement operation shrink one bucket and grow its predecessor with one
// array write.
type bucketSort struct {
	key         []int
	sorted      []ids.VertexID
	position    []int
	bucketStart []int // length maxKey+2; bucketStart[maxKey+1] == N
	stable      bool
}

// newBucketSort builds the initial counting sort over keys (one entry per
// vertex 0..N-1). When stable is true, ties within a bucket are kept
// sorted by ascending vertex ID even after later decrements, so that
// scans over a permuted but key-equivalent input reproduce identical
// results.
func newBucketSort(keys []int, stable bool) *bucketSort {
	n := len(keys)
	maxKey := 0
	for _, k := range keys {
		if k > maxKey {
			maxKey = k
		}
	}

	count := make([]int, maxKey+2)
	for _, k := range keys {
		count[k]++
	}
	bucketStart := make([]int, maxKey+2)
	for k := 1; k <= maxKey+1; k++ {
		bucketStart[k] = bucketStart[k-1] + count[k-1]
	}

	fill := make([]int, maxKey+1)
	copy(fill, bucketStart[:maxKey+1])

	sorted := make([]ids.VertexID, n)
	// Insert in ascending vertex-ID order so ties settle ascending by ID.
	for v := 0; v < n; v++ {
		k := keys[v]
		sorted[fill[k]] = ids.VertexID(v)
		fill[k]++
	}

	position := make([]int, n)
	for i, v := range sorted {
		position[v] = i
	}

	keyCopy := make([]int, n)
	copy(keyCopy, keys)

	return &bucketSort{
		key:         keyCopy,
		sorted:      sorted,
		position:    position,
		bucketStart: bucketStart,
		stable:      stable,
	}
}

// decrement lowers v's key by one and moves it to the front boundary of
// its current bucket, then shifts that boundary forward by one slot —
// which simultaneously extends the key-1 bucket to absorb v. cur is the
// main scan loop's current cursor: if the natural target lies at or
// before cur (i.e. within already-emitted positions), the target is
// advanced to cur+1 so the scan never revisits, or permanently loses
// track of, a vertex.
func (b *bucketSort) decrement(v ids.VertexID, cur int) {
	oldKey := b.key[v]
	if oldKey <= 0 {
		return
	}

	target := b.bucketStart[oldKey]
	if target <= cur {
		target = cur + 1
	}

	pv := b.position[v]
	other := b.sorted[target]
	b.sorted[pv], b.sorted[target] = other, v
	b.position[v] = target
	b.position[other] = pv
	b.bucketStart[oldKey]++
	b.key[v] = oldKey - 1

	if b.stable {
		b.restoreStableOrder(oldKey-1, cur)
	}
}

// restoreStableOrder re-sorts the not-yet-scanned part (positions after
// cur) of the bucket holding key k by ascending vertex ID. Only used in
// stable mode; it exists purely to make property tests reproducible under
// input permutations that preserve the key multiset, not as a user-facing
// feature.
func (b *bucketSort) restoreStableOrder(k int, cur int) {
	if k < 0 || k+1 >= len(b.bucketStart) {
		return
	}
	lo, hi := b.bucketStart[k], b.bucketStart[k+1]
	if lo <= cur {
		lo = cur + 1
	}
	if lo >= hi {
		return
	}
	seg := b.sorted[lo:hi]
	sort.Slice(seg, func(i, j int) bool { return seg[i] < seg[j] })
	for i := lo; i < hi; i++ {
		b.position[b.sorted[i]] = i
	}
}
