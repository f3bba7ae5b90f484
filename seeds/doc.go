// Package seeds implements the seed-finding engine: given an NNG and one
// of five ordering heuristics, it returns a maximal set of
// pairwise-disjoint closed k-neighborhoods.
//
// # Heuristics
//
//	Lexical            scan v=0..N-1 once, take every valid seed found.
//	InwardsOrder        scan vertices sorted by static in-degree ascending.
//	InwardsUpdating     like InwardsOrder, but in-degrees decrease as
//	                    seeds are chosen and vertices move down buckets.
//	ExclusionOrder      scan the exclusion graph E = union(G, Gᵀ, G·Gᵀ)
//	                    (rows with zero G-out-degree dropped), sorted by
//	                    E in-degree ascending.
//	ExclusionUpdating   ExclusionOrder with the same live bucket updates
//	                    as InwardsUpdating, applied to E.
//
// # Bucket structure
//
// The two updating heuristics share a counting-sort bucket structure
// (bucketSort in bucket.go) that supports an O(1)-amortized "decrement
// key and move down one bucket" operation while a scan cursor advances
// through the same array — the central data structure this package
// exists to implement.
//
// Grounded on dijkstra's lazy-decrease-key heap (mutable priority state
// scanned by a single driving loop), adapted from a binary heap to a
// bucket/counting sort since the updating heuristics need O(1) amortized
// decrement, which a heap cannot provide; the five-heuristic-one-entry-point
// shape mirrors flow's FordFulkerson/EdmondsKarp/Dinic sharing FlowOptions.
package seeds
