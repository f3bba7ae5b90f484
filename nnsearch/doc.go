// Package nnsearch implements the NN (nearest-neighbor) query kernel:
// three one-shot query objects evaluated against a fixed search set
// S ⊆ {0..N-1} of a Dataset.
//
//   - DistColumn(S) computes a full |Q|×|S| distance matrix for a query
//     set Q.
//   - MaxDist(S) finds, for each q in Q, the farthest point in S (ties
//     broken by first occurrence in S's enumeration order).
//   - NNSearch(S, k, radius) finds, for each q in Q, up to k nearest
//     points in S via a bounded insertion sort, excluding q itself when it
//     is a member of S (the property the NNG builder depends on).
//
// Grounded on dijkstra's runner struct (read-only inputs plus mutable
// scratch state split from the public entry point), adapted here to a
// single insertion-sort pass instead of a heap: the kernel needs an O(k)
// fixed window with strict-less-than tie-breaking, not a general priority
// queue.
package nnsearch
