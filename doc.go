// Package scclust computes size-constrained clusterings of a finite
// point set under the Euclidean metric: every returned cluster has at
// least size_constraint members, and every point belongs to exactly one
// cluster.
//
// The two entry points, Cluster and BreakClustering, mirror the original
// scc library's scc_get_greedy_clustering / scc_greedy_break_clustering
// parameter shape: a size constraint, a seed-finding heuristic (Cluster
// only), and a batch_assign flag governing how leftover points are
// greedily placed. Everything else — the NN kernel, the CSR digraph
// algebra, the seed finder's five heuristics, the clustering assembler —
// lives in dataset, nnsearch, digraph, seeds, and cluster; this package
// only wires them into the two public operations.
package scclust
