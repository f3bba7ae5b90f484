package nnsearch

import (
	"fmt"

	"github.com/sizeconstrained/scclust/ids"
	"github.com/sizeconstrained/scclust/scerr"
)

// NNResult holds, for one query, up to k nearest neighbors in ascending
// distance order. Unfilled slots (fewer than k admissible neighbors were
// found) carry ids.VIDSentinel and distance -1.
type NNResult struct {
	Neighbors []ids.VertexID
	Distances []float64
}

// NNSearch finds, for each q in Q, up to k nearest points in S under
// Euclidean distance. If useRadius is true, a candidate s is admitted
// only when d(q,s) < radius. A candidate s equal to the query itself is
// always skipped, which is what lets the NNG builder call NNSearch with
// S = {0..N-1} directly rather than constructing a per-vertex S\{v}.
//
// Algorithm: a length-k insertion-sort window. Each
// candidate either extends the window (not yet full), replaces the
// current tail (strictly closer than the tail), or is discarded; a
// replacement then bubbles leftward while its left neighbor is strictly
// farther. Strict (not ≤) comparisons throughout are what makes ties
// resolve to ascending insertion order, i.e. ascending index within S.
//
// Complexity: O(|Q|·|S|·k) time, O(k) extra space per query.
func (k *Kernel) NNSearch(q []ids.VertexID, kNeighbors int, useRadius bool, radius float64) ([]NNResult, error) {
	if kNeighbors <= 0 {
		return nil, fmt.Errorf("nnsearch: k=%d: %w", kNeighbors, scerr.ErrInvalidInput)
	}
	if err := k.validateQuery(q); err != nil {
		return nil, err
	}

	out := make([]NNResult, len(q))
	for i, query := range q {
		neighbors := make([]ids.VertexID, 0, kNeighbors)
		distances := make([]float64, 0, kNeighbors)

		for _, s := range k.s {
			if s == query {
				continue
			}
			d, err := k.ds.Distance(query, s)
			if err != nil {
				return nil, err
			}
			if useRadius && !(d < radius) {
				continue
			}

			switch {
			case len(neighbors) < kNeighbors:
				neighbors = append(neighbors, s)
				distances = append(distances, d)
				bubbleLeft(neighbors, distances, len(neighbors)-1)
			case d < distances[len(distances)-1]:
				last := len(distances) - 1
				neighbors[last] = s
				distances[last] = d
				bubbleLeft(neighbors, distances, last)
			}
		}

		for len(neighbors) < kNeighbors {
			neighbors = append(neighbors, ids.VIDSentinel)
			distances = append(distances, -1)
		}

		out[i] = NNResult{Neighbors: neighbors, Distances: distances}
	}

	return out, nil
}

// bubbleLeft moves the entry at pos leftward while its left neighbor's
// distance is strictly greater, preserving ascending order and the
// ascending-index tie-break (equal distances never swap).
func bubbleLeft(neighbors []ids.VertexID, distances []float64, pos int) {
	for pos > 0 && distances[pos-1] > distances[pos] {
		neighbors[pos-1], neighbors[pos] = neighbors[pos], neighbors[pos-1]
		distances[pos-1], distances[pos] = distances[pos], distances[pos-1]
		pos--
	}
}
