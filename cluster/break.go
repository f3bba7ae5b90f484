package cluster

import (
	"fmt"

	"github.com/sizeconstrained/scclust/dataset"
	"github.com/sizeconstrained/scclust/digraph"
	"github.com/sizeconstrained/scclust/ids"
	"github.com/sizeconstrained/scclust/nnsearch"
	"github.com/sizeconstrained/scclust/scerr"
	"github.com/sizeconstrained/scclust/seeds"
)

// BreakClustering re-splits every cluster larger than 2*sizeConstraint-1
// (break_clustering): each such cluster is re-seeded on its own induced
// (k=sizeConstraint-1)-NNG, recursively producing clusters that each
// satisfy the size constraint, then the whole label space is renumbered
// to a contiguous 0..K-1 range. Clusters already within the threshold are
// left untouched by the split pass (their label value may still shift
// during the final renumbering).
//
// Splitting alone can only ever produce sub-clusters of size ≥
// sizeConstraint (each seed's closed neighborhood already has exactly
// sizeConstraint members, and greedy assignment only grows a cluster), so
// the only way an undersized cluster can exist afterwards is if cl
// already contained one before the call — e.g. a caller-built clustering
// that never went through Assemble, with a pre-existing singleton. A
// second repair pass absorbs every such cluster into its nearest
// not-undersized neighbor, member by member, so a lone outlier in the
// input gets folded into a real cluster rather than surviving the break
// pass as its own undersized cluster.
//
// Re-seeding always uses seeds.Lexical: the original scclust library's
// scc_greedy_break_clustering exposes no heuristic choice for the break
// pass either, since oversized clusters are a late-stage size clean-up
// rather than a quality-sensitive step.
//
// Returns ErrInvalidInput if sizeConstraint < 2, ErrProblemTooLarge if an
// oversized cluster cannot sustain a (sizeConstraint-1)-NNG (fewer points
// than sizeConstraint) or if every cluster is undersized (nothing to
// absorb into), ErrNoNeighbors if a sub-cluster assembly leaves a point
// with no admissible candidate.
func BreakClustering(cl *Clustering, ds *dataset.Dataset, sizeConstraint int, batchAssign bool) (*Clustering, error) {
	if sizeConstraint < 2 {
		return nil, fmt.Errorf("cluster: size constraint %d: %w", sizeConstraint, scerr.ErrInvalidInput)
	}

	threshold := 2*sizeConstraint - 1
	sizes := cl.ClusterSizes()

	newLabels := make([]ids.Label, len(cl.Labels))
	copy(newLabels, cl.Labels)
	nextLabel := ids.Label(cl.NumClusters)

	for label := 0; label < cl.NumClusters; label++ {
		if sizes[label] <= threshold {
			continue
		}

		members := cl.IterateMembers(ids.Label(label))
		subLabels, numSub, err := breakOneCluster(ds, members, sizeConstraint, batchAssign)
		if err != nil {
			return nil, err
		}

		for i, m := range members {
			newLabels[m] = nextLabel + subLabels[i]
		}
		nextLabel += ids.Label(numSub)
	}

	if err := absorbUndersized(ds, newLabels, sizeConstraint); err != nil {
		return nil, err
	}

	return renumber(newLabels), nil
}

// absorbUndersized reassigns, in place, every point belonging to a
// cluster smaller than sizeConstraint to the nearest point belonging to a
// cluster that already meets the constraint.
//
// Returns ErrProblemTooLarge if every cluster in labels is undersized.
func absorbUndersized(ds *dataset.Dataset, labels []ids.Label, sizeConstraint int) error {
	counts := make(map[ids.Label]int)
	for _, l := range labels {
		counts[l]++
	}

	var keep, donors []ids.VertexID
	for v, l := range labels {
		if counts[l] >= sizeConstraint {
			keep = append(keep, ids.VertexID(v))
		} else {
			donors = append(donors, ids.VertexID(v))
		}
	}
	if len(donors) == 0 {
		return nil
	}
	if len(keep) == 0 {
		return fmt.Errorf("cluster: every cluster is below size constraint %d: %w", sizeConstraint, scerr.ErrProblemTooLarge)
	}

	kern, err := nnsearch.NewKernel(ds, keep)
	if err != nil {
		return err
	}
	results, err := kern.NNSearch(donors, 1, false, 0)
	if err != nil {
		return err
	}

	for i, v := range donors {
		nearest := results[i].Neighbors[0]
		if nearest == ids.VIDSentinel {
			return fmt.Errorf("cluster: vertex %d: %w", v, scerr.ErrNoNeighbors)
		}
		labels[v] = labels[nearest]
	}

	return nil
}

// breakOneCluster re-seeds a single oversized cluster's member set,
// returning a label (relative to 0) per member and the sub-cluster count.
func breakOneCluster(ds *dataset.Dataset, members []ids.VertexID, sizeConstraint int, batchAssign bool) ([]ids.Label, int, error) {
	m := len(members)
	k := sizeConstraint - 1
	if k <= 0 || k >= m {
		return nil, 0, fmt.Errorf("cluster: oversized cluster of size %d cannot sustain a %d-NNG: %w", m, k, scerr.ErrProblemTooLarge)
	}

	localOf := make(map[ids.VertexID]int, m)
	for i, v := range members {
		localOf[v] = i
	}

	kern, err := nnsearch.NewKernel(ds, members)
	if err != nil {
		return nil, 0, err
	}
	results, err := kern.NNSearch(members, k, false, 0)
	if err != nil {
		return nil, 0, err
	}

	rows := make([][]ids.VertexID, m)
	for i, r := range results {
		row := make([]ids.VertexID, 0, k)
		for _, u := range r.Neighbors {
			if u == ids.VIDSentinel {
				continue
			}
			row = append(row, ids.VertexID(localOf[u]))
		}
		rows[i] = row
	}

	localG, err := digraph.NewFromRows(rows)
	if err != nil {
		return nil, 0, err
	}

	sr, err := seeds.FindSeeds(localG, seeds.Lexical, false)
	if err != nil {
		return nil, 0, err
	}
	if len(sr.Seeds) == 0 {
		return nil, 0, fmt.Errorf("cluster: induced NNG yielded no seeds: %w", scerr.ErrNoNeighbors)
	}

	local := make([]ids.Label, m)
	for i := range local {
		local[i] = ids.Unassigned
	}
	for i, s := range sr.Seeds {
		label := ids.Label(i)
		local[s] = label
		for _, u := range localG.Successors(s) {
			local[u] = label
		}
	}

	var unassignedLocal []int
	for i, l := range local {
		if l == ids.Unassigned {
			unassignedLocal = append(unassignedLocal, i)
		}
	}
	if len(unassignedLocal) == 0 {
		return local, len(sr.Seeds), nil
	}

	var poolLocal []int
	if batchAssign {
		for i, l := range local {
			if l != ids.Unassigned {
				poolLocal = append(poolLocal, i)
			}
		}
	} else {
		for _, s := range sr.Seeds {
			poolLocal = append(poolLocal, int(s))
		}
	}

	poolGlobal := make([]ids.VertexID, len(poolLocal))
	for i, li := range poolLocal {
		poolGlobal[i] = members[li]
	}
	unassignedGlobal := make([]ids.VertexID, len(unassignedLocal))
	for i, li := range unassignedLocal {
		unassignedGlobal[i] = members[li]
	}

	kern2, err := nnsearch.NewKernel(ds, poolGlobal)
	if err != nil {
		return nil, 0, err
	}
	res2, err := kern2.NNSearch(unassignedGlobal, 1, false, 0)
	if err != nil {
		return nil, 0, err
	}

	for i, li := range unassignedLocal {
		nearestGlobal := res2[i].Neighbors[0]
		if nearestGlobal == ids.VIDSentinel {
			return nil, 0, fmt.Errorf("cluster: vertex %d: %w", members[li], scerr.ErrNoNeighbors)
		}
		local[li] = local[localOf[nearestGlobal]]
	}

	return local, len(sr.Seeds), nil
}
