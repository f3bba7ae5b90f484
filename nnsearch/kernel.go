package nnsearch

import (
	"fmt"

	"github.com/sizeconstrained/scclust/dataset"
	"github.com/sizeconstrained/scclust/ids"
	"github.com/sizeconstrained/scclust/scerr"
)

// Kernel is a one-shot query object bound to a Dataset and a fixed search
// set S. Construct a new Kernel whenever S changes.
type Kernel struct {
	ds *dataset.Dataset
	s  []ids.VertexID
}

// NewKernel validates ds and S and returns a Kernel ready for DistColumn,
// MaxDist, and NNSearch queries.
//
// Returns ErrInvalidInput if ds is nil, ErrInvalidIndex if any index in S
// is out of range.
func NewKernel(ds *dataset.Dataset, s []ids.VertexID) (*Kernel, error) {
	if ds == nil {
		return nil, fmt.Errorf("nnsearch: nil dataset: %w", scerr.ErrInvalidInput)
	}
	for _, v := range s {
		if int(v) >= ds.RowCount() {
			return nil, fmt.Errorf("nnsearch: search set member %d out of range: %w", v, scerr.ErrInvalidIndex)
		}
	}

	cp := make([]ids.VertexID, len(s))
	copy(cp, s)

	return &Kernel{ds: ds, s: cp}, nil
}

func (k *Kernel) validateQuery(q []ids.VertexID) error {
	for _, v := range q {
		if int(v) >= k.ds.RowCount() {
			return fmt.Errorf("nnsearch: query member %d out of range: %w", v, scerr.ErrInvalidIndex)
		}
	}
	return nil
}

// DistColumn returns a |Q|×|S| distance matrix, rows in Q order and
// columns in S's enumeration order.
func (k *Kernel) DistColumn(q []ids.VertexID) ([][]float64, error) {
	if err := k.validateQuery(q); err != nil {
		return nil, err
	}

	out := make([][]float64, len(q))
	for i, query := range q {
		row := make([]float64, len(k.s))
		for j, s := range k.s {
			d, err := k.ds.Distance(query, s)
			if err != nil {
				return nil, err
			}
			row[j] = d
		}
		out[i] = row
	}

	return out, nil
}

// MaxResult is the farthest point in S from a query, and its distance.
type MaxResult struct {
	Vertex   ids.VertexID
	Distance float64
}

// MaxDist returns, for each q in Q, the point in S farthest from q. Ties
// are broken by the first index encountered in S's enumeration order.
func (k *Kernel) MaxDist(q []ids.VertexID) ([]MaxResult, error) {
	if err := k.validateQuery(q); err != nil {
		return nil, err
	}
	if len(k.s) == 0 {
		return nil, fmt.Errorf("nnsearch: empty search set: %w", scerr.ErrInvalidInput)
	}

	out := make([]MaxResult, len(q))
	for i, query := range q {
		var best MaxResult
		haveBest := false
		for _, s := range k.s {
			d, err := k.ds.Distance(query, s)
			if err != nil {
				return nil, err
			}
			if !haveBest || d > best.Distance {
				best = MaxResult{Vertex: s, Distance: d}
				haveBest = true
			}
		}
		out[i] = best
	}

	return out, nil
}
