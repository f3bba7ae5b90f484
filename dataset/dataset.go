package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sizeconstrained/scclust/ids"
	"github.com/sizeconstrained/scclust/scerr"
)

// Dataset is an immutable, row-major N×D matrix of float64 coordinates.
// Row i's coordinates occupy data[i*cols : i*cols+cols].
//
// Grounded on lvlath/matrix.Dense's flat row-major backing store, adapted
// from a general linear-algebra matrix (At/Set, arithmetic) into a
// read-only point set with a single derived operation: pairwise distance.
type Dataset struct {
	rows int
	cols int
	data []float64
}

// NewFromRows constructs a Dataset from a flattened row-major buffer.
//
// Stage 1 (Validate): rows and cols must be positive; data must have
// exactly rows*cols elements; every coordinate must be finite.
// Stage 2 (Finalize): the buffer is copied (later changes to data by the
// caller do not affect the Dataset) and wrapped as an immutable Dataset.
//
// Returns ErrInvalidInput if shape is inconsistent or any coordinate is
// NaN or ±Inf (undefined behavior in the original source; this
// implementation rejects it at construction instead).
func NewFromRows(rows, cols int, data []float64) (*Dataset, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("dataset: rows=%d cols=%d: %w", rows, cols, scerr.ErrInvalidInput)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("dataset: data has %d elements, want %d: %w", len(data), rows*cols, scerr.ErrInvalidInput)
	}
	if uint64(rows) >= uint64(ids.VIDMax) {
		return nil, fmt.Errorf("dataset: rows=%d exceeds vertex ID width: %w", rows, scerr.ErrProblemTooLarge)
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("dataset: non-finite coordinate at flat index %d: %w", i, scerr.ErrInvalidInput)
		}
	}

	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dataset{rows: rows, cols: cols, data: buf}, nil
}

// RowCount returns N, the number of points in the Dataset.
func (d *Dataset) RowCount() int { return d.rows }

// ColCount returns D, the dimensionality of each point.
func (d *Dataset) ColCount() int { return d.cols }

// row returns the coordinate slice for vertex v without bounds checking.
func (d *Dataset) row(v ids.VertexID) []float64 {
	off := int(v) * d.cols
	return d.data[off : off+d.cols]
}

// Distance returns the Euclidean distance between rows i and j.
//
// Returns ErrInvalidIndex if i or j is out of [0, RowCount()). The result
// is symmetric and zero iff rows i and j hold identical coordinates.
func (d *Dataset) Distance(i, j ids.VertexID) (float64, error) {
	if int(i) >= d.rows {
		return 0, fmt.Errorf("dataset: row %d: %w", i, scerr.ErrInvalidIndex)
	}
	if int(j) >= d.rows {
		return 0, fmt.Errorf("dataset: row %d: %w", j, scerr.ErrInvalidIndex)
	}

	return floats.Distance(d.row(i), d.row(j), 2), nil
}

// PairwiseDistances computes every pairwise distance among indices (or, if
// indices is nil, among all 0..RowCount()-1), writing
// (n*(n-1))/2 values in ascending (i,j), i<j lexicographic order.
//
// Returns ErrInvalidIndex if any supplied index is out of range.
func (d *Dataset) PairwiseDistances(indices []ids.VertexID) ([]float64, error) {
	if indices == nil {
		indices = make([]ids.VertexID, d.rows)
		for i := range indices {
			indices[i] = ids.VertexID(i)
		}
	}

	n := len(indices)
	out := make([]float64, 0, n*(n-1)/2)
	for a := 0; a < n; a++ {
		if int(indices[a]) >= d.rows {
			return nil, fmt.Errorf("dataset: row %d: %w", indices[a], scerr.ErrInvalidIndex)
		}
		for b := a + 1; b < n; b++ {
			if int(indices[b]) >= d.rows {
				return nil, fmt.Errorf("dataset: row %d: %w", indices[b], scerr.ErrInvalidIndex)
			}
			out = append(out, floats.Distance(d.row(indices[a]), d.row(indices[b]), 2))
		}
	}

	return out, nil
}
