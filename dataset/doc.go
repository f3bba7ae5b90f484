// Package dataset holds the immutable point set clustering operates over:
// an N×D matrix of float64 coordinates in row-major order, plus a Euclidean
// distance operation.
//
// A Dataset never mutates after construction; NewFromRows validates shape
// and rejects non-finite coordinates up front so every later Distance call
// is infallible except for out-of-range indices.
package dataset
