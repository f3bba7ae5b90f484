// Package scerr: sentinel error set (unified, consistent).
// This file defines ONLY the package-level sentinel errors shared across
// scclust's subpackages. Every algorithm MUST return one of these
// sentinels (wrapped with fmt.Errorf("%w: ...") for context) and tests
// MUST check them via errors.Is. There is no debug-assertion layer:
// internal invariants (CSR soundness, mark consistency) are not checked
// at run time, and nil arguments or out-of-range vertex IDs passed to
// accessors such as digraph.Digraph.Successors panic rather than return
// an error.
package scerr

import "errors"

// ERROR PRIORITY (documented; no test checks it):
// shape/index/NaN -> invalid input -> problem too large -> no neighbors
// -> not implemented -> out of memory.
//
// OK is not a Go error value; it is the absence of one (nil).

var (
	// ErrOutOfMemory is returned when an allocation fails. Go's runtime
	// normally turns allocation failure into a panic rather than an error,
	// so this sentinel is reserved for explicit, caller-visible capacity
	// checks (e.g. a configured maximum buffer size) rather than actual
	// allocator failure.
	ErrOutOfMemory = errors.New("scclust: out of memory")

	// ErrInvalidInput covers null/missing input, inconsistent sizes, k=0,
	// k>=N, and size_constraint<2.
	ErrInvalidInput = errors.New("scclust: invalid input")

	// ErrInvalidIndex indicates a vertex or row index outside [0, N).
	ErrInvalidIndex = errors.New("scclust: invalid index")

	// ErrProblemTooLarge indicates N or K would exceed the configured
	// vertex/label ID width.
	ErrProblemTooLarge = errors.New("scclust: problem too large for configured ID width")

	// ErrNotImplemented marks an unreachable heuristic selector or an
	// intentionally unsupported operation.
	ErrNotImplemented = errors.New("scclust: not implemented")

	// ErrNoNeighbors indicates an NNG vertex has zero admissible
	// neighbors under radius search, surfaced only when the assembler
	// cannot place the affected point.
	ErrNoNeighbors = errors.New("scclust: no neighbors available")
)
