// Package fixtures provides deterministic synthetic Datasets for tests
// and examples, in particular a handful of small named scenarios (two
// tight pairs on a line, a regular hexagon, collinear points, and so on)
// used throughout the test suite. Each scenario has a fixed, exact
// layout (EightCollinearForBreak reuses Collinear), so that tests
// reproduce the expected clusterings verbatim.
//
// Grid and JitteredGrid round out the set with a general-purpose
// generator for property tests that don't care about exact coordinates,
// adapted from builder's Grid constructor (row-major layout) and tsp's
// deterministic RNG factory (rngFromSeed) for the jittered variant.
package fixtures
