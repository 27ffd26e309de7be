// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major distance matrix used by the
// lvlpath shortest-path engine, together with the shape validators every
// entry point relies on.
//
// Dense stores an r×c block of float64 values in one flat slice, row-major,
// so the engine's relaxation loops can walk rows with plain index
// arithmetic and zero per-cell overhead. The distance convention follows
// the engine's input contract: a value 0 at an off-diagonal position means
// "no known edge", not "zero-cost edge"; the diagonal is always 0.
//
// All user-triggered error conditions return package sentinel errors
// (matched via errors.Is); nothing in this package panics on user input.
//
// Complexity:
//
//	– At/Set/Row: O(1)
//	– Fill/Clone: O(r*c)
package matrix
