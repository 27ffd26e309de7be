// SPDX-License-Identifier: MIT

// Package shortest computes all-pairs or source-subset shortest-path
// distances over non-negative weighted graphs, choosing between a dense
// O(N³) all-pairs relaxation and a per-source sparse search driven by a
// decrease-key heap.
//
// Entry points:
//
//	– ShortestPaths:      density-dispatched top level over a dense matrix
//	– DenseAllPairs:      Floyd–Warshall relaxation, in place by default
//	– SparseSingleSource: per-source label-setting search over a csr.Graph
//
// Input convention (inherited, preserved for behavioral parity): in a
// dense input, an off-diagonal 0 means "no known edge", never "zero-cost
// edge". The same ambiguity carries into outputs — result[i][j] == 0 means
// i == j or "unreachable". This is a documented limitation of the
// representation, not a condition the engine detects or corrects.
//
// A second documented limitation: the undirected sparse search assumes
// symmetric weights. When the input stores different weights for the two
// directions of a pair, relaxation effectively takes whichever direction
// yields the smaller tentative distance; no error is raised.
//
// Errors: non-square input (matrix.ErrNonSquare), negative edge weight
// (ErrNegativeWeight), unrecognized method (ErrUnknownMethod) and a source
// index outside the graph (ErrSourceOutOfRange) are all rejected before
// any relaxation runs; there are no partial results. Every computation is
// deterministic under the default sequential configuration.
//
// Complexity:
//
//	– dense:  O(N³) time, O(1) extra space (in place)
//	– sparse: O(E + N log N) per source, doubled edge work when undirected
package shortest
