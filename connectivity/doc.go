// SPDX-License-Identifier: MIT

// Package connectivity answers "is this topology a single component?" for
// adjacency matrices.
//
// What:
//
//   - IsConnected(m, directed) reports exactly one component: weakly
//     (undirected view, an edge where m[i,j] or m[j,i] is nonzero) when
//     directed == false, strongly connected when directed == true.
//   - Components(m, directed) returns the components as sorted node-index
//     slices, ordered by their smallest member.
//
// How:
//
//	The matrix is loaded into a gonum graph (graph/simple) and partitioned
//	with graph/topo: ConnectedComponents for the undirected view, TarjanSCC
//	for the directed one. Self-loops (diagonal entries) never affect
//	connectivity and are skipped.
//
// Complexity (n = Rows):
//
//   - Time O(n²) to scan the matrix, O(n + E) for the partition.
//   - Space O(n + E).
package connectivity
