// SPDX-License-Identifier: MIT

package connectivity

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/mixrate/matrix"
)

const (
	opIsConnected = "IsConnected"
	opComponents  = "Components"
)

// IsConnected reports whether m, read as an adjacency structure, has exactly
// one connected component.
//
// Inputs:
//   - m: square matrix; any nonzero off-diagonal entry is an edge.
//   - directed: false → weak (undirected) components; true → strongly
//     connected components.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (as *matrix.ShapeError).
//
// Complexity: O(n²).
func IsConnected(m matrix.Matrix, directed bool) (bool, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return false, connectivityErrorf(opIsConnected, err)
	}
	comps := partition(m, directed)

	return len(comps) == 1, nil
}

// Components returns the connected components of m with node indices sorted
// ascending inside each component, and components ordered by their smallest
// index. The output is deterministic for a fixed m.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity: O(n² + n log n).
func Components(m matrix.Matrix, directed bool) ([][]int, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, connectivityErrorf(opComponents, err)
	}

	return partition(m, directed), nil
}

// partition loads m into a gonum graph and splits it into components.
// Assumes m is square (validated by callers).
func partition(m matrix.Matrix, directed bool) [][]int {
	var raw [][]graph.Node
	if directed {
		raw = topo.TarjanSCC(buildDirected(m))
	} else {
		raw = topo.ConnectedComponents(buildUndirected(m))
	}

	out := make([][]int, 0, len(raw))
	for _, comp := range raw {
		ids := make([]int, len(comp))
		for k, node := range comp {
			ids[k] = int(node.ID())
		}
		sort.Ints(ids)
		out = append(out, ids)
	}
	sort.Slice(out, func(a, b int) bool { return out[a][0] < out[b][0] })

	return out
}

// buildUndirected adds n nodes and one edge per unordered pair {i,j} (i<j)
// where either direction carries a nonzero weight.
func buildUndirected(m matrix.Matrix) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	n := m.Rows()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}

	var aij, aji float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ { // skip the diagonal; simple graphs reject self edges
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if aij != 0 || aji != 0 {
				g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
			}
		}
	}

	return g
}

// buildDirected adds n nodes and an arc i→j for every nonzero m[i,j], i≠j.
func buildDirected(m matrix.Matrix) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	n := m.Rows()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}

	var aij float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			aij, _ = m.At(i, j)
			if aij != 0 {
				g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
			}
		}
	}

	return g
}
