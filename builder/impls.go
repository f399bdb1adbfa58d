// Package builder: topology implementations for the fixture families.
//
// Contract shared by all constructors:
//   - Vertices are added via vertexID in ascending index order.
//   - Edges are emitted in a fixed documented order, each unordered
//     pair exactly once.
//   - Only sentinel errors are returned; no panics at runtime.

package builder

import (
	"fmt"

	"github.com/dmikhr/graphops/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath      = "Path"
	methodCycle     = "Cycle"
	methodComplete  = "Complete"
	methodStar      = "Star"
	methodBipartite = "CompleteBipartite"

	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarLeaves    = 1
	minPartSize      = 1
)

// addIndexed inserts n vertices with the given ID function in ascending
// index order and returns their IDs.
func addIndexed(g *core.Graph, method string, n int, idFn func(int) string) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// Path returns a Constructor that builds the simple path P_n:
// edges (i-1)→i for i = 1..n-1, in increasing order. Requires n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addIndexed(g, methodPath, n, vertexID)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if _, err = g.AddEdge(ids[i-1], ids[i]); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodPath, ids[i-1], ids[i], err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n:
// the path edges plus the closing edge (n-1)→0. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addIndexed(g, methodCycle, n, vertexID)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			next := ids[(i+1)%n]
			if _, err = g.AddEdge(ids[i], next); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodCycle, ids[i], next, err)
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete simple graph
// K_n: each unordered pair {i,j} with i < j emitted exactly once, in
// lexicographic (i,j) order. Requires n ≥ 1.
func Complete(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addIndexed(g, methodComplete, n, vertexID)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err = g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodComplete, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds the star S_n: center "V0"
// connected to n leaves "V1".."Vn", in increasing leaf order.
// Requires n ≥ 1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minStarLeaves {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarLeaves, ErrTooFewVertices)
		}
		ids, err := addIndexed(g, methodStar, n+1, vertexID)
		if err != nil {
			return err
		}
		for i := 1; i <= n; i++ {
			if _, err = g.AddEdge(ids[0], ids[i]); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodStar, ids[0], ids[i], err)
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{m,n} with
// parts "L0".."L<m-1>" and "R0".."R<n-1>", emitting each (Li,Rj) pair
// once in lexicographic (i,j) order. Requires m ≥ 1 and n ≥ 1.
func CompleteBipartite(m, n int) Constructor {
	return func(g *core.Graph) error {
		if m < minPartSize || n < minPartSize {
			return fmt.Errorf("%s: m=%d,n=%d < min=%d: %w", methodBipartite, m, n, minPartSize, ErrTooFewVertices)
		}
		left, err := addIndexed(g, methodBipartite, m, func(i int) string { return fmt.Sprintf("L%d", i) })
		if err != nil {
			return err
		}
		right, err := addIndexed(g, methodBipartite, n, func(i int) string { return fmt.Sprintf("R%d", i) })
		if err != nil {
			return err
		}
		for _, l := range left {
			for _, r := range right {
				if _, err = g.AddEdge(l, r); err != nil {
					return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodBipartite, l, r, err)
				}
			}
		}

		return nil
	}
}
