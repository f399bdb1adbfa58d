// Package ops: graph union, disjoint and identifying.

package ops

import (
	"fmt"

	"github.com/dmikhr/graphops/core"
)

// Union forms the disjoint union of g1 and g2 in place on g1: a copy of
// every vertex and edge of g2 is inserted into g1 with fresh IDs, with
// no identification. The returned VertexMap sends each g2 vertex to its
// copy in g1.
//
// Postconditions: |V(g1')| = |V1|+|V2| and |E(g1')| = |E1|+|E2|.
// Complexity: O((V2+E2)·log(V2+E2))
func Union(g1, g2 *core.Graph) (VertexMap, error) {
	if err := checkDistinct(g1, g2); err != nil {
		return nil, err
	}
	vmap, _, err := g1.Insert(g2)
	if err != nil {
		return nil, fmt.Errorf("union: %w", err)
	}

	return VertexMap(vmap), nil
}

// UnionWith forms the union of g1 and g2 in place on g1 while
// identifying vertices of g2 with vertices of g1 through map2to1.
//
// Every g2 vertex mapped to Unmapped receives a fresh vertex in g1 and
// map2to1 is updated to record it; mapped vertices are identified with
// their g1 counterpart and no new vertex is created. Every g2 edge
// (s,t) becomes the g1 edge (map2to1[s], map2to1[t]). On return,
// map2to1 has no Unmapped entries.
//
// If parallelFree is set, parallel edges in the result are collapsed —
// including pairs that were already parallel inside g1 or g2 — treating
// edges as directed or undirected per the directed flag; directed has
// no effect otherwise.
//
// map2to1 must carry an entry (possibly Unmapped) for every vertex of
// g2, and every non-sentinel entry must name a g1 vertex; violations
// return ErrIncompleteMapping or ErrForeignVertex with g1 unmodified.
// Complexity: O((V2+E2)·log(V2+E2)), plus O(E·logE) when parallelFree.
func UnionWith(g1, g2 *core.Graph, map2to1 VertexMap, parallelFree, directed bool) error {
	if err := checkDistinct(g1, g2); err != nil {
		return err
	}
	if err := validateMapping(map2to1, g2, g1); err != nil {
		return fmt.Errorf("union: %w", err)
	}

	for _, v2 := range g2.Vertices() {
		if map2to1[v2] == Unmapped {
			map2to1[v2] = g1.NewVertex()
		}
	}

	for _, e2 := range g2.Edges() {
		if _, err := g1.AddEdge(map2to1[e2.From], map2to1[e2.To]); err != nil {
			return fmt.Errorf("union: %w", err)
		}
	}

	if parallelFree {
		if directed {
			core.MakeParallelFree(g1)
		} else {
			core.MakeParallelFreeUndirected(g1)
		}
	}

	return nil
}
