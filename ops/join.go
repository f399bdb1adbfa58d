// Package ops: graph join under partial identification.

package ops

import (
	"fmt"

	"github.com/dmikhr/graphops/core"
)

// Join computes the graph join of g1 and g2 in place on g1:
// V = V1 ∪ V2, E = E1 ∪ E2 ∪ (V1 × V2), with g2 vertices carrying a
// non-sentinel mapping entry identified with their g1 counterpart
// instead of contributing a fresh vertex.
//
// A full copy of g2 is inserted first. For each identified g2 vertex,
// every edge incident to its copy is rewired onto the g1 counterpart
// and the now-redundant copy is deleted — so a self-loop on an
// identified vertex does not survive, since it is attached to the copy
// being deleted. After identification, every original g1 vertex is
// connected to every (possibly merged) image of every g2 vertex, except
// when both are the same vertex post-merge. Finally, undirected
// parallel edges produced by identification or the complete connection
// are collapsed, so the result is undirected-parallel-free.
//
// mapping must carry an entry (possibly Unmapped) for every vertex of
// g2, and every non-sentinel entry must name a g1 vertex; violations
// return ErrIncompleteMapping or ErrForeignVertex with g1 unmodified.
// Complexity: O(V1·V2 + E1 + E2) plus sorting factors.
func Join(g1, g2 *core.Graph, mapping VertexMap) error {
	if err := checkDistinct(g1, g2); err != nil {
		return err
	}
	if err := validateMapping(mapping, g2, g1); err != nil {
		return fmt.Errorf("join: %w", err)
	}

	// Snapshot the original g1 vertex set before the copy arrives.
	g1nodes := g1.Vertices()

	vmap, _, err := g1.Insert(g2)
	if err != nil {
		return fmt.Errorf("join: %w", err)
	}

	// Resolve identifications: rewire each identified copy's incident
	// edges onto the g1 counterpart, then delete the copy. vmap is
	// updated as we go, so edges between two identified vertices land on
	// both counterparts once each side is processed.
	for _, n2 := range g2.Vertices() {
		mapped := mapping[n2]
		if mapped == Unmapped {
			continue
		}
		for _, adj := range incidences(g2, n2) {
			if _, err = g1.AddEdge(mapped, vmap[adj.Opposite()]); err != nil {
				return fmt.Errorf("join: %w", err)
			}
		}
		created := vmap[n2]
		vmap[n2] = mapped
		if err = g1.RemoveVertex(created); err != nil {
			return fmt.Errorf("join: %w", err)
		}
	}

	// Complete connection between the original g1 vertices and the
	// (possibly merged) images of g2.
	for _, n2 := range g2.Vertices() {
		image := vmap[n2]
		for _, n1 := range g1nodes {
			if n1 == image {
				continue
			}
			if _, err = g1.AddEdge(n1, image); err != nil {
				return fmt.Errorf("join: %w", err)
			}
		}
	}

	core.MakeParallelFreeUndirected(g1)

	return nil
}
