// Package ops: in-place graph complement.

package ops

import (
	"fmt"

	"github.com/dmikhr/graphops/core"
)

// Complement inverts the edge set of g in place: afterward, edge (a,b)
// exists iff it did not exist before. With directional set, (a,b) and
// (b,a) are distinct edges; otherwise the unordered pair counts once
// and the canonical vertex order decides which side owns it. Self-loops
// are complemented only when allowSelfLoops is set; an existing
// self-loop is still deleted when it is not (the removal phase
// processes it, the addition phase never re-adds it).
//
// For every vertex n1 in canonical order, two phases run:
//
//  1. Removal — every edge currently incident to n1 that is not flagged
//     as newly added this run is skipped if n1 is not its owning side
//     (not the source when directional, or later in canonical order
//     when not); otherwise the opposite endpoint is recorded and the
//     edge is deleted. The incidence snapshot makes deleting the
//     current element safe.
//  2. Addition — for every vertex n2 not recorded as a pre-existing
//     neighbor (subject to the same ownership and self-loop rules), the
//     edge (n1,n2) is inserted and flagged as newly added.
//
// The newly-added flag set is essential: without it, edges inserted
// while processing an earlier vertex would be misidentified as
// pre-existing when later vertices run their removal phase.
//
// Parallel edges all fall in the removal phase, so the result is
// parallel-free with respect to the chosen orientation.
// Complexity: O(V² + E) amortized.
func Complement(g *core.Graph, directional, allowSelfLoops bool) error {
	if g == nil {
		return ErrNilGraph
	}

	vs := g.Vertices()
	ord := orderOf(g)
	neighbors := core.NewVertexSet()
	newEdges := core.NewEdgeSet()

	for _, n1 := range vs {
		// Removal phase.
		for _, adj := range incidences(g, n1) {
			if _, live := g.EdgeByID(adj.Edge.ID); !live {
				continue // second side of an already-deleted self-loop
			}
			n2 := adj.Opposite()
			if directional && !adj.Source {
				continue
			}
			if !directional && ord[n1] > ord[n2] {
				continue
			}
			if newEdges.Has(adj.Edge.ID) {
				continue
			}
			neighbors.Insert(n2)
			if err := g.RemoveEdge(adj.Edge.ID); err != nil {
				return fmt.Errorf("complement: %w", err)
			}
		}

		// Addition phase.
		for _, n2 := range vs {
			if !directional && ord[n1] > ord[n2] {
				continue
			}
			if !allowSelfLoops && n1 == n2 {
				continue
			}
			if neighbors.Has(n2) {
				continue
			}
			eid, err := g.AddEdge(n1, n2)
			if err != nil {
				return fmt.Errorf("complement: %w", err)
			}
			newEdges.Insert(eid)
		}
		neighbors.Clear()
	}

	return nil
}
