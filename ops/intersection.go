// Package ops: in-place graph intersection under a correspondence.

package ops

import (
	"fmt"

	"github.com/dmikhr/graphops/core"
)

// Intersection restricts g1 in place to the substructure it shares
// with g2 under nodeMap: first every g1 vertex with an Unmapped
// counterpart is deleted (with its incident edges), then every
// surviving edge (n1a,n1b) is deleted unless the counterparts of its
// endpoints are adjacent in g2 (in either orientation).
//
// nodeMap must carry an entry (possibly Unmapped) for every vertex of
// g1, and every non-sentinel entry must name a g2 vertex; violations
// return ErrIncompleteMapping or ErrForeignVertex with g1 unmodified.
// Complexity: O((V1+E1+E2)·log-factors) dominated by sorted snapshots.
func Intersection(g1, g2 *core.Graph, nodeMap VertexMap) error {
	if err := checkDistinct(g1, g2); err != nil {
		return err
	}
	if err := validateMapping(nodeMap, g1, g2); err != nil {
		return fmt.Errorf("intersection: %w", err)
	}

	// Delete vertices without a counterpart. The Vertices snapshot makes
	// deleting the current element safe.
	for _, n1 := range g1.Vertices() {
		if nodeMap[n1] == Unmapped {
			if err := g1.RemoveVertex(n1); err != nil {
				return fmt.Errorf("intersection: %w", err)
			}
		}
	}

	// Prune edges whose endpoint counterparts are not adjacent in g2.
	counterparts := core.NewVertexSet()
	for _, n1a := range g1.Vertices() {
		n2a := nodeMap[n1a]
		for _, adj2 := range incidences(g2, n2a) {
			counterparts.Insert(adj2.Opposite())
		}
		for _, adj1 := range incidences(g1, n1a) {
			if _, live := g1.EdgeByID(adj1.Edge.ID); !live {
				continue // second side of an already-deleted self-loop
			}
			n1b := adj1.Opposite()
			if counterparts.Has(nodeMap[n1b]) {
				continue
			}
			if err := g1.RemoveEdge(adj1.Edge.ID); err != nil {
				return fmt.Errorf("intersection: %w", err)
			}
		}
		counterparts.Clear()
	}

	return nil
}
