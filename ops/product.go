// Package ops: the generic graph-product driver.

package ops

import (
	"github.com/dmikhr/graphops/core"
)

// PairFunc is a product edge policy. For the pair (v1, v2) it inserts
// into product every product edge the policy defines as owned by that
// pair; the grid is fully populated before the first invocation, so a
// policy may reference any cell. A policy must not emit any product
// edge twice — the named products achieve this by emitting each
// single-axis edge only from the source side of the underlying edge,
// and each unordered-pair rule only in canonical vertex order.
type PairFunc func(product *core.Graph, grid Grid, v1, v2 string) error

// Product computes a graph product of g1 and g2 under the given edge
// policy. It creates the product graph, adds one vertex per pair in
// V1×V2 (recorded in the returned Grid), and then invokes addEdges for
// every pair, iterating both axes in canonical vertex order.
//
// g1 and g2 are only read, so passing the same graph twice is legal
// (graph squares). The returned product graph and grid are owned by
// the caller.
// Complexity: O(n1·n2) plus the total cost of the policy invocations.
func Product(g1, g2 *core.Graph, addEdges PairFunc) (*core.Graph, Grid, error) {
	if g1 == nil || g2 == nil {
		return nil, nil, ErrNilGraph
	}
	if addEdges == nil {
		return nil, nil, ErrNilPolicy
	}

	product := core.NewGraph()
	v1s := g1.Vertices()
	v2s := g2.Vertices()

	// Populate the node grid first: policies may reference any cell.
	grid := make(Grid, len(v1s))
	for _, v1 := range v1s {
		row := make(map[string]string, len(v2s))
		for _, v2 := range v2s {
			row[v2] = product.NewVertex()
		}
		grid[v1] = row
	}

	// Then sweep every pair once for its owned edges.
	for _, v1 := range v1s {
		for _, v2 := range v2s {
			if err := addEdges(product, grid, v1, v2); err != nil {
				return nil, nil, err
			}
		}
	}

	return product, grid, nil
}
