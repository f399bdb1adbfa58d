// Package ops: correspondence maps, the product node grid, sentinel
// errors, and shared helpers.

package ops

import (
	"errors"
	"fmt"

	"github.com/dmikhr/graphops/core"
)

// Unmapped is the sentinel VertexMap value for "no counterpart".
// It is never a valid vertex ID (core rejects empty IDs).
const Unmapped = ""

// Sentinel errors for the operations engine. All of them signal caller
// contract violations: the call is aborted and the mutated graph must
// not be relied on afterward.
var (
	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("ops: graph is nil")

	// ErrSameGraph indicates that both arguments of a binary in-place
	// operation reference the same graph instance.
	ErrSameGraph = errors.New("ops: graphs must be distinct instances")

	// ErrNilPolicy indicates a nil product edge policy.
	ErrNilPolicy = errors.New("ops: product policy is nil")

	// ErrIncompleteMapping indicates a correspondence map without an
	// entry for some vertex of its source graph.
	ErrIncompleteMapping = errors.New("ops: correspondence map is missing a vertex entry")

	// ErrForeignVertex indicates a correspondence entry naming a vertex
	// that does not belong to the target graph.
	ErrForeignVertex = errors.New("ops: correspondence map targets an unknown vertex")

	// ErrRootNotFound indicates a rooted-product root absent from g2.
	ErrRootNotFound = errors.New("ops: root vertex not found")
)

// VertexMap is a total correspondence from the vertices of a source
// graph to the vertices of a target graph, with Unmapped standing for
// "no counterpart". Every vertex of the source graph must have an
// explicit entry before an operation consumes the map; operations that
// populate a map as output leave no Unmapped entries behind.
type VertexMap map[string]string

// NewVertexMap returns a VertexMap with an Unmapped entry for every
// vertex of g — the canonical initializer for operations consuming a
// correspondence.
func NewVertexMap(g *core.Graph) VertexMap {
	vs := g.Vertices()
	m := make(VertexMap, len(vs))
	for _, v := range vs {
		m[v] = Unmapped
	}

	return m
}

// Grid is the product node grid: a bijection from (vertex of g1,
// vertex of g2) pairs to the vertices of the product graph. It is
// populated once by the product driver and immutable afterward.
type Grid map[string]map[string]string

// At returns the product vertex for the pair (v1, v2), or "" if the
// pair is outside the grid.
func (gr Grid) At(v1, v2 string) string {
	return gr[v1][v2]
}

// validateMapping checks that m carries an entry for every vertex of
// src and that every non-sentinel entry names a vertex of dst.
func validateMapping(m VertexMap, src, dst *core.Graph) error {
	for _, v := range src.Vertices() {
		img, ok := m[v]
		if !ok {
			return fmt.Errorf("vertex %q: %w", v, ErrIncompleteMapping)
		}
		if img != Unmapped && !dst.HasVertex(img) {
			return fmt.Errorf("vertex %q → %q: %w", v, img, ErrForeignVertex)
		}
	}

	return nil
}

// orderOf returns the position of every vertex of g in the canonical
// vertex order (ascending ID order, as returned by Vertices).
func orderOf(g *core.Graph) map[string]int {
	vs := g.Vertices()
	ord := make(map[string]int, len(vs))
	for i, id := range vs {
		ord[id] = i
	}

	return ord
}

// incidences returns the adjacency entries of v in g. Callers pass only
// vertices obtained from g itself, so the lookup cannot fail.
func incidences(g *core.Graph, v string) []core.Incidence {
	inc, _ := g.Incidences(v)

	return inc
}

// checkDistinct guards the binary in-place operations.
func checkDistinct(g1, g2 *core.Graph) error {
	if g1 == nil || g2 == nil {
		return ErrNilGraph
	}
	if g1 == g2 {
		return ErrSameGraph
	}

	return nil
}
