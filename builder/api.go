// Package builder: the Constructor type, the BuildGraph orchestrator,
// sentinel errors, and the vertex ID scheme. Topology implementations
// live in impls.go.

package builder

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dmikhr/graphops/core"
)

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that BuildGraph was handed an unusable
// constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// Constructor applies a deterministic topology mutation to g.
// Constructors validate parameters early, return sentinel errors, and
// preserve determinism for the same call order.
type Constructor func(g *core.Graph) error

// BuildGraph creates a new core.Graph and applies all constructors in
// order. Any constructor error is wrapped with "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
func BuildGraph(cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// vertexID is the fixed ID scheme: index i → "V<i>".
func vertexID(i int) string {
	return "V" + strconv.Itoa(i)
}
