// Package builder provides deterministic constructors for the standard
// small graph families used as fixtures throughout this module: paths,
// cycles, complete graphs, stars, and complete bipartite graphs.
//
// A Constructor is a closure that mutates a *core.Graph; BuildGraph is
// the single orchestrator that creates a fresh graph and applies
// constructors in order, so composite fixtures stay deterministic:
//
//	g, err := builder.BuildGraph(builder.Path(4))
//
// Vertex IDs follow the fixed scheme "V0", "V1", … in ascending index
// order ("L…"/"R…" for the two sides of a bipartite graph), and edges
// are emitted in a fixed order, so two builds of the same constructor
// sequence yield identical graphs.
//
// Constructors validate their parameters early and return only sentinel
// errors (ErrTooFewVertices, ErrConstructFailed); they never panic.
package builder
