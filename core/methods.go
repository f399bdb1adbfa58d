// Package core: Graph method implementations.
//
// This file provides thread-safe, O(1) (amortized) operations for
// vertex and edge management on the Graph type defined in types.go.
// Separate RWMutex locks for vertices (muVert) and edges+adjacency
// (muEdgeAdj) minimize contention. Adjacency is stored as a nested map
// adjacencyList[from][to][edgeID] = struct{}{}, allowing constant-time
// existence, insertion, and deletion of edges; incident[vertex][edgeID]
// indexes every edge touching a vertex regardless of orientation.

package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

const (
	vertexIDPrefix = "v"
	edgeIDPrefix   = "e"
)

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	// Initialize adjacency and incidence entries for this vertex.
	g.muEdgeAdj.Lock()
	g.ensureAdjID(id)
	g.ensureIncident(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// NewVertex inserts a vertex with a freshly minted ID ("v1", "v2", …)
// and returns that ID. Minted IDs skip over caller-chosen IDs already
// present, so the result is always a brand-new vertex.
// Complexity: O(1) amortized.
func (g *Graph) NewVertex() string {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	var id string
	for {
		id = fmt.Sprintf("%s%d", vertexIDPrefix, atomic.AddUint64(&g.nextVertexID, 1))
		if _, exists := g.vertices[id]; !exists {
			break
		}
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	g.ensureAdjID(id)
	g.ensureIncident(id)
	g.muEdgeAdj.Unlock()

	return id
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if the
// vertex does not exist.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	// Remove every edge touching id, via the incidence index.
	for eid := range g.incident[id] {
		e := g.edges[eid]
		g.removeEdgeFromIndexes(eid, e)
		delete(g.edges, eid)
	}

	delete(g.incident, id)
	delete(g.adjacencyList, id)
	delete(g.vertices, id)

	return nil
}

// AddEdge creates a new edge from 'from' to 'to' and returns its unique
// Edge.ID. Missing endpoints are added first (idempotent, as AddVertex).
// Self-loops and parallel edges are always permitted.
// Returns ErrEmptyVertexID if either endpoint ID is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	// Ensure both endpoints exist (idempotent).
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))
	e := &Edge{ID: eid, From: from, To: to}
	g.edges[eid] = e

	g.ensureAdjMap(from, to)
	g.adjacencyList[from][to][eid] = struct{}{}
	g.incident[from][eid] = struct{}{}
	g.incident[to][eid] = struct{}{}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID from the graph,
// updating the global map, adjacency, and incidence indexes.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	g.removeEdgeFromIndexes(eid, e)

	return nil
}

// EdgeByID returns the edge with the given ID, if present.
// Complexity: O(1).
func (g *Graph) EdgeByID(eid string) (*Edge, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]

	return e, ok
}

// HasArc reports whether at least one edge oriented from→to exists.
// Complexity: O(1).
func (g *Graph) HasArc(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if inner, ok := g.adjacencyList[from][to]; ok && len(inner) > 0 {
		return true
	}

	return false
}

// HasEdge reports whether at least one edge connects a and b in either
// orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	return g.HasArc(a, b) || g.HasArc(b, a)
}

// Incidences returns every adjacency entry at vertex 'id': one entry
// per edge-endpoint side, so a self-loop appears twice (once as source,
// once as target). The result is a snapshot sorted by Edge.ID, with the
// source side first for loops; mutating the graph while ranging over it
// is safe.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(d log d), where d is the number of incident sides.
func (g *Graph) Incidences(id string) ([]Incidence, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Incidence, 0, len(g.incident[id]))
	for eid := range g.incident[id] {
		e := g.edges[eid]
		if e.From == id {
			out = append(out, Incidence{Edge: e, Source: true})
		}
		if e.To == id {
			out = append(out, Incidence{Edge: e, Source: false})
		}
	}
	// Sort by edge ID, source side first, for reproducible ordering.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Edge.ID != out[j].Edge.ID {
			return out[i].Edge.ID < out[j].Edge.ID
		}

		return out[i].Source && !out[j].Source
	})

	return out, nil
}

// Vertices returns all vertex IDs in ascending lexicographic order.
// This is the canonical vertex order every ordering-dependent algorithm
// in this module relies on.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VerticesMap returns a shallow copy of the vertex map.
// Complexity: O(V)
func (g *Graph) VerticesMap() map[string]*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make(map[string]*Vertex, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v
	}

	return out
}

// Edges returns a snapshot of all edges sorted by their ID.
// Complexity: O(E·logE)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Clear resets the graph to the empty state and restarts ID minting.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	g.incident = make(map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextVertexID, 0)
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// Internal helper methods:
////////////////////

// ensureAdjID makes adjacencyList[id] non-nil.
func (g *Graph) ensureAdjID(id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// ensureIncident makes incident[id] non-nil.
func (g *Graph) ensureIncident(id string) {
	if _, ok := g.incident[id]; !ok {
		g.incident[id] = make(map[string]struct{})
	}
}

// ensureAdjMap ensures adjacencyList[from][to] is initialized.
func (g *Graph) ensureAdjMap(from, to string) {
	g.ensureAdjID(from)
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeEdgeFromIndexes deletes eid from adjacency and incidence.
// Callers hold muEdgeAdj and remove the edge from g.edges themselves.
func (g *Graph) removeEdgeFromIndexes(eid string, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, eid)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if m := g.incident[e.From]; m != nil {
		delete(m, eid)
	}
	if m := g.incident[e.To]; m != nil {
		delete(m, eid)
	}
}
