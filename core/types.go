// Package core: type declarations and sentinel errors.
//
// This file declares Vertex, Edge, Incidence, Graph, and the NewGraph
// constructor. Method implementations live in methods.go and
// methods_clone.go.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on shallow clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents an ordered connection From→To between two vertices.
// Operations decide whether to honor or ignore the orientation.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string
}

// Incidence is one adjacency entry at a vertex: the incident edge plus
// which side of it the enumerated vertex is on. A self-loop contributes
// two entries at its vertex, one per side.
type Incidence struct {
	// Edge is the incident edge.
	Edge *Edge

	// Source reports whether the enumerated vertex is Edge.From.
	Source bool
}

// Opposite returns the endpoint on the other side of the incidence.
// For a self-loop both sides name the same vertex.
func (i Incidence) Opposite() string {
	if i.Source {
		return i.Edge.To
	}

	return i.Edge.From
}

// Graph is the core in-memory graph data structure: a mutable directed
// multigraph. Self-loops and parallel edges are always permitted.
//
// muVert protects vertices; muEdgeAdj protects edges, adjacency, and
// incidence. When both are held, muVert is acquired first.
// nextVertexID/nextEdgeID are atomic counters for unique ID minting.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, adjacency and incidence

	// Storage
	nextVertexID uint64             // atomic vertex ID generator (NewVertex)
	nextEdgeID   uint64             // atomic edge ID generator
	vertices     map[string]*Vertex // vertex ID → Vertex

	edges map[string]*Edge // edge ID → Edge

	// adjacencyList[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}

	// incident[Vertex.ID][Edge.ID] = struct{}{}, for either endpoint
	incident map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
		incident:      make(map[string]map[string]struct{}),
	}
}
