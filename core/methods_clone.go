// Package core: whole-graph copy operations — Clone, CloneEmpty, and
// Insert (copy another graph into this one with a correspondence).

package core

// CloneEmpty returns a new Graph with identical vertices but no edges.
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	clone := NewGraph()
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
		clone.incident[id] = make(map[string]struct{})
	}
	clone.nextVertexID = g.nextVertexID

	return clone
}

// Clone returns a deep copy of the Graph: vertices, edges, adjacency,
// and incidence. Edge IDs are preserved, so identities in the clone
// match identities in the original.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To}
		clone.edges[eid] = ne
		clone.ensureAdjMap(e.From, e.To)
		clone.adjacencyList[e.From][e.To][eid] = struct{}{}
		clone.incident[e.From][eid] = struct{}{}
		clone.incident[e.To][eid] = struct{}{}
	}
	clone.nextEdgeID = g.nextEdgeID

	return clone
}

// Insert copies every vertex and edge of other into g, minting fresh
// IDs for the copies, and returns the vertex and edge correspondences
// (other's IDs → the new IDs in g). other is left untouched; inserting
// a graph into itself duplicates the snapshot taken at call time.
// Complexity: O((V+E)·log(V+E)) dominated by the sorted snapshots.
func (g *Graph) Insert(other *Graph) (map[string]string, map[string]string, error) {
	vmap := make(map[string]string, other.VertexCount())
	emap := make(map[string]string, other.EdgeCount())
	for _, v := range other.Vertices() {
		vmap[v] = g.NewVertex()
	}
	for _, e := range other.Edges() {
		eid, err := g.AddEdge(vmap[e.From], vmap[e.To])
		if err != nil {
			return vmap, emap, err
		}
		emap[e.ID] = eid
	}

	return vmap, emap, nil
}
