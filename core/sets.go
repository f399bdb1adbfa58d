// Package core: per-operation membership sets for vertex and edge IDs.
//
// Algorithms that sweep a graph rebuild small membership sets on every
// outer-loop iteration (complement's per-vertex neighbor record,
// intersection's counterpart-neighbor set, the modular product's
// per-pair adjacency marks). Reallocating a map each time would dominate
// the sweep, so Clear advances a generation counter instead: marks from
// older generations simply stop matching. Insert, Has, and Clear are all
// O(1).
//
// Sets are scoped to a single operation invocation and are not
// goroutine-safe.

package core

// markSet is the shared generation-counter implementation behind
// VertexSet and EdgeSet.
type markSet struct {
	gen   uint64
	marks map[string]uint64
}

func newMarkSet() markSet {
	// gen starts at 1 so absent entries (zero value) never match.
	return markSet{gen: 1, marks: make(map[string]uint64)}
}

func (s *markSet) insert(id string) { s.marks[id] = s.gen }

func (s *markSet) has(id string) bool { return s.marks[id] == s.gen }

func (s *markSet) clear() { s.gen++ }

// VertexSet is a membership set over vertex IDs with O(1) insert, test,
// and bulk clear.
type VertexSet struct {
	markSet
}

// NewVertexSet returns an empty VertexSet.
func NewVertexSet() *VertexSet {
	return &VertexSet{newMarkSet()}
}

// Insert marks id as a member of the current generation.
func (s *VertexSet) Insert(id string) { s.insert(id) }

// Has reports whether id was inserted since the last Clear.
func (s *VertexSet) Has(id string) bool { return s.has(id) }

// Clear empties the set in O(1) by advancing the generation.
func (s *VertexSet) Clear() { s.clear() }

// EdgeSet is a membership set over edge IDs with O(1) insert, test, and
// bulk clear.
type EdgeSet struct {
	markSet
}

// NewEdgeSet returns an empty EdgeSet.
func NewEdgeSet() *EdgeSet {
	return &EdgeSet{newMarkSet()}
}

// Insert marks id as a member of the current generation.
func (s *EdgeSet) Insert(id string) { s.insert(id) }

// Has reports whether id was inserted since the last Clear.
func (s *EdgeSet) Has(id string) bool { return s.has(id) }

// Clear empties the set in O(1) by advancing the generation.
func (s *EdgeSet) Clear() { s.clear() }
