// Package core: parallel-edge collapsing utilities.
//
// Both functions walk the sorted Edges() snapshot, so the surviving
// edge of every parallel class is the one with the lowest ID and the
// result is reproducible. Deleting from the snapshot mid-walk is safe.

package core

// MakeParallelFree removes all but one edge of every directed parallel
// class (same ordered From→To pair) and returns the number removed.
// Parallel self-loops count as one class.
// Complexity: O(E·logE)
func MakeParallelFree(g *Graph) int {
	seen := make(map[[2]string]struct{}, g.EdgeCount())
	removed := 0
	for _, e := range g.Edges() {
		key := [2]string{e.From, e.To}
		if _, dup := seen[key]; dup {
			_ = g.RemoveEdge(e.ID)
			removed++
			continue
		}
		seen[key] = struct{}{}
	}

	return removed
}

// MakeParallelFreeUndirected removes all but one edge of every
// undirected parallel class (same unordered endpoint pair, regardless
// of orientation) and returns the number removed. Each class is
// collapsed exactly once: oppositely-oriented duplicates cannot be
// removed twice because membership is keyed by the normalized pair.
// Complexity: O(E·logE)
func MakeParallelFreeUndirected(g *Graph) int {
	seen := make(map[[2]string]struct{}, g.EdgeCount())
	removed := 0
	for _, e := range g.Edges() {
		key := [2]string{e.From, e.To}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if _, dup := seen[key]; dup {
			_ = g.RemoveEdge(e.ID)
			removed++
			continue
		}
		seen[key] = struct{}{}
	}

	return removed
}
