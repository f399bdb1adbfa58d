// Package core provides the mutable in-memory multigraph that the
// operations engine (ops package) works on, together with the small
// utilities the engine requires of its graph collaborator: membership
// sets with O(1) bulk clearing and parallel-edge collapsing.
//
// The Graph G = (V,E) is a directed multigraph in the structural sense:
// every edge is an ordered (From, To) pair, and self-loops and parallel
// edges are always permitted. Whether a graph is *interpreted* as
// directed or undirected is decided per operation, not stored as a
// graph mode — the same edge set can be complemented directionally one
// call and undirectionally the next.
//
// Identity and determinism:
//
//   - Vertices are keyed by caller-chosen string IDs, or by IDs minted
//     with NewVertex ("v1", "v2", …, skipping collisions).
//   - Edge IDs are always minted ("e1", "e2", …) via an atomic counter.
//   - Identities are stable until deletion and usable as map keys.
//   - Vertices(), Edges(), and Incidences() return ID-sorted snapshots,
//     so every algorithm built on top iterates deterministically. The
//     ascending vertex-ID order is the canonical vertex order that
//     ordering-dependent operations (complement, modular product) rely on.
//
// Mutation while iterating: accessors return snapshot slices, so deleting
// the element currently visited — or any other element — never
// invalidates an iteration in progress.
//
// Concurrency: vertices are guarded by one RWMutex (muVert), edges and
// adjacency by another (muEdgeAdj), always acquired in that order, so
// concurrent readers do not contend across the two catalogs. Note that
// the ops engine nevertheless assumes exclusive access to every graph it
// touches for the duration of a call.
package core
