// Package ops implements deterministic graph operations on *core.Graph:
// disjoint and identifying union, seven graph-product variants behind a
// single generic driver, in-place complement, intersection, and graph
// join.
//
// # Operations
//
//   - Union / UnionWith — merge g2 into g1, either disjointly or under a
//     correspondence map identifying some g2 vertices with g1 vertices,
//     optionally collapsing the resulting parallel edges.
//
//   - Product — the generic driver: builds the |V1|×|V2| node grid and
//     invokes a per-pair edge policy over every (v1, v2). The seven
//     named products (Cartesian, tensor, lexicographical, strong,
//     co-normal, modular, rooted) are policies layered on this driver.
//
//   - Complement — in-place edge-set inversion: edge (a,b) exists
//     afterward iff it did not exist before, honoring the directional
//     and self-loop flags.
//
//   - Intersection — in-place restriction of g1 to the substructure it
//     shares with g2 under a vertex correspondence.
//
//   - Join — union under partial identification plus the complete
//     bipartite connection between the two original vertex sets.
//
// # Correspondence maps
//
// A VertexMap is a total mapping from the vertices of one graph to the
// vertices of another (or the sentinel Unmapped). Operations consuming a
// map require an explicit entry for every source vertex; NewVertexMap
// builds the everything-Unmapped initializer. Violations are contract
// errors (ErrIncompleteMapping, ErrForeignVertex) fatal to the call:
// the graph may be left partially mutated and must not be relied on.
//
// # Ordering
//
// Complement and the modular product de-duplicate unordered pairs using
// the canonical vertex order: ascending vertex-ID order, exactly what
// core.Graph.Vertices returns and what the product driver iterates.
//
// # Multigraph semantics
//
// Inputs may carry self-loops and parallel edges; each operation
// documents how they flow through. Directedness is an interpretation
// chosen per call, never a stored graph mode.
//
// All operations are synchronous, single-threaded, in-place mutations
// and assume exclusive access to every graph they touch for the
// duration of the call. There is no rollback: a failed call leaves its
// graph in an unspecified intermediate state.
package ops
