// Package graphops is an in-memory engine for deterministic graph
// operations: unions, products, complement, intersection, and join over
// mutable multigraphs.
//
// Everything is organized under three subpackages:
//
//	core/    — fundamental Graph, Vertex, Edge types, membership sets,
//	           and parallel-edge collapsing utilities
//	ops/     — the operations engine: disjoint and identifying union,
//	           seven graph-product variants behind one generic driver,
//	           in-place complement, intersection, and graph join
//	builder/ — deterministic fixture constructors (path, cycle, complete,
//	           star, complete bipartite)
//
// Everything is pure Go with no runtime dependencies. Operations are
// synchronous, single-threaded, in-place mutations; results are
// deterministic for equal inputs because every accessor iterates in
// sorted-ID order.
//
// Quick ASCII example — the Cartesian product of two paths is a grid:
//
//	A───B      X          AX───BX
//	        ×  │    =      │    │
//	           Y          AY───BY
//
// See ops/doc.go for the full catalogue of operations and their
// edge-generation rules.
package graphops
