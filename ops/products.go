// Package ops: the seven named product policies layered on the generic
// Product driver.
//
// Shared conventions across the policies:
//
//   - "G2-edges between copies of G1" means: from the pair (v1,v2), one
//     product edge to (v1,w) per g2 edge (v2,w). Symmetrically for
//     "G1-edges between copies of G2".
//   - Single-axis edges are emitted only from the source side of the
//     underlying edge (adj.Source), so each underlying edge produces
//     exactly one product edge per copy regardless of how often its
//     endpoints see it during the sweep.
//   - Cross-axis (adjacent-pair) edges enumerate every incidence of v1
//     but only source-side incidences of v2; that asymmetry is the
//     de-duplication, and it yields 2·m1·m2 such edges.
//
// Parallel edges in the inputs are kept and multiply into the product;
// self-loops participate through both of their incidence sides.

package ops

import (
	"fmt"

	"github.com/dmikhr/graphops/core"
)

// CartesianProduct computes the Cartesian product of g1 and g2:
// (v1,v2) ~ (v1,w) for every g2 edge (v2,w), and (v1,v2) ~ (u,v2) for
// every g1 edge (v1,u).
//
// |E| = m1·n2 + m2·n1.
func CartesianProduct(g1, g2 *core.Graph) (*core.Graph, Grid, error) {
	return Product(g1, g2, func(p *core.Graph, grid Grid, v1, v2 string) error {
		src := grid.At(v1, v2)

		// G2-edges between copies of G1.
		for _, adj2 := range incidences(g2, v2) {
			if !adj2.Source {
				continue
			}
			if _, err := p.AddEdge(src, grid.At(v1, adj2.Opposite())); err != nil {
				return fmt.Errorf("cartesian product: %w", err)
			}
		}

		// G1-edges between copies of G2.
		for _, adj1 := range incidences(g1, v1) {
			if !adj1.Source {
				continue
			}
			if _, err := p.AddEdge(src, grid.At(adj1.Opposite(), v2)); err != nil {
				return fmt.Errorf("cartesian product: %w", err)
			}
		}

		return nil
	})
}

// TensorProduct computes the tensor product of g1 and g2:
// (v1,v2) ~ (u,w) for every g1 edge (v1,u) and every g2 edge (v2,w).
//
// |E| = 2·m1·m2.
func TensorProduct(g1, g2 *core.Graph) (*core.Graph, Grid, error) {
	return Product(g1, g2, func(p *core.Graph, grid Grid, v1, v2 string) error {
		// Edges between adjacent pairs.
		for _, adj1 := range incidences(g1, v1) {
			for _, adj2 := range incidences(g2, v2) {
				if !adj2.Source {
					continue
				}
				if _, err := p.AddEdge(grid.At(v1, v2), grid.At(adj1.Opposite(), adj2.Opposite())); err != nil {
					return fmt.Errorf("tensor product: %w", err)
				}
			}
		}

		return nil
	})
}

// LexicographicalProduct computes the lexicographical product of g1 and
// g2: (v1,v2) ~ (u,w') for every g1 edge (v1,u) and *every* vertex w'
// of g2, plus (v1,v2) ~ (v1,w) for every g2 edge (v2,w).
//
// |E| = m1·n2² + m2·n1.
//
// The lexicographical product is not commutative: swapping g1 and g2
// yields a structurally different graph in general.
func LexicographicalProduct(g1, g2 *core.Graph) (*core.Graph, Grid, error) {
	if g2 == nil {
		return nil, nil, ErrNilGraph
	}
	v2s := g2.Vertices()

	return Product(g1, g2, func(p *core.Graph, grid Grid, v1, v2 string) error {
		src := grid.At(v1, v2)

		// G1-edges between copies of G2, linking all pairs of G2-vertices.
		for _, w := range v2s {
			for _, adj1 := range incidences(g1, v1) {
				if !adj1.Source {
					continue
				}
				if _, err := p.AddEdge(src, grid.At(adj1.Opposite(), w)); err != nil {
					return fmt.Errorf("lexicographical product: %w", err)
				}
			}
		}

		// G2-edges between copies of G1.
		for _, adj2 := range incidences(g2, v2) {
			if !adj2.Source {
				continue
			}
			if _, err := p.AddEdge(src, grid.At(v1, adj2.Opposite())); err != nil {
				return fmt.Errorf("lexicographical product: %w", err)
			}
		}

		return nil
	})
}

// StrongProduct computes the strong product of g1 and g2: the union of
// the Cartesian and tensor edge rules.
//
// |E| = m1·n2 + m2·n1 + 2·m1·m2.
func StrongProduct(g1, g2 *core.Graph) (*core.Graph, Grid, error) {
	return Product(g1, g2, func(p *core.Graph, grid Grid, v1, v2 string) error {
		src := grid.At(v1, v2)

		// G2-edges between copies of G1.
		for _, adj2 := range incidences(g2, v2) {
			if !adj2.Source {
				continue
			}
			if _, err := p.AddEdge(src, grid.At(v1, adj2.Opposite())); err != nil {
				return fmt.Errorf("strong product: %w", err)
			}
		}

		// G1-edges between copies of G2.
		for _, adj1 := range incidences(g1, v1) {
			if !adj1.Source {
				continue
			}
			if _, err := p.AddEdge(src, grid.At(adj1.Opposite(), v2)); err != nil {
				return fmt.Errorf("strong product: %w", err)
			}
		}

		// Edges between adjacent pairs.
		for _, adj1 := range incidences(g1, v1) {
			for _, adj2 := range incidences(g2, v2) {
				if !adj2.Source {
					continue
				}
				if _, err := p.AddEdge(src, grid.At(adj1.Opposite(), adj2.Opposite())); err != nil {
					return fmt.Errorf("strong product: %w", err)
				}
			}
		}

		return nil
	})
}

// CoNormalProduct computes the co-normal product of g1 and g2:
// (v1,v2) ~ (u,w') for every g1 edge (v1,u) and every vertex w' of g2,
// plus (v1,v2) ~ (u',w) for every vertex u' of g1 and every g2 edge
// (v2,w).
//
// |E| = m1·n2² + m2·n1².
func CoNormalProduct(g1, g2 *core.Graph) (*core.Graph, Grid, error) {
	if g1 == nil || g2 == nil {
		return nil, nil, ErrNilGraph
	}
	v1s := g1.Vertices()
	v2s := g2.Vertices()

	return Product(g1, g2, func(p *core.Graph, grid Grid, v1, v2 string) error {
		src := grid.At(v1, v2)

		// G1-edges between copies of G2, linking all pairs of G2-vertices.
		for _, w := range v2s {
			for _, adj1 := range incidences(g1, v1) {
				if !adj1.Source {
					continue
				}
				if _, err := p.AddEdge(src, grid.At(adj1.Opposite(), w)); err != nil {
					return fmt.Errorf("co-normal product: %w", err)
				}
			}
		}

		// G2-edges between copies of G1, linking all pairs of G1-vertices.
		for _, u := range v1s {
			for _, adj2 := range incidences(g2, v2) {
				if !adj2.Source {
					continue
				}
				if _, err := p.AddEdge(src, grid.At(u, adj2.Opposite())); err != nil {
					return fmt.Errorf("co-normal product: %w", err)
				}
			}
		}

		return nil
	})
}

// ModularProduct computes the modular product of g1 and g2: (v1,v2) ~
// (u,w) whenever (v1,u) and (v2,w) are both edges, or whenever the
// pairs are both non-adjacent (u ≠ v1 not adjacent to v1, w ≠ v2 not
// adjacent to v2).
//
// Non-adjacent pair edges are emitted only toward vertices w strictly
// after v2 in the canonical vertex order of g2; that ordering
// constraint is the sole de-duplication for the non-adjacent half.
//
// For simple inputs, |E| = 2·(m1·m2 + (C(n1,2)−m1)·(C(n2,2)−m2)).
// With parallel edges or self-loops the adjacent half multiplies per
// underlying edge and a looped vertex counts as adjacent to itself;
// the count formula holds only for simple inputs.
func ModularProduct(g1, g2 *core.Graph) (*core.Graph, Grid, error) {
	if g1 == nil || g2 == nil {
		return nil, nil, ErrNilGraph
	}
	v1s := g1.Vertices()
	v2s := g2.Vertices()
	pos2 := orderOf(g2)
	adjacentToV1 := core.NewVertexSet()
	adjacentToV2 := core.NewVertexSet()

	return Product(g1, g2, func(p *core.Graph, grid Grid, v1, v2 string) error {
		src := grid.At(v1, v2)
		adjacentToV1.Clear()
		adjacentToV2.Clear()

		// Edges between adjacent pairs; remember v1-adjacencies.
		for _, adj1 := range incidences(g1, v1) {
			adjacentToV1.Insert(adj1.Opposite())
			for _, adj2 := range incidences(g2, v2) {
				if !adj2.Source {
					continue
				}
				if _, err := p.AddEdge(src, grid.At(adj1.Opposite(), adj2.Opposite())); err != nil {
					return fmt.Errorf("modular product: %w", err)
				}
			}
		}

		// Remember v2-adjacencies (v1 may have had no incidences at all).
		for _, adj2 := range incidences(g2, v2) {
			adjacentToV2.Insert(adj2.Opposite())
		}

		// Edges between non-adjacent pairs, only toward vertices after
		// v2 so no pair is emitted twice.
		for _, u := range v1s {
			if u == v1 || adjacentToV1.Has(u) {
				continue
			}
			for _, w := range v2s[pos2[v2]+1:] {
				if adjacentToV2.Has(w) {
					continue
				}
				if _, err := p.AddEdge(src, grid.At(u, w)); err != nil {
					return fmt.Errorf("modular product: %w", err)
				}
			}
		}

		return nil
	})
}

// RootedProduct computes the rooted product of g1 and g2, rooted at the
// g2 vertex root: every pair carries the g2 edges of its copy of g2,
// and the copies are linked through g1's edges only at the root copy.
//
// |E| = m1 + m2·n1.
// Returns ErrRootNotFound if root is not a vertex of g2.
func RootedProduct(g1, g2 *core.Graph, root string) (*core.Graph, Grid, error) {
	if g1 == nil || g2 == nil {
		return nil, nil, ErrNilGraph
	}
	if !g2.HasVertex(root) {
		return nil, nil, fmt.Errorf("rooted product: %q: %w", root, ErrRootNotFound)
	}

	return Product(g1, g2, func(p *core.Graph, grid Grid, v1, v2 string) error {
		src := grid.At(v1, v2)

		// G2-edges between copies of G1.
		for _, adj2 := range incidences(g2, v2) {
			if !adj2.Source {
				continue
			}
			if _, err := p.AddEdge(src, grid.At(v1, adj2.Opposite())); err != nil {
				return fmt.Errorf("rooted product: %w", err)
			}
		}

		// G1-edges only for the copy of G1 that sits at the root.
		if v2 == root {
			for _, adj1 := range incidences(g1, v1) {
				if !adj1.Source {
					continue
				}
				if _, err := p.AddEdge(src, grid.At(adj1.Opposite(), v2)); err != nil {
					return fmt.Errorf("rooted product: %w", err)
				}
			}
		}

		return nil
	})
}
