package ops_test

import (
	"fmt"

	"github.com/dmikhr/graphops/builder"
	"github.com/dmikhr/graphops/core"
	"github.com/dmikhr/graphops/ops"
)

// ExampleCartesianProduct builds P2 □ P3 and reports its size.
func ExampleCartesianProduct() {
	g1, _ := builder.BuildGraph(builder.Path(2))
	g2, _ := builder.BuildGraph(builder.Path(3))

	p, grid, err := ops.CartesianProduct(g1, g2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", p.VertexCount())
	fmt.Println("edges:", p.EdgeCount())
	fmt.Println("corner mapped:", p.HasVertex(grid.At("V0", "V0")))
	// Output:
	// vertices: 6
	// edges: 7
	// corner mapped: true
}

// ExampleUnion glues a path and a cycle into one graph.
func ExampleUnion() {
	g1, _ := builder.BuildGraph(builder.Path(3))
	g2, _ := builder.BuildGraph(builder.Cycle(3))

	vmap, err := ops.Union(g1, g2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", g1.VertexCount())
	fmt.Println("edges:", g1.EdgeCount())
	fmt.Println("copies:", len(vmap))
	// Output:
	// vertices: 6
	// edges: 5
	// copies: 3
}

// ExampleComplement inverts the adjacency of P3.
func ExampleComplement() {
	g, _ := builder.BuildGraph(builder.Path(3))

	if err := ops.Complement(g, false, false); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("endpoints linked:", g.HasEdge("V0", "V2"))
	fmt.Println("path edge kept:", g.HasEdge("V0", "V1"))
	// Output:
	// edges: 1
	// endpoints linked: true
	// path edge kept: false
}

// ExampleJoin connects every vertex of one graph to every vertex of
// another.
func ExampleJoin() {
	g1 := core.NewGraph()
	_ = g1.AddVertex("a")
	_ = g1.AddVertex("b")
	g2 := core.NewGraph()
	_ = g2.AddVertex("x")
	_ = g2.AddVertex("y")

	if err := ops.Join(g1, g2, ops.NewVertexMap(g2)); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", g1.VertexCount())
	fmt.Println("edges:", g1.EdgeCount())
	// Output:
	// vertices: 4
	// edges: 4
}
