package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dmikhr/graphops/core"
	"github.com/dmikhr/graphops/ops"
)

// JoinSuite exercises the in-place join under partial identification.
type JoinSuite struct {
	suite.Suite
}

// pair builds the recurring fixture: g1 with vertices a,b and g2 with
// vertices x,y, optionally connected by an edge on each side.
func (s *JoinSuite) pair(withEdges bool) (*core.Graph, *core.Graph) {
	g1 := core.NewGraph()
	require.NoError(s.T(), g1.AddVertex("a"))
	require.NoError(s.T(), g1.AddVertex("b"))
	g2 := core.NewGraph()
	require.NoError(s.T(), g2.AddVertex("x"))
	require.NoError(s.T(), g2.AddVertex("y"))
	if withEdges {
		_, err := g1.AddEdge("a", "b")
		require.NoError(s.T(), err)
		_, err = g2.AddEdge("x", "y")
		require.NoError(s.T(), err)
	}

	return g1, g2
}

// TestEdgelessNoIdentification: join of two edgeless pairs is the
// complete bipartite K_{2,2}.
func (s *JoinSuite) TestEdgelessNoIdentification() {
	g1, g2 := s.pair(false)
	require.NoError(s.T(), ops.Join(g1, g2, ops.NewVertexMap(g2)))
	require.Equal(s.T(), 4, g1.VertexCount())
	require.Equal(s.T(), 4, g1.EdgeCount())
	require.False(s.T(), g1.HasEdge("a", "b"), "no edge inside the g1 side")
}

// TestEdgelessWithIdentification: identifying x with a merges the
// vertex and yields the triangle on {a, b, copy-of-y}.
func (s *JoinSuite) TestEdgelessWithIdentification() {
	g1, g2 := s.pair(false)
	mapping := ops.NewVertexMap(g2)
	mapping["x"] = "a"

	require.NoError(s.T(), ops.Join(g1, g2, mapping))
	require.Equal(s.T(), 3, g1.VertexCount())
	require.Equal(s.T(), 3, g1.EdgeCount())
	s.requireCompleteOn(g1)
}

// TestEdgesNoIdentification: both side edges survive alongside the
// complete connection.
func (s *JoinSuite) TestEdgesNoIdentification() {
	g1, g2 := s.pair(true)
	require.NoError(s.T(), ops.Join(g1, g2, ops.NewVertexMap(g2)))
	require.Equal(s.T(), 4, g1.VertexCount())
	require.Equal(s.T(), 6, g1.EdgeCount()) // 1 + 1 + 4 cross, K4
	s.requireCompleteOn(g1)
}

// TestEdgesWithIdentification: the rewired x-y edge collapses with the
// cross connection into a simple triangle.
func (s *JoinSuite) TestEdgesWithIdentification() {
	g1, g2 := s.pair(true)
	mapping := ops.NewVertexMap(g2)
	mapping["x"] = "a"

	require.NoError(s.T(), ops.Join(g1, g2, mapping))
	require.Equal(s.T(), 3, g1.VertexCount())
	require.Equal(s.T(), 3, g1.EdgeCount())
	s.requireCompleteOn(g1)
}

// TestLoopOnIdentifiedVertexLost: a self loop rides on the inserted
// copy, and the copy is deleted during identification, taking the loop
// with it.
func (s *JoinSuite) TestLoopOnIdentifiedVertexLost() {
	g1, g2 := s.pair(false)
	_, err := g2.AddEdge("x", "x")
	require.NoError(s.T(), err)
	mapping := ops.NewVertexMap(g2)
	mapping["x"] = "a"

	require.NoError(s.T(), ops.Join(g1, g2, mapping))
	require.False(s.T(), g1.HasArc("a", "a"))
	require.Equal(s.T(), 3, g1.VertexCount())
	require.Equal(s.T(), 3, g1.EdgeCount())
}

// TestResultIsParallelFree: parallel inputs and overlapping rewired
// edges collapse to one edge per unordered pair.
func (s *JoinSuite) TestResultIsParallelFree() {
	g1, g2 := s.pair(true)
	_, err := g1.AddEdge("b", "a") // parallel under the undirected view
	require.NoError(s.T(), err)

	require.NoError(s.T(), ops.Join(g1, g2, ops.NewVertexMap(g2)))
	require.Equal(s.T(), len(undirectedPairs(g1)), g1.EdgeCount())
}

// TestContractViolations verifies the sentinel errors.
func (s *JoinSuite) TestContractViolations() {
	g1, g2 := s.pair(false)

	require.ErrorIs(s.T(), ops.Join(nil, g2, nil), ops.ErrNilGraph)
	require.ErrorIs(s.T(), ops.Join(g1, g1, nil), ops.ErrSameGraph)
	require.ErrorIs(s.T(), ops.Join(g1, g2, ops.VertexMap{"x": "a"}), ops.ErrIncompleteMapping)
	require.ErrorIs(s.T(), ops.Join(g1, g2, ops.VertexMap{"x": "zz", "y": ops.Unmapped}), ops.ErrForeignVertex)
}

// requireCompleteOn asserts g is the complete simple graph on its own
// vertex set.
func (s *JoinSuite) requireCompleteOn(g *core.Graph) {
	vs := g.Vertices()
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			require.True(s.T(), g.HasEdge(vs[i], vs[j]), "missing edge %s-%s", vs[i], vs[j])
		}
	}
}

func TestJoinSuite(t *testing.T) {
	suite.Run(t, new(JoinSuite))
}
