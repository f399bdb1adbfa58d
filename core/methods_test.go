package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dmikhr/graphops/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"), "empty graph should not have A")

	require.NoError(s.g.AddVertex("A"))
	require.True(s.g.HasVertex("A"))

	// Idempotence: re-adding does not change the count.
	require.NoError(s.g.AddVertex("A"))
	require.Equal(1, s.g.VertexCount())

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
	require.False(s.g.HasVertex(""), "empty ID is always absent")
}

func (s *GraphSuite) TestNewVertexMintsAndSkips() {
	require := require.New(s.T())
	require.Equal("v1", s.g.NewVertex())

	// A caller-chosen ID colliding with the next mint is skipped over.
	require.NoError(s.g.AddVertex("v2"))
	require.Equal("v3", s.g.NewVertex())
	require.Equal(3, s.g.VertexCount())
}

func (s *GraphSuite) TestRemoveVertexCascades() {
	require := require.New(s.T())
	_, err := s.g.AddEdge("A", "B")
	require.NoError(err)
	_, err = s.g.AddEdge("C", "A")
	require.NoError(err)
	loop, err := s.g.AddEdge("A", "A")
	require.NoError(err)

	require.NoError(s.g.RemoveVertex("A"))
	require.False(s.g.HasVertex("A"))
	require.Equal(0, s.g.EdgeCount(), "all incident edges must go, loop included")
	_, ok := s.g.EdgeByID(loop)
	require.False(ok)

	require.ErrorIs(s.g.RemoveVertex("A"), core.ErrVertexNotFound)
	require.ErrorIs(s.g.RemoveVertex(""), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestAddEdgeAutoAddsAndMints() {
	require := require.New(s.T())
	e1, err := s.g.AddEdge("A", "B")
	require.NoError(err)
	require.Equal("e1", e1)
	require.True(s.g.HasVertex("A") && s.g.HasVertex("B"), "AddEdge auto-adds endpoints")

	// Parallel edges and self-loops are always permitted.
	e2, err := s.g.AddEdge("A", "B")
	require.NoError(err)
	require.Equal("e2", e2)
	_, err = s.g.AddEdge("A", "A")
	require.NoError(err)
	require.Equal(3, s.g.EdgeCount())

	_, err = s.g.AddEdge("", "B")
	require.ErrorIs(err, core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	eid, err := s.g.AddEdge("A", "B")
	require.NoError(err)

	require.NoError(s.g.RemoveEdge(eid))
	require.Equal(0, s.g.EdgeCount())
	require.False(s.g.HasEdge("A", "B"))
	require.True(s.g.HasVertex("A"), "endpoints survive edge removal")

	require.ErrorIs(s.g.RemoveEdge(eid), core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestArcAndEdgeOrientation() {
	require := require.New(s.T())
	_, err := s.g.AddEdge("A", "B")
	require.NoError(err)

	require.True(s.g.HasArc("A", "B"))
	require.False(s.g.HasArc("B", "A"), "HasArc honors orientation")
	require.True(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"), "HasEdge ignores orientation")
	require.False(s.g.HasEdge("A", "C"))
}

func (s *GraphSuite) TestIncidences() {
	require := require.New(s.T())
	out, err := s.g.AddEdge("A", "B")
	require.NoError(err)
	in, err := s.g.AddEdge("C", "A")
	require.NoError(err)
	loop, err := s.g.AddEdge("A", "A")
	require.NoError(err)

	inc, err := s.g.Incidences("A")
	require.NoError(err)
	require.Len(inc, 4, "out + in + both loop sides")

	// Sorted by edge ID, source side first for the loop.
	require.Equal(out, inc[0].Edge.ID)
	require.True(inc[0].Source)
	require.Equal("B", inc[0].Opposite())
	require.Equal(in, inc[1].Edge.ID)
	require.False(inc[1].Source)
	require.Equal("C", inc[1].Opposite())
	require.Equal(loop, inc[2].Edge.ID)
	require.True(inc[2].Source)
	require.Equal(loop, inc[3].Edge.ID)
	require.False(inc[3].Source)
	require.Equal("A", inc[3].Opposite(), "loop opposite is the vertex itself")

	_, err = s.g.Incidences("missing")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestIncidencesSnapshotSafe() {
	require := require.New(s.T())
	_, err := s.g.AddEdge("A", "B")
	require.NoError(err)
	_, err = s.g.AddEdge("A", "C")
	require.NoError(err)

	inc, err := s.g.Incidences("A")
	require.NoError(err)
	for _, adj := range inc {
		require.NoError(s.g.RemoveEdge(adj.Edge.ID))
	}
	require.Equal(0, s.g.EdgeCount())
}

func (s *GraphSuite) TestVerticesCanonicalOrder() {
	require := require.New(s.T())
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(s.g.AddVertex(id))
	}
	require.Equal([]string{"A", "B", "C"}, s.g.Vertices())
}

func (s *GraphSuite) TestEdgesSorted() {
	require := require.New(s.T())
	_, err := s.g.AddEdge("B", "C")
	require.NoError(err)
	_, err = s.g.AddEdge("A", "B")
	require.NoError(err)

	es := s.g.Edges()
	require.Len(es, 2)
	require.Equal("e1", es[0].ID)
	require.Equal("e2", es[1].ID)
}

func (s *GraphSuite) TestClearRestartsMinting() {
	require := require.New(s.T())
	require.Equal("v1", s.g.NewVertex())
	_, err := s.g.AddEdge("A", "B")
	require.NoError(err)

	s.g.Clear()
	require.Equal(0, s.g.VertexCount())
	require.Equal(0, s.g.EdgeCount())
	require.Equal("v1", s.g.NewVertex())
	eid, err := s.g.AddEdge("A", "B")
	require.NoError(err)
	require.Equal("e1", eid)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
