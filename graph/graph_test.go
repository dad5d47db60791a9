package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(edges [][2]Vertex) *Digraph {
	g := NewDigraph()
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func TestAddVertexIdempotent(t *testing.T) {
	g := NewDigraph()
	g.AddVertex(1)
	g.AddVertex(1)

	require.Equal(t, 1, g.NumVertices())
	require.True(t, g.HasVertex(1))

	succ, err := g.Successors(1)
	require.NoError(t, err)
	assert.Empty(t, succ)

	pred, err := g.Predecessors(1)
	require.NoError(t, err)
	assert.Empty(t, pred)
}

func TestAddEdgeMaintainsBothDirections(t *testing.T) {
	g := NewDigraph()
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(3, 4)
	g.AddEdge(1, 2) // duplicate, must not count again

	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 3, g.NumEdges())

	for _, e := range g.Edges() {
		succ, err := g.Successors(e.From)
		require.NoError(t, err)
		assert.Contains(t, succ, e.To)

		pred, err := g.Predecessors(e.To)
		require.NoError(t, err)
		assert.Contains(t, pred, e.From)
	}

	assert.ElementsMatch(t, []Vertex{1, 2, 3, 4}, g.Vertices())
	assert.ElementsMatch(t,
		[]Edge{{1, 2}, {2, 1}, {3, 4}},
		g.Edges(),
	)
}

func TestAdjacencyUnknownVertex(t *testing.T) {
	g := NewDigraph()
	g.AddEdge(1, 2)

	_, err := g.Successors(99)
	require.ErrorIs(t, err, ErrVertexNotFound)

	_, err = g.Predecessors(99)
	require.ErrorIs(t, err, ErrVertexNotFound)
}

func TestIsPath(t *testing.T) {
	g := buildGraph([][2]Vertex{{1, 2}, {2, 3}, {2, 4}, {1, 5}, {2, 5}, {4, 5}, {5, 2}})

	tests := []struct {
		name string
		seq  []Vertex
		want bool
		err  error
	}{
		{"valid walk with revisit", []Vertex{1, 5, 2, 4, 5}, true, nil},
		{"broken pair", []Vertex{1, 5, 4, 2}, false, nil},
		{"single edge", []Vertex{2, 3}, true, nil},
		{"single vertex", []Vertex{3}, true, nil},
		{"empty", nil, false, ErrEmptyPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.IsPath(tt.seq)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsPathCyclicSequence(t *testing.T) {
	g := buildGraph([][2]Vertex{{1, 2}, {2, 3}, {3, 1}})

	ok, err := g.IsPath([]Vertex{1, 2, 3, 1, 2, 3})
	require.NoError(t, err)
	assert.True(t, ok)
}
