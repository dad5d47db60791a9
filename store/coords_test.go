package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roved/graph"
)

func TestNearestEmptyIndex(t *testing.T) {
	idx := NewNearestIndex()

	_, err := idx.Nearest(0, 0)
	require.ErrorIs(t, err, ErrEmptyIndex)
}

func TestNearestSingleVertex(t *testing.T) {
	idx := NewNearestIndex()
	idx.Add(7, Coord{Lat: 5361858, Lon: -11352912})

	for _, q := range []Coord{{0, 0}, {9000000, 9000000}, {-1, -1}} {
		v, err := idx.Nearest(q.Lat, q.Lon)
		require.NoError(t, err)
		assert.Equal(t, graph.Vertex(7), v)
	}
}

func TestNearestPicksMinimumEuclidean(t *testing.T) {
	idx := NewNearestIndex()
	idx.Add(1, Coord{Lat: 0, Lon: 0})
	idx.Add(2, Coord{Lat: 100, Lon: 0})
	idx.Add(3, Coord{Lat: 0, Lon: 100})

	tests := []struct {
		lat, lon int32
		want     graph.Vertex
	}{
		{10, 10, 1},
		{90, 5, 2},
		{5, 90, 3},
		// Equidistant from 1 and 2; the first added wins.
		{50, 0, 1},
	}
	for _, tt := range tests {
		v, err := idx.Nearest(tt.lat, tt.lon)
		require.NoError(t, err)
		assert.Equal(t, tt.want, v, "query (%d, %d)", tt.lat, tt.lon)
	}
}

func TestNearestReAddKeepsRank(t *testing.T) {
	idx := NewNearestIndex()
	idx.Add(1, Coord{Lat: 0, Lon: 0})
	idx.Add(1, Coord{Lat: 10, Lon: 10})

	require.Equal(t, 1, idx.Len())
	c, ok := idx.Coord(1)
	require.True(t, ok)
	assert.Equal(t, Coord{Lat: 10, Lon: 10}, c)
}

func TestDistanceTo(t *testing.T) {
	a := Coord{Lat: 0, Lon: 0}
	b := Coord{Lat: 3, Lon: 4}

	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, 5.0, b.DistanceTo(a))
	assert.Equal(t, 0.0, a.DistanceTo(a))
}
