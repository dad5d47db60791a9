package store

import (
	"errors"
	"math"

	"roved/graph"
)

// ErrEmptyIndex is returned by Nearest when no vertex has a
// coordinate yet.
var ErrEmptyIndex = errors.New("store: no vertices in coordinate index")

// Coord is a vertex position in integer units of 1e-5 degrees, the
// same units requests arrive in.
type Coord struct {
	Lat int32
	Lon int32
}

// DistanceTo returns the raw Euclidean distance between two
// coordinates, in the same integer units. This is deliberately not a
// geodesic distance: the protocol has always priced edges on plain
// coordinate deltas and the nearest lookup must rank candidates the
// same way.
func (c Coord) DistanceTo(o Coord) float64 {
	dLat := float64(c.Lat) - float64(o.Lat)
	dLon := float64(c.Lon) - float64(o.Lon)
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// NearestIndex maps vertices to coordinates and answers
// closest-vertex queries with a linear scan. Insertion order is kept
// so equal-distance candidates resolve the same way on every query.
type NearestIndex struct {
	ids    []graph.Vertex
	coords map[graph.Vertex]Coord
}

// NewNearestIndex returns an empty index.
func NewNearestIndex() *NearestIndex {
	return &NearestIndex{coords: make(map[graph.Vertex]Coord)}
}

// Add records the coordinate for v. Re-adding a vertex overwrites its
// coordinate without changing its rank among ties.
func (n *NearestIndex) Add(v graph.Vertex, c Coord) {
	if _, ok := n.coords[v]; !ok {
		n.ids = append(n.ids, v)
	}
	n.coords[v] = c
}

// Coord returns the stored coordinate for v.
func (n *NearestIndex) Coord(v graph.Vertex) (Coord, bool) {
	c, ok := n.coords[v]
	return c, ok
}

// Len returns the number of indexed vertices.
func (n *NearestIndex) Len() int {
	return len(n.ids)
}

// Nearest returns the vertex whose coordinate minimizes the Euclidean
// distance to (lat, lon). With a single indexed vertex that vertex is
// returned for any query point. Fails with ErrEmptyIndex when the
// index is empty.
func (n *NearestIndex) Nearest(lat, lon int32) (graph.Vertex, error) {
	if len(n.ids) == 0 {
		return 0, ErrEmptyIndex
	}
	query := Coord{Lat: lat, Lon: lon}
	best := n.ids[0]
	bestDist := n.coords[best].DistanceTo(query)
	for _, v := range n.ids[1:] {
		if d := n.coords[v].DistanceTo(query); d < bestDist {
			best, bestDist = v, d
		}
	}
	return best, nil
}
