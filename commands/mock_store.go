package commands

import (
	"roved/graph"
	"roved/store"
)

// MockStore is a canned-response store.Store used by the command
// tests.
type MockStore struct {
	route    []store.Coord
	routeErr error

	hopRoute    []graph.Vertex
	hopRouteErr error

	nearestVertex graph.Vertex
	nearestCoord  store.Coord
	nearestErr    error

	isPath    bool
	isPathErr error

	vertexCount int
	edgeCount   int
	source      string

	// Arguments seen by the last call.
	gotRoute      [4]int32
	gotTableCosts bool
}

func (m *MockStore) Route(latOrig, lonOrig, latDest, lonDest int32, tableCosts bool) ([]store.Coord, error) {
	m.gotRoute = [4]int32{latOrig, lonOrig, latDest, lonDest}
	m.gotTableCosts = tableCosts
	return m.route, m.routeErr
}

func (m *MockStore) HopRoute(from, to graph.Vertex) ([]graph.Vertex, error) {
	return m.hopRoute, m.hopRouteErr
}

func (m *MockStore) Nearest(lat, lon int32) (graph.Vertex, store.Coord, error) {
	return m.nearestVertex, m.nearestCoord, m.nearestErr
}

func (m *MockStore) IsPath(seq []graph.Vertex) (bool, error) {
	return m.isPath, m.isPathErr
}

func (m *MockStore) CompressWalk(walk []graph.Vertex) []graph.Vertex {
	return graph.CompressWalk(walk)
}

func (m *MockStore) VertexCount() int { return m.vertexCount }

func (m *MockStore) EdgeCount() int { return m.edgeCount }

func (m *MockStore) VertexCoord(v graph.Vertex) (store.Coord, bool) {
	return store.Coord{}, false
}

func (m *MockStore) Source() string { return m.source }
