package store

import "roved/graph"

// Store is the query surface the command layer works against. The
// backing data is built once at startup and never mutated afterwards,
// so every method here is a read and safe to call concurrently.
type Store interface {
	// Route resolves both coordinate pairs to their nearest vertices
	// and returns the least-cost path between them as coordinates, in
	// travel order. An unreachable destination yields an empty path
	// and no error. When tableCosts is true the costs loaded from the
	// graph file price the edges instead of Euclidean distance.
	Route(latOrig, lonOrig, latDest, lonDest int32, tableCosts bool) ([]Coord, error)

	// HopRoute returns a minimum-hop path between two vertex ids. An
	// unreachable destination yields an empty path and no error.
	HopRoute(from, to graph.Vertex) ([]graph.Vertex, error)

	// Nearest returns the vertex closest to (lat, lon) and its
	// coordinate.
	Nearest(lat, lon int32) (graph.Vertex, Coord, error)

	IsPath(seq []graph.Vertex) (bool, error)
	CompressWalk(walk []graph.Vertex) []graph.Vertex

	VertexCount() int
	EdgeCount() int
	VertexCoord(v graph.Vertex) (Coord, bool)
	Source() string
}
