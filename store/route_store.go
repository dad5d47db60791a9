package store

import (
	"errors"
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/hashicorp/go-hclog"

	"roved/graph"
)

// RouteStore owns the road network: the digraph, the per-vertex
// coordinate table with its nearest-vertex index, and the per-edge
// costs read from the graph file. It is assembled by the loader and
// read-only from then on.
type RouteStore struct {
	g         *graph.Digraph
	nearest   *NearestIndex
	edgeCosts *hashmap.Map // edgeKey(u,v) -> float64
	source    string
	log       hclog.Logger
}

// NewRouteStore returns an empty store. Callers populate it through
// AddVertex/AddEdge before serving; Load does this from a graph file.
func NewRouteStore(logger hclog.Logger) *RouteStore {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &RouteStore{
		g:         graph.NewDigraph(),
		nearest:   NewNearestIndex(),
		edgeCosts: hashmap.New(),
		log:       logger,
	}
}

func edgeKey(u, v graph.Vertex) string {
	return fmt.Sprintf("%d:%d", u, v)
}

// AddVertex records a vertex and its coordinate.
func (rs *RouteStore) AddVertex(v graph.Vertex, c Coord) {
	rs.g.AddVertex(v)
	rs.nearest.Add(v, c)
}

// AddEdge records a directed edge and its explicit cost from the
// graph file. Endpoints are added to the graph if missing, though a
// well-formed file declares every vertex before its edges.
func (rs *RouteStore) AddEdge(u, v graph.Vertex, cost float64) {
	rs.g.AddEdge(u, v)
	rs.edgeCosts.Put(edgeKey(u, v), cost)
}

// euclideanCoster prices an edge by the Euclidean distance between
// its endpoints' coordinates, the pricing the ROUTE command uses. An
// endpoint without a coordinate makes the edge impassable.
type euclideanCoster struct {
	idx *NearestIndex
}

func (ec euclideanCoster) Cost(from, to graph.Vertex) float64 {
	a, okA := ec.idx.Coord(from)
	b, okB := ec.idx.Coord(to)
	if !okA || !okB {
		return math.Inf(1)
	}
	return a.DistanceTo(b)
}

// tableCoster prices an edge by the explicit cost column of the graph
// file. Edges missing from the table are impassable.
type tableCoster struct {
	costs *hashmap.Map
}

func (tc tableCoster) Cost(from, to graph.Vertex) float64 {
	c, ok := tc.costs.Get(edgeKey(from, to))
	if !ok {
		return math.Inf(1)
	}
	return c.(float64)
}

// Route implements Store.
func (rs *RouteStore) Route(latOrig, lonOrig, latDest, lonDest int32, tableCosts bool) ([]Coord, error) {
	src, err := rs.nearest.Nearest(latOrig, lonOrig)
	if err != nil {
		return nil, err
	}
	dst, err := rs.nearest.Nearest(latDest, lonDest)
	if err != nil {
		return nil, err
	}

	var coster graph.Coster = euclideanCoster{idx: rs.nearest}
	if tableCosts {
		coster = tableCoster{costs: rs.edgeCosts}
	}

	path, err := graph.LeastCostPath(rs.g, src, dst, coster)
	if errors.Is(err, graph.ErrNoPath) {
		rs.log.Debug("no route", "src", src, "dst", dst)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	coords := make([]Coord, 0, len(path))
	for _, v := range path {
		c, ok := rs.nearest.Coord(v)
		if !ok {
			// Loader guarantees every graph vertex has a coordinate.
			return nil, fmt.Errorf("store: vertex %d has no coordinate", v)
		}
		coords = append(coords, c)
	}
	return coords, nil
}

// HopRoute implements Store.
func (rs *RouteStore) HopRoute(from, to graph.Vertex) ([]graph.Vertex, error) {
	path, err := graph.ShortestHopPath(rs.g, from, to)
	if errors.Is(err, graph.ErrNoPath) {
		return nil, nil
	}
	return path, err
}

// Nearest implements Store.
func (rs *RouteStore) Nearest(lat, lon int32) (graph.Vertex, Coord, error) {
	v, err := rs.nearest.Nearest(lat, lon)
	if err != nil {
		return 0, Coord{}, err
	}
	c, _ := rs.nearest.Coord(v)
	return v, c, nil
}

// IsPath implements Store.
func (rs *RouteStore) IsPath(seq []graph.Vertex) (bool, error) {
	return rs.g.IsPath(seq)
}

// CompressWalk implements Store.
func (rs *RouteStore) CompressWalk(walk []graph.Vertex) []graph.Vertex {
	return graph.CompressWalk(walk)
}

// VertexCount implements Store.
func (rs *RouteStore) VertexCount() int { return rs.g.NumVertices() }

// EdgeCount implements Store.
func (rs *RouteStore) EdgeCount() int { return rs.g.NumEdges() }

// VertexCoord implements Store.
func (rs *RouteStore) VertexCoord(v graph.Vertex) (Coord, bool) {
	return rs.nearest.Coord(v)
}

// Source implements Store. It names the graph file the store was
// loaded from, or is empty for a hand-built store.
func (rs *RouteStore) Source() string { return rs.source }
