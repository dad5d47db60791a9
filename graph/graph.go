// Package graph implements the directed graph underlying the route
// server: adjacency storage in both directions, breadth-first and
// least-cost path searches, and walk compression.
//
// A Digraph stores vertex identity only. Anything keyed by vertex,
// such as coordinates or edge costs, lives with the caller and reaches
// the searches through a Coster.
package graph

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
)

// Vertex identifies a node in the graph. Identity is all the graph
// ever looks at.
type Vertex int64

// Edge is an ordered pair of vertices.
type Edge struct {
	From Vertex
	To   Vertex
}

// Digraph is a directed graph. Every vertex present in the graph has
// both a successor set and a predecessor set, kept mutually
// consistent: AddEdge(u, v) puts v in u's successors and u in v's
// predecessors. Edges carry no weight; costs are supplied at query
// time via a Coster.
//
// A Digraph is not safe for concurrent mutation. Once construction is
// done, any number of goroutines may query it concurrently.
type Digraph struct {
	succ map[Vertex]*hashset.Set
	pred map[Vertex]*hashset.Set
}

// NewDigraph returns an empty directed graph.
func NewDigraph() *Digraph {
	return &Digraph{
		succ: make(map[Vertex]*hashset.Set),
		pred: make(map[Vertex]*hashset.Set),
	}
}

// AddVertex ensures v is present. Adding an existing vertex is a
// no-op.
func (g *Digraph) AddVertex(v Vertex) {
	if _, ok := g.succ[v]; ok {
		return
	}
	g.succ[v] = hashset.New()
	g.pred[v] = hashset.New()
}

// AddEdge records the directed edge u→v, adding either endpoint if it
// is missing. Adding the same edge twice has no further effect; edge
// multiplicity is not tracked.
func (g *Digraph) AddEdge(u, v Vertex) {
	g.AddVertex(u)
	g.AddVertex(v)
	g.succ[u].Add(v)
	g.pred[v].Add(u)
}

// HasVertex reports whether v was ever added.
func (g *Digraph) HasVertex(v Vertex) bool {
	_, ok := g.succ[v]
	return ok
}

// HasEdge reports whether the directed edge u→v exists.
func (g *Digraph) HasEdge(u, v Vertex) bool {
	s, ok := g.succ[u]
	return ok && s.Contains(v)
}

// Vertices returns all known vertex ids in unspecified order.
func (g *Digraph) Vertices() []Vertex {
	vs := make([]Vertex, 0, len(g.succ))
	for v := range g.succ {
		vs = append(vs, v)
	}
	return vs
}

// Edges returns all directed edges in unspecified order. The edge set
// is derived from the successor sets, never stored separately.
func (g *Digraph) Edges() []Edge {
	es := make([]Edge, 0, g.NumEdges())
	for u, s := range g.succ {
		for _, w := range s.Values() {
			es = append(es, Edge{From: u, To: w.(Vertex)})
		}
	}
	return es
}

// NumVertices returns the number of vertices.
func (g *Digraph) NumVertices() int {
	return len(g.succ)
}

// NumEdges returns the number of directed edges.
func (g *Digraph) NumEdges() int {
	n := 0
	for _, s := range g.succ {
		n += s.Size()
	}
	return n
}

// Successors returns the vertices reachable from v over a single
// edge. It fails with ErrVertexNotFound if v was never added.
func (g *Digraph) Successors(v Vertex) ([]Vertex, error) {
	s, ok := g.succ[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	return setVertices(s), nil
}

// Predecessors returns the vertices with an edge into v. It fails
// with ErrVertexNotFound if v was never added.
func (g *Digraph) Predecessors(v Vertex) ([]Vertex, error) {
	s, ok := g.pred[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	return setVertices(s), nil
}

// IsPath reports whether every consecutive pair in seq is an edge of
// the graph. A single vertex is trivially a path. Sequences may
// revisit vertices and edges; each distinct consecutive pair is
// checked once. An empty sequence is not a path and returns
// ErrEmptyPath alongside false.
func (g *Digraph) IsPath(seq []Vertex) (bool, error) {
	if len(seq) == 0 {
		return false, ErrEmptyPath
	}
	checked := make(map[Edge]struct{}, len(seq)-1)
	for i := 0; i < len(seq)-1; i++ {
		e := Edge{From: seq[i], To: seq[i+1]}
		if _, ok := checked[e]; ok {
			continue
		}
		if !g.HasEdge(e.From, e.To) {
			return false, nil
		}
		checked[e] = struct{}{}
	}
	return true, nil
}

func setVertices(s *hashset.Set) []Vertex {
	vs := make([]Vertex, 0, s.Size())
	for _, w := range s.Values() {
		vs = append(vs, w.(Vertex))
	}
	return vs
}
