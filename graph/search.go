package graph

import (
	"fmt"

	"github.com/emirpasic/gods/queues/priorityqueue"
)

// ShortestHopPath returns a path from src to dst with the fewest
// edges, found breadth-first. The result runs from src to dst
// inclusive. If src equals dst the single-element path is returned
// without searching. If dst is unreachable the error is ErrNoPath.
func ShortestHopPath(g *Digraph, src, dst Vertex) ([]Vertex, error) {
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, src)
	}
	if src == dst {
		return []Vertex{src}, nil
	}

	parent := make(map[Vertex]Vertex)
	seen := map[Vertex]struct{}{src: {}}
	queue := []Vertex{src}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range setVertices(g.succ[cur]) {
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			parent[next] = cur
			if next == dst {
				return rebuild(parent, src, dst), nil
			}
			queue = append(queue, next)
		}
	}
	return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, src, dst)
}

// frontier entry: a vertex with the tentative cost it was enqueued
// at. Stale entries (vertex finalized, or cost superseded) are
// skipped on dequeue instead of being decreased in place.
type frontierItem struct {
	v    Vertex
	cost float64
}

// LeastCostPath returns a minimum-total-cost path from src to dst
// under cost, Dijkstra-style. The result runs from src to dst
// inclusive. If src equals dst the single-element path is returned
// without evaluating cost. If dst is unreachable the error is
// ErrNoPath.
//
// Ties between equal-cost frontier entries resolve in an order that
// is undefined by contract but deterministic for this implementation.
func LeastCostPath(g *Digraph, src, dst Vertex, cost Coster) ([]Vertex, error) {
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, src)
	}
	if src == dst {
		return []Vertex{src}, nil
	}

	frontier := priorityqueue.NewWith(func(a, b interface{}) int {
		ca, cb := a.(frontierItem).cost, b.(frontierItem).cost
		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		default:
			return 0
		}
	})

	dist := map[Vertex]float64{src: 0}
	parent := make(map[Vertex]Vertex)
	done := make(map[Vertex]struct{})
	frontier.Enqueue(frontierItem{v: src})

	for !frontier.Empty() {
		item, _ := frontier.Dequeue()
		cur := item.(frontierItem)
		if _, ok := done[cur.v]; ok {
			continue
		}
		done[cur.v] = struct{}{}
		if cur.v == dst {
			return rebuild(parent, src, dst), nil
		}
		for _, next := range setVertices(g.succ[cur.v]) {
			if _, ok := done[next]; ok {
				continue
			}
			c := cost.Cost(cur.v, next)
			if c < 0 {
				return nil, fmt.Errorf("%w: %f on edge %d -> %d", ErrNegativeCost, c, cur.v, next)
			}
			through := dist[cur.v] + c
			if best, ok := dist[next]; !ok || through < best {
				dist[next] = through
				parent[next] = cur.v
				frontier.Enqueue(frontierItem{v: next, cost: through})
			}
		}
	}
	// The destination was never finalized; the parent map must not be
	// consulted for it.
	return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, src, dst)
}

// rebuild walks parent pointers from dst back to src and reverses.
// Callers guarantee dst was reached.
func rebuild(parent map[Vertex]Vertex, src, dst Vertex) []Vertex {
	path := []Vertex{dst}
	for cur := dst; cur != src; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
