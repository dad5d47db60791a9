package graph

// Coster prices a single directed edge traversal. Implementations
// must be pure and must return non-negative values; LeastCostPath
// rejects a negative cost with ErrNegativeCost the moment it sees
// one. The search never caches results, so a Coster is evaluated once
// per edge relaxation — callers wanting memoization wrap their own.
type Coster interface {
	Cost(from, to Vertex) float64
}

// CosterFunc adapts an ordinary function to the Coster interface.
type CosterFunc func(from, to Vertex) float64

// Cost calls f(from, to).
func (f CosterFunc) Cost(from, to Vertex) float64 {
	return f(from, to)
}

// UniformCost prices every edge at 1, which makes LeastCostPath
// minimize hop count.
var UniformCost Coster = CosterFunc(func(Vertex, Vertex) float64 { return 1 })
