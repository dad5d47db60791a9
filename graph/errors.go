package graph

import "errors"

var (
	// ErrVertexNotFound is returned by adjacency queries on a vertex
	// that was never added to the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEmptyPath is returned by IsPath for a zero-length sequence.
	// It is distinct from "no path exists" between two vertices.
	ErrEmptyPath = errors.New("graph: path is empty")

	// ErrNoPath is returned by the searches when the destination is
	// never reached. It is an expected outcome, not a failure of the
	// search itself.
	ErrNoPath = errors.New("graph: no path found")

	// ErrNegativeCost is returned when a Coster yields a negative
	// value during a least-cost search.
	ErrNegativeCost = errors.New("graph: negative edge cost")
)
