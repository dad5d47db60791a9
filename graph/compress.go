package graph

// CompressWalk removes revisit cycles from a walk, keeping endpoints.
// For each vertex only the stretch after its last occurrence
// survives: the scan records where each vertex last appears, then
// jumps past that point whenever the current vertex repeats later.
//
// CompressWalk([1,3,0,1,6,4,8,6,2]) = [1,6,2]. A walk with no repeats
// comes back unchanged. Nil and empty walks are returned as-is.
func CompressWalk(walk []Vertex) []Vertex {
	if len(walk) == 0 {
		return walk
	}
	last := make(map[Vertex]int, len(walk))
	for i, v := range walk {
		last[v] = i
	}
	out := make([]Vertex, 0, len(walk))
	for i := 0; i < len(walk); {
		v := walk[i]
		out = append(out, v)
		i = last[v] + 1
	}
	return out
}
