package commands

import (
	"fmt"
	"strconv"

	"roved/graph"
)

func RegisterCommands(r CommandRegistry) {
	RegisterPingCommand(r)
	RegisterRouteCommand(r)
	RegisterNearestCommand(r)
	RegisterHopsCommand(r)
	RegisterIsPathCommand(r)
	RegisterCompressCommand(r)
	RegisterInfoCommand(r)
}

// parseCoord parses one coordinate token, an integer number of 1e-5
// degree units.
func parseCoord(tok string) (int32, error) {
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("coordinate %q is not an integer", tok)
	}
	return int32(v), nil
}

// parseVertices parses vertex-id tokens.
func parseVertices(toks []string) ([]graph.Vertex, error) {
	vs := make([]graph.Vertex, 0, len(toks))
	for _, tok := range toks {
		id, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("vertex id %q is not an integer", tok)
		}
		vs = append(vs, graph.Vertex(id))
	}
	return vs, nil
}
