package store

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"roved/graph"
)

// The graph file carries one record per line, comma separated:
//
//	V,<id>,<lat degrees>,<lon degrees>
//	E,<from>,<to>,<cost>
//
// Degrees are scaled to integer 1e-5 units on load. Blank lines and
// lines starting with '#' are skipped.
const coordScale = 1e5

type record struct {
	isEdge bool
	id     graph.Vertex // vertex id, or edge origin
	to     graph.Vertex
	coord  Coord
	cost   float64
}

// Load reads a graph file from disk and builds a ready-to-serve
// RouteStore.
func Load(path string, logger hclog.Logger) (*RouteStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open graph file: %w", err)
	}
	defer f.Close()

	rs, err := Parse(f, logger)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", path, err)
	}
	rs.source = path
	return rs, nil
}

// Parse builds a RouteStore from graph-file records. Line decoding
// fans out across CPUs; applying the decoded records to the store
// stays sequential, so the graph is never mutated concurrently.
func Parse(r io.Reader, logger hclog.Logger) (*RouteStore, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	recs := make([]*record, len(lines))
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for i := range lines {
		i := i
		eg.Go(func() error {
			rec, err := parseLine(lines[i], i+1)
			recs[i] = rec
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	rs := NewRouteStore(logger)
	for i, rec := range recs {
		if rec == nil {
			continue
		}
		if !rec.isEdge {
			rs.AddVertex(rec.id, rec.coord)
			continue
		}
		if !rs.g.HasVertex(rec.id) || !rs.g.HasVertex(rec.to) {
			return nil, fmt.Errorf("line %d: edge %d -> %d references an undeclared vertex", i+1, rec.id, rec.to)
		}
		rs.AddEdge(rec.id, rec.to, rec.cost)
	}

	rs.log.Info("graph loaded",
		"vertices", rs.VertexCount(),
		"edges", rs.EdgeCount(),
	)
	return rs, nil
}

// parseLine decodes one record. It returns (nil, nil) for blank and
// comment lines.
func parseLine(line string, lineno int) (*record, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	fields := strings.Split(line, ",")
	switch fields[0] {
	case "V":
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: vertex record needs 4 fields, got %d", lineno, len(fields))
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad vertex id %q", lineno, fields[1])
		}
		lat, err := parseDegrees(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad latitude %q", lineno, fields[2])
		}
		lon, err := parseDegrees(fields[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad longitude %q", lineno, fields[3])
		}
		return &record{id: graph.Vertex(id), coord: Coord{Lat: lat, Lon: lon}}, nil

	case "E":
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: edge record needs 4 fields, got %d", lineno, len(fields))
		}
		from, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad edge origin %q", lineno, fields[1])
		}
		to, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad edge target %q", lineno, fields[2])
		}
		cost, err := strconv.ParseFloat(fields[3], 64)
		if err != nil || cost < 0 || math.IsNaN(cost) {
			return nil, fmt.Errorf("line %d: bad edge cost %q", lineno, fields[3])
		}
		return &record{isEdge: true, id: graph.Vertex(from), to: graph.Vertex(to), cost: cost}, nil

	default:
		return nil, fmt.Errorf("line %d: unknown record tag %q", lineno, fields[0])
	}
}

func parseDegrees(s string) (int32, error) {
	deg, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int32(math.Round(deg * coordScale)), nil
}
