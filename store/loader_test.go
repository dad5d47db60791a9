package store

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roved/graph"
)

const sampleGraph = `# roads around campus
V,276281417,53.618369,-113.602987
V,276281415,53.618619,-113.602532
V,276281413,53.619199,-113.601932

E,276281417,276281415,0.00052
E,276281415,276281413,0.00088
E,276281415,276281417,0.00052
`

func TestParseSampleGraph(t *testing.T) {
	rs, err := Parse(strings.NewReader(sampleGraph), hclog.NewNullLogger())
	require.NoError(t, err)

	assert.Equal(t, 3, rs.VertexCount())
	assert.Equal(t, 3, rs.EdgeCount())

	// 53.618369 degrees scales to 5361837 integer units.
	c, ok := rs.VertexCoord(276281417)
	require.True(t, ok)
	assert.Equal(t, Coord{Lat: 5361837, Lon: -11360299}, c)

	v, _, err := rs.Nearest(5361840, -11360300)
	require.NoError(t, err)
	assert.Equal(t, graph.Vertex(276281417), v)

	path, err := rs.Route(5361837, -11360299, 5361920, -11360193, false)
	require.NoError(t, err)
	assert.Len(t, path, 3)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown tag", "X,1,2,3\n", "unknown record tag"},
		{"vertex arity", "V,1,2\n", "needs 4 fields"},
		{"bad vertex id", "V,abc,53.5,-113.5\n", "bad vertex id"},
		{"bad latitude", "V,1,north,-113.5\n", "bad latitude"},
		{"bad edge cost", "V,1,0,0\nV,2,0,0\nE,1,2,cheap\n", "bad edge cost"},
		{"negative edge cost", "V,1,0,0\nV,2,0,0\nE,1,2,-4\n", "bad edge cost"},
		{"undeclared endpoint", "V,1,0,0\nE,1,2,0.5\n", "undeclared vertex"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), hclog.NewNullLogger())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseSkipsBlankAndComments(t *testing.T) {
	rs, err := Parse(strings.NewReader("\n# nothing here\n\nV,9,1.0,2.0\n"), hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, rs.VertexCount())
	assert.Equal(t, 0, rs.EdgeCount())
}
