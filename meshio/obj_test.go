package meshio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/r-silveira/xbimgeometry/mesh"
	"github.com/r-silveira/xbimgeometry/meshio"
	"github.com/r-silveira/xbimgeometry/vec3"
)

func TestParseOBJSubset_BasicTriangle(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\ng tri\nf 1 2 3\n"

	m, err := meshio.ParseOBJSubset(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Vertices, 3)
	require.Len(t, m.Triangles, 1)
	require.Equal(t, mesh.Triangle{FaceID: 1, V0: 0, V1: 1, V2: 2}, m.Triangles[0])
}

func TestParseOBJSubset_IgnoresCommentsAndBlankLines(t *testing.T) {
	src := "# a comment\n\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

	m, err := meshio.ParseOBJSubset(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Triangles, 1)
}

func TestParseOBJSubset_MalformedVertex(t *testing.T) {
	_, err := meshio.ParseOBJSubset(strings.NewReader("v 0 0\n"))
	require.ErrorIs(t, err, meshio.ErrMalformedVertexLine)
}

func TestParseOBJSubset_FaceOutOfRange(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"
	_, err := meshio.ParseOBJSubset(strings.NewReader(src))
	require.ErrorIs(t, err, meshio.ErrFaceVertexOutOfRange)
}

func TestParseOBJSubset_DistinctGroupsGetDistinctFaceIDs(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 1 1 0\n" +
		"g a\nf 1 2 3\n" +
		"g b\nf 2 4 3\n"

	m, err := meshio.ParseOBJSubset(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Triangles, 2)
	require.NotEqual(t, m.Triangles[0].FaceID, m.Triangles[1].FaceID)
}

func TestWriteOBJSubset_RoundTrip(t *testing.T) {
	m := mesh.New(1e-4)
	m.Vertices = []vec3.Vec3{vec3.New(0, 0, 0), vec3.New(1, 0, 0), vec3.New(0, 1, 0)}
	m.Triangles = []mesh.Triangle{{FaceID: 1, V0: 0, V1: 1, V2: 2}}

	var buf strings.Builder
	require.NoError(t, meshio.WriteOBJSubset(&buf, m))

	roundTripped, err := meshio.ParseOBJSubset(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, roundTripped.Vertices, 3)
	require.Equal(t, m.Triangles, roundTripped.Triangles)
}
