package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/r-silveira/xbimgeometry/mesh"
	"github.com/r-silveira/xbimgeometry/vec3"
)

// ParseOBJSubset reads a restricted Wavefront OBJ subset from r: "v x y z"
// vertex lines (1-based indexing per the OBJ convention), "f a b c"
// triangle lines, and "g name"/"o name" group lines that assign the face
// id used for every subsequent face line until the next group line. Lines
// that are blank, start with "#", or use any other OBJ directive are
// ignored. The returned mesh's Precision is left at 0; callers that care
// set it themselves.
func ParseOBJSubset(r io.Reader) (*mesh.Mesh, error) {
	m := mesh.New(0)

	faceID := 0
	nextFaceID := 1
	seenGroups := map[string]int{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVertexLine(fields[1:])
			if err != nil {
				return nil, err
			}
			m.Vertices = append(m.Vertices, p)

		case "g", "o":
			name := strings.Join(fields[1:], " ")
			id, ok := seenGroups[name]
			if !ok {
				id = nextFaceID
				nextFaceID++
				seenGroups[name] = id
			}
			faceID = id

		case "f":
			tri, err := parseFaceLine(fields[1:], len(m.Vertices), faceID)
			if err != nil {
				return nil, err
			}
			m.Triangles = append(m.Triangles, tri)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("meshio: reading OBJ: %w", err)
	}

	return m, nil
}

func parseVertexLine(fields []string) (vec3.Vec3, error) {
	if len(fields) != 3 {
		return vec3.Vec3{}, ErrMalformedVertexLine
	}

	coords := make([]float64, 3)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return vec3.Vec3{}, ErrMalformedVertexLine
		}
		coords[i] = v
	}

	return vec3.New(coords[0], coords[1], coords[2]), nil
}

func parseFaceLine(fields []string, vertexCount, faceID int) (mesh.Triangle, error) {
	if len(fields) != 3 {
		return mesh.Triangle{}, ErrMalformedFaceLine
	}

	idx := make([]int, 3)
	for i, f := range fields {
		// A face reference may carry "/vt/vn" suffixes; this subset only
		// reads the vertex index, the first slash-delimited field.
		ref := strings.SplitN(f, "/", 2)[0]
		v, err := strconv.Atoi(ref)
		if err != nil {
			return mesh.Triangle{}, ErrMalformedFaceLine
		}
		if v < 1 || v > vertexCount {
			return mesh.Triangle{}, ErrFaceVertexOutOfRange
		}
		idx[i] = v - 1
	}

	return mesh.Triangle{FaceID: faceID, V0: idx[0], V1: idx[1], V2: idx[2]}, nil
}

// WriteOBJSubset writes m to w in the same restricted OBJ subset
// ParseOBJSubset reads: all vertices first, then one "g" line per distinct
// face id followed by that face id's triangles as "f" lines.
func WriteOBJSubset(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return err
		}
	}

	byFace := make(map[int][]mesh.Triangle)
	for _, t := range m.Triangles {
		byFace[t.FaceID] = append(byFace[t.FaceID], t)
	}

	for _, faceID := range m.FaceIDs() {
		if _, err := fmt.Fprintf(bw, "g face%d\n", faceID); err != nil {
			return err
		}
		for _, t := range byFace[faceID] {
			if _, err := fmt.Fprintf(bw, "f %d %d %d\n", t.V0+1, t.V1+1, t.V2+1); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
