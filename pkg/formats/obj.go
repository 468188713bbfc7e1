package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/quatviz/pkg/math"
)

// OBJ format errors.
var (
	ErrEmptyOBJ = errors.New("OBJ contains no vertices")
)

// OBJ holds the geometry of a Wavefront OBJ file.
// Face indices are 0-based and always reference Vertices.
type OBJ struct {
	Vertices []math.Vec3
	Faces    [][]int

	// Warnings lists skipped records with their line numbers.
	Warnings []string
}

// LoadOBJ reads and parses an OBJ file from disk.
func LoadOBJ(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ: %w", err)
	}
	defer f.Close()

	obj, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return obj, nil
}

// ParseOBJ parses OBJ text. Only "v" and "f" records are used; other
// records are ignored. Malformed vertices, unresolvable indices and faces
// with fewer than three valid indices are skipped and noted in Warnings.
func ParseOBJ(r io.Reader) (*OBJ, error) {
	obj := &OBJ{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, ok := parseVertex(fields[1:])
			if !ok {
				obj.warnf(lineNum, "invalid vertex %q", line)
				continue
			}
			obj.Vertices = append(obj.Vertices, v)

		case "f":
			face := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idx, ok := parseIndex(ref, len(obj.Vertices))
				if !ok {
					obj.warnf(lineNum, "invalid vertex index %q", ref)
					continue
				}
				face = append(face, idx)
			}
			if len(face) < 3 {
				obj.warnf(lineNum, "face with %d valid vertices skipped", len(face))
				continue
			}
			obj.Faces = append(obj.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	if len(obj.Vertices) == 0 {
		return obj, ErrEmptyOBJ
	}
	return obj, nil
}

func (o *OBJ) warnf(line int, format string, args ...any) {
	o.Warnings = append(o.Warnings, fmt.Sprintf("line %d: %s", line, fmt.Sprintf(format, args...)))
}

// parseVertex reads the x, y, z of a "v" record. A trailing w is ignored.
func parseVertex(fields []string) (math.Vec3, bool) {
	if len(fields) < 3 {
		return math.Vec3{}, false
	}
	var c [3]float32
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return math.Vec3{}, false
		}
		c[i] = float32(f)
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, true
}

// parseIndex resolves one face reference ("v", "v/vt", "v/vt/vn" or
// "v//vn") to a 0-based vertex index. Positive indices are 1-based,
// negative ones count back from the last vertex read so far.
func parseIndex(ref string, vertexCount int) (int, bool) {
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		ref = ref[:slash]
	}
	n, err := strconv.Atoi(ref)
	if err != nil || n == 0 {
		return 0, false
	}

	var idx int
	if n > 0 {
		idx = n - 1
	} else {
		idx = vertexCount + n
	}
	if idx < 0 || idx >= vertexCount {
		return 0, false
	}
	return idx, true
}
