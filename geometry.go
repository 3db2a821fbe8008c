package objimport

// GeometryType distinguishes a mesh partition from a curve partition.
type GeometryType int

// Geometry types recognized by the parser.
const (
	GeomMesh GeometryType = iota
	GeomCurve
)

// AbsentIndex marks a PolyCorner's UV or normal slot as not present.
const AbsentIndex = -1

// PolyCorner is one v[/vt[/vn]] reference inside a face directive, with
// indices already normalized to 0-based absolute positions into the
// GlobalVertices tables (or AbsentIndex for a missing UV/normal slot).
type PolyCorner struct {
	VertIndex         int
	UVVertIndex       int
	VertexNormalIndex int
}

// PolyElem is one accepted face: a contiguous, in-range slice of the
// parent Geometry's FaceCorners, plus the state that was current when
// the face directive was parsed.
type PolyElem struct {
	StartIndex       int
	CornerCount      int
	MaterialIndex    int // -1 if no usemtl seen yet
	VertexGroupIndex int // -1 if no group assigned yet
	ShadedSmooth     bool
}

// NurbsElement records a curve's degree, control-point indices,
// parameter list and originating group name. Surface evaluation is out
// of scope; this is a recording-only structure.
type NurbsElement struct {
	Degree      int
	CurvIndices []int
	Parm        []float32
	Group       string
}

// Geometry is a named, typed partition of the OBJ stream with its own
// group/material index tables. A Geometry is "current" from its
// creation until superseded by a later geometry transition; handlers
// mutate only the current Geometry and the shared GlobalVertices.
type Geometry struct {
	Type             GeometryType
	Name             string
	VertexStart      int
	VertexCount      int
	HasVertexNormals bool

	FaceCorners  []PolyCorner
	FaceElements []PolyElem
	Edges        [][2]int
	TotalLoops   int

	GroupIndices    map[string]int
	MaterialIndices map[string]int
	UseVertexGroups bool

	Nurbs *NurbsElement
}

func newGeometry(typ GeometryType, name string, vertexStart int) *Geometry {
	if name == "" {
		name = "New object"
	}
	return &Geometry{
		Type:            typ,
		Name:            name,
		VertexStart:     vertexStart,
		GroupIndices:    map[string]int{},
		MaterialIndices: map[string]int{},
	}
}

// groupIndex returns the dense index assigned to name within this
// Geometry, assigning the next index on first mention.
func (g *Geometry) groupIndex(name string) int {
	if idx, ok := g.GroupIndices[name]; ok {
		return idx
	}
	idx := len(g.GroupIndices)
	g.GroupIndices[name] = idx
	return idx
}

// materialIndex returns the dense index assigned to name within this
// Geometry, assigning the next index on first mention.
func (g *Geometry) materialIndex(name string) int {
	if idx, ok := g.MaterialIndices[name]; ok {
		return idx
	}
	idx := len(g.MaterialIndices)
	g.MaterialIndices[name] = idx
	return idx
}

// isEmptyMesh reports whether g is a mesh Geometry with no vertices, no
// faces, no normals and no edges — the condition under which an `o`
// transition may rename g instead of allocating a new Geometry.
func (g *Geometry) isEmptyMesh() bool {
	return g.Type == GeomMesh && g.VertexCount == 0 && len(g.FaceElements) == 0 && !g.HasVertexNormals && len(g.Edges) == 0
}
