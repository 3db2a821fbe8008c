package objimport

import (
	"bytes"
	"io"
)

// objParseState carries parser state across lines (spec.md §4.3):
// the current Geometry, its vertex-index offset, and the
// state-setting directives (smoothing, group, material) that remain in
// effect for subsequent elements until overridden.
type objParseState struct {
	gv         *GlobalVertices
	geometries []*Geometry

	curr   *Geometry
	offset int // VertexIndexOffset: curr.VertexStart at curr's creation

	shadedSmooth     bool
	objectGroup      string
	objectGroupIndex int
	materialName     string
	materialIndex    int
	mtlLibraries     []string

	diag func(string)
}

func (p *objParseState) log(msg string) {
	if p.diag != nil {
		p.diag(msg)
	}
}

func newObjParseState(gv *GlobalVertices, diag func(string)) *objParseState {
	p := &objParseState{
		gv:               gv,
		objectGroupIndex: -1,
		materialIndex:    -1,
		diag:             diag,
	}
	// The very first Geometry is created directly, named "" — unlike
	// every later transition, it does not fall back to "New object"
	// when unnamed (spec.md §8 scenario 1; see DESIGN.md).
	initial := &Geometry{
		Type:            GeomMesh,
		Name:            "",
		VertexStart:     0,
		GroupIndices:    map[string]int{},
		MaterialIndices: map[string]int{},
	}
	p.geometries = append(p.geometries, initial)
	p.curr = initial
	p.offset = 0
	return p
}

// createGeometry implements the geometry transition policy of
// spec.md §4.3. It decides whether to allocate a new Geometry or
// reuse/retype the previous one, updates p.offset when a new Geometry
// is allocated, and returns the Geometry that is now current.
func (p *objParseState) createGeometry(newType GeometryType, name string) *Geometry {
	prev := p.curr

	allocate := func() *Geometry {
		g := newGeometry(newType, name, len(p.gv.Positions))
		p.geometries = append(p.geometries, g)
		p.offset = g.VertexStart
		return g
	}

	if prev != nil && prev.Type == GeomMesh {
		if newType == GeomMesh && prev.isEmptyMesh() {
			prev.Name = name
			return prev
		}
		// A curve takes over a mesh that has no faces, normals or edges,
		// even when it already holds vertices (its control points).
		if newType == GeomCurve && len(prev.FaceElements) == 0 && !prev.HasVertexNormals && len(prev.Edges) == 0 {
			prev.Type = GeomCurve
			return prev
		}
	}

	return allocate()
}

// ParseOBJStream runs the OBJ directive dispatcher and geometry state
// machine over r (spec.md §4.2-§4.3), mutating gv and returning the
// ordered Geometry list and the mtllib references encountered, in
// order of first mention with duplicates preserved.
func ParseOBJStream(r io.Reader, gv *GlobalVertices, diag func(string)) ([]*Geometry, []string, error) {
	p := newObjParseState(gv, diag)

	lr := newLineReader(r)
	err := lr.run(func(line []byte) {
		p.dispatch(line)
	})
	if err != nil {
		return p.geometries, p.mtlLibraries, err
	}
	return p.geometries, p.mtlLibraries, nil
}

func (p *objParseState) dispatch(line []byte) {
	if len(line) == 0 {
		return
	}
	key, rest := splitLineKeyRest(line)
	if len(key) == 0 {
		return
	}

	switch {
	case key[0] == '#':
		return
	case bytesEqual(key, "v"):
		p.handleVertex(rest)
	case bytesEqual(key, "vn"):
		p.handleNormal(rest)
	case bytesEqual(key, "vt"):
		p.handleUV(rest)
	case bytesEqual(key, "f"):
		p.handleFace(rest)
	case bytesEqual(key, "l"):
		p.handleEdge(rest)
	case bytesEqual(key, "cstype"):
		p.handleCstype(rest)
	case bytesEqual(key, "deg"):
		p.handleDeg(rest)
	case bytesEqual(key, "curv"):
		p.handleCurv(rest)
	case bytesEqual(key, "parm"):
		p.handleParm(rest)
	case bytesEqual(key, "o"):
		p.handleObject(rest)
	case bytesEqual(key, "g"):
		p.handleGroup(rest)
	case bytesEqual(key, "s"):
		p.handleSmooth(rest)
	case bytesEqual(key, "usemtl"):
		p.handleUsemtl(rest)
	case bytesEqual(key, "mtllib"):
		p.handleMtllib(rest)
	default:
		p.log("unrecognized directive: " + string(key))
	}
}

func bytesEqual(b []byte, s string) bool {
	return string(b) == s
}

func (p *objParseState) handleVertex(rest []byte) {
	var v Vec3
	parseFloats(rest, maxFloat, v[:], 3)
	p.gv.addPosition(v)
	p.curr.VertexCount++
}

func (p *objParseState) handleNormal(rest []byte) {
	var n Vec3
	parseFloats(rest, maxFloat, n[:], 3)
	p.gv.addNormal(n)
	p.curr.HasVertexNormals = true
}

func (p *objParseState) handleUV(rest []byte) {
	var uv Vec2
	parseFloats(rest, maxFloat, uv[:], 2)
	p.gv.addUV(uv)
}

const maxFloat = float32(3.402823466e+38)

func (p *objParseState) handleEdge(rest []byte) {
	fields := splitByChar(rest, ' ')
	if len(fields) < 2 {
		p.log("l: not enough indices")
		return
	}
	v1, _ := parseInt(fields[0], -1)
	v2, _ := parseInt(fields[1], -1)

	v1 = p.normalizeGlobalPositionIndex(v1)
	v2 = p.normalizeGlobalPositionIndex(v2)

	p.curr.Edges = append(p.curr.Edges, [2]int{v1, v2})
}

// normalizePositionIndex converts a signed OBJ position reference to a
// 0-based absolute index into GlobalVertices.Positions: a negative
// reference counts back from the current table size, a positive one is
// 1-based and offset by the current Geometry's VertexIndexOffset, since
// positive face-corner references are Geometry-local (spec.md §8
// scenario 3).
func (p *objParseState) normalizePositionIndex(ref int) int {
	if ref < 0 {
		return len(p.gv.Positions) + ref
	}
	return ref + p.offset - 1
}

// normalizeGlobalPositionIndex converts a signed OBJ position reference
// used by the `l` directive: unlike face corners, edge references are
// document-global and never offset by VertexIndexOffset (spec.md §4.3).
func (p *objParseState) normalizeGlobalPositionIndex(ref int) int {
	if ref < 0 {
		return len(p.gv.Positions) + ref
	}
	return ref - 1
}

func (p *objParseState) handleFace(rest []byte) {
	g := p.curr

	elem := PolyElem{
		ShadedSmooth:     p.shadedSmooth,
		MaterialIndex:    p.materialIndex,
		VertexGroupIndex: -1,
	}
	if p.objectGroupIndex >= 0 {
		elem.VertexGroupIndex = p.objectGroupIndex
		g.UseVertexGroups = true
	}

	origCornersSize := len(g.FaceCorners)
	elem.StartIndex = origCornersSize

	faceInvalid := false
	str := rest

	for len(str) > 0 {
		loopStart := len(str)

		var corner PolyCorner
		gotUV, gotNormal := false, false

		v, adv := parseInt(str, maxInt32)
		corner.VertIndex = v
		if v == maxInt32 {
			faceInvalid = true
		}
		str = str[adv:]

		if len(str) > 0 && str[0] == '/' {
			str = str[1:]
			if len(str) > 0 && str[0] != '/' {
				uv, uvAdv := parseInt(str, maxInt32)
				corner.UVVertIndex = uv
				gotUV = uv != maxInt32
				str = str[uvAdv:]
			} else {
				corner.UVVertIndex = maxInt32
			}
			if len(str) > 0 && str[0] == '/' {
				str = str[1:]
				n, nAdv := parseInt(str, maxInt32)
				corner.VertexNormalIndex = n
				gotNormal = n != maxInt32
				str = str[nAdv:]
			} else {
				corner.VertexNormalIndex = maxInt32
			}
		} else {
			corner.UVVertIndex = maxInt32
			corner.VertexNormalIndex = maxInt32
		}

		corner.VertIndex = p.normalizePositionIndex(corner.VertIndex)
		if corner.VertIndex < 0 || corner.VertIndex >= len(p.gv.Positions) {
			p.log("invalid vertex index, dropping face")
			faceInvalid = true
		}

		if gotUV {
			if corner.UVVertIndex < 0 {
				corner.UVVertIndex += len(p.gv.UVs)
			} else {
				corner.UVVertIndex--
			}
			if corner.UVVertIndex < 0 || corner.UVVertIndex >= len(p.gv.UVs) {
				p.log("invalid UV index, dropping face")
				faceInvalid = true
			}
		} else {
			corner.UVVertIndex = AbsentIndex
		}

		if gotNormal {
			if corner.VertexNormalIndex < 0 {
				corner.VertexNormalIndex += len(p.gv.Normals)
			} else {
				corner.VertexNormalIndex--
			}
			if corner.VertexNormalIndex < 0 || corner.VertexNormalIndex >= len(p.gv.Normals) {
				p.log("invalid normal index, dropping face")
				faceInvalid = true
			}
		} else {
			corner.VertexNormalIndex = AbsentIndex
		}

		g.FaceCorners = append(g.FaceCorners, corner)
		elem.CornerCount++

		skip := skipWhitespace(str)
		str = str[skip:]

		if len(str) == loopStart {
			// A corner token consisting of neither a digit nor
			// recognized whitespace leaves the cursor stuck; drop the
			// byte and invalidate the face rather than loop forever.
			faceInvalid = true
			if len(str) > 0 {
				str = str[1:]
			}
		}
	}

	if !faceInvalid {
		g.FaceElements = append(g.FaceElements, elem)
		g.TotalLoops += elem.CornerCount
	} else {
		g.FaceCorners = g.FaceCorners[:origCornersSize]
	}
}

const maxInt32 = int(1)<<31 - 1

func (p *objParseState) handleCstype(rest []byte) {
	if bytes.Contains(rest, []byte("bspline")) {
		p.curr = p.createGeometry(GeomCurve, p.objectGroup)
		if p.curr.Nurbs == nil {
			p.curr.Nurbs = &NurbsElement{}
		}
		p.curr.Nurbs.Group = p.objectGroup
	} else {
		p.log("curve type not supported: " + string(rest))
	}
}

func (p *objParseState) handleDeg(rest []byte) {
	if p.curr.Nurbs == nil {
		p.curr.Nurbs = &NurbsElement{}
	}
	v, _ := parseInt(bytes.TrimSpace(rest), 3)
	p.curr.Nurbs.Degree = v
}

func (p *objParseState) handleCurv(rest []byte) {
	fields := splitByChar(rest, ' ')
	if len(fields) < 2 {
		p.log("curv: not enough fields")
		return
	}
	fields = fields[2:] // drop the fixed 0.0/1.0 parameter bounds

	if p.curr.Nurbs == nil {
		p.curr.Nurbs = &NurbsElement{}
	}
	indices := make([]int, len(fields))
	for i, f := range fields {
		v, _ := parseInt(f, maxInt32)
		if v < 0 {
			v += len(p.gv.Positions)
		} else {
			v--
		}
		indices[i] = v
	}
	p.curr.Nurbs.CurvIndices = indices
}

func (p *objParseState) handleParm(rest []byte) {
	fields := splitByChar(rest, ' ')
	if len(fields) == 0 {
		return
	}
	if bytesEqual(fields[0], "u") || bytesEqual(fields[0], "v") {
		fields = fields[1:]
		if p.curr.Nurbs == nil {
			p.curr.Nurbs = &NurbsElement{}
		}
		params := make([]float32, len(fields))
		for i, f := range fields {
			v, _ := parseFloat(f, maxFloat)
			params[i] = v
		}
		p.curr.Nurbs.Parm = params
	} else {
		p.log("surfaces not supported: " + string(fields[0]))
	}
}

func (p *objParseState) handleObject(rest []byte) {
	p.shadedSmooth = false
	p.objectGroup = ""
	p.materialName = ""
	p.curr = p.createGeometry(GeomMesh, string(rest))
}

func (p *objParseState) handleGroup(rest []byte) {
	if bytes.Contains(rest, []byte("off")) || bytes.Contains(rest, []byte("null")) || bytes.Contains(rest, []byte("default")) {
		p.objectGroup = ""
	} else {
		p.objectGroup = string(rest)
	}
	p.objectGroupIndex = p.curr.groupIndex(p.objectGroup)
}

func (p *objParseState) handleSmooth(rest []byte) {
	trimmed := bytes.TrimSpace(rest)
	s := string(trimmed)
	if s != "0" && !bytes.Contains(trimmed, []byte("off")) && !bytes.Contains(trimmed, []byte("null")) {
		v, _ := parseInt(trimmed, 0)
		p.shadedSmooth = v != 0
	} else {
		p.shadedSmooth = false
	}
}

func (p *objParseState) handleUsemtl(rest []byte) {
	p.materialName = string(rest)
	p.materialIndex = p.curr.materialIndex(p.materialName)
}

func (p *objParseState) handleMtllib(rest []byte) {
	p.mtlLibraries = append(p.mtlLibraries, string(rest))
}
