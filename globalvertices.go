package objimport

// GlobalVertices holds the document-level, insertion-ordered vertex
// tables shared by every Geometry in an import. Entries are appended
// only; once stored an entry is never rewritten.
type GlobalVertices struct {
	Positions []Vec3 // v directives
	UVs       []Vec2 // vt directives
	Normals   []Vec3 // vn directives
}

// Vec3 is a position or normal triple.
type Vec3 [3]float32

// Vec2 is a texture coordinate pair.
type Vec2 [2]float32

func (g *GlobalVertices) addPosition(v Vec3) int {
	g.Positions = append(g.Positions, v)
	return len(g.Positions) - 1
}

func (g *GlobalVertices) addNormal(v Vec3) int {
	g.Normals = append(g.Normals, v)
	return len(g.Normals) - 1
}

func (g *GlobalVertices) addUV(v Vec2) int {
	g.UVs = append(g.UVs, v)
	return len(g.UVs) - 1
}
