package objimport

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleObj = `mtllib sample.mtl
o Cube
v -1 -1 -1
v  1 -1 -1
v  1  1 -1
v -1  1 -1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
usemtl Red
f 1/1 2/2 3/3 4/4
`

const sampleMtl = `newmtl Red
Kd 0.8 0.1 0.1
`

func writeSampleScene(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	objPath := filepath.Join(dir, "sample.obj")
	if err := os.WriteFile(objPath, []byte(sampleObj), 0o644); err != nil {
		t.Fatalf("writeSampleScene: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sample.mtl"), []byte(sampleMtl), 0o644); err != nil {
		t.Fatalf("writeSampleScene: %v", err)
	}
	return objPath
}

func TestImportEndToEnd(t *testing.T) {
	objPath := writeSampleScene(t)

	vertices, geometries, materials, err := Import(Params{Path: objPath})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	expectInt(t, "TestImportEndToEnd: positions", 4, len(vertices.Positions))
	expectInt(t, "TestImportEndToEnd: uvs", 4, len(vertices.UVs))

	if len(geometries) != 1 {
		t.Fatalf("TestImportEndToEnd: want 1 geometry, got %d", len(geometries))
	}
	if geometries[0].Name != "Cube" {
		t.Errorf("TestImportEndToEnd: name: want=Cube got=%q", geometries[0].Name)
	}

	mtl, ok := materials["Red"]
	if !ok {
		t.Fatalf("TestImportEndToEnd: material Red not found")
	}
	expectFloat(t, "TestImportEndToEnd: Kd.r", 0.8, mtl.Kd[0])
}

func TestImportMissingOBJFileIsDiagnosedNotError(t *testing.T) {
	var diagMsgs []string
	vertices, geometries, materials, err := Import(Params{
		Path: "/no/such/scene.obj",
		Diag: func(msg string) { diagMsgs = append(diagMsgs, msg) },
	})
	if err != nil {
		t.Fatalf("TestImportMissingOBJFileIsDiagnosedNotError: want nil error, got %v", err)
	}
	if len(vertices.Positions) != 0 || len(geometries) != 0 || len(materials) != 0 {
		t.Errorf("TestImportMissingOBJFileIsDiagnosedNotError: want empty outputs")
	}
	if len(diagMsgs) == 0 {
		t.Errorf("TestImportMissingOBJFileIsDiagnosedNotError: expected a diagnostic message")
	}
}

func TestImportMissingMtllibStillReturnsGeometry(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "noref.obj")
	const text = `mtllib missing.mtl
v 0 0 0
v 1 0 0
v 1 1 0
f 1 2 3
`
	if err := os.WriteFile(objPath, []byte(text), 0o644); err != nil {
		t.Fatalf("TestImportMissingMtllibStillReturnsGeometry: %v", err)
	}

	_, geometries, materials, err := Import(Params{Path: objPath})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(geometries) != 1 || len(geometries[0].FaceElements) != 1 {
		t.Fatalf("TestImportMissingMtllibStillReturnsGeometry: geometry not parsed despite missing mtllib")
	}
	if len(materials) != 0 {
		t.Errorf("TestImportMissingMtllibStillReturnsGeometry: want no materials, got %d", len(materials))
	}
}
