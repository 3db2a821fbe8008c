package objimport

import (
	"os"
	"path/filepath"
)

// Import reads the OBJ file named by params.Path and its referenced MTL
// material libraries, returning the global vertex tables, the ordered
// Geometry partitions and the merged material map.
//
// A missing or unreadable OBJ file is reported through params.Diag and
// yields empty results with a nil error, matching the traced reference
// importer's "skip, don't fail" behavior for unreadable input (spec.md
// §4.5, §7); a missing MTL library is likewise diagnosed and skipped
// without aborting the OBJ parse that referenced it.
func Import(params Params) (GlobalVertices, []*Geometry, map[string]*MTLMaterial, error) {
	materials := map[string]*MTLMaterial{}

	f, err := os.Open(params.Path)
	if err != nil {
		if params.Diag != nil {
			params.Diag("cannot read OBJ file: " + params.Path)
		}
		return GlobalVertices{}, nil, materials, nil
	}
	defer f.Close()

	var gv GlobalVertices
	geometries, mtlLibs, err := ParseOBJStream(f, &gv, params.Diag)
	if err != nil {
		return gv, geometries, materials, err
	}

	objDir := filepath.Dir(params.Path)
	seen := map[string]bool{}
	for _, lib := range mtlLibs {
		if seen[lib] {
			continue
		}
		seen[lib] = true
		libPath := filepath.Join(objDir, lib)
		if err := ParseMTLFile(libPath, materials, params.Diag); err != nil {
			return gv, geometries, materials, err
		}
	}

	return gv, geometries, materials, nil
}
