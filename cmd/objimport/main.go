/*
Command objimport shows how to use the 'objimport' package to parse
geometry data from OBJ files and their MTL material libraries.

See also: https://github.com/wavefrontgo/objimport
*/
package main

import (
	"log"
	"os"

	"github.com/wavefrontgo/objimport"
)

func main() {
	fileObj := os.Getenv("INPUT")
	if fileObj == "" {
		fileObj = "red_cube.obj"
	}
	log.Printf("env var INPUT=[%s] using input=%s", os.Getenv("INPUT"), fileObj)

	params := objimport.Params{
		Path: fileObj,
		Diag: func(msg string) { log.Print(msg) },
	}

	vertices, geometries, materials, err := objimport.Import(params)
	if err != nil {
		log.Printf("obj: parse error input=%s: %v", fileObj, err)
		return
	}

	log.Printf("obj=%s vertices=%d uvs=%d normals=%d geometries=%d materials=%d",
		fileObj, len(vertices.Positions), len(vertices.UVs), len(vertices.Normals),
		len(geometries), len(materials))

	for _, g := range geometries {
		log.Printf("geometry name=%q type=%v vertexStart=%d vertexCount=%d faces=%d edges=%d",
			g.Name, g.Type, g.VertexStart, g.VertexCount, len(g.FaceElements), len(g.Edges))
	}

	for name, mtl := range materials {
		log.Printf("material=%s Kd=%v maps=%d", name, mtl.Kd, len(mtl.TextureMaps))
	}
}
