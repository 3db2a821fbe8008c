/*
Package objimport is a pure Go parser for Wavefront OBJ geometry files
and their companion MTL material libraries.

It builds an in-memory model: a flat table of global vertex positions,
texture coordinates and normals, an ordered list of Geometry objects
partitioning the OBJ stream into named mesh/curve groups, and a map from
material name to parsed MTLMaterial. It is a benchmark-and-embedding
parser, not a renderer, exporter or coordinate-system converter.

Example:

    params := objimport.Params{Path: "gopher.obj"}

    vertices, geometries, materials, err := objimport.Import(params)

See also: https://github.com/wavefrontgo/objimport
*/
package objimport
