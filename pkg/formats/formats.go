// Package formats provides parsers for 3D model file formats.
//
// Wavefront OBJ is implemented in obj.go. Only geometry (v and f records)
// is read; materials, normals and texture coordinates are ignored.
package formats
