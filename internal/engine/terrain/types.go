// Package terrain builds the procedural ground-plane mesh.
package terrain

import "github.com/Faultbox/groundplane/pkg/math"

// Topology describes how the index buffer is assembled into primitives.
type Topology int

const (
	// TriangleList groups every three indices into an independent triangle.
	TriangleList Topology = iota
)

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case TriangleList:
		return "triangle-list"
	default:
		return "unknown"
	}
}

// MeshBuffers holds the per-vertex attribute streams and the index list of a mesh.
// All attribute slices share the same length and vertex order.
type MeshBuffers struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	Tangents  []math.Vec3
	UVs       []math.Vec2
	Indices   []uint32
	Topology  Topology

	// Vertices per grid side. Zero for meshes not produced by BuildPlane.
	GridWidth int
}

// Vertex is one interleaved vertex, laid out for a single GPU vertex buffer.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Tangent  [3]float32
	TexCoord [2]float32
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}
