package terrain

import "github.com/Faultbox/groundplane/pkg/math"

// BuildPlane creates a flat grid of (segments+1)^2 vertices spanning size/(segments+1)
// per step along X and Z. The result is a fresh value; repeated calls with the same
// arguments produce identical buffers.
//
// segments == 0 yields a single vertex and no triangles. Callers wanting a visible
// surface must check size > 0 and segments > 0 themselves.
func BuildPlane(size float32, segments uint32) *MeshBuffers {
	gridWidth := segments + 1
	vertStep := size / float32(gridWidth)
	uvStep := 1 / float32(gridWidth)

	vertexCount := int(gridWidth) * int(gridWidth)
	indexCount := 6 * int(segments) * int(segments)

	m := &MeshBuffers{
		Positions: make([]math.Vec3, 0, vertexCount),
		Normals:   make([]math.Vec3, 0, vertexCount),
		Tangents:  make([]math.Vec3, 0, vertexCount),
		UVs:       make([]math.Vec2, 0, vertexCount),
		Indices:   make([]uint32, 0, indexCount),
		Topology:  TriangleList,
		GridWidth: int(gridWidth),
	}

	var i uint32
	for y := uint32(0); y < gridWidth; y++ {
		for x := uint32(0); x < gridWidth; x++ {
			normal, tangent := flatSurface()

			m.Positions = append(m.Positions, math.Vec3{X: float32(x) * vertStep, Y: 0, Z: float32(y) * vertStep})
			m.UVs = append(m.UVs, math.Vec2{X: float32(x) * uvStep, Y: float32(y) * uvStep})
			m.Normals = append(m.Normals, normal)
			m.Tangents = append(m.Tangents, tangent)

			// Winding matters: with a fixed +Y normal this order is front-facing.
			if x < segments && y < segments {
				m.Indices = append(m.Indices,
					i, i+gridWidth, i+1,
					i+gridWidth+1, i+1, i+gridWidth,
				)
			}
			i++
		}
	}

	return m
}

// flatSurface returns the normal and tangent of an undisplaced plane.
// It must be replaced by a per-vertex computation once heights are applied.
func flatSurface() (normal, tangent math.Vec3) {
	return math.WorldUp, math.UnitX
}
