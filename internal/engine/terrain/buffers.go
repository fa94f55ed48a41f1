package terrain

// VertexCount returns the number of vertices.
func (m *MeshBuffers) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles in the index list.
func (m *MeshBuffers) TriangleCount() int {
	return len(m.Indices) / 3
}

// Empty reports whether the mesh has no triangles to draw.
func (m *MeshBuffers) Empty() bool {
	return len(m.Indices) == 0
}

// Interleave packs the attribute streams into one vertex slice for GPU upload.
func (m *MeshBuffers) Interleave() []Vertex {
	vertices := make([]Vertex, len(m.Positions))
	for i := range vertices {
		uv := m.UVs[i]
		vertices[i] = Vertex{
			Position: m.Positions[i].Array(),
			Normal:   m.Normals[i].Array(),
			Tangent:  m.Tangents[i].Array(),
			TexCoord: [2]float32{uv.X, uv.Y},
		}
	}
	return vertices
}

// Bounds returns the axis-aligned bounding box of the positions.
// An empty mesh returns the zero box.
func (m *MeshBuffers) Bounds() Bounds {
	if len(m.Positions) == 0 {
		return Bounds{}
	}

	first := m.Positions[0].Array()
	b := Bounds{Min: first, Max: first}
	for _, p := range m.Positions[1:] {
		updateBounds(&b, p.Array())
	}
	return b
}

func updateBounds(b *Bounds, p [3]float32) {
	for axis := 0; axis < 3; axis++ {
		b.Min[axis] = min(b.Min[axis], p[axis])
		b.Max[axis] = max(b.Max[axis], p[axis])
	}
}
