package terrain

// HeightAt returns the bilinearly interpolated surface height at a world XZ position.
// Positions outside the grid are clamped to its edge. Meshes not built by BuildPlane,
// or with fewer than two vertices per side, report height 0.
func (m *MeshBuffers) HeightAt(worldX, worldZ float32) float32 {
	w := m.GridWidth
	if w < 2 || len(m.Positions) != w*w {
		return 0
	}

	step := m.Positions[1].X - m.Positions[0].X
	if step <= 0 {
		return 0
	}

	cellFX := clampf(worldX/step, 0, float32(w-1))
	cellFZ := clampf(worldZ/step, 0, float32(w-1))

	cellX := min(int(cellFX), w-2)
	cellZ := min(int(cellFZ), w-2)

	fracX := clampf(cellFX-float32(cellX), 0, 1)
	fracZ := clampf(cellFZ-float32(cellZ), 0, 1)

	i := cellZ*w + cellX
	h00 := m.Positions[i].Y
	h10 := m.Positions[i+1].Y
	h01 := m.Positions[i+w].Y
	h11 := m.Positions[i+w+1].Y

	// Lerp along X on both rows, then between rows along Z.
	near := h00*(1-fracX) + h10*fracX
	far := h01*(1-fracX) + h11*fracX
	return near*(1-fracZ) + far*fracZ
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
