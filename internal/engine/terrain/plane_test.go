package terrain

import (
	"math"
	"reflect"
	"testing"

	gmath "github.com/Faultbox/groundplane/pkg/math"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestBuildPlaneCounts(t *testing.T) {
	tests := []struct {
		size     float32
		segments uint32
	}{
		{1, 1},
		{1, 2},
		{5, 40},
		{0.25, 7},
		{100, 64},
	}

	for _, tt := range tests {
		m := BuildPlane(tt.size, tt.segments)
		side := int(tt.segments) + 1

		if got, want := len(m.Positions), side*side; got != want {
			t.Errorf("size=%v segments=%d: positions %d, want %d", tt.size, tt.segments, got, want)
		}
		if got, want := len(m.Indices), 6*int(tt.segments)*int(tt.segments); got != want {
			t.Errorf("size=%v segments=%d: indices %d, want %d", tt.size, tt.segments, got, want)
		}
		if len(m.Normals) != len(m.Positions) || len(m.Tangents) != len(m.Positions) || len(m.UVs) != len(m.Positions) {
			t.Errorf("segments=%d: attribute lengths differ: pos=%d nrm=%d tan=%d uv=%d",
				tt.segments, len(m.Positions), len(m.Normals), len(m.Tangents), len(m.UVs))
		}
		for j, idx := range m.Indices {
			if int(idx) >= len(m.Positions) {
				t.Fatalf("segments=%d: index[%d]=%d out of range (%d vertices)", tt.segments, j, idx, len(m.Positions))
			}
		}
		if m.Topology != TriangleList {
			t.Errorf("topology = %v, want %v", m.Topology, TriangleList)
		}
	}
}

func TestBuildPlaneVertexPlacement(t *testing.T) {
	m := BuildPlane(1.0, 2)

	// Grid coordinate (1,1) in a 3-wide grid.
	i := 1*3 + 1
	third := float32(1.0 / 3.0)

	p := m.Positions[i]
	if !approx(p.X, third) || p.Y != 0 || !approx(p.Z, third) {
		t.Errorf("position(1,1) = %v, want (1/3, 0, 1/3)", p)
	}
	uv := m.UVs[i]
	if !approx(uv.X, third) || !approx(uv.Y, third) {
		t.Errorf("uv(1,1) = %v, want (1/3, 1/3)", uv)
	}

	// Row-major: x varies fastest.
	if m.Positions[1].X <= m.Positions[0].X || m.Positions[1].Z != 0 {
		t.Errorf("second vertex should advance along X: %v", m.Positions[1])
	}
	if m.Positions[3].X != 0 || m.Positions[3].Z <= 0 {
		t.Errorf("fourth vertex should start the next row: %v", m.Positions[3])
	}
}

func TestBuildPlaneFlatSurface(t *testing.T) {
	for _, segments := range []uint32{0, 1, 3, 16} {
		m := BuildPlane(2, segments)
		for i := range m.Normals {
			if m.Normals[i] != (gmath.Vec3{X: 0, Y: 1, Z: 0}) {
				t.Fatalf("segments=%d: normal[%d] = %v", segments, i, m.Normals[i])
			}
			if m.Tangents[i] != (gmath.Vec3{X: 1, Y: 0, Z: 0}) {
				t.Fatalf("segments=%d: tangent[%d] = %v", segments, i, m.Tangents[i])
			}
		}
	}
}

func TestBuildPlaneWinding(t *testing.T) {
	for _, segments := range []uint32{1, 2, 5} {
		m := BuildPlane(1, segments)
		w := segments + 1

		wantA := []uint32{0, w, 1}
		wantB := []uint32{w + 1, 1, w}
		if !reflect.DeepEqual(m.Indices[0:3], wantA) {
			t.Errorf("segments=%d: triangle A = %v, want %v", segments, m.Indices[0:3], wantA)
		}
		if !reflect.DeepEqual(m.Indices[3:6], wantB) {
			t.Errorf("segments=%d: triangle B = %v, want %v", segments, m.Indices[3:6], wantB)
		}
	}
}

func TestBuildPlaneFrontFacesUp(t *testing.T) {
	m := BuildPlane(3, 4)

	for tri := 0; tri < len(m.Indices); tri += 3 {
		a := m.Positions[m.Indices[tri]]
		b := m.Positions[m.Indices[tri+1]]
		c := m.Positions[m.Indices[tri+2]]

		// Counter-clockwise winding gives a face normal along +Y.
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Y <= 0 || !approx(n.X, 0) || !approx(n.Z, 0) {
			t.Fatalf("triangle %d has face normal %v, want +Y", tri/3, n)
		}
	}
}

func TestBuildPlaneZeroSegments(t *testing.T) {
	m := BuildPlane(5, 0)

	if len(m.Positions) != 1 {
		t.Errorf("expected a single vertex, got %d", len(m.Positions))
	}
	if len(m.Indices) != 0 {
		t.Errorf("expected no indices, got %d", len(m.Indices))
	}
	if !m.Empty() {
		t.Error("zero-segment plane should report Empty")
	}
	if m.Positions[0] != (gmath.Vec3{}) {
		t.Errorf("lone vertex should sit at the origin, got %v", m.Positions[0])
	}
}

func TestBuildPlaneDeterministic(t *testing.T) {
	a := BuildPlane(5, 40)
	b := BuildPlane(5, 40)

	if !reflect.DeepEqual(a, b) {
		t.Error("BuildPlane with identical parameters produced different buffers")
	}

	// The results must not alias each other.
	a.Positions[0].Y = 42
	if b.Positions[0].Y == 42 {
		t.Error("buffers share backing storage")
	}
}

func TestBuildPlaneExactCapacity(t *testing.T) {
	m := BuildPlane(1, 9)
	if cap(m.Positions) != len(m.Positions) || cap(m.Indices) != len(m.Indices) {
		t.Errorf("buffers over-allocated: pos %d/%d idx %d/%d",
			len(m.Positions), cap(m.Positions), len(m.Indices), cap(m.Indices))
	}
}
