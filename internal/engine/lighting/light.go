// Package lighting provides the light sources used to shade the ground plane.
package lighting

import "github.com/Faultbox/groundplane/pkg/math"

// PointLight is an omnidirectional light for GPU upload.
type PointLight struct {
	Position  math.Vec3
	Color     [3]float32 // RGB, 0-1
	Intensity float32
}

// DefaultPointLight returns a white light hanging above the plane.
func DefaultPointLight() PointLight {
	return PointLight{
		Position:  math.Vec3{X: 4, Y: 8, Z: 4},
		Color:     [3]float32{1, 1, 1},
		Intensity: 1.5,
	}
}

// Radiance returns Color scaled by Intensity. Colour channels are clamped to
// 0-1 first and negative intensity counts as zero.
func (l PointLight) Radiance() [3]float32 {
	intensity := max(l.Intensity, 0)
	var out [3]float32
	for i, c := range l.Color {
		out[i] = math.Clamp(c, 0, 1) * intensity
	}
	return out
}

// DefaultAmbient is the light every surface receives regardless of orientation.
var DefaultAmbient = [3]float32{0.18, 0.18, 0.2}

// ColorFromRGB8 converts an 8-bit RGB triple to 0-1 floats.
func ColorFromRGB8(c [3]uint8) [3]float32 {
	return [3]float32{
		float32(c[0]) / 255,
		float32(c[1]) / 255,
		float32(c[2]) / 255,
	}
}
