package camera

import "github.com/Faultbox/groundplane/pkg/math"

// Forward returns the world-space direction the transform looks along (-Z local).
func (t Transform) Forward() math.Vec3 {
	return t.Rotation.Rotate(math.Vec3{Z: -1})
}

// Right returns the world-space right vector (+X local).
func (t Transform) Right() math.Vec3 {
	return t.Rotation.Rotate(math.UnitX)
}

// ViewMatrix returns the world-to-camera matrix for the transform.
func (t Transform) ViewMatrix() math.Mat4 {
	return t.Rotation.Conjugate().ToMat4().Mul(math.Translate(t.Position.Neg()))
}

// SumMotion adds up the raw pointer-motion events received during one tick.
func SumMotion(events []math.Vec2) math.Vec2 {
	var sum math.Vec2
	for _, e := range events {
		sum = sum.Add(e)
	}
	return sum
}
