// Package camera implements the free-flying first-person camera controller.
package camera

import (
	"github.com/Faultbox/groundplane/pkg/math"
)

// PitchLimit bounds the pitch angle in degrees, short of straight up/down.
const PitchLimit = 89.5

// Transform is the world transform of the entity the camera drives.
type Transform struct {
	Position math.Vec3
	Rotation math.Quat
}

// NewTransform returns a transform at pos with no rotation.
func NewTransform(pos math.Vec3) Transform {
	return Transform{Position: pos, Rotation: math.QuatIdentity()}
}

// FlyCam holds the orientation and velocity of a flight camera.
// Acceleration, Friction, TopSpeed and Sensitivity are tunables; the controller
// never changes them.
type FlyCam struct {
	Acceleration float32
	Friction     float32
	TopSpeed     float32 // per tick, see Move
	Sensitivity  float32 // degrees per pointer unit

	Yaw      float32 // degrees
	Pitch    float32 // degrees, within ±PitchLimit
	Velocity math.Vec3
}

// DefaultFlyCam returns a controller with the stock tunables.
func DefaultFlyCam() *FlyCam {
	return &FlyCam{
		Acceleration: 1.25,
		Friction:     1.0,
		TopSpeed:     0.25,
		Sensitivity:  0.2,
	}
}

// Look applies the pointer motion accumulated over one tick.
// Non-finite deltas are dropped and leave the camera untouched.
func (c *FlyCam) Look(delta math.Vec2, t *Transform) {
	if !delta.IsFinite() {
		return
	}

	c.Yaw -= delta.X * c.Sensitivity
	c.Pitch = math.Clamp(c.Pitch+delta.Y*c.Sensitivity, -PitchLimit, PitchLimit)

	t.Rotation = c.Orientation()
}

// Orientation returns yaw about world up composed with pitch about the yawed
// right axis. There is no roll.
func (c *FlyCam) Orientation() math.Quat {
	yaw := math.QuatFromAxisAngle(math.WorldUp, math.Radians(c.Yaw))
	pitch := math.QuatFromAxisAngle(math.UnitX.Neg(), math.Radians(c.Pitch))
	return yaw.Mul(pitch)
}

// Move advances the velocity by one tick of held keys and moves t by it.
//
// Velocity is a per-tick displacement: acceleration and friction are scaled by
// dt but the position step is not, so TopSpeed is in units per tick.
func (c *FlyCam) Move(keys Keys, dt float32, t *Transform) {
	// Local X/Z intent, normalized so diagonals are not faster.
	input := math.Vec3{
		X: -keys.Axis(KeyLeft, KeyRight),
		Z: -keys.Axis(KeyForward, KeyBack),
	}.Normalize()

	// Vertical intent is world-space and ignores where the camera looks.
	dir := t.Rotation.Rotate(input)
	dir = dir.Add(math.WorldUp.Scale(keys.Axis(KeyUp, KeyDown)))

	c.Velocity = c.Velocity.Add(dir.Scale(c.Acceleration * dt))

	if c.Velocity.Length() > c.TopSpeed {
		c.Velocity = c.Velocity.Normalize().Scale(c.TopSpeed)
	}

	c.Velocity = applyFriction(c.Velocity, c.Friction*dt)

	t.Position = t.Position.Add(c.Velocity)
}

// Tick runs Look then Move. Translation uses the orientation produced this tick.
func (c *FlyCam) Tick(delta math.Vec2, keys Keys, dt float32, t *Transform) {
	c.Look(delta, t)
	c.Move(keys, dt, t)
}

// Speed returns the velocity magnitude in units per tick.
func (c *FlyCam) Speed() float32 {
	return c.Velocity.Length()
}

// applyFriction decelerates v by amount along -v. If that would carry any
// component past zero the velocity stops outright instead.
func applyFriction(v math.Vec3, amount float32) math.Vec3 {
	if v.IsZero() {
		return v
	}

	next := v.Add(v.Normalize().Scale(-amount))
	if crossesZero(v.X, next.X) || crossesZero(v.Y, next.Y) || crossesZero(v.Z, next.Z) {
		return math.Vec3{}
	}
	return next
}

func crossesZero(before, after float32) bool {
	return (before > 0 && after < 0) || (before < 0 && after > 0)
}
