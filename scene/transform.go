package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// AxisY is the world vertical axis.
	AxisY = mgl32.Vec3{0, 1, 0}
	// Origin is the world origin.
	Origin = mgl32.Vec3{}
)

// Transform is the position, orientation and scale of an entity in world space.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// NewTransform returns an unrotated, unit-scale transform at (x, y, z).
func NewTransform(x, y, z float32) Transform {
	return Transform{
		Translation: mgl32.Vec3{x, y, z},
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// LookingAt returns a copy of t rotated so that its forward (-Z) axis points
// at target, keeping its up axis as close to up as possible.
// A target equal to the translation, or parallel to up, leaves the rotation unchanged.
func (t Transform) LookingAt(target, up mgl32.Vec3) Transform {
	dir := target.Sub(t.Translation)
	if dir.Len() == 0 {
		return t
	}
	forward := dir.Normalize()

	right := forward.Cross(up)
	if right.Len() < 1e-6 {
		return t
	}
	right = right.Normalize()
	trueUp := right.Cross(forward)

	basis := mgl32.Mat3FromCols(right, trueUp, forward.Mul(-1))
	t.Rotation = mgl32.Mat4ToQuat(basis.Mat4()).Normalize()
	return t
}

// RotateY rotates t about its local vertical axis by angle radians.
func (t *Transform) RotateY(angle float32) {
	t.Rotation = t.Rotation.Mul(mgl32.QuatRotate(angle, AxisY)).Normalize()
}

// Forward is the unit vector the transform faces (local -Z).
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Right is the local +X unit vector.
func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Up is the local +Y unit vector.
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(AxisY)
}

// Heading is the angle of the forward axis about +Y in radians, in (-π, π].
// Zero faces -Z; positive turns toward -X.
func (t Transform) Heading() float64 {
	f := t.Forward()
	return math.Atan2(float64(-f.X()), float64(-f.Z()))
}

// Matrix returns the local-to-world matrix (translate * rotate * scale).
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}
