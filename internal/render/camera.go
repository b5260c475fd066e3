package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera circles a target point at a fixed distance, the usual rig for
// inspecting a generated mesh.
type OrbitCamera struct {
	Target      mgl32.Vec3
	Distance    float32
	Yaw         float32 // radians around +Y
	Pitch       float32 // radians above the horizon
	FOV         float32 // degrees
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

// NewOrbitCamera positions a camera looking at target from distance.
func NewOrbitCamera(target mgl32.Vec3, distance float32, width, height int) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Distance:    distance,
		Pitch:       0.4,
		FOV:         60.0,
		AspectRatio: float32(width) / float32(height),
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

// Eye is the camera position in world space.
func (c *OrbitCamera) Eye() mgl32.Vec3 {
	pitch, yaw := float64(c.Pitch), float64(c.Yaw)
	dir := mgl32.Vec3{
		float32(math.Cos(pitch) * math.Cos(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Sin(yaw)),
	}
	return c.Target.Add(dir.Mul(c.Distance))
}

// ViewMatrix looks from the orbit position at the target.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix is the camera's perspective projection.
func (c *OrbitCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}
