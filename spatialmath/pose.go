// Package spatialmath defines the spatial mathematical operations used by the
// SDF element loaders.
package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Pose is a 6-DoF rigid transform: a position and an orientation, expressed
// in some frame of reference.
type Pose struct {
	Position    r3.Vector
	Orientation EulerAngles
}

// NewZeroPose returns the identity pose.
func NewZeroPose() Pose {
	return Pose{}
}

// NewPose returns a pose from a position and roll-pitch-yaw angles in radians.
func NewPose(x, y, z, roll, pitch, yaw float64) Pose {
	return Pose{
		Position:    r3.Vector{X: x, Y: y, Z: z},
		Orientation: EulerAngles{Roll: roll, Pitch: pitch, Yaw: yaw},
	}
}

// Matrix returns the pose as a homogeneous transformation matrix.
func (p Pose) Matrix() mgl64.Mat4 {
	t := mgl64.Translate3D(p.Position.X, p.Position.Y, p.Position.Z)
	return t.Mul4(p.Orientation.RotationMatrix())
}

// NewPoseFromMatrix extracts a pose from a homogeneous transformation matrix.
func NewPoseFromMatrix(m mgl64.Mat4) Pose {
	return Pose{
		Position:    r3.Vector{X: m.At(0, 3), Y: m.At(1, 3), Z: m.At(2, 3)},
		Orientation: eulerFromRotation(m),
	}
}

// PoseAlmostEqual compares two poses up to epsilon, treating the orientations
// as rotations rather than raw angle triples.
func PoseAlmostEqual(a, b Pose, epsilon float64) bool {
	if math.Abs(a.Position.X-b.Position.X) > epsilon ||
		math.Abs(a.Position.Y-b.Position.Y) > epsilon ||
		math.Abs(a.Position.Z-b.Position.Z) > epsilon {
		return false
	}
	return QuaternionAlmostEqual(a.Orientation.Quaternion(), b.Orientation.Quaternion(), epsilon)
}
