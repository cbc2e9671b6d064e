package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// EulerAngles are three angles in radians. Rotations compose in the SDF
// convention R = Rz(Yaw) * Ry(Pitch) * Rx(Roll).
type EulerAngles struct {
	Roll  float64
	Pitch float64
	Yaw   float64
}

// RotationMatrix returns the homogeneous rotation matrix for the angles.
func (ea EulerAngles) RotationMatrix() mgl64.Mat4 {
	return mgl64.HomogRotate3DZ(ea.Yaw).
		Mul4(mgl64.HomogRotate3DY(ea.Pitch)).
		Mul4(mgl64.HomogRotate3DX(ea.Roll))
}

// Quaternion returns the rotation as a unit quaternion.
func (ea EulerAngles) Quaternion() quat.Number {
	cr, sr := math.Cos(ea.Roll/2), math.Sin(ea.Roll/2)
	cp, sp := math.Cos(ea.Pitch/2), math.Sin(ea.Pitch/2)
	cy, sy := math.Cos(ea.Yaw/2), math.Sin(ea.Yaw/2)
	return quat.Number{
		Real: cy*cp*cr + sy*sp*sr,
		Imag: cy*cp*sr - sy*sp*cr,
		Jmag: cy*sp*cr + sy*cp*sr,
		Kmag: sy*cp*cr - cy*sp*sr,
	}
}

// QuaternionAlmostEqual reports whether two quaternions represent
// approximately the same rotation. q and -q are the same rotation.
func QuaternionAlmostEqual(a, b quat.Number, epsilon float64) bool {
	diff := quat.Add(a, quat.Scale(-1, b))
	sum := quat.Add(a, b)
	return quat.Abs(diff) < epsilon || quat.Abs(sum) < epsilon
}

// eulerFromRotation extracts Euler angles from a homogeneous rotation matrix
// composed as Rz*Ry*Rx.
func eulerFromRotation(m mgl64.Mat4) EulerAngles {
	sinPitch := -m.At(2, 0)
	if math.Abs(sinPitch) < 1-1e-12 {
		return EulerAngles{
			Roll:  math.Atan2(m.At(2, 1), m.At(2, 2)),
			Pitch: math.Asin(sinPitch),
			Yaw:   math.Atan2(m.At(1, 0), m.At(0, 0)),
		}
	}
	// Gimbal lock. Fold the unrecoverable degree of freedom into yaw.
	return EulerAngles{
		Roll:  0,
		Pitch: math.Copysign(math.Pi/2, sinPitch),
		Yaw:   math.Atan2(-m.At(0, 1), m.At(1, 1)),
	}
}
