package spatialmath

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestPoseMatrixRoundTrip(t *testing.T) {
	poses := []Pose{
		NewZeroPose(),
		NewPose(1, 2, 3, 0, 0, 0),
		NewPose(0, 0, 0, 0.5, -0.25, 1.1),
		NewPose(-4, 0.5, 12, math.Pi/3, -math.Pi/5, math.Pi/7),
		NewPose(1, 0, 0, 0, math.Pi/2, 0), // gimbal lock
	}
	for _, p := range poses {
		back := NewPoseFromMatrix(p.Matrix())
		test.That(t, PoseAlmostEqual(p, back, 1e-9), test.ShouldBeTrue)
	}
}

func TestPoseMatrixTranslation(t *testing.T) {
	m := NewPose(1, 2, 3, 0, 0, 0).Matrix()
	test.That(t, m.At(0, 3), test.ShouldAlmostEqual, 1)
	test.That(t, m.At(1, 3), test.ShouldAlmostEqual, 2)
	test.That(t, m.At(2, 3), test.ShouldAlmostEqual, 3)
}

func TestQuaternionAlmostEqual(t *testing.T) {
	q := EulerAngles{Roll: 0.3, Pitch: -0.2, Yaw: 1.4}.Quaternion()
	negated := q
	negated.Real, negated.Imag = -negated.Real, -negated.Imag
	negated.Jmag, negated.Kmag = -negated.Jmag, -negated.Kmag

	// q and -q are the same rotation
	test.That(t, QuaternionAlmostEqual(q, negated, 1e-9), test.ShouldBeTrue)

	other := EulerAngles{Roll: 0.3, Pitch: -0.2, Yaw: 1.5}.Quaternion()
	test.That(t, QuaternionAlmostEqual(q, other, 1e-9), test.ShouldBeFalse)
}

func TestParsePose(t *testing.T) {
	p, err := ParsePose("1 0 0 0 0 0")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.Position.X, test.ShouldEqual, 1)
	test.That(t, p.Orientation, test.ShouldResemble, EulerAngles{})

	p, err = ParsePose("  0.5\t-1 2   0.1 0.2 0.3 ")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.Position.Y, test.ShouldEqual, -1)
	test.That(t, p.Orientation.Yaw, test.ShouldEqual, 0.3)

	_, err = ParsePose("1 2 3")
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ParsePose("1 2 3 4 5 banana")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestParseVector(t *testing.T) {
	v, err := ParseVector("0 0 1")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, v.Z, test.ShouldEqual, 1)

	_, err = ParseVector("0 0")
	test.That(t, err, test.ShouldNotBeNil)
}
