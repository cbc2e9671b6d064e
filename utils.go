package sdf

import (
	"strings"

	"go.viam.com/sdf/element"
	"go.viam.com/sdf/spatialmath"
)

// loadName reads the required name attribute of an element. The bool reports
// whether the attribute was present.
func loadName(e *element.Element) (string, bool) {
	return e.Attribute("name")
}

// loadPose parses an optional <pose> child into a pose and the name of the
// frame the pose is expressed in. Absence of the child is not an error; the
// bool reports whether a pose was present and parsed cleanly.
func loadPose(e *element.Element) (spatialmath.Pose, string, bool) {
	poseElem := e.GetElement("pose")
	if poseElem == nil {
		return spatialmath.NewZeroPose(), "", false
	}
	frame, _ := poseElem.Attribute("frame")
	pose, err := spatialmath.ParsePose(poseElem.Value())
	if err != nil {
		return spatialmath.NewZeroPose(), frame, false
	}
	return pose, frame, true
}

// isReservedName reports whether a name is reserved for internal use. Names
// wrapped in double underscores are reserved.
func isReservedName(name string) bool {
	return len(name) >= 4 && strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}
