package spatialmath

import (
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// parseFields splits up the space-delimited scalar lists used by SDF, such as
// pose and xyz values.
func parseFields(s string, want int) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) != want {
		return nil, errors.Errorf("expected %d space-delimited values, got %d in %q", want, len(fields), s)
	}
	converted := make([]float64, 0, want)
	for _, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %q as a number", field)
		}
		converted = append(converted, value)
	}
	return converted, nil
}

// ParsePose parses the "x y z roll pitch yaw" form used by SDF <pose>
// elements. Angles are radians.
func ParsePose(s string) (Pose, error) {
	v, err := parseFields(s, 6)
	if err != nil {
		return NewZeroPose(), err
	}
	return NewPose(v[0], v[1], v[2], v[3], v[4], v[5]), nil
}

// ParseVector parses a space-delimited "x y z" triple.
func ParseVector(s string) (r3.Vector, error) {
	v, err := parseFields(s, 3)
	if err != nil {
		return r3.Vector{}, err
	}
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}, nil
}
