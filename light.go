package sdf

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"go.viam.com/sdf/element"
	"go.viam.com/sdf/spatialmath"
)

// LightType is the source category of a light element.
type LightType int

const (
	// LightTypeInvalid marks a light whose type token was unrecognized.
	LightTypeInvalid LightType = iota
	LightTypePoint
	LightTypeSpot
	LightTypeDirectional
)

// Light is a light source attached to the scene. Unlike a joint, a light does
// not participate in the frame graph; its pose stays local.
type Light struct {
	name                 string
	pose                 spatialmath.Pose
	poseFrame            string
	lightType            LightType
	castShadows          bool
	attenuationRange     float64
	linearAttenuation    float64
	constantAttenuation  float64
	quadraticAttenuation float64
	direction            r3.Vector
	spotInnerAngle       float64
	spotOuterAngle       float64
	spotFalloff          float64
	source               *element.Element
}

// NewLight returns a point light with the SDF defaults.
func NewLight() *Light {
	return &Light{
		lightType:           LightTypePoint,
		pose:                spatialmath.NewZeroPose(),
		attenuationRange:    10,
		linearAttenuation:   1,
		constantAttenuation: 1,
		direction:           r3.Vector{Z: -1},
	}
}

// Load populates the light from a <light> element, accumulating errors in
// encounter order. Only a wrong root tag is fatal.
func (l *Light) Load(e *element.Element) Errors {
	var errs Errors

	l.source = e

	if e.Name() != "light" {
		return append(errs, Error{ErrorElementIncorrectType,
			"attempting to load a light, but the provided element is not a <light>"})
	}

	token, ok := e.Attribute("type")
	if !ok || token == "" {
		token = "point"
	}
	switch token {
	case "point":
		l.lightType = LightTypePoint
	case "spot":
		l.lightType = LightTypeSpot
	case "directional":
		l.lightType = LightTypeDirectional
	default:
		l.lightType = LightTypeInvalid
		errs = append(errs, Error{ErrorAttributeInvalid,
			fmt.Sprintf("invalid light type with a value of [%s]", token)})
	}

	if name, ok := loadName(e); ok {
		l.name = name
	} else {
		errs = append(errs, Error{ErrorAttributeMissing,
			"a light name is required, but the name is not set"})
	}

	if isReservedName(l.name) {
		errs = append(errs, Error{ErrorReservedName,
			fmt.Sprintf("the supplied light name [%s] is reserved", l.name)})
	}

	// The pose is optional; absence leaves the identity.
	l.pose, l.poseFrame, _ = loadPose(e)

	l.castShadows, _ = e.ChildBool("cast_shadows", l.castShadows)

	if attenuation := e.GetElement("attenuation"); attenuation != nil {
		rangeValue, ok := attenuation.ChildFloat("range", l.attenuationRange)
		if !ok {
			errs = append(errs, Error{ErrorElementMissing,
				"an <attenuation> requires a <range>"})
		}
		l.SetAttenuationRange(rangeValue)

		linear, _ := attenuation.ChildFloat("linear", l.linearAttenuation)
		l.SetLinearAttenuationFactor(linear)

		constant, _ := attenuation.ChildFloat("constant", l.constantAttenuation)
		l.SetConstantAttenuationFactor(constant)

		quadratic, _ := attenuation.ChildFloat("quadratic", l.quadraticAttenuation)
		l.SetQuadraticAttenuationFactor(quadratic)
	}

	// Spot and directional lights point somewhere.
	if l.lightType == LightTypeSpot || l.lightType == LightTypeDirectional {
		if dirElem := e.GetElement("direction"); dirElem != nil {
			if v, err := spatialmath.ParseVector(dirElem.Value()); err == nil {
				l.direction = v
			} else {
				errs = append(errs, Error{ErrorElementMissing,
					fmt.Sprintf("a <direction> is required for a %s light", token)})
			}
		} else {
			errs = append(errs, Error{ErrorElementMissing,
				fmt.Sprintf("a <direction> is required for a %s light", token)})
		}
	}

	if spot := e.GetElement("spot"); l.lightType == LightTypeSpot && spot != nil {
		inner, ok := spot.ChildFloat("inner_angle", l.spotInnerAngle)
		if !ok {
			errs = append(errs, Error{ErrorElementMissing,
				"a spot light requires an <inner_angle>"})
		}
		l.SetSpotInnerAngle(inner)

		outer, ok := spot.ChildFloat("outer_angle", l.spotOuterAngle)
		if !ok {
			errs = append(errs, Error{ErrorElementMissing,
				"a spot light requires an <outer_angle>"})
		}
		l.SetSpotOuterAngle(outer)

		falloff, ok := spot.ChildFloat("falloff", l.spotFalloff)
		if !ok {
			errs = append(errs, Error{ErrorElementMissing,
				"a spot light requires a <falloff>"})
		}
		l.SetSpotFalloff(falloff)
	}

	return errs
}

// Name returns the light's name.
func (l *Light) Name() string {
	return l.name
}

// SetName sets the light's name.
func (l *Light) SetName(name string) {
	l.name = name
}

// Type returns the light's source category.
func (l *Light) Type() LightType {
	return l.lightType
}

// SetType sets the light's source category.
func (l *Light) SetType(t LightType) {
	l.lightType = t
}

// Pose returns the pose of the light.
func (l *Light) Pose() spatialmath.Pose {
	return l.pose
}

// SetPose sets the pose of the light.
func (l *Light) SetPose(p spatialmath.Pose) {
	l.pose = p
}

// PoseFrame returns the name of the frame the pose is expressed in.
func (l *Light) PoseFrame() string {
	return l.poseFrame
}

// SetPoseFrame sets the name of the frame the pose is expressed in.
func (l *Light) SetPoseFrame(frame string) {
	l.poseFrame = frame
}

// CastShadows reports whether the light casts shadows.
func (l *Light) CastShadows() bool {
	return l.castShadows
}

// SetCastShadows sets whether the light casts shadows.
func (l *Light) SetCastShadows(cast bool) {
	l.castShadows = cast
}

// AttenuationRange returns the distance over which the light attenuates.
func (l *Light) AttenuationRange() float64 {
	return l.attenuationRange
}

// SetAttenuationRange sets the attenuation distance, floored at zero.
func (l *Light) SetAttenuationRange(rangeValue float64) {
	l.attenuationRange = math.Max(0, rangeValue)
}

// LinearAttenuationFactor returns the linear attenuation factor.
func (l *Light) LinearAttenuationFactor() float64 {
	return l.linearAttenuation
}

// SetLinearAttenuationFactor sets the linear attenuation factor, clamped to
// [0, 1].
func (l *Light) SetLinearAttenuationFactor(factor float64) {
	l.linearAttenuation = mgl64.Clamp(factor, 0, 1)
}

// ConstantAttenuationFactor returns the constant attenuation factor.
func (l *Light) ConstantAttenuationFactor() float64 {
	return l.constantAttenuation
}

// SetConstantAttenuationFactor sets the constant attenuation factor, clamped
// to [0, 1].
func (l *Light) SetConstantAttenuationFactor(factor float64) {
	l.constantAttenuation = mgl64.Clamp(factor, 0, 1)
}

// QuadraticAttenuationFactor returns the quadratic attenuation factor.
func (l *Light) QuadraticAttenuationFactor() float64 {
	return l.quadraticAttenuation
}

// SetQuadraticAttenuationFactor sets the quadratic attenuation factor,
// floored at zero.
func (l *Light) SetQuadraticAttenuationFactor(factor float64) {
	l.quadraticAttenuation = math.Max(0, factor)
}

// Direction returns the direction of a spot or directional light.
func (l *Light) Direction() r3.Vector {
	return l.direction
}

// SetDirection sets the direction of a spot or directional light.
func (l *Light) SetDirection(dir r3.Vector) {
	l.direction = dir
}

// SpotInnerAngle returns the spot light inner angle in radians.
func (l *Light) SpotInnerAngle() float64 {
	return l.spotInnerAngle
}

// SetSpotInnerAngle sets the spot light inner angle, floored at zero.
func (l *Light) SetSpotInnerAngle(angle float64) {
	l.spotInnerAngle = math.Max(0, angle)
}

// SpotOuterAngle returns the spot light outer angle in radians.
func (l *Light) SpotOuterAngle() float64 {
	return l.spotOuterAngle
}

// SetSpotOuterAngle sets the spot light outer angle, floored at zero.
func (l *Light) SetSpotOuterAngle(angle float64) {
	l.spotOuterAngle = math.Max(0, angle)
}

// SpotFalloff returns the spot light falloff.
func (l *Light) SpotFalloff() float64 {
	return l.spotFalloff
}

// SetSpotFalloff sets the spot light falloff, floored at zero.
func (l *Light) SetSpotFalloff(falloff float64) {
	l.spotFalloff = math.Max(0, falloff)
}

// Element returns the source element handed to Load, nil before Load.
func (l *Light) Element() *element.Element {
	return l.source
}
