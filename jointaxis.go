package sdf

import (
	"fmt"

	"github.com/golang/geo/r3"

	"go.viam.com/sdf/element"
	"go.viam.com/sdf/spatialmath"
)

// JointAxis describes one rotational or translational degree of freedom of a
// joint: a unit direction plus dynamics and limit metadata.
type JointAxis struct {
	xyz                 r3.Vector
	useParentModelFrame bool
	damping             float64
	friction            float64
	springReference     float64
	springStiffness     float64
	lower               float64
	upper               float64
	effort              float64
	maxVelocity         float64
	stiffness           float64
	dissipation         float64
}

// NewJointAxis returns a joint axis carrying the SDF defaults: a +Z
// direction, effectively unbounded position limits, and unlimited effort and
// velocity (encoded as -1).
func NewJointAxis() *JointAxis {
	return &JointAxis{
		xyz:         r3.Vector{Z: 1},
		lower:       -1e16,
		upper:       1e16,
		effort:      -1,
		maxVelocity: -1,
		stiffness:   1e8,
		dissipation: 1,
	}
}

// Load populates the axis from an <axis> or <axis2> element, accumulating
// errors the same way the joint loader does.
func (a *JointAxis) Load(e *element.Element) Errors {
	var errs Errors

	if xyzElem := e.GetElement("xyz"); xyzElem != nil {
		v, err := spatialmath.ParseVector(xyzElem.Value())
		if err != nil {
			errs = append(errs, Error{ErrorAttributeInvalid, fmt.Sprintf(
				"unable to parse axis xyz value [%s]", xyzElem.Value())})
		} else {
			a.xyz = v
		}
	} else {
		errs = append(errs, Error{ErrorElementMissing,
			"an axis requires an xyz element"})
	}

	a.useParentModelFrame, _ = e.ChildBool("use_parent_model_frame", a.useParentModelFrame)

	if dynamics := e.GetElement("dynamics"); dynamics != nil {
		a.damping, _ = dynamics.ChildFloat("damping", a.damping)
		a.friction, _ = dynamics.ChildFloat("friction", a.friction)
		a.springReference, _ = dynamics.ChildFloat("spring_reference", a.springReference)
		a.springStiffness, _ = dynamics.ChildFloat("spring_stiffness", a.springStiffness)
	}

	if limit := e.GetElement("limit"); limit != nil {
		a.lower, _ = limit.ChildFloat("lower", a.lower)
		a.upper, _ = limit.ChildFloat("upper", a.upper)
		a.effort, _ = limit.ChildFloat("effort", a.effort)
		a.maxVelocity, _ = limit.ChildFloat("velocity", a.maxVelocity)
		a.stiffness, _ = limit.ChildFloat("stiffness", a.stiffness)
		a.dissipation, _ = limit.ChildFloat("dissipation", a.dissipation)
	}

	return errs
}

// XYZ returns the axis direction.
func (a *JointAxis) XYZ() r3.Vector {
	return a.xyz
}

// SetXYZ sets the axis direction.
func (a *JointAxis) SetXYZ(v r3.Vector) {
	a.xyz = v
}

// UseParentModelFrame reports whether the direction is expressed in the
// parent model frame rather than the joint frame.
func (a *JointAxis) UseParentModelFrame() bool {
	return a.useParentModelFrame
}

// Damping returns the viscous damping coefficient of the axis.
func (a *JointAxis) Damping() float64 {
	return a.damping
}

// SetDamping sets the viscous damping coefficient of the axis.
func (a *JointAxis) SetDamping(damping float64) {
	a.damping = damping
}

// Friction returns the static friction of the axis.
func (a *JointAxis) Friction() float64 {
	return a.friction
}

// SpringReference returns the spring zero-load position or angle.
func (a *JointAxis) SpringReference() float64 {
	return a.springReference
}

// SpringStiffness returns the spring stiffness of the axis.
func (a *JointAxis) SpringStiffness() float64 {
	return a.springStiffness
}

// Lower returns the lower position limit, radians for rotational axes and
// meters for translational ones.
func (a *JointAxis) Lower() float64 {
	return a.lower
}

// SetLower sets the lower position limit.
func (a *JointAxis) SetLower(lower float64) {
	a.lower = lower
}

// Upper returns the upper position limit.
func (a *JointAxis) Upper() float64 {
	return a.upper
}

// SetUpper sets the upper position limit.
func (a *JointAxis) SetUpper(upper float64) {
	a.upper = upper
}

// Effort returns the maximum effort limit, -1 meaning unlimited.
func (a *JointAxis) Effort() float64 {
	return a.effort
}

// MaxVelocity returns the maximum velocity limit, -1 meaning unlimited.
func (a *JointAxis) MaxVelocity() float64 {
	return a.maxVelocity
}

// Stiffness returns the joint stop stiffness.
func (a *JointAxis) Stiffness() float64 {
	return a.stiffness
}

// Dissipation returns the joint stop dissipation.
func (a *JointAxis) Dissipation() float64 {
	return a.dissipation
}
