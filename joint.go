package sdf

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"go.viam.com/sdf/element"
	"go.viam.com/sdf/framegraph"
	"go.viam.com/sdf/spatialmath"
)

// JointType is the kinematic constraint class of a joint.
type JointType int

const (
	// JointTypeInvalid marks a joint whose type attribute was missing or
	// carried an unrecognized token.
	JointTypeInvalid JointType = iota
	JointTypeBall
	JointTypeContinuous
	JointTypeFixed
	JointTypeGearbox
	JointTypePrismatic
	JointTypeRevolute
	JointTypeRevolute2
	JointTypeScrew
	JointTypeUniversal
)

// jointTypeNames is the single table both directions of the codec query.
var jointTypeNames = map[JointType]string{
	JointTypeBall:       "ball",
	JointTypeContinuous: "continuous",
	JointTypeFixed:      "fixed",
	JointTypeGearbox:    "gearbox",
	JointTypePrismatic:  "prismatic",
	JointTypeRevolute:   "revolute",
	JointTypeRevolute2:  "revolute2",
	JointTypeScrew:      "screw",
	JointTypeUniversal:  "universal",
}

// String returns the canonical lowercase token for the joint type.
func (t JointType) String() string {
	if name, ok := jointTypeNames[t]; ok {
		return name
	}
	return "invalid"
}

// JointTypeFromString maps a type token to its JointType, case-insensitively.
// Unrecognized tokens map to JointTypeInvalid with a false second return.
func JointTypeFromString(token string) (JointType, bool) {
	token = strings.ToLower(token)
	for t, name := range jointTypeNames {
		if name == token {
			return t, true
		}
	}
	return JointTypeInvalid, false
}

// Joint binds a parent link to a child link under a kinematic constraint and
// owns exactly one vertex of the document's frame graph. The joint's name is
// stored on that vertex, making the graph the single source of truth for it.
//
// A joint never removes its vertex; the shared graph is disposed of as a
// whole by whichever document owns it. Mutating calls that touch the graph
// (Load, SetPose, SetName) must be serialized by the caller when a document
// is constructed concurrently.
type Joint struct {
	parentLinkName string
	childLinkName  string
	jointType      JointType
	pose           spatialmath.Pose
	poseFrame      string
	axis           [2]*JointAxis
	graph          *framegraph.Graph
	vertexID       int64
	source         *element.Element
}

// NewJoint returns a joint backed by a private single-vertex frame graph so
// that its accessors are well defined before Load runs. Load replaces the
// private graph with the caller-supplied shared one.
func NewJoint() *Joint {
	j := &Joint{
		graph: framegraph.New(),
		pose:  spatialmath.NewZeroPose(),
	}
	j.vertexID = j.graph.AddVertex("", mgl64.Ident4()).ID()
	return j
}

// Load populates the joint from a <joint> element and binds it into the
// shared frame graph. Errors accumulate in encounter order instead of
// stopping the parse; the only fatal condition is a wrong root tag. A
// non-empty return alongside a partially populated joint is a supported
// outcome, and the caller decides whether to accept it.
func (j *Joint) Load(e *element.Element, graph *framegraph.Graph) Errors {
	var errs Errors

	j.source = e

	// This cannot be recovered from, so return immediately.
	if e.Name() != "joint" {
		return append(errs, Error{ErrorElementIncorrectType,
			"attempting to load a joint, but the provided element is not a <joint>"})
	}

	// The name is stored on the frame-graph vertex during binding below.
	jointName, ok := loadName(e)
	if !ok {
		errs = append(errs, Error{ErrorAttributeMissing,
			"a joint name is required, but the name is not set"})
	}

	if parent, ok := e.ChildString("parent", ""); ok {
		j.parentLinkName = parent
	} else {
		errs = append(errs, Error{ErrorElementMissing,
			"the parent element is missing"})
	}

	if child, ok := e.ChildString("child", ""); ok {
		j.childLinkName = child
	} else {
		errs = append(errs, Error{ErrorElementMissing,
			"the child element is missing"})
	}

	// The pose is optional; absence leaves the identity.
	j.pose, j.poseFrame, _ = loadPose(e)

	// Fall back to the child link frame when no pose frame was declared.
	if j.poseFrame == "" {
		j.poseFrame = j.childLinkName
	}

	for i, tag := range []string{"axis", "axis2"} {
		axisElem := e.GetElement(tag)
		if axisElem == nil {
			continue
		}
		axis := NewJointAxis()
		errs = append(errs, axis.Load(axisElem)...)
		j.axis[i] = axis
	}

	if token, ok := e.Attribute("type"); ok {
		jointType, known := JointTypeFromString(token)
		j.jointType = jointType
		if !known {
			errs = append(errs, Error{ErrorAttributeInvalid, fmt.Sprintf(
				"joint type of %s is invalid, refer to the SDF documentation for a list of valid joint types",
				strings.ToLower(token))})
		}
	} else {
		errs = append(errs, Error{ErrorAttributeMissing,
			"a joint type is required, but is not set"})
	}

	if graph == nil {
		return append(errs, Error{ErrorFunctionArgumentMissing,
			"a frame graph is required to compute pose information"})
	}
	return append(errs, j.bind(graph, jointName)...)
}

// bind adds the joint's vertex to the shared graph and wires it to the
// vertex of its pose frame. The vertex is inserted before the edges; when the
// pose frame resolves to nothing the edges are skipped and the vertex is left
// disconnected.
func (j *Joint) bind(graph *framegraph.Graph, name string) Errors {
	vertex := graph.AddVertex(name, j.pose.Matrix())
	j.vertexID = vertex.ID()
	j.graph = graph

	anchors := graph.Vertices(j.poseFrame)
	if len(anchors) == 0 {
		return Errors{{ErrorFrameReferenceUnknown, fmt.Sprintf(
			"the pose frame [%s] does not name a frame in the frame graph", j.poseFrame)}}
	}
	anchor := anchors[0]

	// Forward edge applies the joint's transform during path composition,
	// the reverse edge applies its inverse.
	if err := graph.AddEdge(anchor.ID(), vertex.ID(), -1); err != nil {
		return Errors{{ErrorFrameReferenceUnknown, err.Error()}}
	}
	if err := graph.AddEdge(vertex.ID(), anchor.ID(), 1); err != nil {
		return Errors{{ErrorFrameReferenceUnknown, err.Error()}}
	}
	return nil
}

// Name returns the joint name, read from its frame-graph vertex.
func (j *Joint) Name() string {
	return j.graph.VertexFromID(j.vertexID).Name()
}

// SetName renames the joint. The name lives on the frame-graph vertex, so
// this is a write to the shared graph.
func (j *Joint) SetName(name string) {
	j.graph.VertexFromID(j.vertexID).SetName(name)
}

// Type returns the joint's kinematic constraint class.
func (j *Joint) Type() JointType {
	return j.jointType
}

// SetType sets the joint's kinematic constraint class.
func (j *Joint) SetType(t JointType) {
	j.jointType = t
}

// ParentLinkName returns the name of the joint's parent link.
func (j *Joint) ParentLinkName() string {
	return j.parentLinkName
}

// SetParentLinkName sets the name of the joint's parent link.
func (j *Joint) SetParentLinkName(name string) {
	j.parentLinkName = name
}

// ChildLinkName returns the name of the joint's child link.
func (j *Joint) ChildLinkName() string {
	return j.childLinkName
}

// SetChildLinkName sets the name of the joint's child link.
func (j *Joint) SetChildLinkName(name string) {
	j.childLinkName = name
}

// Axis returns the parsed axis at the given index, nil when the source had
// none. Index 0 is <axis> and index 1 is <axis2>. Indices above 1 are clamped
// to 1 for compatibility with existing callers.
func (j *Joint) Axis(index uint) *JointAxis {
	if index > 1 {
		index = 1
	}
	return j.axis[index]
}

// Pose returns the joint pose, expressed in the frame named by PoseFrame.
func (j *Joint) Pose() spatialmath.Pose {
	return j.pose
}

// SetPose updates the joint pose, writing the frame-graph vertex's transform
// before the local field so that graph queries reflect the new pose by the
// time SetPose returns.
func (j *Joint) SetPose(p spatialmath.Pose) {
	j.graph.VertexFromID(j.vertexID).SetData(p.Matrix())
	j.pose = p
}

// PoseFrame returns the name of the frame the joint pose is expressed in.
func (j *Joint) PoseFrame() string {
	return j.poseFrame
}

// SetPoseFrame changes the declared pose frame, rejecting empty names with a
// false return and no state change. It does not rewire the edges added during
// Load; PoseInFrame queries issued after a change still compose the path laid
// down by the original binding.
func (j *Joint) SetPoseFrame(frame string) bool {
	if frame == "" {
		return false
	}
	j.poseFrame = frame
	return true
}

// PoseInFrame returns the pose of the joint expressed in the named frame,
// composed along the frame graph. An empty name means the joint's own pose
// frame.
func (j *Joint) PoseInFrame(frame string) (spatialmath.Pose, error) {
	if frame == "" {
		frame = j.poseFrame
	}
	anchors := j.graph.Vertices(frame)
	if len(anchors) == 0 {
		return spatialmath.NewZeroPose(), errors.Errorf("no frame named %q in the frame graph", frame)
	}
	m, err := j.graph.Transform(anchors[0].ID(), j.vertexID)
	if err != nil {
		return spatialmath.NewZeroPose(), err
	}
	return spatialmath.NewPoseFromMatrix(m), nil
}

// Element returns the source element handed to Load, nil before Load.
func (j *Joint) Element() *element.Element {
	return j.source
}
