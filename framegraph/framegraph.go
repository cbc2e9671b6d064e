// Package framegraph implements the directed labeled multigraph of coordinate
// frames shared by the elements of an SDF document. Vertices are named frames
// carrying a 4x4 transform; edges carry a ±1 weight selecting forward or
// inverse traversal of that transform when composing a path.
package framegraph

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph/multi"
)

// Vertex is a single frame: a name and the transform relating the frame to
// the frame it was declared in. Vertex implements graph.Node.
type Vertex struct {
	id   int64
	name string
	data mgl64.Mat4
}

// ID returns the vertex id within its graph.
func (v *Vertex) ID() int64 { return v.id }

// Name returns the frame name. Names are not required to be unique.
func (v *Vertex) Name() string { return v.name }

// SetName renames the frame.
func (v *Vertex) SetName(name string) { v.name = name }

// Data returns the stored transform.
func (v *Vertex) Data() mgl64.Mat4 { return v.data }

// SetData replaces the stored transform.
func (v *Vertex) SetData(m mgl64.Mat4) { v.data = m }

// Graph is a directed multigraph of frames. The zero value is not usable;
// construct with New. Mutation must be serialized by the caller.
type Graph struct {
	g        *multi.WeightedDirectedGraph
	vertices []*Vertex
	byID     map[int64]*Vertex
}

// New returns an empty frame graph.
func New() *Graph {
	return &Graph{
		g:    multi.NewWeightedDirectedGraph(),
		byID: map[int64]*Vertex{},
	}
}

// AddVertex adds a frame with the given name and transform and returns it.
func (fg *Graph) AddVertex(name string, data mgl64.Mat4) *Vertex {
	v := &Vertex{id: fg.g.NewNode().ID(), name: name, data: data}
	fg.g.AddNode(v)
	fg.vertices = append(fg.vertices, v)
	fg.byID[v.id] = v
	return v
}

// Vertices returns the frames matching the given name, in insertion order.
func (fg *Graph) Vertices(name string) []*Vertex {
	var matched []*Vertex
	for _, v := range fg.vertices {
		if v.name == name {
			matched = append(matched, v)
		}
	}
	return matched
}

// VertexFromID returns the frame with the given id, nil if there is none.
func (fg *Graph) VertexFromID(id int64) *Vertex {
	return fg.byID[id]
}

// AddEdge inserts a directed edge between two existing frames. The weight
// convention used by Transform: -1 applies the stored transform of the
// destination frame, +1 applies the inverse of the source frame's transform.
func (fg *Graph) AddEdge(from, to int64, weight float64) error {
	u, ok := fg.byID[from]
	if !ok {
		return errors.Errorf("no frame with id %d", from)
	}
	v, ok := fg.byID[to]
	if !ok {
		return errors.Errorf("no frame with id %d", to)
	}
	if from == to {
		return errors.Errorf("frame %q cannot be connected to itself", u.name)
	}
	fg.g.SetWeightedLine(fg.g.NewWeightedLine(u, v, weight))
	return nil
}

// Transform returns the transform taking coordinates in the frame `to` into
// the frame `from`, composed along a breadth-first path between the two
// vertices. An error is returned when either id is unknown or no path exists.
func (fg *Graph) Transform(from, to int64) (mgl64.Mat4, error) {
	if _, ok := fg.byID[from]; !ok {
		return mgl64.Ident4(), errors.Errorf("no frame with id %d", from)
	}
	if _, ok := fg.byID[to]; !ok {
		return mgl64.Ident4(), errors.Errorf("no frame with id %d", to)
	}
	if from == to {
		return mgl64.Ident4(), nil
	}

	type hop struct {
		prev   int64
		weight float64
	}
	visited := map[int64]hop{from: {prev: from}}
	queue := []int64{from}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == to {
			break
		}
		it := fg.g.From(u)
		for it.Next() {
			v := it.Node().ID()
			if _, seen := visited[v]; seen {
				continue
			}
			lines := fg.g.WeightedLines(u, v)
			if !lines.Next() {
				continue
			}
			visited[v] = hop{prev: u, weight: lines.WeightedLine().Weight()}
			queue = append(queue, v)
		}
	}
	if _, ok := visited[to]; !ok {
		return mgl64.Ident4(), errors.Errorf(
			"no path between frames %q and %q",
			fg.byID[from].name, fg.byID[to].name)
	}

	// Walk back from the destination, then compose front to back.
	var path []int64
	for at := to; at != from; at = visited[at].prev {
		path = append(path, at)
	}
	m := mgl64.Ident4()
	for i := len(path) - 1; i >= 0; i-- {
		v := path[i]
		step := visited[v]
		if step.weight < 0 {
			m = m.Mul4(fg.byID[v].data)
		} else {
			m = m.Mul4(fg.byID[step.prev].data.Inv())
		}
	}
	return m, nil
}
