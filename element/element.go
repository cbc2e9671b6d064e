// Package element provides the generic element tree produced by parsing an
// SDF document fragment. An Element exposes its tag, attributes, character
// data, and children; the per-element loaders in the root package interpret
// that tree by hand.
package element

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Element is one node of a parsed SDF document.
type Element struct {
	name     string
	attrs    map[string]string
	value    string
	children []*Element
}

// Parse reads an XML document from r and returns its root element.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse SDF data")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			e := &Element{name: t.Name.Local, attrs: map[string]string{}}
			for _, a := range t.Attr {
				e.attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("an SDF document must have a single root element")
				}
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, e)
			}
			stack = append(stack, e)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].value += string(t)
			}
		}
	}
	if root == nil {
		return nil, errors.New("no root element found")
	}
	return root, nil
}

// ParseString parses an XML document held in a string.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

// Name returns the element's tag.
func (e *Element) Name() string {
	return e.name
}

// Value returns the element's character data with surrounding space removed.
func (e *Element) Value() string {
	return strings.TrimSpace(e.value)
}

// Attribute returns the named attribute and whether it was present.
func (e *Element) Attribute(name string) (string, bool) {
	value, ok := e.attrs[name]
	return value, ok
}

// HasElement reports whether a child with the given tag exists.
func (e *Element) HasElement(name string) bool {
	return e.GetElement(name) != nil
}

// GetElement returns the first child with the given tag, nil if there is none.
func (e *Element) GetElement(name string) *Element {
	for _, c := range e.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// GetElements returns all children with the given tag, in document order.
func (e *Element) GetElements(name string) []*Element {
	var matched []*Element
	for _, c := range e.children {
		if c.name == name {
			matched = append(matched, c)
		}
	}
	return matched
}

// ChildString returns the character data of the first child with the given
// tag, or def when no such child exists. The bool reports presence.
func (e *Element) ChildString(name, def string) (string, bool) {
	c := e.GetElement(name)
	if c == nil {
		return def, false
	}
	return c.Value(), true
}

// ChildFloat returns the first matching child's value parsed as a float, or
// def when the child is absent or does not parse.
func (e *Element) ChildFloat(name string, def float64) (float64, bool) {
	c := e.GetElement(name)
	if c == nil {
		return def, false
	}
	f, err := strconv.ParseFloat(c.Value(), 64)
	if err != nil {
		return def, false
	}
	return f, true
}

// ChildBool returns the first matching child's value parsed as a bool, or def
// when the child is absent or does not parse.
func (e *Element) ChildBool(name string, def bool) (bool, bool) {
	c := e.GetElement(name)
	if c == nil {
		return def, false
	}
	b, err := strconv.ParseBool(c.Value())
	if err != nil {
		return def, false
	}
	return b, true
}
