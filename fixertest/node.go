package fixertest

import (
	"sort"

	"github.com/zoobzio/fixer"
)

// Node is an in-memory fixer.Node. Its geometry is set directly by tests.
type Node struct {
	Name string

	// Box is returned by Measure unless Err is set.
	Box fixer.Box

	// Err is returned by Measure when non-nil.
	Err error

	parent   *Node
	children []*Node
	classes  map[string]bool
	styles   map[fixer.StyleProperty]int
}

// NewNode creates a detached node with the given geometry.
func NewNode(name string, box fixer.Box) *Node {
	return &Node{
		Name:    name,
		Box:     box,
		classes: make(map[string]bool),
		styles:  make(map[fixer.StyleProperty]int),
	}
}

// Append adds child under n and returns child.
func (n *Node) Append(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Detach makes Measure fail with fixer.ErrGeometryUnavailable.
func (n *Node) Detach() {
	n.Err = fixer.ErrGeometryUnavailable
}

// Attach clears a measurement failure.
func (n *Node) Attach() {
	n.Err = nil
}

// Measure implements fixer.Node.
func (n *Node) Measure() (fixer.Box, error) {
	if n.Err != nil {
		return fixer.Box{}, n.Err
	}
	return n.Box, nil
}

// AddClass implements fixer.Node.
func (n *Node) AddClass(name string) {
	n.classes[name] = true
}

// RemoveClass implements fixer.Node.
func (n *Node) RemoveClass(name string) {
	delete(n.classes, name)
}

// HasClass implements fixer.Node.
func (n *Node) HasClass(name string) bool {
	return n.classes[name]
}

// Classes returns the present classes, sorted.
func (n *Node) Classes() []string {
	out := make([]string, 0, len(n.classes))
	for name := range n.classes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// SetStyle implements fixer.Node.
func (n *Node) SetStyle(p fixer.StyleProperty, px int) {
	n.styles[p] = px
}

// ClearStyle implements fixer.Node.
func (n *Node) ClearStyle(p fixer.StyleProperty) {
	delete(n.styles, p)
}

// Style returns an applied style override.
func (n *Node) Style(p fixer.StyleProperty) (int, bool) {
	px, ok := n.styles[p]
	return px, ok
}

// Contains implements fixer.Node.
func (n *Node) Contains(other fixer.Node) bool {
	o, ok := other.(*Node)
	if !ok {
		return false
	}
	for cur := o; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

var _ fixer.Node = (*Node)(nil)
