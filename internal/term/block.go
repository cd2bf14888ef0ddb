package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/zoobzio/fixer"
)

// Block is a run of text rows in a Page. A block's own lines are laid out
// first, followed by its children. Block implements fixer.Node; its geometry
// is only available once the page has been laid out.
type Block struct {
	Name  string
	Lines []string

	// MinRows pads the block with empty rows up to this content height.
	MinRows int

	// Indent narrows the block by this many columns on each side.
	Indent int

	Style tcell.Style

	// Focusable blocks take input focus from clicks and Tab.
	Focusable bool

	parent   *Block
	children []*Block
	classes  map[string]bool
	styles   map[fixer.StyleProperty]int

	box     fixer.Box
	laidOut bool
	float   []line
}

// NewBlock creates a block with the given lines.
func NewBlock(name string, lines ...string) *Block {
	return &Block{
		Name:    name,
		Lines:   lines,
		Style:   tcell.StyleDefault,
		classes: make(map[string]bool),
		styles:  make(map[fixer.StyleProperty]int),
	}
}

// Append adds children under b and returns b.
func (b *Block) Append(children ...*Block) *Block {
	for _, c := range children {
		c.parent = b
		b.children = append(b.children, c)
	}
	return b
}

// Parent returns the enclosing block, or nil for the root.
func (b *Block) Parent() *Block {
	return b.parent
}

// Measure implements fixer.Node.
func (b *Block) Measure() (fixer.Box, error) {
	if !b.laidOut {
		return fixer.Box{}, fixer.ErrGeometryUnavailable
	}
	return b.box, nil
}

// AddClass implements fixer.Node.
func (b *Block) AddClass(name string) {
	b.classes[name] = true
}

// RemoveClass implements fixer.Node.
func (b *Block) RemoveClass(name string) {
	delete(b.classes, name)
}

// HasClass implements fixer.Node.
func (b *Block) HasClass(name string) bool {
	return b.classes[name]
}

// SetStyle implements fixer.Node.
func (b *Block) SetStyle(p fixer.StyleProperty, px int) {
	b.styles[p] = px
}

// ClearStyle implements fixer.Node.
func (b *Block) ClearStyle(p fixer.StyleProperty) {
	delete(b.styles, p)
}

// StyleOverride returns an applied style override.
func (b *Block) StyleOverride(p fixer.StyleProperty) (int, bool) {
	v, ok := b.styles[p]
	return v, ok
}

// Contains implements fixer.Node.
func (b *Block) Contains(other fixer.Node) bool {
	o, ok := other.(*Block)
	if !ok {
		return false
	}
	for cur := o; cur != nil; cur = cur.parent {
		if cur == b {
			return true
		}
	}
	return false
}

func (b *Block) padding() int {
	return b.styles[fixer.StylePaddingTop]
}

var _ fixer.Node = (*Block)(nil)
