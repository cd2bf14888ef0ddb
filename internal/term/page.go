package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/zoobzio/fixer"
)

// Canvas is the drawing surface used by Page.Draw. tcell.Screen satisfies it.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

type line struct {
	block *Block
	left  int
	width int
	text  string
}

// Page lays a tree of blocks out as document rows, one row per text line.
//
// A block carrying the fixed or bottom marker leaves normal flow: it keeps
// the position it would occupy for measurement, but its rows are drawn over
// the document instead, pinned to the top of the viewport or to the bottom of
// its parent.
type Page struct {
	Root *Block

	// Classes returns the marker names used to recognise pinned blocks.
	// Nil uses fixer.DefaultClasses.
	Classes func() fixer.Classes

	lines  []line
	floats []*Block
}

// NewPage creates a page over root.
func NewPage(root *Block) *Page {
	return &Page{Root: root}
}

func (p *Page) classes() fixer.Classes {
	if p.Classes != nil {
		return p.Classes()
	}
	return fixer.DefaultClasses()
}

// Layout assigns every block its geometry for the given width.
func (p *Page) Layout(width int) {
	p.lines = p.lines[:0]
	p.floats = p.floats[:0]
	if p.Root == nil {
		return
	}
	p.layout(p.Root, 0, 0, width, &p.lines, p.classes())
}

func (p *Page) layout(b *Block, top, left, width int, out *[]line, c fixer.Classes) int {
	left += b.Indent
	width -= 2 * b.Indent
	if width < 0 {
		width = 0
	}

	pad := b.padding()
	for i := 0; i < pad; i++ {
		*out = append(*out, line{block: b, left: left, width: width})
	}
	row := top + pad
	for _, text := range b.Lines {
		*out = append(*out, line{block: b, left: left, width: width, text: text})
		row++
	}
	for _, child := range b.children {
		if child.HasClass(c.Fixed) || child.HasClass(c.Bottom) {
			// Measured where it sat before the padding that replaces it.
			child.float = child.float[:0]
			p.layout(child, row-pad, left, width, &child.float, c)
			p.floats = append(p.floats, child)
			continue
		}
		row = p.layout(child, row, left, width, out, c)
	}
	for row-top-pad < b.MinRows {
		*out = append(*out, line{block: b, left: left, width: width})
		row++
	}

	b.box = fixer.Box{Top: top, Left: left, Width: width, Height: row - top - pad}
	b.laidOut = true
	return row
}

// Rows returns the number of in-flow document rows.
func (p *Page) Rows() int {
	return len(p.lines)
}

// MaxScroll returns the largest scroll offset for a viewport of the given height.
func (p *Page) MaxScroll(viewport int) int {
	if m := len(p.lines) - viewport; m > 0 {
		return m
	}
	return 0
}

// Draw renders the rows visible from scrollTop, then the pinned blocks.
func (p *Page) Draw(c Canvas, scrollTop, height int) {
	for y := 0; y < height; y++ {
		i := scrollTop + y
		if i < 0 || i >= len(p.lines) {
			continue
		}
		drawLine(c, y, p.lines[i])
	}

	for _, b := range p.floats {
		y0, ok := p.floatTop(b, scrollTop)
		if !ok {
			continue
		}
		left := b.box.Left
		if v, set := b.styles[fixer.StyleLeft]; set {
			left = v
		}
		width := b.box.Width
		if v, set := b.styles[fixer.StyleWidth]; set {
			width = v
		}
		for i, l := range b.float {
			y := y0 + i
			if y < 0 || y >= height {
				continue
			}
			if l.block == b {
				l.left, l.width = left, width
			}
			drawLine(c, y, l)
		}
	}
}

// floatTop returns the viewport row the pinned block starts at.
func (p *Page) floatTop(b *Block, scrollTop int) (int, bool) {
	c := p.classes()
	switch {
	case b.HasClass(c.Fixed):
		return 0, true
	case b.HasClass(c.Bottom):
		if b.parent == nil {
			return 0, false
		}
		end := b.parent.box.Top + b.parent.padding() + b.parent.box.Height
		return end - len(b.float) - scrollTop, true
	default:
		return 0, false
	}
}

func drawLine(c Canvas, y int, l line) {
	runes := []rune(l.text)
	for x := 0; x < l.width; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		c.SetContent(l.left+x, y, r, nil, l.block.Style)
	}
}

// BlockAt returns the innermost block drawn at viewport row y, or nil.
func (p *Page) BlockAt(y, scrollTop int) *Block {
	for i := len(p.floats) - 1; i >= 0; i-- {
		b := p.floats[i]
		y0, ok := p.floatTop(b, scrollTop)
		if ok && y >= y0 && y < y0+len(b.float) {
			return b.float[y-y0].block
		}
	}
	i := scrollTop + y
	if i < 0 || i >= len(p.lines) {
		return nil
	}
	return p.lines[i].block
}

// Focusables returns the focusable blocks in document order.
func (p *Page) Focusables() []*Block {
	var out []*Block
	var walk func(*Block)
	walk = func(b *Block) {
		if b.Focusable {
			out = append(out, b)
		}
		for _, c := range b.children {
			walk(c)
		}
	}
	if p.Root != nil {
		walk(p.Root)
	}
	return out
}
