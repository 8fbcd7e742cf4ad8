package ui

import (
	"fmt"
	"log/slog"

	"github.com/OpticalFlyer/cleangui/geom"
)

var _ Widget = (*Node)(nil)

// Props are the construction parameters shared by all widgets.
type Props struct {
	Name        string
	Pos         geom.Vec2
	PosType     geom.CoordType
	Size        geom.Vec2
	SizeType    geom.CoordType
	Align       geom.Alignment
	MaxChildren int
}

// Node is the layout engine of a single widget. Concrete widgets embed it.
//
// A node keeps the values its parent pushed down (parent size and absolute
// position) and derives its own pixel position and size from them. Whenever
// a derived value really changes, it is pushed down to the children in
// insertion order, depth first.
type Node struct {
	name     string
	display  Display
	logger   *slog.Logger
	children []Widget
	capacity int

	// Pushed down by the parent.
	globPosOfParent geom.Vec2
	sizeOfParent    geom.Vec2

	locPos    geom.Vec2
	locPosPix geom.Vec2 // pixels relative to the parent's origin
	posType   geom.CoordType
	size      geom.Vec2
	sizePix   geom.Vec2
	sizeType  geom.CoordType
	align     geom.Alignment

	visible bool
	enabled bool
}

// NewNode creates a detached widget. It starts hidden and enabled.
func NewNode(p Props) *Node {
	n := &Node{
		name:     p.Name,
		capacity: p.MaxChildren,
		locPos:   p.Pos,
		posType:  p.PosType,
		size:     p.Size,
		sizeType: p.SizeType,
		align:    p.Align,
		enabled:  true,
	}
	n.locPosPix = n.recalcLocPosPix()
	n.sizePix = n.recalcSizePix()
	return n
}

func (n *Node) Kind() Kind { return KindWidget }

func (n *Node) Name() string { return n.name }

func (n *Node) SetName(name string) { n.name = name }

// SetProps replaces name, geometry and alignment at once. The capacity is
// fixed at construction and is not touched.
func (n *Node) SetProps(p Props) {
	n.name = p.Name
	n.SetLocPos(p.Pos, p.PosType, p.Align)
	n.SetSize(p.Size, p.SizeType)
}

// Capacity is the maximum number of children.
func (n *Node) Capacity() int { return n.capacity }

// AttachChild appends child and pushes the display binding, logger, own
// pixel size and own absolute position down to it.
//
// A full node rejects the child with ErrCapacityExceeded. Attaching to a
// node without a display is a construction-order bug and panics.
func (n *Node) AttachChild(child Widget) error {
	if n.display == nil {
		panic(fmt.Sprintf("ui: %q attaching %q without a display", n.name, child.Name()))
	}
	if len(n.children) >= n.capacity {
		n.log().Warn("no room for an additional child widget",
			"widget", n.name, "child", child.Name(), "capacity", n.capacity)
		return fmt.Errorf("%w: %q holds %d", ErrCapacityExceeded, n.name, n.capacity)
	}
	n.children = append(n.children, child)

	child.SetLogger(n.logger)
	child.SetDisplay(n.display)
	child.SetSizeOfParent(n.sizePix)
	child.SetGlobPosOfParent(n.GlobPosPix())
	return nil
}

// Children returns the children in insertion order.
func (n *Node) Children() []Widget {
	return n.children[:len(n.children):len(n.children)]
}

func (n *Node) Display() Display { return n.display }

// SetDisplay binds the whole sub-tree to d, so a page can move between displays.
func (n *Node) SetDisplay(d Display) {
	n.display = d
	for _, c := range n.children {
		c.SetDisplay(d)
	}
}

// SetLogger sets the diagnostics logger of this node. Children pick it up
// when they are attached.
func (n *Node) SetLogger(l *slog.Logger) { n.logger = l }

// Logger returns the diagnostics logger, falling back to slog.Default.
func (n *Node) Logger() *slog.Logger { return n.log() }

func (n *Node) log() *slog.Logger {
	if n.logger == nil {
		return slog.Default()
	}
	return n.logger
}

func (n *Node) GlobPosOfParent() geom.Vec2 { return n.globPosOfParent }

func (n *Node) SetGlobPosOfParent(pos geom.Vec2) {
	if n.globPosOfParent == pos {
		return
	}
	n.globPosOfParent = pos
	n.locPosPix = n.recalcLocPosPix()
	n.pushGlobPos()
}

func (n *Node) SizeOfParent() geom.Vec2 { return n.sizeOfParent }

func (n *Node) SetSizeOfParent(size geom.Vec2) {
	if n.sizeOfParent == size {
		return
	}
	n.sizeOfParent = size

	// Per-mille positions depend on the parent size as well.
	newSizePix := n.recalcSizePix()
	newLocPosPix := n.recalcLocPosPix()

	if newSizePix != n.sizePix {
		n.sizePix = newSizePix
		n.pushSize()
	}
	if newLocPosPix != n.locPosPix {
		n.locPosPix = newLocPosPix
		n.pushGlobPos()
	}
}

func (n *Node) LocPos() geom.Vec2 { return n.locPos }

func (n *Node) SetLocPos(pos geom.Vec2, ct geom.CoordType, align geom.Alignment) {
	n.locPos = pos
	n.posType = ct
	n.align = align

	if p := n.recalcLocPosPix(); p != n.locPosPix {
		n.locPosPix = p
		n.pushGlobPos()
	}
}

func (n *Node) Size() geom.Vec2 { return n.size }

func (n *Node) SetSize(size geom.Vec2, ct geom.CoordType) {
	n.size = size
	n.sizeType = ct

	if s := n.recalcSizePix(); s != n.sizePix {
		n.sizePix = s
		n.pushSize()
	}
}

func (n *Node) CoordTypeLocPos() geom.CoordType { return n.posType }

func (n *Node) CoordTypeSize() geom.CoordType { return n.sizeType }

func (n *Node) Alignment() geom.Alignment { return n.align }

func (n *Node) LocPosPix() geom.Vec2 { return n.locPosPix }

func (n *Node) SizePix() geom.Vec2 { return n.sizePix }

// GlobPosPix is the absolute pixel position of the top-left corner.
func (n *Node) GlobPosPix() geom.Vec2 { return n.globPosOfParent.Add(n.locPosPix) }

// Show makes the node visible and enabled. Children only follow when
// includeChildren is set; their own Show enables them.
func (n *Node) Show(includeChildren bool) {
	n.visible = true
	n.Enable(false)
	if includeChildren {
		for _, c := range n.children {
			c.Show(true)
		}
	}
}

// Hide makes the node invisible and disabled.
func (n *Node) Hide(includeChildren bool) {
	n.visible = false
	n.Disable(false)
	if includeChildren {
		for _, c := range n.children {
			c.Hide(true)
		}
	}
}

func (n *Node) IsShown() bool { return n.visible }

func (n *Node) Enable(includeChildren bool) {
	n.enabled = true
	if includeChildren {
		for _, c := range n.children {
			c.Enable(true)
		}
	}
}

func (n *Node) Disable(includeChildren bool) {
	n.enabled = false
	if includeChildren {
		for _, c := range n.children {
			c.Disable(true)
		}
	}
}

func (n *Node) IsEnabled() bool { return n.enabled }

func (n *Node) recalcLocPosPix() geom.Vec2 {
	return geom.Resolve(n.locPos, n.posType, n.sizeOfParent)
}

func (n *Node) recalcSizePix() geom.Vec2 {
	return geom.Resolve(n.size, n.sizeType, n.sizeOfParent)
}

func (n *Node) pushGlobPos() {
	pos := n.GlobPosPix()
	for _, c := range n.children {
		c.SetGlobPosOfParent(pos)
	}
}

func (n *Node) pushSize() {
	for _, c := range n.children {
		c.SetSizeOfParent(n.sizePix)
	}
}
