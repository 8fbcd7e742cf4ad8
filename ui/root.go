package ui

import (
	"fmt"
	"log/slog"

	"github.com/OpticalFlyer/cleangui/geom"
)

var _ Widget = (*Root)(nil)

// Root is the entry point of a tree. It is bound to a display at
// construction and sized to the full screen at the origin.
type Root struct {
	*Node
}

// RootOption configures a Root.
type RootOption func(*Root)

// WithLogger routes the diagnostics of the whole tree to l.
func WithLogger(l *slog.Logger) RootOption {
	return func(r *Root) {
		r.SetLogger(l)
	}
}

// NewRoot binds a new tree to d. A nil display panics.
func NewRoot(name string, d Display, maxChildren int, opts ...RootOption) *Root {
	if d == nil {
		panic(fmt.Sprintf("ui: root %q without a display", name))
	}
	r := &Root{
		Node: NewNode(Props{
			Name:        name,
			PosType:     geom.Pixels,
			SizeType:    geom.Pixels,
			Align:       geom.TopLeft,
			MaxChildren: maxChildren,
		}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.SetDisplay(d)
	r.Refresh()
	return r
}

func (r *Root) Kind() Kind { return KindRoot }

// Refresh re-reads the screen size of the bound display and pushes it
// through the tree if it changed.
func (r *Root) Refresh() {
	size := r.Display().ScreenSize()
	r.log().Debug("display screen size", "root", r.Name(), "size", size.String())
	r.SetSize(size, geom.Pixels)
}
