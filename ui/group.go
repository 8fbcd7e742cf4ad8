package ui

import (
	"fmt"
	"image/color"
	"reflect"

	"github.com/OpticalFlyer/cleangui/geom"
)

var _ TouchWidget = (*TouchGroup)(nil)

// TouchGroup is a panel that relays press and release events to its
// registered listeners. It does no hit testing: every listener sees every
// event, in registration order, while the group is enabled. Disabling or
// hiding the group therefore silences the whole sub-tree.
//
// The group always takes the pixel size of its parent.
type TouchGroup struct {
	*Panel

	listeners []TouchListener
}

func NewTouchGroup(p Props, cornerRadius int32, fg, bg color.RGBA) *TouchGroup {
	return &TouchGroup{
		Panel:     NewPanel(p, cornerRadius, fg, bg),
		listeners: make([]TouchListener, 0, p.MaxChildren),
	}
}

func (g *TouchGroup) Kind() Kind { return KindTouchGroup }

// AttachChild attaches a widget that does not take touch input.
// Buttons and nested groups must go through AddTouchWidget; passing one
// here panics.
func (g *TouchGroup) AttachChild(child Widget) error {
	if k := child.Kind(); k == KindTouchButton || k == KindTouchGroup {
		panic(fmt.Sprintf("ui: %s %q added to group %q as plain child, use AddTouchWidget",
			k, child.Name(), g.Name()))
	}
	return g.Panel.AttachChild(child)
}

// AddTouchWidget attaches w as a child and registers it as a listener.
func (g *TouchGroup) AddTouchWidget(w TouchWidget) error {
	return g.AddTouchListener(w, w)
}

// AddTouchListener attaches w as a child and registers l, unless l is
// already registered. l may be shared by several widgets; use a pointer so
// it can be recognized again. Running out of listener slots panics.
func (g *TouchGroup) AddTouchListener(w Widget, l TouchListener) error {
	if err := g.Panel.AttachChild(w); err != nil {
		return err
	}
	if g.hasListener(l) {
		return nil
	}
	if len(g.listeners) >= g.Capacity() {
		panic(fmt.Sprintf("ui: group %q has no room for another touch listener", g.Name()))
	}
	g.listeners = append(g.listeners, l)
	return nil
}

// Listeners returns the registered listeners in registration order.
func (g *TouchGroup) Listeners() []TouchListener {
	return g.listeners[:len(g.listeners):len(g.listeners)]
}

func (g *TouchGroup) SetSizeOfParent(size geom.Vec2) {
	g.SetSize(size, geom.Pixels)
	g.Panel.SetSizeOfParent(size)
}

func (g *TouchGroup) TouchPressed(pos geom.Vec2) {
	if !g.IsEnabled() {
		return
	}
	for _, l := range g.listeners {
		l.TouchPressed(pos)
	}
}

func (g *TouchGroup) TouchReleased(pos geom.Vec2) {
	if !g.IsEnabled() {
		return
	}
	for _, l := range g.listeners {
		l.TouchReleased(pos)
	}
}

func (g *TouchGroup) hasListener(l TouchListener) bool {
	for _, existing := range g.listeners {
		if sameListener(existing, l) {
			return true
		}
	}
	return false
}

// sameListener compares identities. Listeners of a non-comparable dynamic
// type (a struct value holding a slice, say) are never the same, instead of
// panicking like == would.
func sameListener(a, b TouchListener) bool {
	ta := reflect.TypeOf(a)
	if ta == nil {
		return b == nil
	}
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
