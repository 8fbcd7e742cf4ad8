package ui

import "github.com/OpticalFlyer/cleangui/geom"

var _ TouchWidget = (*TouchButton)(nil)

// TouchButton is a leaf widget that handles its own hit testing.
// OnClick fires when a press that started inside is released inside.
type TouchButton struct {
	*Node

	Label   string
	OnClick func()

	isPressed bool
}

// NewTouchButton creates a button. Buttons take no children.
func NewTouchButton(p Props, label string, onClick func()) *TouchButton {
	p.MaxChildren = 0
	return &TouchButton{
		Node:    NewNode(p),
		Label:   label,
		OnClick: onClick,
	}
}

func (b *TouchButton) Kind() Kind { return KindTouchButton }

// IsPressed reports whether a press inside the button is in progress.
func (b *TouchButton) IsPressed() bool { return b.isPressed }

// Contains reports whether pos lies within the resolved absolute bounds.
func (b *TouchButton) Contains(pos geom.Vec2) bool {
	return b.GlobPosPix().Contains(b.SizePix(), pos)
}

func (b *TouchButton) TouchPressed(pos geom.Vec2) {
	if !b.IsEnabled() {
		return
	}
	if b.Contains(pos) {
		b.isPressed = true
	}
}

func (b *TouchButton) TouchReleased(pos geom.Vec2) {
	wasPressed := b.isPressed
	b.isPressed = false
	if !b.IsEnabled() || !wasPressed {
		return
	}
	if b.Contains(pos) && b.OnClick != nil {
		b.OnClick()
	}
}

// Hide also drops a press in progress.
func (b *TouchButton) Hide(includeChildren bool) {
	b.isPressed = false
	b.Node.Hide(includeChildren)
}
