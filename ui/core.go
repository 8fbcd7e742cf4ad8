package ui

import (
	"errors"
	"log/slog"

	"github.com/OpticalFlyer/cleangui/geom"
)

// ErrCapacityExceeded is returned when a widget has no room for another child.
var ErrCapacityExceeded = errors.New("ui: child capacity exceeded")

// Kind identifies the concrete role of a widget in the tree.
type Kind int

const (
	KindWidget Kind = iota
	KindRoot
	KindPanel
	KindTouchButton
	KindTouchGroup
)

func (k Kind) String() string {
	switch k {
	case KindWidget:
		return "widget"
	case KindRoot:
		return "root"
	case KindPanel:
		return "panel"
	case KindTouchButton:
		return "touch-button"
	case KindTouchGroup:
		return "touch-group"
	}
	return "unknown"
}

// Display is the screen a tree is bound to. Drawing is left to renderers.
type Display interface {
	ScreenSize() geom.Vec2
}

// TouchListener receives press and release events at absolute screen pixels.
type TouchListener interface {
	TouchPressed(pos geom.Vec2)
	TouchReleased(pos geom.Vec2)
}

// Widget is the contract every node of the tree satisfies.
// Parents talk to their children only through this interface.
type Widget interface {
	Kind() Kind
	Name() string
	SetName(name string)

	AttachChild(child Widget) error
	Children() []Widget

	Display() Display
	SetDisplay(d Display)
	SetLogger(l *slog.Logger)

	// Written by the parent only.
	GlobPosOfParent() geom.Vec2
	SetGlobPosOfParent(pos geom.Vec2)
	SizeOfParent() geom.Vec2
	SetSizeOfParent(size geom.Vec2)

	LocPos() geom.Vec2
	SetLocPos(pos geom.Vec2, ct geom.CoordType, align geom.Alignment)
	Size() geom.Vec2
	SetSize(size geom.Vec2, ct geom.CoordType)
	CoordTypeLocPos() geom.CoordType
	CoordTypeSize() geom.CoordType
	Alignment() geom.Alignment

	LocPosPix() geom.Vec2
	SizePix() geom.Vec2
	GlobPosPix() geom.Vec2

	Show(includeChildren bool)
	Hide(includeChildren bool)
	IsShown() bool
	Enable(includeChildren bool)
	Disable(includeChildren bool)
	IsEnabled() bool
}

// TouchWidget is a single node that is both laid out and touched.
type TouchWidget interface {
	Widget
	TouchListener
}
