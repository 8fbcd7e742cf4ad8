package ui

import (
	"image/color"

	"github.com/OpticalFlyer/cleangui/geom"
)

var _ Widget = (*Panel)(nil)

// Panel groups children. Its corner radius and colors are read by
// renderers only; layout treats it like any other widget.
type Panel struct {
	*Node

	CornerRadius int32
	Fg, Bg       color.RGBA
}

func NewPanel(p Props, cornerRadius int32, fg, bg color.RGBA) *Panel {
	return &Panel{
		Node:         NewNode(p),
		CornerRadius: cornerRadius,
		Fg:           fg,
		Bg:           bg,
	}
}

func (p *Panel) Kind() Kind { return KindPanel }

// Bounds returns the absolute pixel rectangle of the panel.
func (p *Panel) Bounds() (pos, size geom.Vec2) {
	return p.GlobPosPix(), p.SizePix()
}
