package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/cleangui/ui"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	debugColor = color.RGBA{R: 255, A: 255}
)

func init() {
	whiteImage.Fill(color.White)
}

// Drawer is a widget that paints itself.
type Drawer interface {
	Draw(screen *ebiten.Image)
}

// Renderer paints a widget tree. Hidden widgets are skipped together with
// their descendants; a parent is painted before its children, children in
// insertion order. Widgets that are not a Drawer only contribute their
// children.
type Renderer struct {
	// DebugBounds outlines the resolved bounds of every visible widget.
	DebugBounds bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw paints root and everything visible below it.
func (r *Renderer) Draw(screen *ebiten.Image, root ui.Widget) {
	if root == nil || !root.IsShown() {
		return
	}
	if d, ok := root.(Drawer); ok {
		d.Draw(screen)
	}
	if r.DebugBounds {
		pos, size := root.GlobPosPix(), root.SizePix()
		vector.StrokeRect(screen, float32(pos.X), float32(pos.Y),
			float32(size.X), float32(size.Y), 1, debugColor, false)
	}
	for _, c := range root.Children() {
		r.Draw(screen, c)
	}
}
