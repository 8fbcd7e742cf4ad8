package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/cleangui/ui"
)

var _ Drawer = (*Button)(nil)
var _ ui.TouchWidget = (*Button)(nil)

// Button is a ui.TouchButton drawn as a labelled box.
type Button struct {
	*ui.TouchButton
}

func NewButton(p ui.Props, label string, onClick func()) *Button {
	return &Button{TouchButton: ui.NewTouchButton(p, label, onClick)}
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.Color
	switch {
	case !b.IsEnabled():
		bgColor = color.RGBA{70, 70, 70, 255}
	case b.IsPressed():
		bgColor = color.RGBA{100, 100, 100, 255}
	default:
		bgColor = color.RGBA{150, 150, 150, 255}
	}

	pos, size := b.GlobPosPix(), b.SizePix()

	// Draw background
	vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y),
		float32(size.X), float32(size.Y), bgColor, true)

	// Draw border
	vector.StrokeRect(screen, float32(pos.X), float32(pos.Y),
		float32(size.X), float32(size.Y), 1, color.Black, true)

	ebitenutil.DebugPrintAt(screen, b.Label, int(pos.X)+4, int(pos.Y)+4)
}
