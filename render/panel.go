package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/cleangui/shape"
	"github.com/OpticalFlyer/cleangui/ui"
)

const cornerSegments = 6

var _ Drawer = (*Panel)(nil)

// Panel is a ui.Panel drawn as a filled rounded rectangle with a border.
type Panel struct {
	*ui.Panel
}

func NewPanel(p ui.Props, cornerRadius int32, fg, bg color.RGBA) *Panel {
	return &Panel{Panel: ui.NewPanel(p, cornerRadius, fg, bg)}
}

func (p *Panel) Draw(screen *ebiten.Image) {
	pos, size := p.Bounds()
	outline := shape.RoundedRect(float64(pos.X), float64(pos.Y), float64(size.X), float64(size.Y),
		float64(p.CornerRadius), cornerSegments)
	indices, err := shape.Triangulate(outline)
	if err != nil {
		p.Logger().Warn("skipping panel", "panel", p.Name(), "error", err)
		return
	}

	vertices := make([]ebiten.Vertex, len(outline))
	for i, pt := range outline {
		vertices[i] = ebiten.Vertex{
			DstX:   float32(pt.X),
			DstY:   float32(pt.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(p.Bg.R) / 0xff,
			ColorG: float32(p.Bg.G) / 0xff,
			ColorB: float32(p.Bg.B) / 0xff,
			ColorA: float32(p.Bg.A) / 0xff,
		}
	}
	screen.DrawTriangles(vertices, indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	// Border
	for i, a := range outline {
		b := outline[(i+1)%len(outline)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, p.Fg, true)
	}
}
