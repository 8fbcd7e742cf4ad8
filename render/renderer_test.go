package render

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/cleangui/geom"
	"github.com/OpticalFlyer/cleangui/ui"
)

type fixedDisplay struct{}

func (fixedDisplay) ScreenSize() geom.Vec2 { return geom.V(240, 320) }

// recordingDrawer is a custom widget type unknown to the renderer.
type recordingDrawer struct {
	*ui.Node
	drawn *[]string
}

func (d *recordingDrawer) Draw(screen *ebiten.Image) {
	*d.drawn = append(*d.drawn, d.Name())
}

func newRecordingDrawer(name string, maxChildren int, drawn *[]string) *recordingDrawer {
	return &recordingDrawer{
		Node:  ui.NewNode(ui.Props{Name: name, Size: geom.V(10, 10), MaxChildren: maxChildren}),
		drawn: drawn,
	}
}

func TestRendererDispatchesThroughDrawer(t *testing.T) {
	var drawn []string
	root := ui.NewRoot("root", fixedDisplay{}, 2)
	outer := newRecordingDrawer("outer", 2, &drawn)
	plain := ui.NewNode(ui.Props{Name: "plain", MaxChildren: 1})
	require.NoError(t, root.AttachChild(outer))
	require.NoError(t, root.AttachChild(plain))

	first := newRecordingDrawer("first", 0, &drawn)
	second := newRecordingDrawer("second", 0, &drawn)
	require.NoError(t, outer.AttachChild(first))
	require.NoError(t, outer.AttachChild(second))
	underPlain := newRecordingDrawer("under-plain", 0, &drawn)
	require.NoError(t, plain.AttachChild(underPlain))
	root.Show(true)

	NewRenderer().Draw(nil, root)
	assert.Equal(t, []string{"outer", "first", "second", "under-plain"}, drawn)

	drawn = nil
	outer.Hide(false)
	NewRenderer().Draw(nil, root)
	assert.Equal(t, []string{"under-plain"}, drawn)
}

func TestRenderWidgetsAreDrawers(t *testing.T) {
	var w ui.Widget = NewPanel(ui.Props{Name: "panel"}, 4, color.RGBA{A: 255}, color.RGBA{})
	_, ok := w.(Drawer)
	assert.True(t, ok)

	w = NewButton(ui.Props{Name: "button"}, "ok", nil)
	_, ok = w.(Drawer)
	assert.True(t, ok)
	assert.Equal(t, ui.KindTouchButton, w.Kind())
}
