package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/cleangui/geom"
)

// pollPointer samples the primary touch, falling back to the left mouse
// button, and feeds it to the tracker.
func (g *CleanGUI) pollPointer() {
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])

	if len(g.touches) > 0 {
		x, y := ebiten.TouchPosition(g.touches[0])
		g.tracker.Sample(true, geom.V(int32(x), int32(y)))
		return
	}

	x, y := ebiten.CursorPosition()
	g.tracker.Sample(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), geom.V(int32(x), int32(y)))
}
