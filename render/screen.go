package render

import "github.com/OpticalFlyer/cleangui/geom"

// Screen is the display of an ebiten window. Its size follows the
// outside size ebiten reports from Game.Layout.
type Screen struct {
	width, height int
}

func NewScreen(width, height int) *Screen {
	return &Screen{width: width, height: height}
}

// SetSize records a new window size. It reports whether the size changed.
func (s *Screen) SetSize(width, height int) bool {
	if s.width == width && s.height == height {
		return false
	}
	s.width, s.height = width, height
	return true
}

func (s *Screen) ScreenSize() geom.Vec2 {
	return geom.V(int32(s.width), int32(s.height))
}
