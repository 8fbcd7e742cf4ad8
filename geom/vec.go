package geom

import "fmt"

// PromilleFull is the per-mille value that covers the whole parent extent.
const PromilleFull = 1000

// Vec2 is an integer 2D vector in pixels or per-mille units.
type Vec2 struct {
	X, Y int32
}

// V is shorthand for Vec2{x, y}.
func V(x, y int32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec2) Scale(k int32) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Div divides both components by d, truncating toward zero.
func (v Vec2) Div(d int32) Vec2 {
	return Vec2{v.X / d, v.Y / d}
}

// DivVec divides component-wise, truncating toward zero.
func (v Vec2) DivVec(o Vec2) Vec2 {
	return Vec2{v.X / o.X, v.Y / o.Y}
}

// Contains reports whether p lies inside the rectangle with top-left v and
// extent size. The far edges are exclusive, so a rectangle of width w covers
// exactly w pixels and adjacent rectangles never share one.
func (v Vec2) Contains(size, p Vec2) bool {
	return p.X >= v.X && p.X < v.X+size.X &&
		p.Y >= v.Y && p.Y < v.Y+size.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Resolve converts a stored value to pixels.
//
// Pixels are returned verbatim. Promillage values are scaled against the
// parent's pixel extent: (value * parent) / 1000 per component. The
// product is computed in 64 bits so large screens cannot overflow, and the
// division truncates toward zero.
func Resolve(value Vec2, ct CoordType, parent Vec2) Vec2 {
	if ct == Pixels {
		return value
	}
	return Vec2{
		X: int32(int64(value.X) * int64(parent.X) / PromilleFull),
		Y: int32(int64(value.Y) * int64(parent.Y) / PromilleFull),
	}
}
