// Package shape builds filled outlines for panel backgrounds.
package shape

import (
	"fmt"
	"math"

	earcut "github.com/flywave/go-earcut"
)

// Point is a vertex in screen pixels.
type Point struct {
	X, Y float64
}

// RoundedRect returns the clockwise outline of a rectangle whose corners
// are rounded with radius r, using segments line pieces per corner.
//
// The radius is clamped to half the shorter side. A zero radius, or fewer
// than one segment, yields the four plain corners.
func RoundedRect(x, y, w, h, r float64, segments int) []Point {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	if r == 0 || segments < 1 {
		return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	}

	// Corner centers, starting top-left, with the start angle of each arc.
	corners := [4]struct {
		cx, cy, start float64
	}{
		{x + r, y + r, math.Pi},
		{x + w - r, y + r, 1.5 * math.Pi},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, 0.5 * math.Pi},
	}

	pts := make([]Point, 0, 4*(segments+1))
	for _, c := range corners {
		for i := 0; i <= segments; i++ {
			a := c.start + float64(i)/float64(segments)*(math.Pi/2)
			p := Point{c.cx + r*math.Cos(a), c.cy + r*math.Sin(a)}
			if n := len(pts); n > 0 && nearlyEqual(pts[n-1], p) {
				continue
			}
			pts = append(pts, p)
		}
	}
	if n := len(pts); n > 1 && nearlyEqual(pts[0], pts[n-1]) {
		pts = pts[:n-1]
	}
	return pts
}

// Triangulate splits a simple polygon into triangles and returns indices
// into outline, three per triangle.
func Triangulate(outline []Point) ([]uint16, error) {
	if len(outline) < 3 {
		return nil, fmt.Errorf("triangulating %d points: need at least 3", len(outline))
	}
	if len(outline) > math.MaxUint16 {
		return nil, fmt.Errorf("triangulating %d points: too many vertices", len(outline))
	}

	flat := make([]float64, 0, 2*len(outline))
	for _, p := range outline {
		flat = append(flat, p.X, p.Y)
	}
	tris, err := earcut.Earcut(flat, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("triangulating %d points: %w", len(outline), err)
	}

	indices := make([]uint16, len(tris))
	for i, t := range tris {
		indices[i] = uint16(t)
	}
	return indices, nil
}

// Area returns the absolute area enclosed by a simple polygon.
func Area(outline []Point) float64 {
	var sum float64
	for i, p := range outline {
		q := outline[(i+1)%len(outline)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

func nearlyEqual(a, b Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}
