package canvas

import (
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter-ellipse.
const kappa = 0.5522847498307936

// All sub-paths that share a rasterizer are emitted with positive signed
// area. Mixed windings would cancel where they overlap.

func addPolygon(z *vector.Rasterizer, pts []Point) {
	if signedArea(pts) < 0 {
		pts = reversed(pts)
	}
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

func addEllipse(z *vector.Rasterizer, cx, cy, rx, ry float64) {
	ox, oy := rx*kappa, ry*kappa
	f := func(v float64) float32 { return float32(v) }
	z.MoveTo(f(cx+rx), f(cy))
	z.CubeTo(f(cx+rx), f(cy+oy), f(cx+ox), f(cy+ry), f(cx), f(cy+ry))
	z.CubeTo(f(cx-ox), f(cy+ry), f(cx-rx), f(cy+oy), f(cx-rx), f(cy))
	z.CubeTo(f(cx-rx), f(cy-oy), f(cx-ox), f(cy-ry), f(cx), f(cy-ry))
	z.CubeTo(f(cx+ox), f(cy-ry), f(cx+rx), f(cy-oy), f(cx+rx), f(cy))
	z.ClosePath()
}

// addSegment adds the rectangle covering a stroke of half-width hw from a to b.
func addSegment(z *vector.Rasterizer, a, b Point, hw float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	addPolygon(z, []Point{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	})
}

// signedArea is positive for clockwise polygons in y-down pixel space.
func signedArea(pts []Point) float64 {
	var s float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		s += p.X*q.Y - q.X*p.Y
	}
	return s / 2
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
