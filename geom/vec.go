package geom

import "math"

// Vec2 is the floating-point companion of Point, for sub-cell math that
// gets snapped back onto the grid.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 { return Vec2{x, y} }

func (v Vec2) Add(w Vec2) Vec2 {
	v.X += w.X
	v.Y += w.Y
	return v
}

func (v Vec2) Sub(w Vec2) Vec2 {
	v.X -= w.X
	v.Y -= w.Y
	return v
}

// Scale returns v scaled by f.
func (v Vec2) Scale(f float64) Vec2 {
	v.X *= f
	v.Y *= f
	return v
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Vec2 widens p to floating point.
func (p Point) Vec2() Vec2 {
	return Vec2{float64(p.X), float64(p.Y)}
}

// PointFromVec2 snaps v onto the grid, rounding each component half away
// from zero (math.Round): 0.5 becomes 1, -0.5 becomes -1. The rule is
// fixed so downstream distance and line results are reproducible.
func PointFromVec2(v Vec2) Point {
	return Point{int(math.Round(v.X)), int(math.Round(v.Y))}
}
