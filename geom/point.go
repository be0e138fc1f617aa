// Package geom provides integer grid geometry for terminal and roguelike
// applications: points, compass directions, Bresenham lines, and midpoint
// circles. All types are immutable values; every operation returns a new
// value instead of mutating in place.
package geom

import (
	"fmt"
	"math"
)

// Point is a 2D integer coordinate. Y grows southward (down the screen).
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{x, y} }

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point {
	p.X += q.X
	p.Y += q.Y
	return p
}

// Sub returns the componentwise difference of p and q.
func (p Point) Sub(q Point) Point {
	p.X -= q.X
	p.Y -= q.Y
	return p
}

// Step returns p moved one cell in direction d.
func (p Point) Step(d Direction) Point {
	p.X += d.DX()
	p.Y += d.DY()
	return p
}

// Unstep returns p moved one cell against direction d.
func (p Point) Unstep(d Direction) Point {
	p.X -= d.DX()
	p.Y -= d.DY()
	return p
}

// Mul returns p scaled by n.
func (p Point) Mul(n int) Point {
	p.X *= n
	p.Y *= n
	return p
}

// Div returns p divided componentwise by n, truncating toward zero.
// Dividing by zero returns ErrDivisionByZero.
func (p Point) Div(n int) (Point, error) {
	if n == 0 {
		return Point{}, fmt.Errorf("%w: point %v / 0", ErrDivisionByZero, p)
	}
	p.X /= n
	p.Y /= n
	return p, nil
}

// Neg returns p with both components negated.
func (p Point) Neg() Point {
	p.X = -p.X
	p.Y = -p.Y
	return p
}

// Abs returns p with both components non-negative.
func (p Point) Abs() Point {
	if p.X < 0 {
		p.X = -p.X
	}
	if p.Y < 0 {
		p.Y = -p.Y
	}
	return p
}

// Sign returns p with each component reduced to -1, 0, or 1.
func (p Point) Sign() Point {
	p.X = sign(p.X)
	p.Y = sign(p.Y)
	return p
}

func sign(i int) int {
	if i < 0 {
		return -1
	}
	if i > 0 {
		return 1
	}
	return 0
}

// DistanceSquared returns the exact squared Euclidean distance to q.
func (p Point) DistanceSquared(q Point) int {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance to q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(float64(p.DistanceSquared(q)))
}

// DirTo returns the compass direction from p toward q, classified by the
// sign of each delta component. Returns Here when p == q.
func (p Point) DirTo(q Point) Direction {
	return DirectionFromDelta(q.X-p.X, q.Y-p.Y)
}

// ToIndex converts p to a flat row-major index for a grid of the given
// width. Negative coordinates or x >= width return ErrInvalidArgument.
func (p Point) ToIndex(width int) (int, error) {
	if width <= 0 {
		return 0, fmt.Errorf("%w: grid width %d", ErrInvalidArgument, width)
	}
	if p.X < 0 || p.Y < 0 || p.X >= width {
		return 0, fmt.Errorf("%w: point %v outside grid of width %d", ErrInvalidArgument, p, width)
	}
	return p.Y*width + p.X, nil
}

// PointFromIndex recovers the point encoded by ToIndex for a grid of the
// given width. Negative index or non-positive width returns
// ErrInvalidArgument.
func PointFromIndex(index, width int) (Point, error) {
	if width <= 0 {
		return Point{}, fmt.Errorf("%w: grid width %d", ErrInvalidArgument, width)
	}
	if index < 0 {
		return Point{}, fmt.Errorf("%w: grid index %d", ErrInvalidArgument, index)
	}
	return Point{index % width, index / width}, nil
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// RandomPoint returns a point uniform over the half-open rectangle
// [min.X, max.X) x [min.Y, max.Y). Degenerate axes collapse to min.
func RandomPoint(r *Rand, min, max Point) Point {
	return Point{r.Range(min.X, max.X), r.Range(min.Y, max.Y)}
}
