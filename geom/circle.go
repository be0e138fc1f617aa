package geom

import "fmt"

// Circle returns the boundary of a discrete circle of the given radius
// around center, computed with the integer midpoint circle algorithm.
//
// Points are ordered as one traversal of the boundary: starting at the
// easternmost point (center.X+radius, center.Y) and proceeding
// counter-clockwise in screen terms, through north (decreasing y) first. Points
// shared between octants appear exactly once. Every point lies within
// half a cell of the ideal radius.
//
// Radius 0 yields the center point alone. A negative radius returns
// ErrInvalidArgument.
func Circle(center Point, radius int) ([]Point, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: negative radius %d", ErrInvalidArgument, radius)
	}
	if radius == 0 {
		return []Point{center}, nil
	}

	oct := circleOctant(radius)
	cx, cy := center.X, center.Y

	// Eight mirrored arcs in angular order. Odd arcs run the octant
	// backwards so the traversal stays contiguous.
	out := make([]Point, 0, 8*len(oct))
	seen := make(map[Point]struct{}, 8*len(oct))
	emit := func(p Point) {
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for i := 0; i < len(oct); i++ { // east to north-east
		emit(Point{cx + oct[i].X, cy - oct[i].Y})
	}
	for i := len(oct) - 1; i >= 0; i-- { // north-east to north
		emit(Point{cx + oct[i].Y, cy - oct[i].X})
	}
	for i := 0; i < len(oct); i++ { // north to north-west
		emit(Point{cx - oct[i].Y, cy - oct[i].X})
	}
	for i := len(oct) - 1; i >= 0; i-- { // north-west to west
		emit(Point{cx - oct[i].X, cy - oct[i].Y})
	}
	for i := 0; i < len(oct); i++ { // west to south-west
		emit(Point{cx - oct[i].X, cy + oct[i].Y})
	}
	for i := len(oct) - 1; i >= 0; i-- { // south-west to south
		emit(Point{cx - oct[i].Y, cy + oct[i].X})
	}
	for i := 0; i < len(oct); i++ { // south to south-east
		emit(Point{cx + oct[i].Y, cy + oct[i].X})
	}
	for i := len(oct) - 1; i >= 0; i-- { // south-east back to east
		emit(Point{cx + oct[i].X, cy + oct[i].Y})
	}

	return out, nil
}

// circleOctant computes the first octant of an origin circle, from (r, 0)
// up to the x == y diagonal, y increasing by one per entry.
func circleOctant(r int) []Point {
	pts := make([]Point, 0, r)
	x, y, d := r, 0, 1-r
	for x >= y {
		pts = append(pts, Point{x, y})
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
	return pts
}
