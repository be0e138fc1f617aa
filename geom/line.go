package geom

// LineTo returns the Bresenham line from p to q, both endpoints included.
// Consecutive points always differ by one of the eight unit offsets, in
// every octant. The stepper is integer-only: the minor axis advances when
// the doubled error accumulator crosses the midpoint threshold.
func (p Point) LineTo(q Point) []Point {
	d := q.Sub(p).Abs()
	pts := make([]Point, 0, max(d.X, d.Y)+1)
	p.LineToFunc(q, func(pt Point) bool {
		pts = append(pts, pt)
		return true
	})
	return pts
}

// LineToFunc walks the Bresenham line from p to q, calling fn for every
// cell including both endpoints. Walking stops early if fn returns false.
func (p Point) LineToFunc(q Point, fn func(Point) bool) {
	dx := abs(q.X - p.X)
	dy := abs(q.Y - p.Y)
	sx := sign(q.X - p.X)
	sy := sign(q.Y - p.Y)

	err := dx - dy
	for {
		if !fn(p) {
			return
		}
		if p == q {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			p.X += sx
		}
		if e2 < dx {
			err += dx
			p.Y += sy
		}
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
