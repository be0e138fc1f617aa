package geom

// Direction is one of the eight compass directions plus Here, the
// stay-in-place direction. Each maps to a fixed unit offset with North at
// (0, -1): y grows southward.
type Direction uint8

const (
	Here Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// DIR8 lists the eight movement directions starting East and proceeding
// clockwise on a y-down screen.
var DIR8 = [8]Direction{East, SouthEast, South, SouthWest, West, NorthWest, North, NorthEast}

// DIR9 is DIR8 with Here prepended.
var DIR9 = [9]Direction{Here, East, SouthEast, South, SouthWest, West, NorthWest, North, NorthEast}

var dirDX = [9]int{0, 0, 1, 1, 1, 0, -1, -1, -1}
var dirDY = [9]int{0, -1, -1, 0, 1, 1, 1, 0, -1}

var dirNames = [9]string{
	"Here", "North", "NorthEast", "East", "SouthEast",
	"South", "SouthWest", "West", "NorthWest",
}

// DX returns the horizontal unit offset of d.
func (d Direction) DX() int { return dirDX[d] }

// DY returns the vertical unit offset of d.
func (d Direction) DY() int { return dirDY[d] }

// Delta returns both unit offsets of d.
func (d Direction) Delta() (dx, dy int) { return dirDX[d], dirDY[d] }

// IsHere reports whether d is the stay-in-place direction.
func (d Direction) IsHere() bool { return d == Here }

func (d Direction) String() string {
	if int(d) >= len(dirNames) {
		return "Direction(invalid)"
	}
	return dirNames[d]
}

// DirectionFromDelta classifies an arbitrary delta by the sign of each
// component. (10, 20) is SouthEast; (0, 0) is Here.
func DirectionFromDelta(dx, dy int) Direction {
	switch {
	case dx < 0 && dy < 0:
		return NorthWest
	case dx < 0 && dy > 0:
		return SouthWest
	case dx < 0:
		return West
	case dx > 0 && dy < 0:
		return NorthEast
	case dx > 0 && dy > 0:
		return SouthEast
	case dx > 0:
		return East
	case dy < 0:
		return North
	case dy > 0:
		return South
	}
	return Here
}
