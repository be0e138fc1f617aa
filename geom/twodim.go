package geom

import "fmt"

// TwoDimDirection is the horizontal subset of Direction, for side-view
// logic that only distinguishes left from right.
type TwoDimDirection uint8

const (
	TwoDimEast TwoDimDirection = iota
	TwoDimWest
)

// DX returns +1 for TwoDimEast and -1 for TwoDimWest.
func (d TwoDimDirection) DX() int {
	if d == TwoDimWest {
		return -1
	}
	return 1
}

func (d TwoDimDirection) String() string {
	if d == TwoDimWest {
		return "West"
	}
	return "East"
}

// ConvertError reports a Direction that has no horizontal narrowing.
type ConvertError struct {
	From Direction
}

func (e ConvertError) Error() string {
	return fmt.Sprintf("cannot narrow %s to a two-dim direction", e.From)
}

// TwoDimFromDirection narrows d to East or West. Only purely horizontal
// directions convert; anything with a vertical component, and Here, fail
// with a ConvertError naming the source direction.
func TwoDimFromDirection(d Direction) (TwoDimDirection, error) {
	switch d {
	case East:
		return TwoDimEast, nil
	case West:
		return TwoDimWest, nil
	}
	return 0, ConvertError{From: d}
}
