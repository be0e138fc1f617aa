package geom

import "testing"

func TestDirectionOffsets(t *testing.T) {
	want := map[Direction][2]int{
		Here:      {0, 0},
		North:     {0, -1},
		NorthEast: {1, -1},
		East:      {1, 0},
		SouthEast: {1, 1},
		South:     {0, 1},
		SouthWest: {-1, 1},
		West:      {-1, 0},
		NorthWest: {-1, -1},
	}
	for d, off := range want {
		dx, dy := d.Delta()
		if dx != off[0] || dy != off[1] {
			t.Errorf("%s: expected offset (%d, %d), got (%d, %d)", d, off[0], off[1], dx, dy)
		}
		if d.DX() != dx || d.DY() != dy {
			t.Errorf("%s: DX/DY disagree with Delta", d)
		}
	}
}

func TestDirectionRings(t *testing.T) {
	if len(DIR8) != 8 {
		t.Fatalf("DIR8 has %d entries", len(DIR8))
	}
	for _, d := range DIR8 {
		if d.IsHere() {
			t.Error("DIR8 contains Here")
		}
		if d.DX() == 0 && d.DY() == 0 {
			t.Errorf("%s in DIR8 has zero offset", d)
		}
	}

	if DIR9[0] != Here {
		t.Errorf("DIR9 starts with %s, expected Here", DIR9[0])
	}
	for i, d := range DIR8 {
		if DIR9[i+1] != d {
			t.Errorf("DIR9[%d] = %s, expected %s", i+1, DIR9[i+1], d)
		}
	}
}

func TestDirectionFromDelta(t *testing.T) {
	cases := []struct {
		dx, dy int
		want   Direction
	}{
		{10, 20, SouthEast},
		{0, 0, Here},
		{-1, 0, West},
		{0, -5, North},
		{3, -3, NorthEast},
		{-2, 7, SouthWest},
	}
	for _, tc := range cases {
		if got := DirectionFromDelta(tc.dx, tc.dy); got != tc.want {
			t.Errorf("DirectionFromDelta(%d, %d): expected %s, got %s", tc.dx, tc.dy, tc.want, got)
		}
	}
}

func TestDirectionFromDeltaMatchesOffsets(t *testing.T) {
	for _, d := range DIR9 {
		if got := DirectionFromDelta(d.DX(), d.DY()); got != d {
			t.Errorf("offset of %s classifies as %s", d, got)
		}
	}
}

func TestDirectionString(t *testing.T) {
	if got := SouthWest.String(); got != "SouthWest" {
		t.Errorf("expected SouthWest, got %s", got)
	}
	if got := Direction(99).String(); got != "Direction(invalid)" {
		t.Errorf("expected invalid marker, got %s", got)
	}
}
