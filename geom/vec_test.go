package geom

import "testing"

func TestVec2Ops(t *testing.T) {
	v := V(1.5, -2.0)
	if got := v.Add(V(0.5, 1.0)); got != V(2.0, -1.0) {
		t.Errorf("Add: expected (2, -1), got %v", got)
	}
	if got := v.Sub(V(0.5, 1.0)); got != V(1.0, -3.0) {
		t.Errorf("Sub: expected (1, -3), got %v", got)
	}
	if got := v.Scale(2); got != V(3.0, -4.0) {
		t.Errorf("Scale: expected (3, -4), got %v", got)
	}
	if got := V(3, 4).Len(); got != 5.0 {
		t.Errorf("Len: expected 5, got %v", got)
	}
}

func TestPointFromVec2Rounding(t *testing.T) {
	cases := []struct {
		in   Vec2
		want Point
	}{
		{V(1.4, 2.6), Pt(1, 3)},
		{V(0.5, -0.5), Pt(1, -1)}, // half away from zero
		{V(2.5, -2.5), Pt(3, -3)},
		{V(-1.4, -1.6), Pt(-1, -2)},
		{V(0, 0), Pt(0, 0)},
	}
	for _, tc := range cases {
		if got := PointFromVec2(tc.in); got != tc.want {
			t.Errorf("PointFromVec2(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestPointVec2RoundTrip(t *testing.T) {
	p := Pt(-7, 13)
	if got := PointFromVec2(p.Vec2()); got != p {
		t.Errorf("round trip: expected %v, got %v", p, got)
	}
}
