package geom

import "testing"

func TestLineToDiagonal(t *testing.T) {
	got := Pt(0, 0).LineTo(Pt(5, 5))
	want := []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}}
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestLineToSteep(t *testing.T) {
	got := Pt(0, 0).LineTo(Pt(2, 5))
	want := []Point{{0, 0}, {0, 1}, {1, 2}, {1, 3}, {2, 4}, {2, 5}}
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestLineToSelf(t *testing.T) {
	got := Pt(3, 3).LineTo(Pt(3, 3))
	if len(got) != 1 || got[0] != Pt(3, 3) {
		t.Errorf("expected [(3, 3)], got %v", got)
	}
}

// Endpoints are always included and consecutive points differ by exactly
// one of the eight unit offsets, across all octants.
func TestLineToContinuity(t *testing.T) {
	rng := NewRand(99)
	for i := 0; i < 2000; i++ {
		p := RandomPoint(rng, Pt(-25, -25), Pt(26, 26))
		q := RandomPoint(rng, Pt(-25, -25), Pt(26, 26))

		line := p.LineTo(q)
		if len(line) == 0 {
			t.Fatalf("empty line %v -> %v", p, q)
		}
		if line[0] != p {
			t.Fatalf("line %v -> %v starts at %v", p, q, line[0])
		}
		if line[len(line)-1] != q {
			t.Fatalf("line %v -> %v ends at %v", p, q, line[len(line)-1])
		}
		for j := 1; j < len(line); j++ {
			step := line[j].Sub(line[j-1]).Abs()
			if max(step.X, step.Y) != 1 {
				t.Fatalf("line %v -> %v jumps from %v to %v", p, q, line[j-1], line[j])
			}
		}
	}
}

func TestLineToFuncEarlyStop(t *testing.T) {
	var visited []Point
	Pt(0, 0).LineToFunc(Pt(10, 0), func(p Point) bool {
		visited = append(visited, p)
		return len(visited) < 3
	})
	if len(visited) != 3 {
		t.Errorf("expected 3 visits, got %d", len(visited))
	}
	if visited[2] != Pt(2, 0) {
		t.Errorf("expected walk to stop at (2, 0), got %v", visited[2])
	}
}

func TestLineToMatchesFunc(t *testing.T) {
	p, q := Pt(-4, 7), Pt(9, -3)
	line := p.LineTo(q)
	i := 0
	p.LineToFunc(q, func(pt Point) bool {
		if i >= len(line) || line[i] != pt {
			t.Fatalf("callback point %d mismatch: %v", i, pt)
		}
		i++
		return true
	})
	if i != len(line) {
		t.Errorf("callback visited %d points, slice has %d", i, len(line))
	}
}
