package game

import "testing"

func TestRectIntersects(t *testing.T) {
	a := RectF{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		name string
		b    RectF
		want bool
	}{
		{"overlapping", RectF{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", RectF{X: 2, Y: 2, W: 3, H: 3}, true},
		{"touching edge", RectF{X: 10, Y: 0, W: 5, H: 5}, false},
		{"disjoint", RectF{X: 20, Y: 20, W: 5, H: 5}, false},
		{"vertical only", RectF{X: 0, Y: 20, W: 10, H: 5}, false},
	}
	for _, c := range cases {
		if got := a.Intersects(c.b); got != c.want {
			t.Errorf("%s: Intersects = %v, want %v", c.name, got, c.want)
		}
		if got := c.b.Intersects(a); got != c.want {
			t.Errorf("%s: Intersects not symmetric", c.name)
		}
	}
}

func TestPolygonContains(t *testing.T) {
	square := Polygon{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	if !square.Contains(50, 50) {
		t.Error("center of square should be inside")
	}
	if square.Contains(150, 50) {
		t.Error("point right of square should be outside")
	}
	if square.Contains(50, -10) {
		t.Error("point above square should be outside")
	}

	// Concave L-shape: the notch is outside.
	ell := Polygon{{0, 0}, {100, 0}, {100, 50}, {50, 50}, {50, 100}, {0, 100}}
	if !ell.Contains(25, 75) {
		t.Error("lower arm of L should be inside")
	}
	if ell.Contains(75, 75) {
		t.Error("notch of L should be outside")
	}
}

func TestPolygonDegenerate(t *testing.T) {
	cases := []Polygon{
		nil,
		{},
		{{10, 10}},
		{{10, 10}, {20, 20}},
	}
	for i, p := range cases {
		if p.Contains(10, 10) {
			t.Errorf("case %d: degenerate polygon must contain nothing", i)
		}
	}
}
