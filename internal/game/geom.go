package game

// Vec2 is a point or offset in track-space pixels.
type Vec2 struct {
	X, Y float64
}

// RectF is an axis-aligned rectangle in track-space.
type RectF struct {
	X, Y float64 // top-left corner
	W, H float64
}

// Intersects reports AABB overlap between two rectangles.
func (r RectF) Intersects(o RectF) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Polygon is a closed vertex list. The closing edge from the last vertex
// back to the first is implicit.
type Polygon []Vec2

// Contains tests point containment with the even-odd ray-cast rule.
// Degenerate polygons (fewer than 3 vertices) contain nothing.
func (p Polygon) Contains(x, y float64) bool {
	if len(p) < 3 {
		return false
	}
	inside := false
	j := len(p) - 1
	for i := 0; i < len(p); i++ {
		pi, pj := p[i], p[j]
		if (pi.Y > y) != (pj.Y > y) {
			cx := pi.X + (y-pi.Y)/(pj.Y-pi.Y)*(pj.X-pi.X)
			if x < cx {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
