package game

import "math"

// StraightRadius is the curve-radius sentinel for straight sections.
var StraightRadius = math.Inf(1)

// CurveSegment is a curved stretch of track, ordered and non-overlapping
// along down-track Y.
type CurveSegment struct {
	StartY    float64
	EndY      float64
	Curvature float64 // signed, 1/Radius; negative bends left
	Radius    float64
}

// ElevationMarker is cosmetic only; it never affects physics.
type ElevationMarker struct {
	Y      float64
	Height float64
}

// SpawnPoint places an opponent at session start.
type SpawnPoint struct {
	Y    float64
	X    float64
	Lane int
}

// CollisionPolygon classifies track area. Polygons are tested in order;
// a point matching no polygon is off-road (fail-closed).
type CollisionPolygon struct {
	Road   bool
	Points Polygon
}

// Waypoint is an AI path target with curve metadata. The list is cyclic
// and immutable after track generation.
type Waypoint struct {
	Pos         Vec2
	CurveRadius float64 // StraightRadius when not in a curve
	SpeedLimit  float64
}

// Straight reports whether the waypoint sits on a straight section.
func (w Waypoint) Straight() bool {
	return math.IsInf(w.CurveRadius, 1)
}

// Track owns the immutable course geometry. Only the scroll offset
// mutates after generation.
type Track struct {
	Length     float64
	Centerline []Vec2
	Curves     []CurveSegment
	Elevations []ElevationMarker
	Spawns     []SpawnPoint
	Polygons   []CollisionPolygon
	Waypoints  []Waypoint

	scroll float64
}

// GenerateTrack builds a procedural course from a seed: alternating
// straight and curved stretches, a road corridor polygon following the
// centerline, and cyclic AI waypoints at fixed spacing.
func GenerateTrack(seed uint64) *Track {
	r := NewRand(splitmix64(seed ^ 0x72ACC))
	t := &Track{Length: TrackLength}

	// Curve segments: walk down the track, straight then curve.
	y := r.RangeF(600, 1200)
	sign := 1.0
	for y < t.Length-1200 {
		length := r.RangeF(400, 1000)
		radius := r.RangeF(150, 500)
		if r.Intn(2) == 0 {
			sign = -sign
		}
		t.Curves = append(t.Curves, CurveSegment{
			StartY:    y,
			EndY:      y + length,
			Curvature: sign / radius,
			Radius:    radius,
		})
		y += length + r.RangeF(800, 2000)
	}

	// Centerline: lateral wobble eases in and out through each curve.
	center := (RoadLeft + RoadRight) / 2
	for sy := 0.0; sy < t.Length; sy += WaypointSpacing {
		cx := center
		if c := t.CurveAt(sy); c != nil {
			// Peak offset mid-curve, scaled by tightness.
			p := (sy - c.StartY) / (c.EndY - c.StartY)
			amp := 60.0 * clampF(CurveRadiusRef/c.Radius, 0.5, 2.0) * 0.5
			if c.Curvature < 0 {
				amp = -amp
			}
			cx += amp * math.Sin(p*math.Pi)
		}
		t.Centerline = append(t.Centerline, Vec2{X: cx, Y: sy})
	}

	// Elevation markers: sparse cosmetic rises.
	for ey := r.RangeF(500, 1500); ey < t.Length; ey += r.RangeF(1500, 3500) {
		t.Elevations = append(t.Elevations, ElevationMarker{Y: ey, Height: r.RangeF(4, 20)})
	}

	// Road corridor polygon following the centerline: left edge down,
	// right edge back up.
	half := (RoadRight - RoadLeft) / 2
	road := make(Polygon, 0, 2*len(t.Centerline)+2)
	for _, p := range t.Centerline {
		road = append(road, Vec2{X: p.X - half, Y: p.Y})
	}
	road = append(road, Vec2{X: t.Centerline[len(t.Centerline)-1].X - half, Y: t.Length})
	road = append(road, Vec2{X: t.Centerline[len(t.Centerline)-1].X + half, Y: t.Length})
	for i := len(t.Centerline) - 1; i >= 0; i-- {
		p := t.Centerline[i]
		road = append(road, Vec2{X: p.X + half, Y: p.Y})
	}
	t.Polygons = []CollisionPolygon{{Road: true, Points: road}}

	// Spawn points: staggered across lanes above the start.
	for i := 0; i < LaneCount*2; i++ {
		lane := i % LaneCount
		t.Spawns = append(t.Spawns, SpawnPoint{
			Y:    -300.0 - 350.0*float64(i) - r.RangeF(0, 120),
			X:    LaneCenterX(lane),
			Lane: lane,
		})
	}

	t.Waypoints = buildWaypoints(t)
	return t
}

// DefaultStraightTrack is the fail-open fallback: a plain three-lane
// corridor with no curves.
func DefaultStraightTrack() *Track {
	t := &Track{Length: TrackLength}
	center := (RoadLeft + RoadRight) / 2
	for sy := 0.0; sy < t.Length; sy += WaypointSpacing {
		t.Centerline = append(t.Centerline, Vec2{X: center, Y: sy})
	}
	t.Polygons = []CollisionPolygon{{
		Road: true,
		Points: Polygon{
			{X: RoadLeft, Y: 0},
			{X: RoadRight, Y: 0},
			{X: RoadRight, Y: t.Length},
			{X: RoadLeft, Y: t.Length},
		},
	}}
	for i := 0; i < LaneCount*2; i++ {
		lane := i % LaneCount
		t.Spawns = append(t.Spawns, SpawnPoint{
			Y:    -300.0 - 350.0*float64(i),
			X:    LaneCenterX(lane),
			Lane: lane,
		})
	}
	t.Waypoints = buildWaypoints(t)
	return t
}

// buildWaypoints derives the cyclic AI waypoint list from the centerline
// and curve segments.
func buildWaypoints(t *Track) []Waypoint {
	wps := make([]Waypoint, 0, len(t.Centerline))
	for _, p := range t.Centerline {
		wp := Waypoint{Pos: p, CurveRadius: StraightRadius, SpeedLimit: PlayerMaxSpeed}
		if c := t.CurveAt(p.Y); c != nil {
			wp.CurveRadius = c.Radius
			wp.SpeedLimit = PlayerMaxSpeed * clampF(c.Radius/CurveRadiusRef, 0.55, 1.0)
		}
		wps = append(wps, wp)
	}
	return wps
}

// CurveAt returns the curve segment containing the down-track position,
// or nil on a straight.
func (t *Track) CurveAt(trackY float64) *CurveSegment {
	for i := range t.Curves {
		c := &t.Curves[i]
		if trackY >= c.StartY && trackY < c.EndY {
			return c
		}
	}
	return nil
}

// CenterXAt interpolates the centerline X at a down-track position.
func (t *Track) CenterXAt(trackY float64) float64 {
	if len(t.Centerline) == 0 {
		return (RoadLeft + RoadRight) / 2
	}
	trackY = wrapTrack(trackY)
	i := int(trackY / WaypointSpacing)
	if i >= len(t.Centerline)-1 {
		return t.Centerline[len(t.Centerline)-1].X
	}
	a, b := t.Centerline[i], t.Centerline[i+1]
	if b.Y == a.Y {
		return a.X
	}
	f := (trackY - a.Y) / (b.Y - a.Y)
	return a.X + (b.X-a.X)*f
}

// OnRoad classifies a track-space point. Polygons are checked in order;
// the first containing polygon decides. No match means off-road.
func (t *Track) OnRoad(x, trackY float64) bool {
	trackY = wrapTrack(trackY)
	for i := range t.Polygons {
		if t.Polygons[i].Points.Contains(x, trackY) {
			return t.Polygons[i].Road
		}
	}
	return false
}

// Advance moves the cosmetic scroll offset.
func (t *Track) Advance(dist float64) {
	t.scroll += dist
}

// Scroll returns the accumulated scroll offset (total distance the world
// has moved past the player).
func (t *Track) Scroll() float64 {
	return t.scroll
}

// ResetScroll rewinds the scroll offset for a fresh session.
func (t *Track) ResetScroll() {
	t.scroll = 0
}
