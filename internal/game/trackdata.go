package game

import (
	"encoding/json"
	"fmt"
)

// TrackData is the structured wire description of a course. Points are
// [x, y] pairs in track-space pixels.
type TrackData struct {
	Length     float64       `json:"length"`
	Centerline [][2]float64  `json:"centerline"`
	Curves     []CurveData   `json:"curves,omitempty"`
	Elevations []ElevData    `json:"elevations,omitempty"`
	Spawns     []SpawnData   `json:"spawns,omitempty"`
	Polygons   []PolygonData `json:"polygons"`
}

type CurveData struct {
	StartY    float64 `json:"startY"`
	EndY      float64 `json:"endY"`
	Curvature float64 `json:"curvature"`
	Radius    float64 `json:"radius"`
}

type ElevData struct {
	Y      float64 `json:"y"`
	Height float64 `json:"height"`
}

type SpawnData struct {
	Y    float64 `json:"y"`
	X    float64 `json:"x"`
	Lane int     `json:"lane"`
}

type PolygonData struct {
	Road   bool         `json:"road"`
	Points [][2]float64 `json:"points"`
}

// ParseTrack decodes and validates a structured track description.
func ParseTrack(data []byte) (*Track, error) {
	var td TrackData
	if err := json.Unmarshal(data, &td); err != nil {
		return nil, fmt.Errorf("decode track: %w", err)
	}
	if td.Length <= 0 {
		return nil, fmt.Errorf("track length %v: must be positive", td.Length)
	}
	if len(td.Centerline) < 2 {
		return nil, fmt.Errorf("centerline has %d points: need at least 2", len(td.Centerline))
	}

	t := &Track{Length: td.Length}
	for _, p := range td.Centerline {
		t.Centerline = append(t.Centerline, Vec2{X: p[0], Y: p[1]})
	}
	for _, c := range td.Curves {
		if c.EndY <= c.StartY || c.Radius <= 0 {
			return nil, fmt.Errorf("curve [%v,%v] radius %v: invalid", c.StartY, c.EndY, c.Radius)
		}
		t.Curves = append(t.Curves, CurveSegment(c))
	}
	for _, e := range td.Elevations {
		t.Elevations = append(t.Elevations, ElevationMarker(e))
	}
	for _, s := range td.Spawns {
		t.Spawns = append(t.Spawns, SpawnPoint{Y: s.Y, X: s.X, Lane: clamp(s.Lane, 0, LaneCount-1)})
	}
	for _, pd := range td.Polygons {
		poly := make(Polygon, 0, len(pd.Points))
		for _, p := range pd.Points {
			poly = append(poly, Vec2{X: p[0], Y: p[1]})
		}
		// Degenerate polygons are kept but contain nothing, so they only
		// ever classify as off-road.
		t.Polygons = append(t.Polygons, CollisionPolygon{Road: pd.Road, Points: poly})
	}
	if len(t.Spawns) == 0 {
		for i := 0; i < LaneCount*2; i++ {
			lane := i % LaneCount
			t.Spawns = append(t.Spawns, SpawnPoint{Y: -300.0 - 350.0*float64(i), X: LaneCenterX(lane), Lane: lane})
		}
	}
	t.Waypoints = buildWaypoints(t)
	return t, nil
}

// LoadTrack parses a description, falling back to the default straight
// track when the data is malformed. Geometry is cosmetic enough to fail
// open; collision classification stays fail-closed inside Track.OnRoad.
func LoadTrack(data []byte) *Track {
	t, err := ParseTrack(data)
	if err != nil {
		return DefaultStraightTrack()
	}
	return t
}
