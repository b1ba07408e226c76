package game

import "testing"

const validTrackJSON = `{
	"length": 12000,
	"centerline": [[400, 0], [400, 100], [400, 200]],
	"curves": [{"startY": 50, "endY": 150, "curvature": 0.004, "radius": 250}],
	"spawns": [{"y": -300, "x": 200, "lane": 0}],
	"polygons": [{"road": true, "points": [[100, 0], [700, 0], [700, 12000], [100, 12000]]}]
}`

func TestParseTrack(t *testing.T) {
	tr, err := ParseTrack([]byte(validTrackJSON))
	if err != nil {
		t.Fatalf("ParseTrack: %v", err)
	}
	if tr.Length != 12000 {
		t.Errorf("Length = %v", tr.Length)
	}
	if len(tr.Centerline) != 3 || len(tr.Curves) != 1 || len(tr.Spawns) != 1 {
		t.Errorf("structure: %d centerline, %d curves, %d spawns",
			len(tr.Centerline), len(tr.Curves), len(tr.Spawns))
	}
	if len(tr.Waypoints) != len(tr.Centerline) {
		t.Errorf("waypoints not derived: %d vs %d centerline points", len(tr.Waypoints), len(tr.Centerline))
	}
	if !tr.OnRoad(400, 500) {
		t.Error("parsed road polygon should contain the center")
	}
}

func TestParseTrackErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"malformed json", `{"length": `},
		{"zero length", `{"length": 0, "centerline": [[400,0],[400,100]], "polygons": []}`},
		{"negative length", `{"length": -5, "centerline": [[400,0],[400,100]], "polygons": []}`},
		{"short centerline", `{"length": 1000, "centerline": [[400,0]], "polygons": []}`},
		{"inverted curve", `{"length": 1000, "centerline": [[400,0],[400,100]],
			"curves": [{"startY": 500, "endY": 400, "radius": 100}], "polygons": []}`},
		{"zero radius", `{"length": 1000, "centerline": [[400,0],[400,100]],
			"curves": [{"startY": 100, "endY": 200, "radius": 0}], "polygons": []}`},
	}
	for _, c := range cases {
		if _, err := ParseTrack([]byte(c.data)); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestLoadTrackFallback(t *testing.T) {
	tr := LoadTrack([]byte("not json"))
	if tr == nil {
		t.Fatal("LoadTrack returned nil")
	}
	// The fallback is the plain straight course, which is fully usable.
	if !tr.OnRoad((RoadLeft+RoadRight)/2, 500) {
		t.Error("fallback track should have a drivable road")
	}
	if len(tr.Spawns) == 0 || len(tr.Waypoints) == 0 {
		t.Error("fallback track missing spawns or waypoints")
	}
}

func TestParseTrackClampsSpawnLane(t *testing.T) {
	data := `{
		"length": 1000,
		"centerline": [[400, 0], [400, 100]],
		"spawns": [{"y": -300, "x": 200, "lane": 9}],
		"polygons": []
	}`
	tr, err := ParseTrack([]byte(data))
	if err != nil {
		t.Fatalf("ParseTrack: %v", err)
	}
	if tr.Spawns[0].Lane != LaneCount-1 {
		t.Errorf("lane not clamped: %d", tr.Spawns[0].Lane)
	}
}

func TestParseTrackDefaultSpawns(t *testing.T) {
	data := `{
		"length": 1000,
		"centerline": [[400, 0], [400, 100]],
		"polygons": []
	}`
	tr, err := ParseTrack([]byte(data))
	if err != nil {
		t.Fatalf("ParseTrack: %v", err)
	}
	if len(tr.Spawns) == 0 {
		t.Error("missing spawns should be filled with defaults")
	}
	for _, sp := range tr.Spawns {
		if sp.Y >= 0 {
			t.Errorf("default spawn at %v should be above the start", sp.Y)
		}
	}
}
