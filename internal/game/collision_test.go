package game

import "testing"

func TestLaneOverlap(t *testing.T) {
	a := &Car{Lane: 1, Y: 600}
	b := &Car{Lane: 1, Y: 550}
	if !LaneOverlap(a, b) {
		t.Error("cars 50 apart in the same lane should overlap")
	}
	b.Y = 600 - CarHeight
	if LaneOverlap(a, b) {
		t.Error("touching extents should not count as overlap")
	}
	b.Y = 550
	b.Lane = 2
	if LaneOverlap(a, b) {
		t.Error("different lanes never overlap")
	}
}

func TestAABBOverlap(t *testing.T) {
	a := &Car{X: 400, Y: 600}
	b := &Car{X: 400 + CarWidth - 1, Y: 600}
	if !AABBOverlap(a, b) {
		t.Error("laterally overlapping cars should collide")
	}
	if !AABBOverlap(b, a) {
		t.Error("AABB overlap must be symmetric")
	}
	b.X = 400 + CarWidth + 1
	if AABBOverlap(a, b) {
		t.Error("separated cars should not collide")
	}
}

func TestFirstCollision(t *testing.T) {
	p := NewPlayerCar()
	track := DefaultStraightTrack()
	var opps []*Opponent
	for i := 0; i < 3; i++ {
		o := NewOpponent(i, 1, DifficultyMedium, track)
		o.X = p.X
		o.Y = -1000 // far away
		opps = append(opps, o)
	}
	if got := FirstCollision(p, opps); got != -1 {
		t.Errorf("no overlap should give -1, got %d", got)
	}

	// Two overlapping opponents: only the first is reported.
	opps[1].Y = p.Y
	opps[2].Y = p.Y
	if got := FirstCollision(p, opps); got != 1 {
		t.Errorf("first overlapping index = %d, want 1", got)
	}
}

func TestCollisionSymmetry(t *testing.T) {
	a := &Car{X: 400, Y: 600, VForward: 500, MaxSpeed: PlayerMaxSpeed, Grip: BaseGrip}
	b := &Car{X: 430, Y: 580, VForward: 300, MaxSpeed: PlayerMaxSpeed, Grip: BaseGrip}

	dx, dy := b.X-a.X, b.Y-a.Y
	a.ApplyCollision(dx, dy)
	b.ApplyCollision(-dx, -dy)

	if a.VForward >= 500 || b.VForward >= 300 {
		t.Errorf("both cars must lose speed: %v, %v", a.VForward, b.VForward)
	}
	if !a.Colliding() || !b.Colliding() {
		t.Error("both cars must enter recovery")
	}
	// Opposite impact directions kick the cars apart.
	if a.VLateral >= 0 {
		t.Errorf("left car should be kicked left, VLateral %v", a.VLateral)
	}
	if b.VLateral <= 0 {
		t.Errorf("right car should be kicked right, VLateral %v", b.VLateral)
	}
}
