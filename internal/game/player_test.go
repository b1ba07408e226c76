package game

import (
	"math"
	"testing"
)

func TestPlayerAccelerationPlateaus(t *testing.T) {
	p := NewPlayerCar()
	p.Accelerating = true
	for i := 0; i < 600; i++ {
		p.Update(TimeStep)
		if p.VForward > PlayerMaxSpeed {
			t.Fatalf("tick %d: speed %v exceeds max", i, p.VForward)
		}
	}
	if p.VForward != PlayerMaxSpeed {
		t.Errorf("sustained throttle should reach max speed, got %v", p.VForward)
	}
}

func TestPlayerBrakeFloorsAtZero(t *testing.T) {
	p := NewPlayerCar()
	p.VForward = 200
	p.Braking = true
	for i := 0; i < 120; i++ {
		p.Update(TimeStep)
		if p.VForward < 0 {
			t.Fatalf("tick %d: speed went negative: %v", i, p.VForward)
		}
	}
	if p.VForward != 0 {
		t.Errorf("sustained braking should stop the car, got %v", p.VForward)
	}
}

func TestPlayerCoastingDecays(t *testing.T) {
	p := NewPlayerCar()
	p.VForward = 400
	p.Update(TimeStep)
	if p.VForward >= 400 {
		t.Errorf("coasting should bleed speed, got %v", p.VForward)
	}
	if p.VForward != 400*ForwardFriction {
		t.Errorf("coasting decay = %v, want %v", p.VForward, 400*ForwardFriction)
	}
}

func TestPlayerOffRoadDrag(t *testing.T) {
	onRoad := NewPlayerCar()
	offRoad := NewPlayerCar()
	onRoad.VForward = 400
	offRoad.VForward = 400
	offRoad.OffRoad = true
	onRoad.Update(TimeStep)
	offRoad.Update(TimeStep)
	if offRoad.VForward >= onRoad.VForward {
		t.Errorf("off-road should be slower: %v vs %v", offRoad.VForward, onRoad.VForward)
	}
}

func TestPlayerCollisionGatesThrottle(t *testing.T) {
	p := NewPlayerCar()
	p.VForward = 400
	p.Accelerating = true
	p.ApplyCollision(10, 0)
	v0 := p.VForward
	p.Update(TimeStep)
	// While recovering the throttle is ignored; friction still applies.
	if p.VForward > v0 {
		t.Errorf("throttle should be gated during recovery: %v -> %v", v0, p.VForward)
	}
}

func TestPlayerSteeringSelfCenters(t *testing.T) {
	p := NewPlayerCar()
	p.SetSteer(1)
	p.Update(TimeStep)
	if p.SteerInput != SteerDecay {
		t.Errorf("steer decay = %v, want %v", p.SteerInput, SteerDecay)
	}
	for i := 0; i < 120; i++ {
		p.Update(TimeStep)
	}
	if math.Abs(p.SteerInput) > 0.001 {
		t.Errorf("steering should self-center, got %v", p.SteerInput)
	}
}

func TestPlayerSteerClamped(t *testing.T) {
	p := NewPlayerCar()
	p.Steer(0.7)
	p.Steer(0.7)
	if p.SteerInput != 1 {
		t.Errorf("accumulated steer should clamp to 1, got %v", p.SteerInput)
	}
	p.SetSteer(-5)
	if p.SteerInput != -1 {
		t.Errorf("SetSteer should clamp to -1, got %v", p.SteerInput)
	}
}

func TestPlayerStaysOnBaseline(t *testing.T) {
	p := NewPlayerCar()
	p.Accelerating = true
	p.SetSteer(0.5)
	for i := 0; i < 300; i++ {
		p.Update(TimeStep)
	}
	if p.Y != PlayerBaselineY {
		t.Errorf("player Y left the baseline: %v", p.Y)
	}
}

func TestPlayerSteeringMovesAcrossLanes(t *testing.T) {
	p := NewPlayerCar()
	p.VForward = 600
	startX := p.X
	for i := 0; i < 120; i++ {
		p.Accelerating = true
		p.SetSteer(1)
		p.Update(TimeStep)
	}
	if p.X <= startX {
		t.Errorf("steering right should move right: %v -> %v", startX, p.X)
	}
	if p.X > RoadRight+LaneWidth/2 {
		t.Errorf("X escaped the world clamp: %v", p.X)
	}
}

func TestPlayerLaneCommitsOnConvergence(t *testing.T) {
	p := NewPlayerCar()
	if p.Lane != 1 {
		t.Fatalf("player should start in the center lane, got %d", p.Lane)
	}
	// Teleport near lane 2's center; one update commits the lane.
	p.X = LaneCenterX(2) + LaneConvergeTolerance/2
	p.Update(TimeStep)
	if p.Lane != 2 {
		t.Errorf("lane should commit near the center, got %d", p.Lane)
	}
	// Between lanes the last committed lane sticks.
	p.X = (LaneCenterX(1) + LaneCenterX(2)) / 2
	p.Update(TimeStep)
	if p.Lane != 2 {
		t.Errorf("lane should hold between centers, got %d", p.Lane)
	}
}

func TestHealth(t *testing.T) {
	h := NewHealth(5)
	if h.IsDead() || h.Fraction() != 1 {
		t.Error("fresh health should be full")
	}
	h.Damage(2)
	if h.Fraction() != 0.6 {
		t.Errorf("fraction after damage = %v", h.Fraction())
	}
	h.Damage(10)
	if h.Current != 0 || !h.IsDead() {
		t.Errorf("health should floor at zero: %v", h.Current)
	}
}
