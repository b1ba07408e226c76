package game

import "math"

// PlayerCar is the input-driven car. Its Y stays pinned to the on-screen
// baseline; the world scrolls past it instead.
type PlayerCar struct {
	Car

	SteerInput   float64 // [-1, 1], self-centering
	Accelerating bool
	Braking      bool

	HP      Health
	OffRoad bool
}

func NewPlayerCar() *PlayerCar {
	return &PlayerCar{
		Car: Car{
			X:           LaneCenterX(1),
			Y:           PlayerBaselineY,
			Lane:        1,
			MaxSpeed:    PlayerMaxSpeed,
			Grip:        BaseGrip,
			ImpactScale: 1,
		},
		HP: NewHealth(PlayerMaxHP),
	}
}

// Steer adds steering input, clamped to [-1, 1].
func (p *PlayerCar) Steer(amount float64) {
	p.SteerInput = clampF(p.SteerInput+amount, -1, 1)
}

// SetSteer overwrites the steering input (tilt control path).
func (p *PlayerCar) SetSteer(v float64) {
	p.SteerInput = clampF(v, -1, 1)
}

// Update advances the player one fixed step.
func (p *PlayerCar) Update(dt float64) {
	p.decayCollision(dt)

	// Forward velocity: accelerate unless recovering from a collision,
	// brake, or coast with friction.
	switch {
	case p.Accelerating && !p.Colliding():
		p.VForward += PlayerAccel * dt
	case p.Braking:
		p.VForward -= PlayerBrakeForce * dt
	default:
		p.VForward *= ForwardFriction
	}
	if p.OffRoad {
		p.VForward *= OffRoadDrag
	}
	p.VForward = clampF(p.VForward, 0, p.MaxSpeed)

	p.steerStep(dt, p.SteerInput)

	// Heading-aligned integration; Y stays on the baseline.
	p.X += p.lateralDelta(dt)
	p.X = clampF(p.X, CarWidth/2, RoadRight+LaneWidth/2)
	p.Y = PlayerBaselineY

	p.updateLane()

	// Self-centering.
	p.SteerInput *= SteerDecay
}

// updateLane commits the authoritative lane only once X has converged on
// a lane center.
func (p *PlayerCar) updateLane() {
	for lane := 0; lane < LaneCount; lane++ {
		if math.Abs(p.X-LaneCenterX(lane)) < LaneConvergeTolerance {
			p.Lane = lane
			return
		}
	}
}
