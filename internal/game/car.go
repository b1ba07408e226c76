package game

import "math"

// Car is the physics state shared by the player and opponents. X is
// lateral, Y vertical in world space; velocity is decomposed along the
// heading into forward and lateral scalars. Rotation is the heading
// deviation from straight down-track.
type Car struct {
	X, Y     float64
	Rotation float64

	VForward float64
	VLateral float64

	// Authoritative lane; updates only once X converges on a lane center.
	Lane int

	CollisionTimer float64
	ImpactScale    float64

	MaxSpeed float64
	Grip     float64
}

// Bounds returns the collision rectangle. A car's Y extent spans
// [Y-CarHeight, Y].
func (c *Car) Bounds() RectF {
	return RectF{X: c.X - CarWidth/2, Y: c.Y - CarHeight, W: CarWidth, H: CarHeight}
}

// Colliding reports whether the car is still in collision recovery.
func (c *Car) Colliding() bool {
	return c.CollisionTimer > 0
}

// decayCollision runs down the recovery timer and eases the impact scale
// back to 1 over the recovery window. The scale is visual but also gates
// acceleration via Colliding.
func (c *Car) decayCollision(dt float64) {
	if c.CollisionTimer <= 0 {
		c.ImpactScale = 1
		return
	}
	c.CollisionTimer -= dt
	if c.CollisionTimer < 0 {
		c.CollisionTimer = 0
	}
	c.ImpactScale = 1 + (ImpactScalePeak-1)*(c.CollisionTimer/CollisionRecoveryTime)
}

// effectiveGrip degrades grip as speed rises, producing drift at speed.
func (c *Car) effectiveGrip() float64 {
	speedRatio := 0.0
	if c.MaxSpeed > 0 {
		speedRatio = c.VForward / c.MaxSpeed
	}
	return c.Grip * (1 - speedRatio*DriftFactor)
}

// steerStep integrates lateral velocity and rotation from a steering
// input in [-1, 1]. Shared by the player (direct input) and opponents
// (AI-computed target).
func (c *Car) steerStep(dt, steer float64) {
	effGrip := c.effectiveGrip()
	turnRadius := MinTurnRadius / (effGrip + 0.1)

	if math.Abs(steer) > MinSteerInput && c.VForward > MinSteerSpeed {
		latAccel := (c.VForward * c.VForward / turnRadius) * steer
		c.VLateral += latAccel * effGrip * dt
		c.Rotation += (c.VForward / turnRadius) * steer * dt
		c.Rotation = clampF(c.Rotation, -MaxRotation, MaxRotation)
	} else {
		c.Rotation *= RotationDecay
	}

	// Lateral friction, then clamp drift to what the tires allow.
	c.VLateral *= 1 - (1-effGrip)*0.1
	maxLat := math.Abs(c.VForward) * (1 - effGrip) * 0.5
	c.VLateral = clampF(c.VLateral, -maxLat, maxLat)
}

// lateralDelta is the heading-aligned X displacement for one step.
func (c *Car) lateralDelta(dt float64) float64 {
	return (math.Sin(c.Rotation)*c.VForward + math.Cos(c.Rotation)*c.VLateral) * dt
}

// forwardDelta is the heading-aligned down-track displacement for one step.
func (c *Car) forwardDelta(dt float64) float64 {
	return (math.Cos(c.Rotation)*c.VForward - math.Sin(c.Rotation)*c.VLateral) * dt
}

// ApplyCollision bleeds speed, starts the recovery window, and kicks the
// car laterally away from the impact. (dirX, dirY) points from this car
// toward the other one.
func (c *Car) ApplyCollision(dirX, dirY float64) {
	c.VForward *= 1 - CollisionSpeedLoss
	c.VLateral *= 1 - CollisionSpeedLoss/2
	c.CollisionTimer = CollisionRecoveryTime
	c.ImpactScale = ImpactScalePeak

	d := math.Hypot(dirX, dirY)
	if d > 1e-9 {
		c.VLateral -= (dirX / d) * c.VForward * 0.3
	}
}
