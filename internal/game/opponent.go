package game

import "math"

// Opponent is an AI-driven car. Each opponent owns an independent seeded
// RNG stream (masterSeed + index*1000) so pool order never perturbs the
// other cars' sequences.
type Opponent struct {
	Car

	Index  int
	Params DifficultyParams
	rng    *Rand

	// Monotonic down-track distance; waypoint tracking runs in this
	// space modulo the track length, where "ahead" means greater.
	TrackDist   float64
	WaypointIdx int

	TargetLane     int
	LaneCooldown   float64
	ReactionTimer  float64
	Overtaking     bool
	overtakeTarget *Car

	speedFactor   float64 // fraction of Params.MaxSpeed this car cruises at
	curveSlowdown float64 // 1 on straights, <1 approaching a curve
}

func NewOpponent(index int, masterSeed uint64, diff Difficulty, track *Track) *Opponent {
	o := &Opponent{
		Index:  index,
		Params: diff.Params(),
		rng:    NewRand(splitmix64(masterSeed + uint64(index)*1000)),
	}
	o.Grip = BaseGrip
	o.MaxSpeed = o.Params.MaxSpeed
	o.ImpactScale = 1
	o.curveSlowdown = 1

	if len(track.Spawns) > 0 {
		sp := track.Spawns[index%len(track.Spawns)]
		o.X = sp.X
		o.Y = sp.Y
		o.Lane = sp.Lane
		o.TargetLane = sp.Lane
	}
	o.speedFactor = o.Params.BaseSpeed / o.Params.MaxSpeed
	o.VForward = o.Params.BaseSpeed * (0.9 + o.rng.RangeF(0, 0.2))
	return o
}

// Reset recycles the opponent above the visible area: fresh random lane,
// negative Y, re-jittered base speed, all AI and collision state cleared.
// Respawn and session start share this so the RNG sequence lines up.
func (o *Opponent) Reset() {
	lane := o.rng.Intn(LaneCount)
	o.Lane = lane
	o.TargetLane = lane
	o.X = LaneCenterX(lane)
	o.Y = -(RecycleMinY + o.rng.RangeF(0, RecycleMaxY-RecycleMinY))
	o.Rotation = 0
	o.VLateral = 0
	o.VForward = o.Params.BaseSpeed * (0.85 + o.rng.RangeF(0, 0.3))
	o.speedFactor = o.VForward / o.Params.MaxSpeed
	o.CollisionTimer = 0
	o.ImpactScale = 1
	o.LaneCooldown = 0
	o.ReactionTimer = 0
	o.Overtaking = false
	o.overtakeTarget = nil
	o.curveSlowdown = 1
}

// cyclicForward is the distance from a to b travelling forward around a
// loop of the given length, in [0, length).
func cyclicForward(a, b, length float64) float64 {
	d := math.Mod(b-a, length)
	if d < 0 {
		d += length
	}
	return d
}

// Update advances the AI and physics one fixed step. scrollRate is the
// world scroll speed (derived from the player); siblings are the other
// opponents.
func (o *Opponent) Update(dt, gameSpeed, scrollRate float64, siblings []*Opponent, player *PlayerCar, track *Track) {
	o.decayCollision(dt)

	if o.ReactionTimer > 0 {
		o.ReactionTimer -= dt
	}
	if o.LaneCooldown > 0 {
		o.LaneCooldown -= dt
	}

	o.trackWaypoints(track)
	o.updateCurveSlowdown(track)

	if o.ReactionTimer <= 0 {
		o.decideOvertake(siblings, player, track)
	}
	o.maybeFinishOvertake()

	// Steering target: the assigned lane center, shifted by the
	// centerline's lateral offset at the waypoint so lanes follow curves.
	laneX := LaneCenterX(o.TargetLane)
	targetX := laneX
	if len(track.Waypoints) > 0 {
		offset := track.Waypoints[o.WaypointIdx].Pos.X - (RoadLeft+RoadRight)/2
		targetX = laneX + offset*WaypointBlendWeight
	}

	// Curve-aware speed control: brake harder into curves than the car
	// accelerates out of them. The waypoint's speed limit caps the target
	// regardless of tier.
	targetSpeed := o.Params.MaxSpeed * o.speedFactor * gameSpeed * o.curveSlowdown
	if len(track.Waypoints) > 0 {
		if lim := track.Waypoints[o.WaypointIdx].SpeedLimit; targetSpeed > lim {
			targetSpeed = lim
		}
	}
	if blocker := o.blockerAhead(siblings, player); blocker != nil && !o.Overtaking {
		// Blocked with nowhere to go: fall in behind. Higher collision
		// risk tiers leave less margin.
		capped := blocker.VForward * (1 + o.Params.CollisionRisk*0.1)
		if capped < targetSpeed {
			targetSpeed = capped
		}
	}
	switch {
	case o.VForward < targetSpeed && !o.Colliding():
		o.VForward = approach(o.VForward, targetSpeed, PlayerAccel*dt)
	case o.VForward > targetSpeed:
		o.VForward = approach(o.VForward, targetSpeed, PlayerAccel*CurveBrakeFactor*dt)
	default:
		o.VForward *= ForwardFriction
	}
	o.VForward = clampF(o.VForward, 0, o.Params.MaxSpeed)

	steer := clampF((targetX-o.X)/LaneWidth, -1, 1)
	o.steerStep(dt, steer)

	// Integrate. X moves with the heading; world Y is relative to the
	// scrolling track, so slower cars drift down past the player.
	o.X += o.lateralDelta(dt)
	o.X = clampF(o.X, CarWidth/2, RoadRight+LaneWidth/2)
	o.TrackDist += o.forwardDelta(dt) * gameSpeed
	o.Y += (scrollRate - o.VForward*gameSpeed) * dt

	// Authoritative lane commits once X converges on the target lane.
	if math.Abs(o.X-laneX) < LaneConvergeTolerance {
		o.Lane = o.TargetLane
	}
}

// trackWaypoints advances the cyclic waypoint index: move on when the
// current target is reached or already passed, then pick the nearest
// waypoint still ahead of the car (with lookback tolerance).
func (o *Opponent) trackWaypoints(track *Track) {
	n := len(track.Waypoints)
	if n == 0 {
		return
	}
	pos := wrapTrack(o.TrackDist)
	wp := track.Waypoints[o.WaypointIdx]

	toWp := cyclicForward(pos, wp.Pos.Y, track.Length)
	pastWp := cyclicForward(wp.Pos.Y, pos, track.Length)
	reached := toWp <= WaypointReachedDistance || pastWp <= WaypointReachedDistance
	passed := pastWp > WaypointPassedMargin && pastWp < track.Length/2

	if !reached && !passed {
		return
	}
	for k := 1; k <= n; k++ {
		idx := (o.WaypointIdx + k) % n
		cand := track.Waypoints[idx]
		// Qualifies if it lies ahead of pos-lookback (within the front
		// half of the loop).
		if cyclicForward(pos-WaypointLookback, cand.Pos.Y, track.Length) < track.Length/2 {
			o.WaypointIdx = idx
			return
		}
	}
	// No candidate; keep the current index.
}

// updateCurveSlowdown eases off the throttle when the target waypoint is
// a curve within approach distance.
func (o *Opponent) updateCurveSlowdown(track *Track) {
	o.curveSlowdown = 1
	if len(track.Waypoints) == 0 {
		return
	}
	wp := track.Waypoints[o.WaypointIdx]
	if wp.Straight() {
		return
	}
	pos := wrapTrack(o.TrackDist)
	if cyclicForward(pos, wp.Pos.Y, track.Length) > CurveApproachDistance {
		return
	}
	tightness := 1 - clampF(wp.CurveRadius/CurveRadiusRef, 0, 1)
	o.curveSlowdown = o.Params.CurveSlowdown * (1 - tightness*0.3)
}

// blockerAhead returns the nearest car occupying this car's lane within
// scan distance ahead (smaller world Y is ahead), or nil.
func (o *Opponent) blockerAhead(siblings []*Opponent, player *PlayerCar) *Car {
	var best *Car
	bestDy := OvertakeScanDistance + 1
	for _, s := range siblings {
		if s == o || s.Lane != o.Lane {
			continue
		}
		dy := o.Y - s.Y
		if dy > 0 && dy <= OvertakeScanDistance && dy < bestDy {
			best = &s.Car
			bestDy = dy
		}
	}
	if player != nil && player.Lane == o.Lane {
		dy := o.Y - player.Y
		if dy > 0 && dy <= OvertakeScanDistance && dy < bestDy {
			best = &player.Car
		}
	}
	return best
}

// decideOvertake evaluates the overtaking rules: a blocker ahead on a
// straight, a 10% speed advantage, and an aggressiveness-weighted roll.
func (o *Opponent) decideOvertake(siblings []*Opponent, player *PlayerCar, track *Track) {
	if o.Overtaking || o.LaneCooldown > 0 {
		return
	}
	blocker := o.blockerAhead(siblings, player)
	if blocker == nil {
		return
	}
	onStraight := true
	if len(track.Waypoints) > 0 {
		onStraight = track.Waypoints[o.WaypointIdx].Straight()
	}
	if !onStraight {
		return
	}
	if o.VForward < blocker.VForward*OvertakeSpeedAdvantage {
		return
	}
	if o.rng.Float64() >= o.Params.Aggressiveness {
		return
	}

	// Find a clear lane among the two others.
	for _, lane := range otherLanes(o.Lane) {
		if !o.laneClear(lane, siblings, player) {
			continue
		}
		o.TargetLane = lane
		o.Overtaking = true
		o.overtakeTarget = blocker
		o.LaneCooldown = LaneChangeCooldown
		o.ReactionTimer = o.Params.ReactionTime
		return
	}
}

// maybeFinishOvertake returns toward the center lane once the passed
// target has dropped far enough behind.
func (o *Opponent) maybeFinishOvertake() {
	if !o.Overtaking || o.overtakeTarget == nil {
		return
	}
	if o.overtakeTarget.Y-o.Y < OvertakePassedMargin {
		return
	}
	if o.rng.Float64() < ReturnCenterChance {
		o.TargetLane = 1
	}
	o.Overtaking = false
	o.overtakeTarget = nil
}

func (o *Opponent) laneClear(lane int, siblings []*Opponent, player *PlayerCar) bool {
	for _, s := range siblings {
		if s != o && s.Lane == lane && math.Abs(s.Y-o.Y) < LaneClearDistance {
			return false
		}
	}
	if player != nil && player.Lane == lane && math.Abs(player.Y-o.Y) < LaneClearDistance {
		return false
	}
	return true
}

func otherLanes(lane int) [2]int {
	switch lane {
	case 0:
		return [2]int{1, 2}
	case 2:
		return [2]int{1, 0}
	default:
		return [2]int{0, 2}
	}
}
