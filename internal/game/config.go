package game

// Track-space layout (pixels). X is lateral, Y runs down the track;
// smaller world-Y is further ahead of the start line.
const (
	LaneCount = 3
	LaneWidth = 200.0

	RoadLeft  = 100.0
	RoadRight = 700.0

	TrackLength     = 12000.0
	WaypointSpacing = 100.0

	// The player is pinned to this Y; the world scrolls past it.
	PlayerBaselineY = 600.0

	// Opponents drifting this far downfield are recycled above the screen.
	RespawnY    = 2000.0
	RecycleMinY = 200.0
	RecycleMaxY = 800.0
)

// LaneCenterX returns the fixed X coordinate of a lane (200/400/600).
func LaneCenterX(lane int) float64 {
	return LaneWidth + LaneWidth*float64(clamp(lane, 0, LaneCount-1))
}

// Window defaults.
const (
	WindowWidth  = 480
	WindowHeight = 720
)

// Fixed-timestep loop.
const (
	TimeStep      = 1.0 / 60.0
	MaxFrameDelta = 0.1 // clamp per-frame wall delta to avoid catch-up bursts
)

// Car dimensions (track-space).
const (
	CarWidth  = 60.0
	CarHeight = 100.0
)

// Player physics.
const (
	PlayerMaxSpeed        = 800.0
	PlayerAccel           = 500.0
	PlayerBrakeForce      = 700.0
	ForwardFriction       = 0.98 // per-tick coasting decay
	BaseGrip              = 0.85
	DriftFactor           = 0.4
	MinTurnRadius         = 50.0
	MaxRotation           = 0.2 // rad
	RotationDecay         = 0.95
	SteerDecay            = 0.9
	MinSteerInput         = 0.01
	MinSteerSpeed         = 10.0
	CollisionRecoveryTime = 1.0
	CollisionSpeedLoss    = 0.5
	ImpactScalePeak       = 1.35
)

// Opponent AI.
const (
	WaypointReachedDistance = 50.0
	WaypointPassedMargin    = 50.0
	WaypointLookback        = 100.0
	CurveApproachDistance   = 200.0
	CurveRadiusRef          = 500.0
	OvertakeScanDistance    = 300.0
	OvertakeSpeedAdvantage  = 1.10
	LaneClearDistance       = 200.0
	LaneChangeCooldown      = 3.0
	OvertakePassedMargin    = 100.0
	ReturnCenterChance      = 0.7
	LaneConvergeTolerance   = 10.0
	WaypointBlendWeight     = 0.6
	CurveBrakeFactor        = 1.5 // braking into curves is stronger than accel
)

// Session tuning.
const (
	ScoreRate             = 0.02 // score per track-space pixel traveled
	CollisionScorePenalty = 0.95
	PlayerMaxHP           = 5.0
	CollisionDamage       = 1.0
	OffRoadDrainPerSec    = 0.75
	OffRoadDrag           = 0.95 // extra per-tick speed decay off the road
	GameSpeedStart        = 1.0
	GameSpeedMax          = 1.5
	GameSpeedRampTime     = 180.0 // seconds of sim time to reach max
)
