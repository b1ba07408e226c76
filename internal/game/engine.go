package game

import "sync/atomic"

// steerRamp is how much a held steer key adds per tick; together with the
// self-centering decay it ramps to full lock in about half a second.
const steerRamp = 0.25

// Config wires a session together. Zero values get sane defaults.
type Config struct {
	Seed     uint64
	Settings Settings
	Track    *Track
	Store    HighScoreStore
	Bus      *EventBus
}

// Engine owns the simulation: the state machine, the fixed-timestep
// accumulator and the per-tick orchestration. All mutation happens on the
// goroutine calling Advance; renderers read published snapshots and input
// handlers write the latch, so no lock is needed.
type Engine struct {
	state    EngineState
	settings Settings
	store    HighScoreStore
	bus      *EventBus
	seed     uint64

	track     *Track
	player    *PlayerCar
	opponents []*Opponent

	latch     inputLatch
	score     float64
	highScore int
	simTime   float64 // seconds of simulated time; excludes pauses by construction
	gameSpeed float64
	rank      int

	// Accumulator. The wall-clock baseline is dropped on pause so time
	// spent paused can never leak into the next resumed step.
	acc      float64
	lastTime float64
	haveLast bool

	snap atomic.Pointer[Snapshot]
}

func NewEngine(cfg Config) *Engine {
	if cfg.Track == nil {
		cfg.Track = GenerateTrack(cfg.Seed)
	}
	if cfg.Store == nil {
		cfg.Store = NullStore{}
	}
	if cfg.Bus == nil {
		cfg.Bus = NewEventBus()
	}
	e := &Engine{
		state:     StateLoading,
		settings:  cfg.Settings.Clamped(),
		store:     cfg.Store,
		bus:       cfg.Bus,
		seed:      cfg.Seed,
		track:     cfg.Track,
		gameSpeed: GameSpeedStart,
	}
	e.publish()
	return e
}

func (e *Engine) State() EngineState { return e.state }
func (e *Engine) Bus() *EventBus     { return e.bus }
func (e *Engine) Track() *Track      { return e.track }

// Snapshot returns the most recently published state.
func (e *Engine) Snapshot() *Snapshot {
	return e.snap.Load()
}

// Start begins a fresh session from LOADING or GAME_OVER. Calling it
// while already running is a no-op.
func (e *Engine) Start() {
	if e.state == StateRunning || e.state == StatePaused {
		return
	}
	e.setState(StateLoading)

	e.track.ResetScroll()
	e.player = NewPlayerCar()
	diff := e.settings.DifficultyTier()
	n := diff.OpponentCount()
	e.opponents = make([]*Opponent, 0, n)
	for i := 0; i < n; i++ {
		e.opponents = append(e.opponents, NewOpponent(i, e.seed, diff, e.track))
	}

	e.latch = inputLatch{}
	e.score = 0
	e.simTime = 0
	e.gameSpeed = GameSpeedStart
	e.rank = 1
	e.highScore = e.store.Load()
	e.acc = 0
	e.haveLast = false

	e.setState(StateRunning)
	e.publish()
}

// Pause freezes the simulation. No-op unless running.
func (e *Engine) Pause() {
	if e.state != StateRunning {
		return
	}
	e.setState(StatePaused)
	e.publish()
}

// Resume continues from a pause. No-op unless paused. The accumulator
// baseline resets so the pause duration does not turn into catch-up steps.
func (e *Engine) Resume() {
	if e.state != StatePaused {
		return
	}
	e.acc = 0
	e.haveLast = false
	e.setState(StateRunning)
	e.publish()
}

// Stop abandons the session and returns to LOADING.
func (e *Engine) Stop() {
	if e.state == StateLoading {
		return
	}
	e.setState(StateLoading)
	e.publish()
}

// HandleInput latches a discrete input event. Ignored while not running.
func (e *Engine) HandleInput(ev InputEvent) {
	if e.state != StateRunning {
		return
	}
	e.latch.apply(ev)
}

// SetTilt latches the continuous tilt value in [-1, 1]. Ignored while
// not running.
func (e *Engine) SetTilt(v float64) {
	if e.state != StateRunning {
		return
	}
	e.latch.tilt = clampF(v, -1, 1)
	e.latch.tiltActive = true
}

// Advance consumes wall-clock time and runs zero or more fixed steps.
// now is a monotonic timestamp in seconds; deltas are clamped so a stall
// never causes a burst of catch-up steps.
func (e *Engine) Advance(now float64) {
	if e.state != StateRunning {
		e.haveLast = false
		return
	}
	if !e.haveLast {
		e.lastTime = now
		e.haveLast = true
		return
	}
	dt := now - e.lastTime
	e.lastTime = now
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	e.acc += dt
	for e.acc >= TimeStep {
		e.acc -= TimeStep
		e.safeStep()
		if e.state != StateRunning {
			e.acc = 0
			break
		}
	}
}

// safeStep confines any internal fault to a single degraded tick instead
// of tearing down the loop.
func (e *Engine) safeStep() {
	defer func() {
		_ = recover()
	}()
	e.step()
}

// step runs one fixed simulation tick in the strict order: input →
// scroll → player → opponents (+recycle) → collision → score → time →
// rank → publish.
func (e *Engine) step() {
	// Latched input.
	if s := e.latch.steer(e.settings); s != 0 {
		if e.latch.left || e.latch.right {
			e.player.Steer(s * steerRamp)
		} else {
			e.player.SetSteer(s)
		}
	}
	e.player.Accelerating = e.latch.accel
	e.player.Braking = e.latch.brake

	// Track scroll follows the player's forward velocity.
	scrollRate := e.player.VForward * e.gameSpeed
	e.track.Advance(scrollRate * TimeStep)

	// Player. Off-road classification uses the scrolled track-space
	// position under the pinned baseline.
	e.player.OffRoad = !e.track.OnRoad(e.player.X, e.track.Scroll())
	if e.player.OffRoad {
		e.player.HP.Damage(OffRoadDrainPerSec * TimeStep)
	}
	e.player.Update(TimeStep)

	// Opponents, with pool recycling. The respawn line is checked before
	// the car moves: a fast car past the line would otherwise pull its Y
	// back under the threshold each tick and never recycle.
	for _, o := range e.opponents {
		if o.Y > RespawnY {
			o.Reset()
			e.bus.Emit(Event{Type: EventRespawn, X: o.X, Y: o.Y, Data: o.Index})
		}
		o.Update(TimeStep, e.gameSpeed, scrollRate, e.opponents, e.player, e.track)
	}

	// Collision: at most one pair per tick.
	if idx := FirstCollision(e.player, e.opponents); idx >= 0 {
		o := e.opponents[idx]
		dx := o.X - e.player.X
		dy := o.Y - e.player.Y
		e.player.ApplyCollision(dx, dy)
		o.ApplyCollision(-dx, -dy)
		e.score *= CollisionScorePenalty
		if e.score < 0 {
			e.score = 0
		}
		e.player.HP.Damage(CollisionDamage)
		e.bus.Emit(Event{Type: EventCollision, X: o.X, Y: o.Y, Data: idx})
	}

	// Score accrues from player speed.
	e.score += e.player.VForward * TimeStep * ScoreRate

	// Time and global speed ramp.
	e.simTime += TimeStep
	e.gameSpeed = GameSpeedStart + (GameSpeedMax-GameSpeedStart)*clampF(e.simTime/GameSpeedRampTime, 0, 1)

	// Rank: smaller world-Y is further along.
	e.rank = 1
	for _, o := range e.opponents {
		if o.Y < e.player.Y {
			e.rank++
		}
	}

	if e.player.HP.IsDead() {
		e.store.SaveIfHigher(int(e.score))
		if int(e.score) > e.highScore {
			e.highScore = int(e.score)
		}
		e.setState(StateGameOver)
	}

	e.publish()
}

func (e *Engine) setState(s EngineState) {
	if e.state == s {
		return
	}
	e.state = s
	e.bus.Emit(Event{Type: EventStateChange, Data: int(s)})
	if s == StateGameOver {
		e.bus.Emit(Event{Type: EventGameOver, Data: int(e.score)})
	}
}

// publish stores a fresh immutable snapshot for concurrent readers.
func (e *Engine) publish() {
	snap := &Snapshot{
		State:     e.state,
		Score:     int(e.score),
		HighScore: e.highScore,
		TimeMs:    int64(e.simTime * 1000),
		Rank:      e.rank,
		GameOver:  e.state == StateGameOver,
		Scroll:    e.track.Scroll(),
		GameSpeed: e.gameSpeed,
	}
	if e.player != nil {
		snap.Speed = e.player.VForward
		snap.HPFraction = e.player.HP.Fraction()
		snap.Player = CarPose{
			X: e.player.X, Y: e.player.Y,
			Rotation: e.player.Rotation,
			Scale:    e.player.ImpactScale,
			Lane:     e.player.Lane,
		}
	}
	if len(e.opponents) > 0 {
		snap.Opponents = make([]CarPose, len(e.opponents))
		for i, o := range e.opponents {
			snap.Opponents[i] = CarPose{
				X: o.X, Y: o.Y,
				Rotation: o.Rotation,
				Scale:    o.ImpactScale,
				Lane:     o.Lane,
			}
		}
	}
	e.snap.Store(snap)
}
