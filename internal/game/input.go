package game

// InputEvent is a discrete control event from the platform input source.
// Events arriving while the engine is not running are ignored.
type InputEvent int

const (
	SteerLeft InputEvent = iota
	SteerRight
	ReleaseLeft
	ReleaseRight
	Accelerate
	ReleaseAccelerate
	Brake
	ReleaseBrake
)

// inputLatch holds the most recent control state. Platform handlers
// overwrite independent fields (last-writer-wins); the engine applies the
// latch to the player at the top of each step.
type inputLatch struct {
	left, right bool
	accel       bool
	brake       bool
	tilt        float64
	tiltActive  bool
}

func (l *inputLatch) apply(ev InputEvent) {
	switch ev {
	case SteerLeft:
		l.left = true
	case SteerRight:
		l.right = true
	case ReleaseLeft:
		l.left = false
	case ReleaseRight:
		l.right = false
	case Accelerate:
		l.accel = true
	case ReleaseAccelerate:
		l.accel = false
	case Brake:
		l.brake = true
	case ReleaseBrake:
		l.brake = false
	}
}

// steer resolves the latch to a steering input in [-1, 1]. Tilt takes
// over when active and outside the dead zone; keys override tilt.
func (l *inputLatch) steer(s Settings) float64 {
	switch {
	case l.left && !l.right:
		return -1
	case l.right && !l.left:
		return 1
	}
	if l.tiltActive && s.TiltEnabled {
		t := l.tilt
		if t > -s.DeadZone && t < s.DeadZone {
			return 0
		}
		return clampF(t*s.TiltSensitivity, -1, 1)
	}
	return 0
}
