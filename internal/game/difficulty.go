package game

// Difficulty selects the opponent parameter tier for a session.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// DifficultyParams tunes an opponent for its whole lifetime.
type DifficultyParams struct {
	MaxSpeed       float64
	BaseSpeed      float64
	ReactionTime   float64 // seconds of AI input lag
	CollisionRisk  float64 // how late the AI brakes behind a blocker
	Aggressiveness float64 // overtake roll threshold
	CurveSlowdown  float64 // speed factor applied into curves
}

// Params returns the fixed tuple for a tier. Unknown values fall back to
// medium.
func (d Difficulty) Params() DifficultyParams {
	switch d {
	case DifficultyEasy:
		return DifficultyParams{
			MaxSpeed:       520,
			BaseSpeed:      380,
			ReactionTime:   0.9,
			CollisionRisk:  0.15,
			Aggressiveness: 0.25,
			CurveSlowdown:  0.60,
		}
	case DifficultyHard:
		return DifficultyParams{
			MaxSpeed:       760,
			BaseSpeed:      560,
			ReactionTime:   0.35,
			CollisionRisk:  0.45,
			Aggressiveness: 0.75,
			CurveSlowdown:  0.82,
		}
	default:
		return DifficultyParams{
			MaxSpeed:       640,
			BaseSpeed:      470,
			ReactionTime:   0.6,
			CollisionRisk:  0.30,
			Aggressiveness: 0.50,
			CurveSlowdown:  0.72,
		}
	}
}

// OpponentCount is how many AI cars a tier keeps in the recycling pool.
func (d Difficulty) OpponentCount() int {
	switch d {
	case DifficultyEasy:
		return 4
	case DifficultyHard:
		return 7
	default:
		return 5
	}
}
