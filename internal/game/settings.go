package game

import (
	"encoding/json"
	"os"
)

// Settings are user preferences read at session start. Out-of-range
// values are silently clamped, never rejected.
type Settings struct {
	TiltSensitivity float64 `json:"tiltSensitivity"`
	DeadZone        float64 `json:"deadZone"`
	SoundEnabled    bool    `json:"soundEnabled"`
	TiltEnabled     bool    `json:"tiltEnabled"`
	Difficulty      string  `json:"difficulty"` // easy / medium / hard
}

func DefaultSettings() Settings {
	return Settings{
		TiltSensitivity: 1.0,
		DeadZone:        0.05,
		SoundEnabled:    true,
		TiltEnabled:     false,
		Difficulty:      "medium",
	}
}

// Clamped returns a copy with every field forced into its valid range.
func (s Settings) Clamped() Settings {
	s.TiltSensitivity = clampF(s.TiltSensitivity, 0.1, 3.0)
	s.DeadZone = clampF(s.DeadZone, 0, 0.5)
	switch s.Difficulty {
	case "easy", "medium", "hard":
	default:
		s.Difficulty = "medium"
	}
	return s
}

// DifficultyTier maps the settings string to a tier.
func (s Settings) DifficultyTier() Difficulty {
	switch s.Difficulty {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// LoadSettings reads settings from a JSON file. Missing or malformed
// files yield the defaults.
func LoadSettings(path string) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings()
	}
	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings()
	}
	return s.Clamped()
}
