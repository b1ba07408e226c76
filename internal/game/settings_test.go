package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettingsClamped(t *testing.T) {
	s := Settings{TiltSensitivity: 99, DeadZone: -1, Difficulty: "nightmare"}
	c := s.Clamped()
	if c.TiltSensitivity != 3.0 {
		t.Errorf("sensitivity = %v", c.TiltSensitivity)
	}
	if c.DeadZone != 0 {
		t.Errorf("dead zone = %v", c.DeadZone)
	}
	if c.Difficulty != "medium" {
		t.Errorf("difficulty = %q", c.Difficulty)
	}

	ok := Settings{TiltSensitivity: 1.5, DeadZone: 0.1, Difficulty: "hard"}
	if got := ok.Clamped(); got != ok {
		t.Errorf("in-range settings should be unchanged: %+v", got)
	}
}

func TestDifficultyTier(t *testing.T) {
	cases := []struct {
		in   string
		want Difficulty
	}{
		{"easy", DifficultyEasy},
		{"medium", DifficultyMedium},
		{"hard", DifficultyHard},
		{"", DifficultyMedium},
		{"bogus", DifficultyMedium},
	}
	for _, c := range cases {
		if got := (Settings{Difficulty: c.in}).DifficultyTier(); got != c.want {
			t.Errorf("DifficultyTier(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()

	if got := LoadSettings(filepath.Join(dir, "missing.json")); got != DefaultSettings() {
		t.Errorf("missing file should yield defaults, got %+v", got)
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{nope"), 0o644)
	if got := LoadSettings(bad); got != DefaultSettings() {
		t.Errorf("malformed file should yield defaults, got %+v", got)
	}

	good := filepath.Join(dir, "good.json")
	os.WriteFile(good, []byte(`{"tiltSensitivity": 2.0, "difficulty": "hard", "soundEnabled": false}`), 0o644)
	got := LoadSettings(good)
	if got.TiltSensitivity != 2.0 || got.Difficulty != "hard" || got.SoundEnabled {
		t.Errorf("loaded settings wrong: %+v", got)
	}

	// Out-of-range values in the file are clamped, not rejected.
	wild := filepath.Join(dir, "wild.json")
	os.WriteFile(wild, []byte(`{"tiltSensitivity": 100, "deadZone": 0.9}`), 0o644)
	got = LoadSettings(wild)
	if got.TiltSensitivity != 3.0 || got.DeadZone != 0.5 {
		t.Errorf("loaded settings not clamped: %+v", got)
	}
}

func TestDifficultyParams(t *testing.T) {
	easy := DifficultyEasy.Params()
	hard := DifficultyHard.Params()
	if easy.MaxSpeed >= hard.MaxSpeed {
		t.Error("hard tier should be faster than easy")
	}
	if easy.Aggressiveness >= hard.Aggressiveness {
		t.Error("hard tier should overtake more")
	}
	if easy.ReactionTime <= hard.ReactionTime {
		t.Error("hard tier should react faster")
	}
	if DifficultyEasy.OpponentCount() >= DifficultyHard.OpponentCount() {
		t.Error("hard tier should field more cars")
	}
	if Difficulty(99).Params() != DifficultyMedium.Params() {
		t.Error("unknown tier should fall back to medium")
	}
}
