package config

import (
	"strings"
	"time"
)

// Difficulty is a named speed preset.
type Difficulty struct {
	Name string `json:"name"`
	// SnakeSpeed is the delay between two logic ticks.
	SnakeSpeed time.Duration `json:"snake_speed"`
	// CherrySpawnDelay is carried with the preset and reported, the tick
	// respawns a cherry on the same tick it was eaten regardless.
	CherrySpawnDelay time.Duration `json:"cherry_spawn_delay"`
}

// Difficulty presets.
var (
	Easy = Difficulty{
		Name:             "easy",
		SnakeSpeed:       50 * time.Millisecond,
		CherrySpawnDelay: 500 * time.Millisecond,
	}
	Moderate = Difficulty{
		Name:             "moderate",
		SnakeSpeed:       35 * time.Millisecond,
		CherrySpawnDelay: 300 * time.Millisecond,
	}
	Hard = Difficulty{
		Name:             "hard",
		SnakeSpeed:       25 * time.Millisecond,
		CherrySpawnDelay: 200 * time.Millisecond,
	}
)

// Difficulties lists the presets from slowest to fastest.
var Difficulties = []Difficulty{Easy, Moderate, Hard}

// LookupDifficulty finds a preset by name, ignoring case. Unknown names
// return Easy and false.
func LookupDifficulty(name string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Easy, false
}

// DifficultyNames returns the preset names, for flag help text.
func DifficultyNames() []string {
	names := make([]string, 0, len(Difficulties))
	for _, d := range Difficulties {
		names = append(names, d.Name)
	}
	return names
}
