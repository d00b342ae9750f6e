package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second for games without their own pacing
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 33,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventType names something notable that happened during a tick.
type EventType string

const (
	EventBulletFired       EventType = "bullet_fired"
	EventAlienKilled       EventType = "alien_killed"
	EventDefenderHit       EventType = "defender_hit"
	EventDefenderDestroyed EventType = "defender_destroyed"
	EventWaveCleared       EventType = "wave_cleared"
	EventGameOver          EventType = "game_over"
)

// Event is reported by Game.Step so the platform can log or react.
// Value carries the event's number (points, lives left, wave).
type Event struct {
	Type  EventType
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// HasEvent reports whether the tick produced an event of the given type.
func (r StepResult) HasEvent(t EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}
