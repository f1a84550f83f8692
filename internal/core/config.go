package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt the camera to the viewport.
type RuntimeConfig struct {
	ScreenW  int // Viewport width (cells or pixels)
	ScreenH  int // Viewport height (cells or pixels)
	TickRate int // Simulation ticks per second (default 60)

	// PixelAspect is the width/height ratio of one viewport unit.
	// Terminal cells are about twice as tall as wide; window pixels are square.
	PixelAspect float64
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,

		PixelAspect: 0.5,
	}
}

// Aspect returns the horizontal/vertical ratio of the viewport in world terms.
func (c RuntimeConfig) Aspect() float64 {
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return 1
	}
	pa := c.PixelAspect
	if pa <= 0 {
		pa = 1
	}
	return float64(c.ScreenW) * pa / float64(c.ScreenH)
}

// Phase is the coarse lifecycle of a round as seen by the platform.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseServing Phase = "serving"
	PhasePlaying Phase = "playing"
	PhasePaused  Phase = "paused"
	PhaseOver    Phase = "over"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    Phase
	Score    int  // Bricks destroyed this round
	GameOver bool // Whether the round has ended
	Won      bool // Whether it ended with the grid cleared
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// ToggleFullscreen asks the host to flip fullscreen mode.
	ToggleFullscreen bool
}
