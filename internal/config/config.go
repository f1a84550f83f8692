// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

import (
	"errors"
	"fmt"
)

// Collision gate modes.
const (
	GateShared = "shared" // One colliding flag for bricks, edges and paddle
	GateSplit  = "split"  // Independent flags for bricks/edges and paddle
)

// RebatedorConfig contains all configuration for the game.
type RebatedorConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Bricks     BricksConfig     `yaml:"bricks"`
	Edges      EdgesConfig      `yaml:"edges"`
	Collision  CollisionConfig  `yaml:"collision"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the ground plane and camera.
type PlayfieldConfig struct {
	Width      float64 `yaml:"width" env:"REBATEDOR_PLAYFIELD_WIDTH"`
	Height     float64 `yaml:"height" env:"REBATEDOR_PLAYFIELD_HEIGHT"`
	ViewSize   float64 `yaml:"view_size" env:"REBATEDOR_VIEW_SIZE"`
	LoseMargin float64 `yaml:"lose_margin" env:"REBATEDOR_LOSE_MARGIN"`
}

// PaddleConfig defines the segmented paddle.
type PaddleConfig struct {
	Segments      int           `yaml:"segments"`
	SegmentWidth  float64       `yaml:"segment_width"`
	SegmentHeight float64       `yaml:"segment_height"`
	SegmentDepth  float64       `yaml:"segment_depth"`
	Z             float64       `yaml:"z" env:"REBATEDOR_PADDLE_Z"`
	StartX        float64       `yaml:"start_x"`
	Limits        *PaddleLimits `yaml:"limits,omitempty"`
}

// PaddleLimits are the clamp lines for the anchor segment X.
// A release threshold is how far the pointer must come back before the
// anchor leaves a limit it is resting on.
type PaddleLimits struct {
	MinX        float64 `yaml:"min_x"`
	MaxX        float64 `yaml:"max_x"`
	MinReleaseX float64 `yaml:"min_release_x"`
	MaxReleaseX float64 `yaml:"max_release_x"`
}

// BallConfig defines the ball and its paddle response.
type BallConfig struct {
	Radius       float64   `yaml:"radius"`
	Step         float64   `yaml:"step" env:"REBATEDOR_BALL_STEP"`
	ServeSegment int       `yaml:"serve_segment" env:"REBATEDOR_SERVE_SEGMENT"`
	KickAngles   []float64 `yaml:"kick_angles"` // Degrees, one per paddle segment
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Rows      int      `yaml:"rows" env:"REBATEDOR_BRICK_ROWS"`
	Cols      int      `yaml:"cols" env:"REBATEDOR_BRICK_COLS"`
	Size      float64  `yaml:"size"`
	TopOffset float64  `yaml:"top_offset"`
	Colors    []string `yaml:"colors"`
}

// EdgesConfig defines which border walls exist.
type EdgesConfig struct {
	Size   float64 `yaml:"size"`
	Top    bool    `yaml:"top"`
	Bottom bool    `yaml:"bottom" env:"REBATEDOR_BOTTOM_WALL"`
	Sides  bool    `yaml:"sides"`
	Color  string  `yaml:"color"`
}

// CollisionConfig selects the collision debounce strategy.
type CollisionConfig struct {
	Gate string `yaml:"gate" env:"REBATEDOR_COLLISION_GATE"`
}

// DifficultyConfig defines the ball speed progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the ball step at max difficulty
}

// HalfWidth returns half the playfield width.
func (c RebatedorConfig) HalfWidth() float64 {
	return c.Playfield.Width / 2
}

// HalfHeight returns half the playfield height.
func (c RebatedorConfig) HalfHeight() float64 {
	return c.Playfield.Height / 2
}

// ResolveLimits returns the explicit limits if configured, otherwise limits
// derived so the whole paddle stays on the playfield.
func (p PaddleConfig) ResolveLimits(halfWidth float64) PaddleLimits {
	if p.Limits != nil {
		return *p.Limits
	}
	half := p.SegmentWidth / 2
	minX := -halfWidth + half
	maxX := halfWidth - float64(p.Segments-1)*p.SegmentWidth - half
	return PaddleLimits{
		MinX:        minX,
		MaxX:        maxX,
		MinReleaseX: minX,
		MaxReleaseX: maxX,
	}
}

// Validate reports configuration that cannot produce a playable field.
func (c RebatedorConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must have positive size, got %vx%v", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Paddle.Segments <= 0 || c.Paddle.SegmentWidth <= 0 {
		errs = append(errs, errors.New("paddle needs at least one segment of positive width"))
	}
	if len(c.Ball.KickAngles) != c.Paddle.Segments {
		errs = append(errs, fmt.Errorf("ball.kick_angles has %d entries for %d paddle segments", len(c.Ball.KickAngles), c.Paddle.Segments))
	}
	if c.Ball.ServeSegment < 0 || c.Ball.ServeSegment >= c.Paddle.Segments {
		errs = append(errs, fmt.Errorf("ball.serve_segment %d out of range", c.Ball.ServeSegment))
	}
	if c.Ball.Step <= 0 || c.Ball.Radius <= 0 {
		errs = append(errs, errors.New("ball step and radius must be positive"))
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0 || c.Bricks.Size <= 0 {
		errs = append(errs, errors.New("brick grid must have positive rows, cols and size"))
	}
	if len(c.Bricks.Colors) == 0 {
		errs = append(errs, errors.New("bricks.colors must not be empty"))
	}
	if c.Collision.Gate != GateShared && c.Collision.Gate != GateSplit {
		errs = append(errs, fmt.Errorf("collision.gate must be %q or %q, got %q", GateShared, GateSplit, c.Collision.Gate))
	}
	if c.Paddle.Limits == nil && c.Paddle.Segments > 0 {
		if l := c.Paddle.ResolveLimits(c.HalfWidth()); l.MinX > l.MaxX {
			errs = append(errs, errors.New("paddle is wider than the playfield"))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset. Unknown values yield "".
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// LookupDifficultyPreset parses a user-supplied preset. An empty string means
// no preset; an unknown name is an error.
func LookupDifficultyPreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p := ParseDifficultyPreset(s)
	if p == "" {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return p, nil
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
