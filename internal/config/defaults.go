package config

import (
	_ "embed"
)

//go:embed defaults/rebatedor.yaml
var defaultRebatedorYAML []byte

// DefaultRebatedorConfig returns the default configuration.
// It mirrors defaults/rebatedor.yaml and is used when the embedded file cannot be parsed.
func DefaultRebatedorConfig() RebatedorConfig {
	return RebatedorConfig{
		Playfield: PlayfieldConfig{
			Width:      50,
			Height:     100,
			ViewSize:   110,
			LoseMargin: 5,
		},
		Paddle: PaddleConfig{
			Segments:      5,
			SegmentWidth:  5,
			SegmentHeight: 4,
			SegmentDepth:  2,
			Z:             40,
			StartX:        -5,
		},
		Ball: BallConfig{
			Radius:       1,
			Step:         0.5,
			ServeSegment: 0,
			KickAngles:   []float64{220, 200, 180, 160, 140},
		},
		Bricks: BricksConfig{
			Rows:      5,
			Cols:      10,
			Size:      5,
			TopOffset: 10,
			Colors:    []string{"yellow", "blue", "pink", "green", "brown"},
		},
		Edges: EdgesConfig{
			Size:   5,
			Top:    true,
			Bottom: false,
			Sides:  true,
			Color:  "grey",
		},
		Collision: CollisionConfig{
			Gate: GateShared,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// LegacyPaddleLimits are the empirically tuned clamp constants of the first
// release, kept so old configs can opt back into them.
func LegacyPaddleLimits() PaddleLimits {
	return PaddleLimits{
		MinX:        -23.68,
		MaxX:        13.67,
		MinReleaseX: -23.73,
		MaxReleaseX: 12.5,
	}
}
