package rebatedor

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rebatedor/internal/config"
	"github.com/vovakirdan/rebatedor/internal/core"
)

// World holds every simulated object. The Game owns one and passes it to
// each component, so components can be tested on a hand-built World.
type World struct {
	Grid   *Grid
	Edges  []*GameObject
	Paddle *Paddle
	Ball   *Ball

	// Ground is the footprint of the ground plane; pointer raycasts must land on it.
	Ground core.Box
	// Field is the ground plus the edge walls, used to frame cameras. A ball
	// outside it has escaped.
	Field core.Box

	kickAngles []float64 // Radians, indexed by paddle segment
}

// NewWorld builds the playfield described by cfg.
// Bricks, edges and paddle segments are created once and reused across rounds.
func NewWorld(cfg config.RebatedorConfig) *World {
	halfW, halfH := cfg.HalfWidth(), cfg.HalfHeight()

	colors := make([]core.Color, len(cfg.Bricks.Colors))
	for i, name := range cfg.Bricks.Colors {
		colors[i] = core.ParseColor(name)
	}

	kicks := make([]float64, len(cfg.Ball.KickAngles))
	for i, deg := range cfg.Ball.KickAngles {
		kicks[i] = mgl64.DegToRad(deg)
	}

	w := &World{
		Grid: SetupGrid(cfg.Bricks.Rows, cfg.Bricks.Cols, GridLayout{
			Size:    cfg.Bricks.Size,
			OriginX: -halfW + cfg.Bricks.Size/2,
			OriginZ: -halfH + cfg.Bricks.TopOffset,
			Colors:  colors,
		}),
		Edges:      SetupEdges(cfg),
		Paddle:     NewPaddle(cfg.Paddle, cfg.Paddle.ResolveLimits(halfW)),
		Ball:       NewBall(cfg.Ball.Radius, cfg.Collision.Gate),
		Ground:     core.BoxFromCenter(mgl64.Vec3{}, mgl64.Vec3{halfW, 0, halfH}),
		kickAngles: kicks,
	}

	margin := cfg.Edges.Size
	w.Field = core.BoxFromCenter(mgl64.Vec3{}, mgl64.Vec3{halfW + margin, 0, halfH + margin})
	return w
}

// Serve revives the grid and puts the ball, facing +Z, on the given paddle segment.
func (w *World) Serve(segment int) {
	w.Grid.ResetGrid()
	w.Ball.Place(w.Paddle.Segments[segment].Position)
}

// Sprites lists every visible object in draw order: edges, bricks, paddle, ball.
func (w *World) Sprites() []core.Sprite {
	sprites := make([]core.Sprite, 0, len(w.Edges)+w.Grid.Total()+len(w.Paddle.Segments)+1)
	for _, e := range w.Edges {
		sprites = append(sprites, e.Sprite())
	}
	for _, row := range w.Grid.Bricks {
		for _, b := range row {
			if b.Visible {
				sprites = append(sprites, b.Sprite())
			}
		}
	}
	for _, s := range w.Paddle.Segments {
		sprites = append(sprites, s.Sprite())
	}
	if w.Ball.Visible {
		sprites = append(sprites, w.Ball.Sprite())
	}
	return sprites
}
