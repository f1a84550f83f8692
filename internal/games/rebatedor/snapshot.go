package rebatedor

import (
	"math"

	"github.com/vovakirdan/rebatedor/internal/core"
)

// Snapshot contains the complete simulation state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  uint64
	Phase string
	Won   bool
	Score int

	PaddleX float64 // Anchor segment X

	BallX, BallZ    float64
	BallYaw         float64
	BallVisible     bool
	Colliding       bool
	PaddleColliding bool

	// Brick alive flags, row-major
	Bricks []bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	bricks := make([]bool, 0, w.Grid.Total())
	for _, row := range w.Grid.Bricks {
		for _, b := range row {
			bricks = append(bricks, b.Alive)
		}
	}

	return Snapshot{
		Tick:  uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase: string(g.phase),
		Won:   g.won,
		Score: g.Score(),

		PaddleX: w.Paddle.Anchor().Position.X(),

		BallX:           w.Ball.Position.X(),
		BallZ:           w.Ball.Position.Z(),
		BallYaw:         w.Ball.Yaw,
		BallVisible:     w.Ball.Visible,
		Colliding:       w.Ball.colliding,
		PaddleColliding: w.Ball.paddleColliding,

		Bricks: bricks,
	}
}

// ApplySnapshot restores simulation state from a snapshot.
// The grid shape must match; mismatched brick data is ignored.
func (g *Game) ApplySnapshot(snap Snapshot) {
	w := g.world
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.phase = core.Phase(snap.Phase)
	g.won = snap.Won

	w.Paddle.Place(snap.PaddleX)

	b := w.Ball
	b.Position[0] = snap.BallX
	b.Position[2] = snap.BallZ
	b.Yaw = snap.BallYaw
	b.Visible = snap.BallVisible
	b.colliding = snap.Colliding
	b.paddleColliding = snap.PaddleColliding
	b.RefreshBounds()

	if len(snap.Bricks) == w.Grid.Total() {
		i := 0
		for _, row := range w.Grid.Bricks {
			for _, brick := range row {
				brick.Alive = snap.Bricks[i]
				brick.Visible = snap.Bricks[i]
				i++
			}
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.Phase {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + boolBit(snap.Won)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallZ)
	h = h*31 + math.Float64bits(snap.BallYaw)
	h = h*31 + boolBit(snap.BallVisible)
	h = h*31 + boolBit(snap.Colliding)
	h = h*31 + boolBit(snap.PaddleColliding)

	for _, alive := range snap.Bricks {
		h = h*31 + boolBit(alive)
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
