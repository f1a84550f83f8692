package rebatedor

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rebatedor/internal/config"
	"github.com/vovakirdan/rebatedor/internal/core"
)

// Move is the direction of a pointer movement between two samples.
type Move int

const (
	MoveNone Move = iota
	MoveLeft
	MoveRight
)

// String returns a human-readable name for the move.
func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "none"
	}
}

// ClassifyMove compares the normalized X of two pointer samples.
// Without a previous sample the move is MoveNone.
func ClassifyMove(prev, cur core.PointerSample) Move {
	if !prev.Valid || !cur.Valid {
		return MoveNone
	}
	switch {
	case cur.NDC.X() > prev.NDC.X():
		return MoveRight
	case cur.NDC.X() < prev.NDC.X():
		return MoveLeft
	default:
		return MoveNone
	}
}

// Paddle is the rebatedor: a rigid chain of segments driven by the anchor (segment 0).
type Paddle struct {
	Segments     []*GameObject
	SegmentWidth float64
	Limits       config.PaddleLimits
}

// NewPaddle creates the segments from cfg with the anchor at cfg.StartX.
func NewPaddle(cfg config.PaddleConfig, limits config.PaddleLimits) *Paddle {
	p := &Paddle{
		Segments:     make([]*GameObject, cfg.Segments),
		SegmentWidth: cfg.SegmentWidth,
		Limits:       limits,
	}

	size := mgl64.Vec3{cfg.SegmentWidth, cfg.SegmentHeight, cfg.SegmentDepth}
	for i := range p.Segments {
		pos := mgl64.Vec3{cfg.StartX + float64(i)*cfg.SegmentWidth, 0, cfg.Z}
		p.Segments[i] = NewGameObject(KindPaddleSegment, pos, size, core.ColorWhite)
	}
	return p
}

// Anchor returns segment 0.
func (p *Paddle) Anchor() *GameObject {
	return p.Segments[0]
}

// Follow moves the anchor to the pointer hit X unless it rests on a limit
// the move pushes against. The other segments follow rigidly.
// Returns whether the paddle moved.
func (p *Paddle) Follow(move Move, hitX float64) bool {
	if move == MoveNone || p.blocked(move, hitX) {
		return false
	}
	p.Place(core.ClampF(hitX, p.Limits.MinX, p.Limits.MaxX))
	return true
}

// blocked applies the limit rules for the anchor.
// At the right limit a right move never passes and a left move only passes
// once the pointer is back inside MaxReleaseX; the left limit mirrors this.
func (p *Paddle) blocked(move Move, hitX float64) bool {
	x := p.Anchor().Position.X()
	l := p.Limits

	switch move {
	case MoveRight:
		if x >= l.MaxX {
			return true
		}
		if x <= l.MinX && hitX <= l.MinReleaseX {
			return true
		}
	case MoveLeft:
		if x <= l.MinX {
			return true
		}
		if x >= l.MaxX && hitX >= l.MaxReleaseX {
			return true
		}
	}
	return false
}

// Place puts the anchor at x, chains the rest and refreshes all bounds.
func (p *Paddle) Place(x float64) {
	p.Anchor().SetX(x)
	for i := 1; i < len(p.Segments); i++ {
		p.Segments[i].SetX(p.Segments[i-1].Position.X() + p.SegmentWidth)
	}
}
