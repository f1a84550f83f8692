package rebatedor

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rebatedor/internal/config"
	"github.com/vovakirdan/rebatedor/internal/core"
)

// Ball is the single ball. It travels along its yaw and turns on hits.
//
// After a response the ball usually still overlaps the thing it hit, so a
// colliding gate suppresses further responses until the scans come back
// empty. With the shared gate one flag covers bricks, edges and the paddle.
// With the split gate bricks/edges and the paddle each have their own flag.
type Ball struct {
	GameObject

	split           bool
	colliding       bool // Shared gate, or the brick/edge gate when split
	paddleColliding bool // Paddle gate, split mode only
}

// NewBall creates a hidden ball facing +Z.
func NewBall(radius float64, gate string) *Ball {
	d := 2 * radius
	b := &Ball{
		GameObject: *NewGameObject(KindBall, mgl64.Vec3{}, mgl64.Vec3{d, d, d}, core.ColorWhite),
		split:      gate == config.GateSplit,
	}
	b.Visible = false
	return b
}

// Colliding reports whether any gate is closed.
func (b *Ball) Colliding() bool {
	return b.colliding || b.paddleColliding
}

// Place puts the ball at pos facing +Z, opens all gates and shows it.
func (b *Ball) Place(pos mgl64.Vec3) {
	b.Position = pos
	b.Yaw = 0
	b.colliding = false
	b.paddleColliding = false
	b.Visible = true
	b.RefreshBounds()
}

// Reflection is the outcome of a reflect response.
type Reflection struct {
	Normal    mgl64.Vec3
	Direction mgl64.Vec3 // Before the hit
	Reflected mgl64.Vec3
	Angle     float64 // Signed yaw change applied
}

// Reflect mirrors the travel direction about normal by turning the ball.
// The turn is the angle between old and new direction, signed by the Y of
// their cross product. An exactly reversed direction has no sign and turns by +Pi.
func (b *Ball) Reflect(normal mgl64.Vec3) Reflection {
	dir := b.Direction()
	reflected := Reflect(dir, normal)
	angle := AngleBetween(dir, reflected)

	if dir.Cross(reflected).Y() < 0 {
		angle = -angle
	}
	b.RotateY(angle)

	return Reflection{Normal: normal, Direction: dir, Reflected: reflected, Angle: angle}
}

// Kick sends the ball off a paddle segment: it faces +Z again, then turns by
// the segment's fixed angle.
func (b *Ball) Kick(angle float64) {
	b.Yaw = 0
	b.RotateY(angle)
}

// Response describes what happened to the ball during one tick.
type Response struct {
	Target     *GameObject // Brick or edge reflected off, nil if none
	Reflection Reflection
	Segment    int  // Paddle segment kicked from, -1 if none
	Released   bool // A gate opened this tick
}

// AdvanceBall moves the ball one step along its yaw, refreshes its bounds and
// applies collision responses. Brick/edge responses come before the paddle's.
func (w *World) AdvanceBall(step float64) Response {
	b := w.Ball
	b.TranslateForward(step)
	b.RefreshBounds()

	if b.split {
		return w.respondSplit()
	}
	return w.respondShared()
}

func (w *World) respondShared() Response {
	b := w.Ball
	resp := Response{Segment: -1}

	target := w.DetectCollision()
	segment := w.DetectPaddleCollision()

	if b.colliding {
		if target == nil && segment < 0 {
			b.colliding = false
			resp.Released = true
		}
		return resp
	}

	if target != nil {
		b.colliding = true
		resp.Target = target
		resp.Reflection = b.Reflect(CollisionNormal(&b.GameObject, target))
	}
	if segment >= 0 {
		b.colliding = true
		resp.Segment = segment
		b.Kick(w.kickAngles[segment])
	}
	return resp
}

func (w *World) respondSplit() Response {
	b := w.Ball
	resp := Response{Segment: -1}

	target := w.DetectCollision()
	switch {
	case b.colliding && target == nil:
		b.colliding = false
		resp.Released = true
	case !b.colliding && target != nil:
		b.colliding = true
		resp.Target = target
		resp.Reflection = b.Reflect(CollisionNormal(&b.GameObject, target))
	}

	segment := w.DetectPaddleCollision()
	switch {
	case b.paddleColliding && segment < 0:
		b.paddleColliding = false
		resp.Released = true
	case !b.paddleColliding && segment >= 0:
		b.paddleColliding = true
		resp.Segment = segment
		b.Kick(w.kickAngles[segment])
	}
	return resp
}
