package rebatedor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Collision normals. Only the X and Z axes are distinguished; corner hits
// resolve to one of the two.
var (
	NormalX = mgl64.Vec3{1, 0, 0}
	NormalZ = mgl64.Vec3{0, 0, 1}
)

// DetectCollision returns the first brick or edge the ball overlaps, or nil.
// Bricks are scanned row-major before edges in creation order. Only alive
// bricks qualify and a hit brick is destroyed on the spot.
func (w *World) DetectCollision() *GameObject {
	ball := w.Ball.Bounds

	for _, row := range w.Grid.Bricks {
		for _, b := range row {
			if b.Alive && ball.Intersects(b.Bounds) {
				b.destroy()
				return &b.GameObject
			}
		}
	}

	for _, e := range w.Edges {
		if ball.Intersects(e.Bounds) {
			return e
		}
	}

	return nil
}

// DetectPaddleCollision returns the index of the first paddle segment the
// ball overlaps, scanning from the anchor, or -1.
func (w *World) DetectPaddleCollision() int {
	for i, s := range w.Paddle.Segments {
		if w.Ball.Bounds.Intersects(s.Bounds) {
			return i
		}
	}
	return -1
}

// CollisionNormal picks the axis of least penetration between the ball and target.
// Penetration on an axis is the sum of half extents minus the center distance.
// Ties resolve to Z.
func CollisionNormal(ball, target *GameObject) mgl64.Vec3 {
	d := target.Position.Sub(ball.Position)

	overlapX := ball.Half.X() + target.Half.X() - math.Abs(d.X())
	overlapZ := ball.Half.Z() + target.Half.Z() - math.Abs(d.Z())

	if overlapX < overlapZ {
		return NormalX
	}
	return NormalZ
}

// Reflect mirrors v about the plane with the given unit normal.
func Reflect(v, normal mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// AngleBetween returns the unsigned angle between two vectors in [0, Pi].
func AngleBetween(a, b mgl64.Vec3) float64 {
	denom := a.Len() * b.Len()
	if denom == 0 {
		return math.Pi / 2
	}
	cos := a.Dot(b) / denom
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}
