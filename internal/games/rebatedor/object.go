// Package rebatedor implements a Breakout-style game played on a top-down
// orthographic playfield: a five-segment paddle (the rebatedor) deflects a
// ball into a grid of bricks enclosed by edge walls.
//
// The world lives on the X/Z ground plane with Y pointing up. Every object is
// an axis-aligned box and all collision tests are AABB overlaps.
package rebatedor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rebatedor/internal/core"
)

// Kind tags what a GameObject stands for.
type Kind int

const (
	KindBrick Kind = iota
	KindEdge
	KindPaddleSegment
	KindBall
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindBrick:
		return "brick"
	case KindEdge:
		return "edge"
	case KindPaddleSegment:
		return "paddle"
	case KindBall:
		return "ball"
	default:
		return "unknown"
	}
}

// GameObject is a positioned box in the world.
type GameObject struct {
	Kind     Kind
	Position mgl64.Vec3
	Yaw      float64    // Rotation about +Y, radians; 0 faces +Z
	Half     mgl64.Vec3 // Fixed local half extents
	Bounds   core.Box
	Visible  bool
	Color    core.Color
}

// NewGameObject creates a visible object of the given full size and computes its bounds.
func NewGameObject(kind Kind, pos, size mgl64.Vec3, color core.Color) *GameObject {
	o := &GameObject{
		Kind:     kind,
		Position: pos,
		Half:     size.Mul(0.5),
		Visible:  true,
		Color:    color,
	}
	o.RefreshBounds()
	return o
}

// RefreshBounds recomputes the AABB from the current position.
// It must run after every position change and before any collision test.
func (o *GameObject) RefreshBounds() {
	o.Bounds = core.BoxFromCenter(o.Position, o.Half)
}

// SetX moves the object along X and refreshes its bounds.
func (o *GameObject) SetX(x float64) {
	o.Position[0] = x
	o.RefreshBounds()
}

// Direction returns the unit forward vector for the current yaw.
func (o *GameObject) Direction() mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(o.Yaw), 0, math.Cos(o.Yaw)}
}

// RotateY turns the object about the up axis. Positive angles turn +Z towards +X.
func (o *GameObject) RotateY(angle float64) {
	o.Yaw = normalizeAngle(o.Yaw + angle)
}

// TranslateForward moves the object along its forward vector.
// Bounds are not refreshed; callers do that before testing collisions.
func (o *GameObject) TranslateForward(distance float64) {
	o.Position = o.Position.Add(o.Direction().Mul(distance))
}

// Sprite returns the host-facing view of the object.
func (o *GameObject) Sprite() core.Sprite {
	return core.Sprite{
		Bounds: o.Bounds,
		Color:  o.Color,
		Round:  o.Kind == KindBall,
	}
}

// normalizeAngle wraps an angle into (-Pi, Pi].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
