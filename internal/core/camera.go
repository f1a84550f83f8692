package core

import "github.com/go-gl/mathgl/mgl64"

// Camera is an orthographic camera looking straight down the -Y axis at the
// ground plane. Screen right maps to +X and screen up maps to -Z.
type Camera struct {
	Position mgl64.Vec3 // Only X and Z are used

	// Frustum planes relative to Position, in world units.
	Left, Right float64
	Top, Bottom float64

	viewSize float64
}

// NewOrthoCamera creates a camera showing viewSize world units vertically.
// aspect is the horizontal/vertical ratio of the viewport.
func NewOrthoCamera(viewSize, aspect float64) Camera {
	c := Camera{viewSize: viewSize}
	c.SetAspect(aspect)
	return c
}

// FitCamera returns a camera centered on area that shows all of it for the given aspect.
func FitCamera(area Box, aspect float64) Camera {
	half := area.HalfExtents()
	viewSize := 2 * half.Z()
	if aspect > 0 && 2*half.X()/aspect > viewSize {
		viewSize = 2 * half.X() / aspect
	}
	c := NewOrthoCamera(viewSize, aspect)
	center := area.Center()
	c.Position = mgl64.Vec3{center.X(), 0, center.Z()}
	return c
}

// SetAspect recomputes the horizontal planes after a viewport resize.
func (c *Camera) SetAspect(aspect float64) {
	if aspect <= 0 {
		aspect = 1
	}
	c.Left = -aspect * c.viewSize / 2
	c.Right = aspect * c.viewSize / 2
	c.Top = c.viewSize / 2
	c.Bottom = -c.viewSize / 2
}

// PointerNDC converts a pixel (or cell) position to normalized device coordinates in [-1, 1].
func PointerNDC(px, py, width, height float64) mgl64.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{
		(px/width)*2 - 1,
		-(py/height)*2 + 1,
	}
}

// Unproject maps normalized device coordinates onto the ground plane (Y = 0).
func (c Camera) Unproject(ndc mgl64.Vec2) mgl64.Vec3 {
	x := c.Position.X() + c.Left + (ndc.X()+1)/2*(c.Right-c.Left)
	z := c.Position.Z() - (c.Bottom + (ndc.Y()+1)/2*(c.Top-c.Bottom))
	return mgl64.Vec3{x, 0, z}
}

// Raycast casts a ray from the pointer straight down and returns the hit on
// ground. The second result is false when the ray misses the ground footprint.
func (c Camera) Raycast(ndc mgl64.Vec2, ground Box) (mgl64.Vec3, bool) {
	p := c.Unproject(ndc)
	if !ground.ContainsXZ(p) {
		return mgl64.Vec3{}, false
	}
	return p, true
}

// Project maps a world position to viewport coordinates for a viewport of
// width x height units, origin at the top-left corner.
func (c Camera) Project(world mgl64.Vec3, width, height float64) (x, y float64) {
	x = (world.X() - c.Position.X() - c.Left) / (c.Right - c.Left) * width
	y = (world.Z() - c.Position.Z() + c.Top) / (c.Top - c.Bottom) * height
	return x, y
}
