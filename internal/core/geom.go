// Package core provides fundamental types and utilities for the game platform.
// It contains no host dependencies (no Bubble Tea, no Ebiten) to keep game
// logic pure and testable.
package core

import "github.com/go-gl/mathgl/mgl64"

// Box is an axis-aligned bounding box in world space.
// It is the only collision primitive used by the simulation.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// BoxFromCenter builds a box around center with the given half extents.
func BoxFromCenter(center, half mgl64.Vec3) Box {
	return Box{Min: center.Sub(half), Max: center.Add(half)}
}

// Intersects reports whether two boxes overlap.
// Touching faces count as an intersection.
func (b Box) Intersects(other Box) bool {
	if other.Max.X() < b.Min.X() || other.Min.X() > b.Max.X() {
		return false
	}
	if other.Max.Y() < b.Min.Y() || other.Min.Y() > b.Max.Y() {
		return false
	}
	if other.Max.Z() < b.Min.Z() || other.Min.Z() > b.Max.Z() {
		return false
	}
	return true
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// HalfExtents returns half the size of the box on every axis.
func (b Box) HalfExtents() mgl64.Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// ContainsXZ reports whether the point lies inside the box footprint on the ground plane.
func (b Box) ContainsXZ(p mgl64.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() && p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Rect represents an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Sprite is a flat view of a visible world object for hosts that draw in world space.
type Sprite struct {
	Bounds Box
	Color  Color
	Round  bool
}
