// Package geometry provides the 2D primitives used for spatial reasoning
// over drawing entities: points, axis-aligned bounding boxes, the shape
// variants extracted from a drawing, and distance calculations between them.
//
// All operations are pure functions of their inputs.
package geometry

import "math"

// Point represents a 2D point in drawing coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents an axis-aligned bounding box given by its minimum and
// maximum corners.
type BBox struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// NewBBox creates a bounding box from two opposite corners, in any order.
func NewBBox(p1, p2 Point) BBox {
	return BBox{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Center returns the center point of the box.
func (b BBox) Center() Point {
	return Point{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
	}
}

// Diagonal returns the length of the box diagonal. Adjacency thresholds are
// derived from the drawing extents' diagonal so they scale with the drawing.
func (b BBox) Diagonal() float64 {
	return b.Min.Distance(b.Max)
}

// Contains checks if a point lies inside the box, edges included.
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Intersects checks if two boxes overlap. Touching edges count as an
// intersection.
func (b BBox) Intersects(other BBox) bool {
	return !(b.Max.X < other.Min.X ||
		b.Min.X > other.Max.X ||
		b.Max.Y < other.Min.Y ||
		b.Min.Y > other.Max.Y)
}

// Union returns the smallest box covering both boxes.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		Min: Point{X: math.Min(b.Min.X, other.Min.X), Y: math.Min(b.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(b.Max.X, other.Max.X), Y: math.Max(b.Max.Y, other.Max.Y)},
	}
}

// Expand grows the box by a margin on all sides. A negative margin shrinks
// the box.
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		Min: Point{X: b.Min.X - margin, Y: b.Min.Y - margin},
		Max: Point{X: b.Max.X + margin, Y: b.Max.Y + margin},
	}
}

// IsValid reports whether the rectangle is well formed, with the minimum
// corner strictly below the maximum corner on both axes.
func (b BBox) IsValid() bool {
	return b.Min.X < b.Max.X && b.Min.Y < b.Max.Y
}
