package geometry

import (
	"fmt"
	"math"
)

// Geometry is the closed set of shape variants an entity can carry. Every
// variant supports bounds, centroid and closedness; area is only defined for
// closed variants and fails with NotClosedError otherwise.
type Geometry interface {
	// Bounds returns the axis-aligned box covering all defining points.
	Bounds() BBox
	// Centroid returns the representative center of the shape.
	Centroid() Point
	// IsClosed reports whether the shape encloses a region.
	IsClosed() bool
	// Area returns the enclosed area, or NotClosedError for open shapes.
	Area() (float64, error)

	// sealed limits implementations to this package so that distance and
	// containment code can match variants exhaustively.
	sealed()
}

// NotClosedError is returned when an area is requested on open geometry.
type NotClosedError struct {
	Shape string
}

func (e *NotClosedError) Error() string {
	return fmt.Sprintf("area is undefined for open %s", e.Shape)
}

// Segment is a straight line between two points.
type Segment struct {
	Start Point
	End   Point
}

func (s Segment) sealed() {}

// Bounds returns the box spanned by the two endpoints.
func (s Segment) Bounds() BBox {
	return NewBBox(s.Start, s.End)
}

// Centroid returns the midpoint of the segment.
func (s Segment) Centroid() Point {
	return Point{
		X: (s.Start.X + s.End.X) / 2,
		Y: (s.Start.Y + s.End.Y) / 2,
	}
}

// IsClosed always returns false for a segment.
func (s Segment) IsClosed() bool { return false }

// Area fails: a segment never encloses a region.
func (s Segment) Area() (float64, error) {
	return 0, &NotClosedError{Shape: "segment"}
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Polyline is an ordered sequence of vertices, optionally closed back onto
// its first vertex.
type Polyline struct {
	Points []Point
	Closed bool
}

func (p Polyline) sealed() {}

// Bounds returns the box covering every vertex. A polyline with no vertices
// yields the zero box.
func (p Polyline) Bounds() BBox {
	if len(p.Points) == 0 {
		return BBox{}
	}
	b := NewBBox(p.Points[0], p.Points[0])
	for _, pt := range p.Points[1:] {
		b = b.Union(NewBBox(pt, pt))
	}
	return b
}

// Centroid returns the arithmetic mean of the vertices.
func (p Polyline) Centroid() Point {
	if len(p.Points) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, pt := range p.Points {
		sx += pt.X
		sy += pt.Y
	}
	n := float64(len(p.Points))
	return Point{X: sx / n, Y: sy / n}
}

// IsClosed reports whether the polyline closes back onto its first vertex.
func (p Polyline) IsClosed() bool { return p.Closed }

// Area returns the enclosed area via the shoelace formula, or NotClosedError
// for an open polyline.
func (p Polyline) Area() (float64, error) {
	if !p.Closed {
		return 0, &NotClosedError{Shape: "polyline"}
	}
	return shoelace(p.Points), nil
}

// Edges returns the defining segments of the polyline, including the closing
// segment for closed polylines.
func (p Polyline) Edges() []Segment {
	n := len(p.Points)
	if n < 2 {
		return nil
	}
	edges := make([]Segment, 0, n)
	for i := 0; i < n-1; i++ {
		edges = append(edges, Segment{Start: p.Points[i], End: p.Points[i+1]})
	}
	if p.Closed && n > 2 {
		edges = append(edges, Segment{Start: p.Points[n-1], End: p.Points[0]})
	}
	return edges
}

// shoelace computes the absolute polygon area from ordered vertices.
func shoelace(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return math.Abs(sum) / 2
}

// Circle is a full circle given by center and radius.
type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) sealed() {}

// Bounds returns the box center ± radius on both axes.
func (c Circle) Bounds() BBox {
	return BBox{
		Min: Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Max: Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius},
	}
}

// Centroid returns the circle center.
func (c Circle) Centroid() Point { return c.Center }

// IsClosed always returns true for a circle.
func (c Circle) IsClosed() bool { return true }

// Area returns π·r².
func (c Circle) Area() (float64, error) {
	return math.Pi * c.Radius * c.Radius, nil
}

// TextAnchor is the insertion point of a text label together with its
// content.
type TextAnchor struct {
	Position Point
	Content  string
}

func (t TextAnchor) sealed() {}

// Bounds returns a degenerate box at the anchor position. Rendered text
// extents are a display concern and are not modeled here.
func (t TextAnchor) Bounds() BBox {
	return BBox{Min: t.Position, Max: t.Position}
}

// Centroid returns the anchor position.
func (t TextAnchor) Centroid() Point { return t.Position }

// IsClosed always returns false for text.
func (t TextAnchor) IsClosed() bool { return false }

// Area fails: text does not enclose a region.
func (t TextAnchor) Area() (float64, error) {
	return 0, &NotClosedError{Shape: "text"}
}

// Hatch is a filled region bounded by a polyline. The boundary is treated as
// closed regardless of its Closed flag.
type Hatch struct {
	Boundary Polyline
}

func (h Hatch) sealed() {}

// Bounds returns the boundary's bounding box.
func (h Hatch) Bounds() BBox { return h.Boundary.Bounds() }

// Centroid returns the arithmetic mean of the boundary vertices.
func (h Hatch) Centroid() Point { return h.Boundary.Centroid() }

// IsClosed always returns true for a hatch.
func (h Hatch) IsClosed() bool { return true }

// Area returns the area enclosed by the boundary.
func (h Hatch) Area() (float64, error) {
	return shoelace(h.Boundary.Points), nil
}

// closedBoundary returns the boundary with the closed flag forced on, for
// containment and distance checks.
func (h Hatch) closedBoundary() Polyline {
	return Polyline{Points: h.Boundary.Points, Closed: true}
}
