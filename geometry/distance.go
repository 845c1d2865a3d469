package geometry

import "math"

// containsEpsilon is the slack used for exact containment checks on
// zero-width shapes (segments, open polylines, anchors).
const containsEpsilon = 1e-9

// PointToSegment returns the shortest distance from a point to a segment.
func PointToSegment(p Point, s Segment) float64 {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.Distance(s.Start)
	}
	t := ((p.X-s.Start.X)*dx + (p.Y-s.Start.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	closest := Point{X: s.Start.X + t*dx, Y: s.Start.Y + t*dy}
	return p.Distance(closest)
}

// SegmentToSegment returns the shortest distance between two segments,
// which is zero when they intersect.
func SegmentToSegment(a, b Segment) float64 {
	if segmentsIntersect(a, b) {
		return 0
	}
	d := PointToSegment(a.Start, b)
	d = math.Min(d, PointToSegment(a.End, b))
	d = math.Min(d, PointToSegment(b.Start, a))
	d = math.Min(d, PointToSegment(b.End, a))
	return d
}

// cross returns the z component of (b-a) × (c-a).
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// onSegment reports whether c, known to be collinear with the segment from
// a to b, lies between a and b.
func onSegment(a, b, c Point) bool {
	return math.Min(a.X, b.X) <= c.X && c.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= c.Y && c.Y <= math.Max(a.Y, b.Y)
}

// segmentsIntersect reports whether two segments share at least one point.
func segmentsIntersect(s1, s2 Segment) bool {
	d1 := cross(s2.Start, s2.End, s1.Start)
	d2 := cross(s2.Start, s2.End, s1.End)
	d3 := cross(s1.Start, s1.End, s2.Start)
	d4 := cross(s1.Start, s1.End, s2.End)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(s2.Start, s2.End, s1.Start) {
		return true
	}
	if d2 == 0 && onSegment(s2.Start, s2.End, s1.End) {
		return true
	}
	if d3 == 0 && onSegment(s1.Start, s1.End, s2.Start) {
		return true
	}
	if d4 == 0 && onSegment(s1.Start, s1.End, s2.End) {
		return true
	}
	return false
}

// pointInPolygon reports whether p lies strictly inside the polygon given by
// pts, using ray casting.
func pointInPolygon(p Point, pts []Point) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := pts[i], pts[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xCross := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// PointToGeometry returns the distance from a point to the nearest boundary
// of a shape. Points inside a closed shape are at distance zero. For text
// the distance is measured to the anchor position.
func PointToGeometry(p Point, g Geometry) float64 {
	switch s := g.(type) {
	case Segment:
		return PointToSegment(p, s)
	case Polyline:
		return pointToPolyline(p, s)
	case Circle:
		return math.Max(0, p.Distance(s.Center)-s.Radius)
	case TextAnchor:
		return p.Distance(s.Position)
	case Hatch:
		return pointToPolyline(p, s.closedBoundary())
	}
	return math.Inf(1)
}

func pointToPolyline(p Point, pl Polyline) float64 {
	if len(pl.Points) == 0 {
		return math.Inf(1)
	}
	if len(pl.Points) == 1 {
		return p.Distance(pl.Points[0])
	}
	if pl.Closed && pointInPolygon(p, pl.Points) {
		return 0
	}
	min := math.Inf(1)
	for _, e := range pl.Edges() {
		min = math.Min(min, PointToSegment(p, e))
	}
	return min
}

// ContainsPoint reports whether a shape contains the point exactly: inside
// or on the boundary for closed shapes, on the shape itself for segments and
// open polylines, and at the anchor for text.
func ContainsPoint(g Geometry, p Point) bool {
	return PointToGeometry(p, g) <= containsEpsilon
}

// Distance returns the minimum distance between two shapes: the smallest
// distance over any pair of their defining segments or points. Circles are
// measured from the other shape to their boundary, and overlapping or
// contained shapes are at distance zero.
func Distance(a, b Geometry) float64 {
	// Circles have no defining segments; measure the other shape against
	// the center and subtract the radius.
	if ca, ok := a.(Circle); ok {
		if cb, ok := b.(Circle); ok {
			return math.Max(0, ca.Center.Distance(cb.Center)-ca.Radius-cb.Radius)
		}
		return math.Max(0, PointToGeometry(ca.Center, b)-ca.Radius)
	}
	if cb, ok := b.(Circle); ok {
		return math.Max(0, PointToGeometry(cb.Center, a)-cb.Radius)
	}

	segsA, ptsA := defining(a)
	segsB, ptsB := defining(b)

	min := math.Inf(1)
	for _, sa := range segsA {
		for _, sb := range segsB {
			min = math.Min(min, SegmentToSegment(sa, sb))
		}
		for _, pb := range ptsB {
			min = math.Min(min, PointToSegment(pb, sa))
		}
	}
	for _, pa := range ptsA {
		for _, sb := range segsB {
			min = math.Min(min, PointToSegment(pa, sb))
		}
		for _, pb := range ptsB {
			min = math.Min(min, pa.Distance(pb))
		}
	}

	// A shape wholly inside a closed shape never gets closer than its
	// boundary by segment pairs alone; containment makes the distance zero.
	if min > 0 {
		if interiorOverlap(a, b) || interiorOverlap(b, a) {
			return 0
		}
	}
	if math.IsInf(min, 1) {
		return 0
	}
	return min
}

// defining decomposes a non-circle shape into its defining segments and
// isolated points.
func defining(g Geometry) ([]Segment, []Point) {
	switch s := g.(type) {
	case Segment:
		return []Segment{s}, nil
	case Polyline:
		if len(s.Points) == 1 {
			return nil, s.Points
		}
		return s.Edges(), nil
	case TextAnchor:
		return nil, []Point{s.Position}
	case Hatch:
		return s.closedBoundary().Edges(), nil
	}
	return nil, nil
}

// interiorOverlap reports whether some defining point of inner lies inside
// the closed shape outer.
func interiorOverlap(inner, outer Geometry) bool {
	if !outer.IsClosed() {
		return false
	}
	segs, pts := defining(inner)
	for _, s := range segs {
		pts = append(pts, s.Start, s.End)
	}
	for _, p := range pts {
		if PointToGeometry(p, outer) == 0 {
			return true
		}
	}
	return false
}
