package model

import (
	"encoding/json"
	"fmt"

	"github.com/draftkit/draftkit/geometry"
)

// The decoder boundary speaks JSON: the external drawing decoder dumps a
// Drawing as a layer table plus entity records, and the export view is
// written back in the same shape. Geometry payloads are a tagged union on a
// "type" field.

const (
	geomTypeSegment  = "segment"
	geomTypePolyline = "polyline"
	geomTypeCircle   = "circle"
	geomTypeText     = "text"
	geomTypeHatch    = "hatch"
)

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func toPointJSON(p geometry.Point) pointJSON {
	return pointJSON{X: p.X, Y: p.Y}
}

func (p pointJSON) point() geometry.Point {
	return geometry.Point{X: p.X, Y: p.Y}
}

type geometryJSON struct {
	Type     string      `json:"type"`
	Start    *pointJSON  `json:"start,omitempty"`
	End      *pointJSON  `json:"end,omitempty"`
	Points   []pointJSON `json:"points,omitempty"`
	Closed   bool        `json:"closed,omitempty"`
	Center   *pointJSON  `json:"center,omitempty"`
	Radius   float64     `json:"radius,omitempty"`
	Position *pointJSON  `json:"position,omitempty"`
	Content  string      `json:"content,omitempty"`
}

func encodeGeometry(g geometry.Geometry) (geometryJSON, error) {
	switch s := g.(type) {
	case geometry.Segment:
		start, end := toPointJSON(s.Start), toPointJSON(s.End)
		return geometryJSON{Type: geomTypeSegment, Start: &start, End: &end}, nil
	case geometry.Polyline:
		return geometryJSON{Type: geomTypePolyline, Points: encodePoints(s.Points), Closed: s.Closed}, nil
	case geometry.Circle:
		center := toPointJSON(s.Center)
		return geometryJSON{Type: geomTypeCircle, Center: &center, Radius: s.Radius}, nil
	case geometry.TextAnchor:
		pos := toPointJSON(s.Position)
		return geometryJSON{Type: geomTypeText, Position: &pos, Content: s.Content}, nil
	case geometry.Hatch:
		return geometryJSON{Type: geomTypeHatch, Points: encodePoints(s.Boundary.Points)}, nil
	}
	return geometryJSON{}, fmt.Errorf("unsupported geometry %T", g)
}

func decodeGeometry(gj geometryJSON) (geometry.Geometry, error) {
	switch gj.Type {
	case geomTypeSegment:
		if gj.Start == nil || gj.End == nil {
			return nil, fmt.Errorf("segment geometry requires start and end")
		}
		return geometry.Segment{Start: gj.Start.point(), End: gj.End.point()}, nil
	case geomTypePolyline:
		return geometry.Polyline{Points: decodePoints(gj.Points), Closed: gj.Closed}, nil
	case geomTypeCircle:
		if gj.Center == nil {
			return nil, fmt.Errorf("circle geometry requires a center")
		}
		if gj.Radius < 0 {
			return nil, fmt.Errorf("circle geometry has negative radius %v", gj.Radius)
		}
		return geometry.Circle{Center: gj.Center.point(), Radius: gj.Radius}, nil
	case geomTypeText:
		if gj.Position == nil {
			return nil, fmt.Errorf("text geometry requires a position")
		}
		return geometry.TextAnchor{Position: gj.Position.point(), Content: gj.Content}, nil
	case geomTypeHatch:
		return geometry.Hatch{Boundary: geometry.Polyline{Points: decodePoints(gj.Points), Closed: true}}, nil
	}
	return nil, fmt.Errorf("unknown geometry type %q", gj.Type)
}

func encodePoints(pts []geometry.Point) []pointJSON {
	out := make([]pointJSON, len(pts))
	for i, p := range pts {
		out[i] = toPointJSON(p)
	}
	return out
}

func decodePoints(pts []pointJSON) []geometry.Point {
	out := make([]geometry.Point, len(pts))
	for i, p := range pts {
		out[i] = p.point()
	}
	return out
}

type recordJSON struct {
	Handle     string            `json:"handle,omitempty"`
	Kind       string            `json:"kind"`
	Layer      string            `json:"layer"`
	Geometry   geometryJSON      `json:"geometry"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// MarshalJSON encodes the record with its geometry as a tagged union.
func (r Record) MarshalJSON() ([]byte, error) {
	gj, err := encodeGeometry(r.Geometry)
	if err != nil {
		return nil, err
	}
	return json.Marshal(recordJSON{
		Handle:     r.Handle,
		Kind:       r.Kind.String(),
		Layer:      r.Layer,
		Geometry:   gj,
		Attributes: r.Attributes,
	})
}

// UnmarshalJSON decodes a record, rejecting unknown kinds and geometry
// types.
func (r *Record) UnmarshalJSON(data []byte) error {
	var rj recordJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return err
	}
	kind, ok := ParseKind(rj.Kind)
	if !ok {
		return fmt.Errorf("unknown entity kind %q", rj.Kind)
	}
	g, err := decodeGeometry(rj.Geometry)
	if err != nil {
		return fmt.Errorf("entity %q: %w", rj.Handle, err)
	}
	r.Handle = rj.Handle
	r.Kind = kind
	r.Layer = rj.Layer
	r.Geometry = g
	r.Attributes = rj.Attributes
	return nil
}

// DecodeDrawing parses a decoded drawing dump produced by the external
// drawing decoder.
func DecodeDrawing(data []byte) (Drawing, error) {
	var d Drawing
	if err := json.Unmarshal(data, &d); err != nil {
		return Drawing{}, fmt.Errorf("decode drawing: %w", err)
	}
	return d, nil
}
