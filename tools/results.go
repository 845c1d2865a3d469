package tools

import (
	"github.com/draftkit/draftkit/document"
	"github.com/draftkit/draftkit/geometry"
	"github.com/draftkit/draftkit/model"
	"github.com/draftkit/draftkit/spatial"
)

// LayerResult is one row of list_layers.
type LayerResult struct {
	Name        string `json:"name"`
	Color       int    `json:"color"`
	ColorName   string `json:"color_name,omitempty"`
	EntityCount int    `json:"entity_count"`
}

// Bounds describes an entity's bounding box the way a drafter reads it.
type Bounds struct {
	XMin    float64 `json:"xmin"`
	YMin    float64 `json:"ymin"`
	XMax    float64 `json:"xmax"`
	YMax    float64 `json:"ymax"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
}

func toBounds(b geometry.BBox) Bounds {
	c := b.Center()
	return Bounds{
		XMin:    b.Min.X,
		YMin:    b.Min.Y,
		XMax:    b.Max.X,
		YMax:    b.Max.Y,
		Width:   b.Width(),
		Height:  b.Height(),
		CenterX: c.X,
		CenterY: c.Y,
	}
}

// EntityInfo is the standard description of one entity in tool results.
type EntityInfo struct {
	ID         string            `json:"id"`
	Kind       string            `json:"kind"`
	Layer      string            `json:"layer"`
	Closed     bool              `json:"closed"`
	Center     geometry.Point    `json:"center"`
	Bounds     Bounds            `json:"bounds"`
	Area       *float64          `json:"area,omitempty"`
	Text       string            `json:"text,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func toEntityInfo(e model.Entity) EntityInfo {
	info := EntityInfo{
		ID:         e.ID,
		Kind:       e.Kind.String(),
		Layer:      e.Layer,
		Closed:     e.Geometry.IsClosed(),
		Center:     e.Geometry.Centroid(),
		Bounds:     toBounds(e.Geometry.Bounds()),
		Text:       e.Text(),
		Attributes: e.Attributes,
	}
	if area, err := e.Geometry.Area(); err == nil {
		info.Area = &area
	}
	return info
}

func toEntityInfos(ents []model.Entity) []EntityInfo {
	out := make([]EntityInfo, len(ents))
	for i, e := range ents {
		out[i] = toEntityInfo(e)
	}
	return out
}

// MatchResult is an entity qualified by a distance: to the query point for
// near-point searches, to the reference boundary for adjacency, to the
// centerline for betweenness.
type MatchResult struct {
	EntityInfo
	Distance float64 `json:"distance"`
}

func toMatchResults(matches []spatial.Match) []MatchResult {
	out := make([]MatchResult, len(matches))
	for i, m := range matches {
		out[i] = MatchResult{EntityInfo: toEntityInfo(m.Entity), Distance: m.Distance}
	}
	return out
}

// AreaResult is the result of get_area.
type AreaResult struct {
	ID   string  `json:"id"`
	Area float64 `json:"area"`
}

// CenterResult is the result of get_entity_center.
type CenterResult struct {
	ID     string         `json:"id"`
	Center geometry.Point `json:"center"`
}

// BoundsResult is the result of get_entity_bounds.
type BoundsResult struct {
	ID     string `json:"id"`
	Bounds Bounds `json:"bounds"`
}

// DistanceResult is the result of calculate_distance.
type DistanceResult struct {
	IDA              string  `json:"id_a"`
	IDB              string  `json:"id_b"`
	Distance         float64 `json:"distance"`
	CentroidDistance float64 `json:"centroid_distance"`
}

// ColorLayerResult is the result of color_layer.
type ColorLayerResult struct {
	Layer     string `json:"layer_name"`
	Color     int    `json:"color"`
	ColorName string `json:"color_name,omitempty"`
}

// DeleteResult is the result of delete_entity.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// EditTextResult is the result of edit_text.
type EditTextResult struct {
	ID      string `json:"id"`
	OldText string `json:"old_text"`
	NewText string `json:"new_text"`
}

// AdjacentResult is the result of find_adjacent_entities, reporting the
// threshold actually applied so callers can see the computed default.
type AdjacentResult struct {
	Threshold float64       `json:"threshold"`
	Matches   []MatchResult `json:"matches"`
}

func toLayerResults(infos []document.LayerInfo) []LayerResult {
	out := make([]LayerResult, len(infos))
	for i, info := range infos {
		out[i] = LayerResult{
			Name:        info.Name,
			Color:       info.Color,
			ColorName:   model.ColorName(info.Color),
			EntityCount: info.EntityCount,
		}
	}
	return out
}
