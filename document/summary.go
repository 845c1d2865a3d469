package document

import (
	"github.com/draftkit/draftkit/geometry"
)

// LayerSummary describes one layer in a drawing summary: its color, the
// number of live entities and a per-kind breakdown.
type LayerSummary struct {
	Name   string         `json:"name"`
	Color  int            `json:"color"`
	Total  int            `json:"total_entities"`
	Counts map[string]int `json:"entity_counts"`
}

// TextItem is one text label found in the drawing.
type TextItem struct {
	ID      string `json:"id"`
	Layer   string `json:"layer"`
	Content string `json:"content"`
}

// Summary is a read-only report over the current state of a drawing.
type Summary struct {
	LayerCount  int            `json:"layer_count"`
	EntityCount int            `json:"entity_count"`
	Layers      []LayerSummary `json:"layers"`
	Extents     *geometry.BBox `json:"extents,omitempty"`
	Texts       []TextItem     `json:"texts,omitempty"`
}

// Summarize builds a summary of the store: per-layer kind counts, the
// drawing extents, and an inventory of text labels in insertion order.
func (s *Store) Summarize() Summary {
	layers := s.Layers()

	sum := Summary{
		LayerCount:  len(layers),
		EntityCount: s.EntityCount(),
	}

	byLayer := make(map[string]map[string]int, len(layers))
	for _, e := range s.Snapshot() {
		counts, ok := byLayer[e.Layer]
		if !ok {
			counts = make(map[string]int)
			byLayer[e.Layer] = counts
		}
		counts[e.Kind.String()]++

		if e.Kind.IsText() {
			sum.Texts = append(sum.Texts, TextItem{
				ID:      e.ID,
				Layer:   e.Layer,
				Content: e.Text(),
			})
		}
	}

	for _, info := range layers {
		sum.Layers = append(sum.Layers, LayerSummary{
			Name:   info.Name,
			Color:  info.Color,
			Total:  info.EntityCount,
			Counts: byLayer[info.Name],
		})
	}

	if bounds, ok := s.Bounds(); ok {
		sum.Extents = &bounds
	}
	return sum
}
