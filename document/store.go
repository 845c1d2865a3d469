package document

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/draftkit/draftkit/geometry"
	"github.com/draftkit/draftkit/model"
)

// Store holds the layers and entities of one loaded drawing. It is safe for
// concurrent use: reads may run in parallel, mutations are serialized.
type Store struct {
	mu        sync.RWMutex
	layers    map[string]*layerState
	entities  map[string]*model.Entity
	order     []string
	deleted   map[string]struct{}
	handleSeq uint64
}

type layerState struct {
	name  string
	color int
	ids   map[string]struct{}
}

// LayerInfo summarizes one layer for read-only listings.
type LayerInfo struct {
	Name        string
	Color       int
	EntityCount int
}

// Load builds a Store from a decoded drawing. Records that name an unknown
// layer get that layer created on the fly; records without a handle are
// assigned the next free one. Duplicate handles or layer names are a load
// error.
func Load(d model.Drawing) (*Store, error) {
	s := &Store{
		layers:   make(map[string]*layerState, len(d.Layers)),
		entities: make(map[string]*model.Entity, len(d.Entities)),
		deleted:  make(map[string]struct{}),
	}

	for _, def := range d.Layers {
		if _, exists := s.layers[def.Name]; exists {
			return nil, fmt.Errorf("duplicate layer %q", def.Name)
		}
		s.layers[def.Name] = &layerState{
			name:  def.Name,
			color: def.Color,
			ids:   make(map[string]struct{}),
		}
	}

	for i, rec := range d.Entities {
		if rec.Geometry == nil {
			return nil, fmt.Errorf("record %d: missing geometry", i)
		}
		if err := checkKindGeometry(rec.Kind, rec.Geometry); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		id := rec.Handle
		if id == "" {
			id = s.nextHandle()
		} else if _, exists := s.entities[id]; exists {
			return nil, fmt.Errorf("duplicate entity handle %q", id)
		}

		layer, ok := s.layers[rec.Layer]
		if !ok {
			layer = &layerState{
				name:  rec.Layer,
				color: model.ColorWhite,
				ids:   make(map[string]struct{}),
			}
			s.layers[rec.Layer] = layer
		}

		g := rec.Geometry
		if anchor, ok := g.(geometry.TextAnchor); ok {
			anchor.Content = model.CleanText(anchor.Content)
			g = anchor
		}

		e := &model.Entity{
			ID:         id,
			Kind:       rec.Kind,
			Layer:      rec.Layer,
			Geometry:   g,
			Attributes: rec.Attributes,
		}
		s.entities[id] = e
		s.order = append(s.order, id)
		layer.ids[id] = struct{}{}
	}

	return s, nil
}

// checkKindGeometry rejects records whose geometry payload does not match
// the declared entity kind.
func checkKindGeometry(kind model.Kind, g geometry.Geometry) error {
	ok := false
	switch kind {
	case model.KindLine:
		_, ok = g.(geometry.Segment)
	case model.KindPolyline:
		_, ok = g.(geometry.Polyline)
	case model.KindCircle:
		_, ok = g.(geometry.Circle)
	case model.KindText, model.KindMText:
		_, ok = g.(geometry.TextAnchor)
	case model.KindHatch:
		_, ok = g.(geometry.Hatch)
	default:
		return fmt.Errorf("unknown entity kind %d", kind)
	}
	if !ok {
		return fmt.Errorf("%s entity with %T geometry", kind, g)
	}
	return nil
}

// nextHandle returns the next unused hex handle.
func (s *Store) nextHandle() string {
	for {
		s.handleSeq++
		id := strings.ToUpper(strconv.FormatUint(s.handleSeq, 16))
		if _, taken := s.entities[id]; taken {
			continue
		}
		if _, tombstoned := s.deleted[id]; tombstoned {
			continue
		}
		return id
	}
}

// Entity returns the entity with the given handle, or EntityNotFoundError
// if the handle is unknown or tombstoned.
func (s *Store) Entity(id string) (model.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entityLocked(id)
}

func (s *Store) entityLocked(id string) (model.Entity, error) {
	e, ok := s.entities[id]
	if !ok {
		return model.Entity{}, &EntityNotFoundError{ID: id}
	}
	return *e, nil
}

// EntitiesOnLayer returns the live entities on a layer in the insertion
// order of the original decode.
func (s *Store) EntitiesOnLayer(name string) ([]model.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	layer, ok := s.layers[name]
	if !ok {
		return nil, &LayerNotFoundError{Name: name}
	}

	out := make([]model.Entity, 0, len(layer.ids))
	for _, id := range s.order {
		if _, onLayer := layer.ids[id]; onLayer {
			out = append(out, *s.entities[id])
		}
	}
	return out, nil
}

// Layers lists all layers with their color and live entity count, sorted
// case-insensitively by name.
func (s *Store) Layers() []LayerInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LayerInfo, 0, len(s.layers))
	for _, layer := range s.layers {
		out = append(out, LayerInfo{
			Name:        layer.name,
			Color:       layer.color,
			EntityCount: len(layer.ids),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Snapshot returns a copy of all live entities in insertion order. Query
// engines operate on snapshots so that reads see a consistent view without
// holding the store lock.
func (s *Store) Snapshot() []model.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Entity, 0, len(s.entities))
	for _, id := range s.order {
		if e, ok := s.entities[id]; ok {
			out = append(out, *e)
		}
	}
	return out
}

// EntityCount returns the number of live entities.
func (s *Store) EntityCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Bounds returns the drawing extents over all live entities. The second
// return is false for a drawing with no live entities.
func (s *Store) Bounds() (geometry.BBox, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bounds geometry.BBox
	found := false
	for _, id := range s.order {
		e, ok := s.entities[id]
		if !ok {
			continue
		}
		b := e.Geometry.Bounds()
		if !found {
			bounds = b
			found = true
			continue
		}
		bounds = bounds.Union(b)
	}
	return bounds, found
}

// Export returns the layer table and the live entities as decoder records,
// reflecting all mutations applied so far. This is the view handed back to
// the external decoder's writer to produce a modified file.
func (s *Store) Export() model.Drawing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	layers := make([]model.LayerDef, 0, len(s.layers))
	for _, layer := range s.layers {
		layers = append(layers, model.LayerDef{Name: layer.name, Color: layer.color})
	}
	sort.Slice(layers, func(i, j int) bool {
		return strings.ToLower(layers[i].Name) < strings.ToLower(layers[j].Name)
	})

	records := make([]model.Record, 0, len(s.entities))
	for _, id := range s.order {
		e, ok := s.entities[id]
		if !ok {
			continue
		}
		records = append(records, model.Record{
			Handle:     e.ID,
			Kind:       e.Kind,
			Layer:      e.Layer,
			Geometry:   e.Geometry,
			Attributes: e.Attributes,
		})
	}

	return model.Drawing{Layers: layers, Entities: records}
}
