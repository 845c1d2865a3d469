package document

import (
	"github.com/draftkit/draftkit/geometry"
	"github.com/draftkit/draftkit/model"
)

// Mutations validate everything they need before touching state, so a
// failed call leaves the store exactly as it was.

// SetLayerColor overwrites a layer's ACI color. Setting the color a layer
// already has is a no-op. Returns LayerNotFoundError for unknown layers.
func (s *Store) SetLayerColor(name string, color int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	layer, ok := s.layers[name]
	if !ok {
		return &LayerNotFoundError{Name: name}
	}
	layer.color = color
	return nil
}

// DeleteEntity removes an entity from its layer and tombstones its handle.
// Deleting an unknown or already-deleted handle returns
// EntityNotFoundError; deletion is deliberately not idempotent.
func (s *Store) DeleteEntity(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entities[id]
	if !ok {
		return &EntityNotFoundError{ID: id}
	}

	if layer, ok := s.layers[e.Layer]; ok {
		delete(layer.ids, id)
	}
	delete(s.entities, id)
	s.deleted[id] = struct{}{}

	for i, ordered := range s.order {
		if ordered == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// EditText replaces the content of a Text or MText entity and returns the
// previous content. Returns EntityNotFoundError for unknown handles and
// WrongEntityKindError for non-text entities. The new content is normalized
// the same way decoded text is.
func (s *Store) EditText(id, content string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entities[id]
	if !ok {
		return "", &EntityNotFoundError{ID: id}
	}
	if !e.Kind.IsText() {
		return "", &WrongEntityKindError{ID: id, Kind: e.Kind}
	}

	anchor, ok := e.Geometry.(geometry.TextAnchor)
	if !ok {
		return "", &WrongEntityKindError{ID: id, Kind: e.Kind}
	}

	old := anchor.Content
	anchor.Content = model.CleanText(content)
	e.Geometry = anchor
	return old, nil
}
