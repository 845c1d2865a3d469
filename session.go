package draftkit

import (
	"encoding/json"
	"os"

	"github.com/draftkit/draftkit/document"
	"github.com/draftkit/draftkit/spatial"
	"github.com/draftkit/draftkit/tools"
)

// Session ties a loaded drawing to its query engine and tool registry. It
// is safe for concurrent use: reads run in parallel and mutations take the
// store's writer lock.
type Session struct {
	store  *document.Store
	engine *spatial.Engine
	tools  *tools.Registry
}

// Store exposes the underlying document store for direct access to
// entities, layers, and mutations.
func (s *Session) Store() *document.Store {
	return s.store
}

// Query exposes the spatial query engine.
func (s *Session) Query() *spatial.Engine {
	return s.engine
}

// Tools exposes the tool registry for dispatching named operations with
// JSON arguments.
func (s *Session) Tools() *tools.Registry {
	return s.tools
}

// Summary reports layer and entity statistics for the whole drawing.
func (s *Session) Summary() document.Summary {
	return s.store.Summarize()
}

// Save writes the drawing, including any edits made through the session,
// to a JSON file in the same format Open reads.
func (s *Session) Save(filename string) error {
	data, err := json.MarshalIndent(s.store.Export(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}
