// Package draftkit provides a fluent API for querying and editing decoded
// architectural drawings.
//
// Basic usage:
//
//	session, err := draftkit.Open("plan.json")
//	if err != nil {
//	    // handle error
//	}
//	layers := session.Store().Layers()
//
// With options:
//
//	session, err := draftkit.Open("plan.json",
//	    draftkit.WithAdjacencyFraction(0.02))
//
// For advanced use cases, the lower-level document, spatial, and tools
// packages are also available.
package draftkit

import (
	"os"

	"github.com/draftkit/draftkit/document"
	"github.com/draftkit/draftkit/model"
	"github.com/draftkit/draftkit/spatial"
	"github.com/draftkit/draftkit/tools"
)

// Open reads a drawing dump from a JSON file and returns a Session over it.
//
// Example:
//
//	session, err := draftkit.Open("plan.json")
func Open(filename string, opts ...Option) (*Session, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	drawing, err := model.DecodeDrawing(data)
	if err != nil {
		return nil, err
	}
	return FromDrawing(drawing, opts...)
}

// FromDrawing builds a Session from an already decoded drawing. This is
// useful when the drawing arrives over the wire rather than from a file.
func FromDrawing(drawing model.Drawing, opts ...Option) (*Session, error) {
	cfg := spatial.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	store, err := document.Load(drawing)
	if err != nil {
		return nil, err
	}
	engine := spatial.NewEngine(store, cfg)
	return &Session{
		store:  store,
		engine: engine,
		tools:  tools.NewRegistry(store, engine),
	}, nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	session := draftkit.Must(draftkit.Open("plan.json"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
