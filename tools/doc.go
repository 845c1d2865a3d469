// Package tools exposes the drawing operations as a closed registry of
// named tools, the sole contract consumed by the external agent layer.
//
// Each tool has a fixed name, a JSON Schema for its parameters, and a typed
// handler. Dispatch decodes the JSON arguments, runs the operation against
// the document store or the spatial engine, and returns a typed result or
// one of the typed error kinds. Unknown tool names and malformed arguments
// are rejected up front rather than surfacing as lookup failures.
package tools
