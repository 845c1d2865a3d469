package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/draftkit/draftkit/document"
	"github.com/draftkit/draftkit/spatial"
)

// Tool names. The set is closed: dispatching anything else fails with
// InvalidParameterError.
const (
	OpListLayers      = "list_layers"
	OpFindByLayer     = "find_entities_by_layer"
	OpEntityInfo      = "get_entity_info"
	OpArea            = "get_area"
	OpColorLayer      = "color_layer"
	OpDeleteEntity    = "delete_entity"
	OpEditText        = "edit_text"
	OpEntityCenter    = "get_entity_center"
	OpEntityBounds    = "get_entity_bounds"
	OpDistance        = "calculate_distance"
	OpFindNearPoint   = "find_entities_near_point"
	OpFindInRegion    = "find_entities_in_region"
	OpFindBetween     = "find_entities_between"
	OpFindAdjacent    = "find_adjacent_entities"
)

// toolOrder fixes the order tools are listed in.
var toolOrder = []string{
	OpListLayers,
	OpFindByLayer,
	OpEntityInfo,
	OpArea,
	OpColorLayer,
	OpDeleteEntity,
	OpEditText,
	OpEntityCenter,
	OpEntityBounds,
	OpDistance,
	OpFindNearPoint,
	OpFindInRegion,
	OpFindBetween,
	OpFindAdjacent,
}

// handler executes one tool against the current document state.
type handler func(args json.RawMessage) (any, error)

// Definition describes one tool: its name, a description written for the
// agent that picks tools, and the JSON Schema of its parameters.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`

	run handler
}

// Registry holds the tool definitions bound to one loaded drawing.
type Registry struct {
	store  *document.Store
	engine *spatial.Engine
	defs   map[string]Definition
}

// NewRegistry builds the tool registry over a document store and its query
// engine.
func NewRegistry(store *document.Store, engine *spatial.Engine) *Registry {
	r := &Registry{store: store, engine: engine}
	r.defs = r.buildDefinitions()
	return r
}

// Definitions returns all tool definitions in a stable order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, 0, len(toolOrder))
	for _, name := range toolOrder {
		out = append(out, r.defs[name])
	}
	return out
}

// Dispatch runs the named tool with the given JSON arguments. Unknown names
// fail with InvalidParameterError.
func (r *Registry) Dispatch(name string, args json.RawMessage) (any, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, &spatial.InvalidParameterError{
			Param:  "operation",
			Reason: fmt.Sprintf("unknown operation %q", name),
		}
	}
	return def.run(args)
}

// decodeParams parses tool arguments into a typed parameter struct,
// rejecting fields the schema does not declare.
func decodeParams(data json.RawMessage, v any) error {
	if len(data) == 0 {
		data = []byte("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &spatial.InvalidParameterError{Param: "arguments", Reason: err.Error()}
	}
	return nil
}

func objectSchema(props map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func pointSchema(desc string) map[string]any {
	return map[string]any{
		"type":        "object",
		"description": desc,
		"properties": map[string]any{
			"x": map[string]any{"type": "number"},
			"y": map[string]any{"type": "number"},
		},
		"required": []string{"x", "y"},
	}
}

var idProp = map[string]any{
	"type":        "string",
	"description": "Entity handle (hex string like \"1A2\")",
}

var kindProp = map[string]any{
	"type":        "string",
	"description": "Optional entity type filter (LINE, POLYLINE, TEXT, MTEXT, HATCH, CIRCLE)",
}

func (r *Registry) buildDefinitions() map[string]Definition {
	return map[string]Definition{
		OpListLayers: {
			Name:        OpListLayers,
			Description: "List all layers with their color and entity count.",
			InputSchema: objectSchema(map[string]any{}),
			run:         r.listLayers,
		},
		OpFindByLayer: {
			Name:        OpFindByLayer,
			Description: "Find all entities on a layer, optionally filtered by entity type.",
			InputSchema: objectSchema(map[string]any{
				"layer_name":  map[string]any{"type": "string", "description": "Layer name to search"},
				"entity_type": kindProp,
			}, "layer_name"),
			run: r.findByLayer,
		},
		OpEntityInfo: {
			Name:        OpEntityInfo,
			Description: "Get detailed information about an entity by its handle.",
			InputSchema: objectSchema(map[string]any{"id": idProp}, "id"),
			run:         r.entityInfo,
		},
		OpArea: {
			Name:        OpArea,
			Description: "Calculate the area of a closed entity (closed polyline, hatch or circle).",
			InputSchema: objectSchema(map[string]any{"id": idProp}, "id"),
			run:         r.area,
		},
		OpColorLayer: {
			Name:        OpColorLayer,
			Description: "Change a layer's color. Accepts an ACI code (1-255) or a color name such as \"blue\".",
			InputSchema: objectSchema(map[string]any{
				"layer_name": map[string]any{"type": "string", "description": "Layer to recolor"},
				"color": map[string]any{
					"description": "ACI color code (1=red, 2=yellow, 3=green, 4=cyan, 5=blue, 6=magenta, 7=white) or color name",
				},
			}, "layer_name", "color"),
			run: r.colorLayer,
		},
		OpDeleteEntity: {
			Name:        OpDeleteEntity,
			Description: "Delete an entity. Its handle is tombstoned and never reused.",
			InputSchema: objectSchema(map[string]any{"id": idProp}, "id"),
			run:         r.deleteEntity,
		},
		OpEditText: {
			Name:        OpEditText,
			Description: "Replace the content of a TEXT or MTEXT entity, e.g. to rename a room label.",
			InputSchema: objectSchema(map[string]any{
				"id":          idProp,
				"new_content": map[string]any{"type": "string", "description": "New text content"},
			}, "id", "new_content"),
			run: r.editText,
		},
		OpEntityCenter: {
			Name:        OpEntityCenter,
			Description: "Get the center point (centroid) of an entity.",
			InputSchema: objectSchema(map[string]any{"id": idProp}, "id"),
			run:         r.entityCenter,
		},
		OpEntityBounds: {
			Name:        OpEntityBounds,
			Description: "Get the bounding box of an entity.",
			InputSchema: objectSchema(map[string]any{"id": idProp}, "id"),
			run:         r.entityBounds,
		},
		OpDistance: {
			Name:        OpDistance,
			Description: "Measure the distance between two entities: minimum boundary distance and centroid distance.",
			InputSchema: objectSchema(map[string]any{
				"id_a": idProp,
				"id_b": idProp,
			}, "id_a", "id_b"),
			run: r.distance,
		},
		OpFindNearPoint: {
			Name:        OpFindNearPoint,
			Description: "Find all entities within a radius of a point, closest first. Radius 0 matches entities containing the point.",
			InputSchema: objectSchema(map[string]any{
				"point":       pointSchema("Center of the search"),
				"radius":      map[string]any{"type": "number", "description": "Search radius in drawing units"},
				"entity_type": kindProp,
			}, "point", "radius"),
			run: r.findNearPoint,
		},
		OpFindInRegion: {
			Name:        OpFindInRegion,
			Description: "Find all entities whose bounding box overlaps a rectangular region.",
			InputSchema: objectSchema(map[string]any{
				"min_corner":  pointSchema("Bottom-left corner of the region"),
				"max_corner":  pointSchema("Top-right corner of the region"),
				"entity_type": kindProp,
			}, "min_corner", "max_corner"),
			run: r.findInRegion,
		},
		OpFindBetween: {
			Name:        OpFindBetween,
			Description: "Find entities lying between two entities, e.g. the wall between two rooms. Ordered by distance from the centerline.",
			InputSchema: objectSchema(map[string]any{
				"id_a":        idProp,
				"id_b":        idProp,
				"entity_type": kindProp,
			}, "id_a", "id_b"),
			run: r.findBetween,
		},
		OpFindAdjacent: {
			Name:        OpFindAdjacent,
			Description: "Find entities whose boundary lies within a threshold of an entity. Without a threshold, a fraction of the drawing diagonal is used.",
			InputSchema: objectSchema(map[string]any{
				"id": idProp,
				"threshold": map[string]any{
					"type":        "number",
					"description": "Maximum boundary-to-boundary distance; defaults to a fraction of the drawing diagonal",
				},
				"entity_type": kindProp,
			}, "id"),
			run: r.findAdjacent,
		},
	}
}
