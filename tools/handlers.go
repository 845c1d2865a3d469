package tools

import (
	"encoding/json"
	"fmt"

	"github.com/draftkit/draftkit/geometry"
	"github.com/draftkit/draftkit/model"
	"github.com/draftkit/draftkit/spatial"
)

func requiredString(param, value string) error {
	if value == "" {
		return &spatial.InvalidParameterError{Param: param, Reason: "required"}
	}
	return nil
}

// kindFilter resolves the optional entity_type parameter into a predicate.
func kindFilter(name string) (func(model.Kind) bool, error) {
	if name == "" {
		return func(model.Kind) bool { return true }, nil
	}
	kind, ok := model.ParseKind(name)
	if !ok {
		return nil, &spatial.InvalidParameterError{
			Param:  "entity_type",
			Reason: fmt.Sprintf("unknown entity type %q", name),
		}
	}
	return func(k model.Kind) bool { return k == kind }, nil
}

func filterEntities(ents []model.Entity, keep func(model.Kind) bool) []model.Entity {
	out := ents[:0:0]
	for _, e := range ents {
		if keep(e.Kind) {
			out = append(out, e)
		}
	}
	return out
}

func filterMatches(matches []spatial.Match, keep func(model.Kind) bool) []spatial.Match {
	out := matches[:0:0]
	for _, m := range matches {
		if keep(m.Entity.Kind) {
			out = append(out, m)
		}
	}
	return out
}

// colorValue accepts a color as a JSON number (ACI code) or string (code or
// color name).
type colorValue struct {
	code int
	set  bool
}

func (c *colorValue) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n < 1 || n > 255 {
			return fmt.Errorf("color code %d out of range 1-255", n)
		}
		c.code, c.set = n, true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("color must be an ACI code or a color name")
	}
	code, ok := model.ParseColor(s)
	if !ok {
		return fmt.Errorf("unknown color %q", s)
	}
	c.code, c.set = code, true
	return nil
}

func (r *Registry) listLayers(args json.RawMessage) (any, error) {
	var params struct{}
	if err := decodeParams(args, &params); err != nil {
		return nil, err
	}
	return toLayerResults(r.store.Layers()), nil
}

func (r *Registry) findByLayer(args json.RawMessage) (any, error) {
	var params struct {
		Layer string `json:"layer_name"`
		Kind  string `json:"entity_type"`
	}
	if err := decodeParams(args, &params); err != nil {
		return nil, err
	}
	if err := requiredString("layer_name", params.Layer); err != nil {
		return nil, err
	}
	keep, err := kindFilter(params.Kind)
	if err != nil {
		return nil, err
	}
	ents, err := r.store.EntitiesOnLayer(params.Layer)
	if err != nil {
		return nil, err
	}
	return toEntityInfos(filterEntities(ents, keep)), nil
}

func (r *Registry) entityInfo(args json.RawMessage) (any, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := decodeParams(args, &params); err != nil {
		return nil, err
	}
	if err := requiredString("id", params.ID); err != nil {
		return nil, err
	}
	e, err := r.store.Entity(params.ID)
	if err != nil {
		return nil, err
	}
	return toEntityInfo(e), nil
}

func (r *Registry) area(args json.RawMessage) (any, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := decodeParams(args, &params); err != nil {
		return nil, err
	}
	if err := requiredString("id", params.ID); err != nil {
		return nil, err
	}
	e, err := r.store.Entity(params.ID)
	if err != nil {
		return nil, err
	}
	area, err := e.Geometry.Area()
	if err != nil {
		return nil, err
	}
	return AreaResult{ID: e.ID, Area: area}, nil
}

func (r *Registry) colorLayer(args json.RawMessage) (any, error) {
	var params struct {
		Layer string     `json:"layer_name"`
		Color colorValue `json:"color"`
	}
	if err := decodeParams(args, &params); err != nil {
		return nil, err
	}
	if err := requiredString("layer_name", params.Layer); err != nil {
		return nil, err
	}
	if !params.Color.set {
		return nil, &spatial.InvalidParameterError{Param: "color", Reason: "required"}
	}
	if err := r.store.SetLayerColor(params.Layer, params.Color.code); err != nil {
		return nil, err
	}
	return ColorLayerResult{
		Layer:     params.Layer,
		Color:     params.Color.code,
		ColorName: model.ColorName(params.Color.code),
	}, nil
}

func (r *Registry) deleteEntity(args json.RawMessage) (any, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := decodeParams(args, &params); err != nil {
		return nil, err
	}
	if err := requiredString("id", params.ID); err != nil {
		return nil, err
	}
	if err := r.store.DeleteEntity(params.ID); err != nil {
		return nil, err
	}
	return DeleteResult{ID: params.ID, Deleted: true}, nil
}

func (r *Registry) editText(args json.RawMessage) (any, error) {
	var params struct {
		ID         string `json:"id"`
		NewContent string `json:"new_content"`
	}
	if err := decodeParams(args, &params); err != nil {
		return nil, err
	}
	if err := requiredString("id", params.ID); err != nil {
		return nil, err
	}
	old, err := r.store.EditText(params.ID, params.NewContent)
	if err != nil {
		return nil, err
	}
	e, err := r.store.Entity(params.ID)
	if err != nil {
		return nil, err
	}
	return EditTextResult{ID: params.ID, OldText: old, NewText: e.Text()}, nil
}

func (r *Registry) entityCenter(args json.RawMessage) (any, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := decodeParams(args, &params); err != nil {
		return nil, err
	}
	if err := requiredString("id", params.ID); err != nil {
		return nil, err
	}
	e, err := r.store.Entity(params.ID)
	if err != nil {
		return nil, err
	}
	return CenterResult{ID: e.ID, Center: e.Geometry.Centroid()}, nil
}

func (r *Registry) entityBounds(args json.RawMessage) (any, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := decodeParams(args, &params); err != nil {
		return nil, err
	}
	if err := requiredString("id", params.ID); err != nil {
		return nil, err
	}
	e, err := r.store.Entity(params.ID)
	if err != nil {
		return nil, err
	}
	return BoundsResult{ID: e.ID, Bounds: toBounds(e.Geometry.Bounds())}, nil
}

func (r *Registry) distance(args json.RawMessage) (any, error) {
	var params struct {
		IDA string `json:"id_a"`
		IDB string `json:"id_b"`
	}
	if err := decodeParams(args, &params); err != nil {
		return nil, err
	}
	if err := requiredString("id_a", params.IDA); err != nil {
		return nil, err
	}
	if err := requiredString("id_b", params.IDB); err != nil {
		return nil, err
	}
	sep, err := r.engine.Distance(params.IDA, params.IDB)
	if err != nil {
		return nil, err
	}
	return DistanceResult{
		IDA:              params.IDA,
		IDB:              params.IDB,
		Distance:         sep.Boundary,
		CentroidDistance: sep.Centroid,
	}, nil
}

func (r *Registry) findNearPoint(args json.RawMessage) (any, error) {
	var params struct {
		Point  *geometry.Point `json:"point"`
		Radius *float64        `json:"radius"`
		Kind   string          `json:"entity_type"`
	}
	if err := decodeParams(args, &params); err != nil {
		return nil, err
	}
	if params.Point == nil {
		return nil, &spatial.InvalidParameterError{Param: "point", Reason: "required"}
	}
	if params.Radius == nil {
		return nil, &spatial.InvalidParameterError{Param: "radius", Reason: "required"}
	}
	keep, err := kindFilter(params.Kind)
	if err != nil {
		return nil, err
	}
	matches, err := r.engine.NearPoint(*params.Point, *params.Radius)
	if err != nil {
		return nil, err
	}
	return toMatchResults(filterMatches(matches, keep)), nil
}

func (r *Registry) findInRegion(args json.RawMessage) (any, error) {
	var params struct {
		Min  *geometry.Point `json:"min_corner"`
		Max  *geometry.Point `json:"max_corner"`
		Kind string          `json:"entity_type"`
	}
	if err := decodeParams(args, &params); err != nil {
		return nil, err
	}
	if params.Min == nil {
		return nil, &spatial.InvalidParameterError{Param: "min_corner", Reason: "required"}
	}
	if params.Max == nil {
		return nil, &spatial.InvalidParameterError{Param: "max_corner", Reason: "required"}
	}
	keep, err := kindFilter(params.Kind)
	if err != nil {
		return nil, err
	}
	ents, err := r.engine.InRegion(*params.Min, *params.Max)
	if err != nil {
		return nil, err
	}
	return toEntityInfos(filterEntities(ents, keep)), nil
}

func (r *Registry) findBetween(args json.RawMessage) (any, error) {
	var params struct {
		IDA  string `json:"id_a"`
		IDB  string `json:"id_b"`
		Kind string `json:"entity_type"`
	}
	if err := decodeParams(args, &params); err != nil {
		return nil, err
	}
	if err := requiredString("id_a", params.IDA); err != nil {
		return nil, err
	}
	if err := requiredString("id_b", params.IDB); err != nil {
		return nil, err
	}
	keep, err := kindFilter(params.Kind)
	if err != nil {
		return nil, err
	}
	matches, err := r.engine.Between(params.IDA, params.IDB)
	if err != nil {
		return nil, err
	}
	return toMatchResults(filterMatches(matches, keep)), nil
}

func (r *Registry) findAdjacent(args json.RawMessage) (any, error) {
	var params struct {
		ID        string   `json:"id"`
		Threshold *float64 `json:"threshold"`
		Kind      string   `json:"entity_type"`
	}
	if err := decodeParams(args, &params); err != nil {
		return nil, err
	}
	if err := requiredString("id", params.ID); err != nil {
		return nil, err
	}
	keep, err := kindFilter(params.Kind)
	if err != nil {
		return nil, err
	}

	threshold := r.engine.DefaultThreshold()
	if params.Threshold != nil {
		threshold = *params.Threshold
	}
	matches, err := r.engine.Adjacent(params.ID, threshold)
	if err != nil {
		return nil, err
	}
	return AdjacentResult{
		Threshold: threshold,
		Matches:   toMatchResults(filterMatches(matches, keep)),
	}, nil
}
