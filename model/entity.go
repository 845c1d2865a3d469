package model

import (
	"strings"

	"github.com/draftkit/draftkit/geometry"
)

// Kind represents the type of drawing entity.
type Kind int

const (
	KindUnknown Kind = iota
	KindLine
	KindPolyline
	KindText
	KindMText
	KindHatch
	KindCircle
)

// kindNames follows the naming of the source drawing format.
var kindNames = map[Kind]string{
	KindLine:     "LINE",
	KindPolyline: "POLYLINE",
	KindText:     "TEXT",
	KindMText:    "MTEXT",
	KindHatch:    "HATCH",
	KindCircle:   "CIRCLE",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseKind converts an entity type name to a Kind. Matching is
// case-insensitive and accepts LWPOLYLINE as an alias for POLYLINE.
func ParseKind(name string) (Kind, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "LINE":
		return KindLine, true
	case "POLYLINE", "LWPOLYLINE":
		return KindPolyline, true
	case "TEXT":
		return KindText, true
	case "MTEXT":
		return KindMText, true
	case "HATCH":
		return KindHatch, true
	case "CIRCLE":
		return KindCircle, true
	}
	return KindUnknown, false
}

// IsText reports whether the kind carries editable text content.
func (k Kind) IsText() bool {
	return k == KindText || k == KindMText
}

// Entity is one drawn element of a loaded drawing.
type Entity struct {
	// ID is the entity handle, unique within a document and never reused.
	ID string
	// Kind is the entity type.
	Kind Kind
	// Layer is the name of the layer the entity belongs to.
	Layer string
	// Geometry is the entity's geometric payload.
	Geometry geometry.Geometry
	// Attributes holds pass-through fields not otherwise modeled, such as
	// a per-entity color override or linetype.
	Attributes map[string]string
}

// Text returns the text content for Text and MText entities and the empty
// string for every other kind.
func (e Entity) Text() string {
	if anchor, ok := e.Geometry.(geometry.TextAnchor); ok {
		return anchor.Content
	}
	return ""
}

// Record is one row of the decoder-boundary interchange: an entity as the
// external drawing decoder emits it and as the export view hands it back.
type Record struct {
	// Handle is the entity handle from the source file. When empty, the
	// document store assigns one at load time.
	Handle string
	// Kind is the entity type.
	Kind Kind
	// Layer is the layer name the entity references.
	Layer string
	// Geometry is the decoded geometry payload.
	Geometry geometry.Geometry
	// Attributes are pass-through fields preserved verbatim.
	Attributes map[string]string
}

// LayerDef describes one layer of the drawing's layer table.
type LayerDef struct {
	// Name is the unique layer name.
	Name string `json:"name"`
	// Color is the layer's ACI color code.
	Color int `json:"color"`
}

// Drawing is a fully decoded drawing: the layer table plus the entity
// records in source order.
type Drawing struct {
	Layers   []LayerDef `json:"layers"`
	Entities []Record   `json:"entities"`
}
