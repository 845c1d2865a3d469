// Package model defines the typed representation of drawing elements.
//
// An [Entity] is one drawn element: a line, polyline, circle, text label or
// hatch fill. Entities are identified by a handle that stays stable for the
// lifetime of the loaded drawing, reference a layer by name, and carry a
// geometry payload from the geometry package.
//
// The [Record] and [LayerDef] types form the boundary with the external
// drawing decoder: a decoded drawing arrives as a layer table plus a
// sequence of records, and a mutated document is exported back in the same
// shape so the decoder's writer can produce a modified file.
package model
