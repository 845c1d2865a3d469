package spatial

import (
	"fmt"
	"math"
	"sort"

	"github.com/draftkit/draftkit/document"
	"github.com/draftkit/draftkit/geometry"
	"github.com/draftkit/draftkit/model"
)

// InvalidParameterError reports a query parameter that fails validation,
// such as a negative radius or a malformed rectangle.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

// Config holds the tunables of the query engine.
type Config struct {
	// AdjacencyFraction scales the default adjacency threshold: when a
	// caller does not supply one, the threshold is this fraction of the
	// drawing extents' diagonal, so adjacency follows the drawing size
	// rather than a fixed unit.
	AdjacencyFraction float64

	// BetweenMargin expands the rectangle spanned by two centroids in the
	// betweenness query, so elements exactly on the boundary still match.
	BetweenMargin float64
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		AdjacencyFraction: 0.05,
		BetweenMargin:     1e-6,
	}
}

// Engine answers spatial queries against a document store. It never
// mutates the store.
type Engine struct {
	store *document.Store
	cfg   Config
}

// NewEngine creates a query engine over a store. Zero config fields fall
// back to the defaults.
func NewEngine(store *document.Store, cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.AdjacencyFraction <= 0 {
		cfg.AdjacencyFraction = def.AdjacencyFraction
	}
	if cfg.BetweenMargin <= 0 {
		cfg.BetweenMargin = def.BetweenMargin
	}
	return &Engine{store: store, cfg: cfg}
}

// Match is one query result: the entity and the distance that qualified it,
// whose meaning depends on the query.
type Match struct {
	Entity   model.Entity
	Distance float64
}

// NearPoint returns the live entities whose nearest boundary lies within
// radius of the point, closest first. Text entities are measured at their
// anchor. A radius of zero matches only entities containing the exact
// point; a negative radius is invalid.
func (e *Engine) NearPoint(p geometry.Point, radius float64) ([]Match, error) {
	if radius < 0 || math.IsNaN(radius) {
		return nil, &InvalidParameterError{Param: "radius", Reason: "must not be negative"}
	}

	var out []Match
	for _, ent := range e.store.Snapshot() {
		if radius == 0 {
			if geometry.ContainsPoint(ent.Geometry, p) {
				out = append(out, Match{Entity: ent, Distance: 0})
			}
			continue
		}
		d := geometry.PointToGeometry(p, ent.Geometry)
		if d <= radius {
			out = append(out, Match{Entity: ent, Distance: d})
		}
	}
	sortMatches(out)
	return out, nil
}

// InRegion returns the live entities whose bounding box overlaps the query
// rectangle. Partial overlap counts: this mirrors how a drafter visually
// selects elements in a region. The rectangle must have its minimum corner
// strictly below its maximum corner on both axes.
func (e *Engine) InRegion(min, max geometry.Point) ([]model.Entity, error) {
	region := geometry.BBox{Min: min, Max: max}
	if !region.IsValid() {
		return nil, &InvalidParameterError{
			Param:  "region",
			Reason: "min_corner must be strictly below max_corner on both axes",
		}
	}

	var out []model.Entity
	for _, ent := range e.store.Snapshot() {
		if ent.Geometry.Bounds().Intersects(region) {
			out = append(out, ent)
		}
	}
	return out, nil
}

// Between returns the entities whose centroid falls inside the rectangle
// spanned by the centroids of the two reference entities, expanded by the
// configured margin. The references themselves are excluded. Results are
// ordered by distance from the centerline joining the two centroids.
func (e *Engine) Between(idA, idB string) ([]Match, error) {
	a, err := e.store.Entity(idA)
	if err != nil {
		return nil, err
	}
	b, err := e.store.Entity(idB)
	if err != nil {
		return nil, err
	}

	ca := a.Geometry.Centroid()
	cb := b.Geometry.Centroid()
	span := geometry.NewBBox(ca, cb).Expand(e.cfg.BetweenMargin)
	axis := geometry.Segment{Start: ca, End: cb}

	var out []Match
	for _, ent := range e.store.Snapshot() {
		if ent.ID == idA || ent.ID == idB {
			continue
		}
		c := ent.Geometry.Centroid()
		if !span.Contains(c) {
			continue
		}
		out = append(out, Match{Entity: ent, Distance: geometry.PointToSegment(c, axis)})
	}
	sortMatches(out)
	return out, nil
}

// Adjacent returns the entities whose minimum boundary-to-boundary distance
// to the reference entity is within the threshold, closest first and
// excluding the reference itself. A zero threshold matches touching
// entities only; a negative threshold is invalid. Adjacency is symmetric
// for a fixed threshold.
func (e *Engine) Adjacent(id string, threshold float64) ([]Match, error) {
	if threshold < 0 || math.IsNaN(threshold) {
		return nil, &InvalidParameterError{Param: "threshold", Reason: "must not be negative"}
	}

	ref, err := e.store.Entity(id)
	if err != nil {
		return nil, err
	}

	var out []Match
	for _, ent := range e.store.Snapshot() {
		if ent.ID == id {
			continue
		}
		d := geometry.Distance(ref.Geometry, ent.Geometry)
		if d <= threshold {
			out = append(out, Match{Entity: ent, Distance: d})
		}
	}
	sortMatches(out)
	return out, nil
}

// DefaultThreshold returns the adjacency threshold used when a caller does
// not supply one: the configured fraction of the drawing extents' diagonal.
func (e *Engine) DefaultThreshold() float64 {
	bounds, ok := e.store.Bounds()
	if !ok {
		return 0
	}
	return e.cfg.AdjacencyFraction * bounds.Diagonal()
}

// Separation is the distance between two entities: the minimum distance
// between their boundaries and the distance between their centroids.
type Separation struct {
	Boundary float64
	Centroid float64
}

// Distance measures the separation of two entities.
func (e *Engine) Distance(idA, idB string) (Separation, error) {
	a, err := e.store.Entity(idA)
	if err != nil {
		return Separation{}, err
	}
	b, err := e.store.Entity(idB)
	if err != nil {
		return Separation{}, err
	}
	return Separation{
		Boundary: geometry.Distance(a.Geometry, b.Geometry),
		Centroid: a.Geometry.Centroid().Distance(b.Geometry.Centroid()),
	}, nil
}

// sortMatches orders matches by ascending distance, breaking ties by handle
// so results are deterministic.
func sortMatches(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Entity.ID < matches[j].Entity.ID
	})
}
