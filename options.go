package draftkit

import "github.com/draftkit/draftkit/spatial"

// Option adjusts the spatial configuration a Session is built with.
type Option func(*spatial.Config)

// WithAdjacencyFraction sets the default adjacency threshold as a fraction
// of the drawing extents diagonal. Zero or negative values fall back to the
// package default.
func WithAdjacencyFraction(fraction float64) Option {
	return func(cfg *spatial.Config) {
		cfg.AdjacencyFraction = fraction
	}
}

// WithBetweenMargin sets the tolerance added around the corridor rectangle
// used by between queries.
func WithBetweenMargin(margin float64) Option {
	return func(cfg *spatial.Config) {
		cfg.BetweenMargin = margin
	}
}
