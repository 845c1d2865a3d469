// Package spatial implements the read-only spatial queries over a loaded
// drawing: proximity to a point, region overlap, betweenness of two
// entities, boundary adjacency, and entity-to-entity distance.
//
// An [Engine] works on snapshots of the document store, so queries can run
// concurrently with each other and never observe a half-applied mutation.
package spatial
