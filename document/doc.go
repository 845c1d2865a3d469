// Package document owns the mutable state of one loaded drawing: the layer
// table, the live entities, and the tombstones of deleted ones.
//
// A [Store] is constructed once from the external decoder's output and is
// the single mutable unit of state. Reads take a shared lock and never
// mutate; mutations take the exclusive lock, validate fully before touching
// anything, and leave the store consistent or unchanged. Deleted entity
// handles are tombstoned and never reused, so stale handles held by callers
// fail cleanly instead of resolving to a different entity.
package document
