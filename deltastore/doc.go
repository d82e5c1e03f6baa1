// Package deltastore implements the column codec's delta-materialization
// arena: an append-only store of element bytes produced by applying a
// delta to a prior element, indexed by a monotonically assigned
// deltaIndex identical for every iterator over the same column.
//
// Slots are never moved or freed once appended, so element references the
// store hands out remain valid for the lifetime of the owning column.
package deltastore
