// Package tempbox computes, maintains, and decomposes the bounding boxes of
// temporal values. A temporal value carries a Boolean/discrete, numeric, or
// spatial payload and is shaped as an Instant, a Sequence of instants, or a
// SequenceSet of time-disjoint sequences. Each one is summarized by a box: a
// TimeSpan, a value-time TBox, or a spatiotemporal STBox.
//
// Typical usage looks like:
//   - Build Instants, Sequences, and SequenceSets; their boxes are computed
//     at construction and kept current as instants or sequences are appended
//   - Compare and test boxes with BoxEquals, BoxCompare, and the With*
//     predicate wrappers
//   - Decompose a value into at most N boxes with Boxes for multi-entry
//     indexing, and persist them through an Indexer backed by bbolt, Redis,
//     or PostgreSQL, either directly or through an IndexWorker pool
//
// The examples/ directory contains a runnable program that indexes a few
// trajectories and queries them by box.
package tempbox
