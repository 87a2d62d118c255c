// Package pqueue provides the two priority-queue flavours the
// dominance bucket and the DTP engine build on (§4.3):
//
//   - BinaryHeap: a plain min-heap over label.Label, ordered by
//     Label.Less. Used inside a bucket as the unprocessed store.
//   - MappingHeap: a vertex-keyed min-heap supporting true decrease-key
//     (ChangeKey), used as the engine's global frontier Q — exactly one
//     entry per vertex currently owning an unprocessed label.
//
// Both are built on container/heap, the same approach
// katalvlaran/lvlath's dijkstra package uses for its lazy-decrease-key
// nodePQ; MappingHeap additionally tracks each element's position so it
// can support a real decrease-key instead of push-and-ignore-stale.
package pqueue
