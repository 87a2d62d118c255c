// Package bucket implements the dominance bucket L(v) described in
// §3/§4.4: the per-vertex container holding every non-dominated label
// ever materialised there, split into an append-only processed
// sequence and an unprocessed priority queue.
//
// Merge is the only way a label enters a bucket; it applies the
// bucket's DominationCriterion, marking dominated unprocessed labels
// invalid in place (processed labels, which other labels' back-pointers
// may reference, are never touched), and lazily drops invalid entries
// from the top of the unprocessed queue after every mutation. Popping moves the
// current best unprocessed label into the processed sequence and fixes
// its final index, which is the index future back-pointers resolve
// against.
//
// There is no recoverable error in this package: a merge either
// succeeds or is dominated, and popping or indexing an empty/invalid
// bucket is a programmer error that panics, per §4.4's failure
// semantics ("merging into a bucket never fails except by dominance;
// no exceptions... popping an empty queue is a programmer error").
package bucket
