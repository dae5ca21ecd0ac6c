// Package reconcile merges per-recording match results into the canonical
// aggregate view: deduplicated works, flattened contributor rows, and the
// ordered raw link list.
//
// Work identity is (provider, work ID). Sorting is a post-pass over the
// collected links, which keeps the aggregate deterministic regardless of the
// order recordings were matched in.
package reconcile
