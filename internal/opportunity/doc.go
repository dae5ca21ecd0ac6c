// Package opportunity computes publisher-representation analytics over the
// aggregate match result: registration coverage, major/indie publisher
// classification, and a banded opportunity score with a discrete priority
// level.
//
// Scoring policy lives in Weights and is validated before any recording is
// processed; the computation itself is pure and never fails on well-formed
// input.
package opportunity
