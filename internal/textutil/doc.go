// Package textutil provides text processing utilities for string similarity
// and filename sanitization.
//
// SequenceSimilarity measures how much of two strings is covered by common
// character runs, which is the metric the matching pipeline uses to compare
// normalized titles. The sanitization helpers make artist and report names
// safe for filesystem use.
package textutil
