// Package run orchestrates a full analysis: catalog acquisition, matching,
// reconciliation, opportunity scoring, and report generation for one artist,
// with per-run output directories and an output-tree lock.
package run
