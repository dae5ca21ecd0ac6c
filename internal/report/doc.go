// Package report renders the per-run output artifacts: the CSV exports for
// matched works, contributors, identifier mappings, the comprehensive
// per-track report, unregistered tracks, publisher analysis, and the
// plain-text publishing summary.
package report
