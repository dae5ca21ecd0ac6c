// Package services defines the shared error taxonomy for external
// collaborators and configuration.
//
// Provider failures degrade a single recording, malformed records are skipped
// for matching, and configuration errors abort the run before any recording
// is processed. Wrap tags errors with the appropriate sentinel so callers can
// classify them with errors.Is.
package services
