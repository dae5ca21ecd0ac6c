// Package config loads, normalizes, and validates crosswalk configuration.
//
// It supplies repository defaults, expands user paths, reads TOML files, and
// honours environment fallbacks for Spotify credentials. Matching thresholds
// and opportunity scoring weights are validated here so a malformed policy
// refuses to run before any recording is processed.
package config
