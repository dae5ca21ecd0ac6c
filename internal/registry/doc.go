// Package registry defines the provider interface and work model shared by
// every rights-registry integration.
//
// A Provider answers exact lookups by industry recording code and fuzzy
// title searches, returning Composition candidates tagged with the provider
// name that fetched them. Identity is always (provider, work ID); the
// reconciler relies on Composition.Key for global dedup.
package registry
