// Package mlc integrates the Mechanical Licensing Collective public works
// search as a registry provider.
//
// The MLC endpoint is a POST search with query parameters and an empty JSON
// body; responses are parsed into the shared composition model with writer
// and publisher contributors. Transient failures are retried with
// exponential backoff before surfacing as provider errors.
package mlc
