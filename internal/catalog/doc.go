// Package catalog models streaming-catalog recordings and loads pre-fetched
// batches from JSON exports.
//
// The matching engine consumes recordings regardless of fetch origin; the
// spotify subpackage fetches them live, while LoadFile replays a saved
// export without credentials.
package catalog
