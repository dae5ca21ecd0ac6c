// Package spotify fetches artist catalogs from the Spotify Web API.
//
// The client authenticates with the client credentials flow, walks the
// artist's albums and singles with paging, and resolves per-track detail
// (including ISRCs) in batches of fifty. The result is an ordered
// catalog.Batch ready for the matching engine.
package spotify
