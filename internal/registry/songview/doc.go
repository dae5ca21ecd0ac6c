// Package songview stubs the combined ASCAP/BMI Songview repertory as a
// registry provider returning zero candidates per query.
package songview
