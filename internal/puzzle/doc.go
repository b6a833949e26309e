// Package puzzle loads and validates puzzle definitions.
//
// A definition names a board shape, an edge alphabet, and a tile
// inventory. Definitions arrive as YAML, are checked against an
// embedded CUE schema for shape, then semantically validated (pairing
// totality, tile symbols) while being compiled into the canonical,
// sorted pool the search engine consumes.
package puzzle
