// Package tile models edge-matching puzzle tiles.
//
// A Tile is an immutable value of four edge symbols (north, east, south,
// west) drawn from a small alphabet in which every symbol has exactly one
// complement. Two touching edges match when their symbols are complements.
//
// Layering: tile imports nothing from internal/. board and search build on
// top of it.
package tile
