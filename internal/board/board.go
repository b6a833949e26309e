// Package board models the puzzle grid: a fixed-size, row-major board
// of optionally placed tiles, with the local edge-compatibility check
// the search relies on.
package board

import (
	"fmt"
	"strings"

	"github.com/roach88/tessera/internal/tile"
)

// Pos addresses one cell. Row 0 is the top row, Col 0 the left column.
type Pos struct {
	Row int
	Col int
}

type cell struct {
	tile   tile.Tile
	filled bool
}

// Board is an R×C grid of optionally placed tiles.
//
// Board is a value type in the search's sense: Place returns a
// structural copy and never mutates the receiver, so a board held by
// one search branch stays valid for its siblings. The zero Board is
// not usable; construct with New.
type Board struct {
	rows  int
	cols  int
	cells []cell // row-major, len == rows*cols
}

// New creates an empty rows×cols board. Panics if either dimension is
// not positive; board shapes come from validated puzzle definitions.
func New(rows, cols int) Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("board: invalid shape %dx%d", rows, cols))
	}
	return Board{
		rows:  rows,
		cols:  cols,
		cells: make([]cell, rows*cols),
	}
}

// Rows returns the number of rows.
func (b Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b Board) Cols() int { return b.cols }

// Cells returns the total number of cells.
func (b Board) Cells() int { return b.rows * b.cols }

// At returns the tile at pos and whether the cell is filled.
func (b Board) At(pos Pos) (tile.Tile, bool) {
	c := b.cells[b.index(pos)]
	return c.tile, c.filled
}

// Filled returns the number of filled cells.
func (b Board) Filled() int {
	n := 0
	for _, c := range b.cells {
		if c.filled {
			n++
		}
	}
	return n
}

// Full reports whether every cell is filled.
func (b Board) Full() bool {
	return b.Filled() == len(b.cells)
}

// NextEmpty returns the first empty cell in row-major scan order, or
// false if the board is full.
//
// The scan order is load-bearing: it gives every partial board a
// unique next cell to fill, so the search branches only over which
// tile goes there, never over where to place next. Changing the order
// changes the enumeration trace.
func (b Board) NextEmpty() (Pos, bool) {
	for i, c := range b.cells {
		if !c.filled {
			return Pos{Row: i / b.cols, Col: i % b.cols}, true
		}
	}
	return Pos{}, false
}

// Fits reports whether t can be placed at pos: each of the four edges
// must be complementary to the touching edge of an already placed
// neighbor. Grid boundaries and empty neighbor cells always match;
// the constraint only binds against placed tiles.
func (b Board) Fits(p tile.Pairing, t tile.Tile, pos Pos) bool {
	return b.edgeMatches(p, t.Edge(tile.North), Pos{pos.Row - 1, pos.Col}, tile.South) &&
		b.edgeMatches(p, t.Edge(tile.East), Pos{pos.Row, pos.Col + 1}, tile.West) &&
		b.edgeMatches(p, t.Edge(tile.South), Pos{pos.Row + 1, pos.Col}, tile.North) &&
		b.edgeMatches(p, t.Edge(tile.West), Pos{pos.Row, pos.Col - 1}, tile.East)
}

// edgeMatches checks one direction: sym against the facing edge of the
// neighbor at npos.
func (b Board) edgeMatches(p tile.Pairing, sym byte, npos Pos, facing tile.Edge) bool {
	if npos.Row < 0 || npos.Row >= b.rows || npos.Col < 0 || npos.Col >= b.cols {
		return true
	}
	n := b.cells[b.index(npos)]
	if !n.filled {
		return true
	}
	c, ok := p.Complement(sym)
	return ok && n.tile.Edge(facing) == c
}

// Place returns a copy of the board with t placed at pos. The receiver
// is unmodified. Panics if the cell is already filled; the search only
// ever places into the cell NextEmpty returned.
func (b Board) Place(pos Pos, t tile.Tile) Board {
	i := b.index(pos)
	if b.cells[i].filled {
		panic(fmt.Sprintf("board: cell %d,%d already filled", pos.Row, pos.Col))
	}
	cells := make([]cell, len(b.cells))
	copy(cells, b.cells)
	cells[i] = cell{tile: t, filled: true}
	return Board{rows: b.rows, cols: b.cols, cells: cells}
}

// String renders the board as rows of space-separated cells, empty
// cells as a right-aligned underscore:
//
//	EAGB GHFC GDBG ABDC
//	HGAF    _    _    _
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cl := b.cells[r*b.cols+c]
			if cl.filled {
				sb.WriteString(cl.tile.String())
			} else {
				sb.WriteString("   _")
			}
		}
	}
	return sb.String()
}

// RowStrings returns one string per row in the same format as String.
// Used for structured output (JSON solutions, golden snapshots).
func (b Board) RowStrings() []string {
	rows := make([]string, b.rows)
	for r, line := range strings.Split(b.String(), "\n") {
		rows[r] = line
	}
	return rows
}

func (b Board) index(pos Pos) int {
	if pos.Row < 0 || pos.Row >= b.rows || pos.Col < 0 || pos.Col >= b.cols {
		panic(fmt.Sprintf("board: position %d,%d out of range for %dx%d", pos.Row, pos.Col, b.rows, b.cols))
	}
	return pos.Row*b.cols + pos.Col
}
