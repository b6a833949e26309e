package tile

// Edge indexes into a Tile's four edge symbols.
type Edge int

// Edge positions in storage order. Rotate depends on this order:
// a rotation is a cyclic left shift of (North, East, South, West).
const (
	North Edge = iota
	East
	South
	West
)

// Tile is one oriented puzzle tile: four edge symbols in (north, east,
// south, west) order.
//
// Tile is a value type. Transformations return new values; a Tile is
// never mutated after construction, so tiles can be shared freely
// between search branches.
type Tile [4]byte

// ParseTile validates a four-symbol description against the pairing and
// returns the tile. Every symbol must belong to the alphabet; a symbol
// without a complement cannot ever match a neighbor, so it is rejected
// up front with an InvalidTileError.
func ParseTile(desc string, p Pairing) (Tile, error) {
	if len(desc) != 4 {
		return Tile{}, &InvalidTileError{
			Code:    ErrCodeBadLength,
			Desc:    desc,
			Message: "tile description must be exactly four symbols",
		}
	}
	for i := 0; i < 4; i++ {
		if !p.Contains(desc[i]) {
			return Tile{}, &InvalidTileError{
				Code:    ErrCodeUnknownSymbol,
				Desc:    desc,
				Symbol:  desc[i],
				Message: "symbol is not part of the edge alphabet",
			}
		}
	}
	return Tile{desc[0], desc[1], desc[2], desc[3]}, nil
}

// String returns the four edge symbols in (north, east, south, west)
// order, e.g. "EAGB". This is also the total order used by Canonical.
func (t Tile) String() string {
	return string(t[:])
}

// Edge returns the symbol on the given edge.
func (t Tile) Edge(e Edge) byte {
	return t[e]
}

// Rotate returns the tile turned 90° counter-clockwise: the edge that
// was east becomes north. Four applications return the original value.
func (t Tile) Rotate() Tile {
	return Tile{t[East], t[South], t[West], t[North]}
}

// Flip returns the tile reflected about its north-south axis: east and
// west swap, north and south stay put.
func (t Tile) Flip() Tile {
	return Tile{t[North], t[West], t[South], t[East]}
}

// Orientations returns the 8 orientations reachable by rotation and
// reflection, in a fixed order: the identity and its three rotations,
// then the flip and its three rotations.
//
// Duplicates are retained. A tile with internal symmetry repeats some
// orientations, and the search needs every candidate at each board cell
// so that emission counters stay faithful to the state space.
func (t Tile) Orientations() [8]Tile {
	var out [8]Tile
	out[0] = t
	for i := 1; i < 4; i++ {
		out[i] = out[i-1].Rotate()
	}
	out[4] = t.Flip()
	for i := 5; i < 8; i++ {
		out[i] = out[i-1].Rotate()
	}
	return out
}

// Canonical returns the lexicographically smallest of the tile's 8
// orientations. Two descriptions of the same physical tile, however
// rotated or flipped, share one canonical value; the inventory loader
// uses it to normalize tile descriptions.
func (t Tile) Canonical() Tile {
	min := t
	for _, o := range t.Orientations() {
		if o.String() < min.String() {
			min = o
		}
	}
	return min
}
