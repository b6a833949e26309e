package puzzle

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/tessera/internal/tile"
)

// Definition is a parsed puzzle definition file.
type Definition struct {
	// Name identifies the puzzle (archive rows reference it).
	Name string `yaml:"name"`

	// Rows and Cols give the board shape.
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// Pairs lists complement pairs as two-symbol strings. Empty means
	// the default Ultimate Puzzle alphabet.
	Pairs []string `yaml:"pairs,omitempty"`

	// Tiles lists the inventory as four-symbol descriptions in
	// (north, east, south, west) order.
	Tiles []string `yaml:"tiles"`
}

// Load reads, schema-checks, and parses a YAML definition file.
//
// The raw document is validated against the embedded CUE schema first,
// so structural mistakes (missing fields, bad symbol patterns, zero
// dimensions) surface with schema positions rather than as downstream
// parse errors.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load puzzle: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load puzzle %s: %w", path, err)
	}
	return def, nil
}

// Parse schema-checks and decodes one YAML definition document.
func Parse(data []byte) (*Definition, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}
	return &def, nil
}

// Pairing builds the definition's edge alphabet. An empty Pairs list
// selects tile.DefaultPairing.
func (d *Definition) Pairing() (tile.Pairing, error) {
	if len(d.Pairs) == 0 {
		return tile.DefaultPairing, nil
	}
	p, err := tile.NewPairing(d.Pairs...)
	if err != nil {
		return tile.Pairing{}, fmt.Errorf("puzzle %s: %w", d.Name, err)
	}
	return p, nil
}

// Pool parses the inventory against the definition's pairing and
// normalizes it the way the search consumes it: every description is
// reduced to its canonical identity, and the pool is sorted. The pool
// stays a multiset: a physical puzzle may contain two identical
// tiles, and each still occupies one board cell.
func (d *Definition) Pool() ([]tile.Tile, error) {
	p, err := d.Pairing()
	if err != nil {
		return nil, err
	}

	pool := make([]tile.Tile, len(d.Tiles))
	for i, desc := range d.Tiles {
		tl, err := tile.ParseTile(desc, p)
		if err != nil {
			return nil, fmt.Errorf("puzzle %s: %w", d.Name, err)
		}
		pool[i] = tl.Canonical()
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].String() < pool[j].String() })
	return pool, nil
}

// Cells returns the board's cell count. A solvable definition has
// len(Tiles) == Cells(); the loader does not enforce that (a mismatch
// enumerates to zero complete tilings), but CLI validation reports it.
func (d *Definition) Cells() int {
	return d.Rows * d.Cols
}
