package tile

import (
	"fmt"
	"sort"
)

// Pairing is the edge alphabet together with its complement function.
//
// The complement function is total over the alphabet and involutive:
// every symbol has exactly one partner, and the partner of the partner
// is the symbol itself. Both properties are enforced at construction,
// so the rest of the codebase can treat Complement as infallible for
// symbols that passed ParseTile.
type Pairing struct {
	complement map[byte]byte
}

// NewPairing builds a Pairing from two-symbol pair descriptions.
//
// Each pair declares the two symbols as mutual complements, e.g.
// NewPairing("AB", "CD") declares A↔B and C↔D. A symbol may appear in
// only one pair. A pair of the form "XX" declares a self-complementary
// symbol (a flat edge that matches itself).
func NewPairing(pairs ...string) (Pairing, error) {
	if len(pairs) == 0 {
		return Pairing{}, fmt.Errorf("pairing: at least one pair is required")
	}

	complement := make(map[byte]byte, len(pairs)*2)
	for _, pair := range pairs {
		if len(pair) != 2 {
			return Pairing{}, fmt.Errorf("pairing: pair %q must be exactly two symbols", pair)
		}
		a, b := pair[0], pair[1]
		if prev, ok := complement[a]; ok && prev != b {
			return Pairing{}, fmt.Errorf("pairing: symbol %q already paired with %q", string(a), string(prev))
		}
		if prev, ok := complement[b]; ok && prev != a {
			return Pairing{}, fmt.Errorf("pairing: symbol %q already paired with %q", string(b), string(prev))
		}
		complement[a] = b
		complement[b] = a
	}

	return Pairing{complement: complement}, nil
}

// MustPairing is like NewPairing but panics on error.
// Intended for package-level defaults and tests.
func MustPairing(pairs ...string) Pairing {
	p, err := NewPairing(pairs...)
	if err != nil {
		panic(err)
	}
	return p
}

// DefaultPairing is the Ultimate Puzzle alphabet: four tab/socket shape
// pairs (cross, circle, tree, boat).
var DefaultPairing = MustPairing("AB", "CD", "EF", "GH")

// Complement returns the partner of sym, or false if sym is not in the
// alphabet.
func (p Pairing) Complement(sym byte) (byte, bool) {
	c, ok := p.complement[sym]
	return c, ok
}

// Contains reports whether sym is part of the alphabet.
func (p Pairing) Contains(sym byte) bool {
	_, ok := p.complement[sym]
	return ok
}

// Symbols returns the alphabet in ascending order.
func (p Pairing) Symbols() []byte {
	syms := make([]byte, 0, len(p.complement))
	for s := range p.complement {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}
