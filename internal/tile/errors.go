package tile

import (
	"errors"
	"fmt"
)

// InvalidTileError reports a malformed tile description at inventory
// load time, before any search begins.
type InvalidTileError struct {
	// Code identifies the error category.
	Code InvalidTileCode

	// Desc is the offending tile description as supplied.
	Desc string

	// Symbol is the offending symbol (zero for length errors).
	Symbol byte

	// Message is a human-readable description.
	Message string
}

// InvalidTileCode categorizes tile validation errors.
type InvalidTileCode string

const (
	// ErrCodeBadLength indicates a description that is not four symbols.
	ErrCodeBadLength InvalidTileCode = "BAD_LENGTH"

	// ErrCodeUnknownSymbol indicates a symbol outside the alphabet.
	ErrCodeUnknownSymbol InvalidTileCode = "UNKNOWN_SYMBOL"
)

// Error implements the error interface.
func (e *InvalidTileError) Error() string {
	if e.Symbol != 0 {
		return fmt.Sprintf("%s: invalid tile %q: %s (symbol %q)", e.Code, e.Desc, e.Message, string(e.Symbol))
	}
	return fmt.Sprintf("%s: invalid tile %q: %s", e.Code, e.Desc, e.Message)
}

// IsInvalidTile returns true if the error is a tile validation error.
// Uses errors.As to handle wrapped errors.
func IsInvalidTile(err error) bool {
	var te *InvalidTileError
	return errors.As(err, &te)
}
