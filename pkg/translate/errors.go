package translate

import "fmt"

// Error describes malformed translator input. It is returned before any
// Tune is produced, so a caller never receives a partially-translated piece.
type Error struct {
	// Token is the offending fragment of the input.
	Token string
	// Pos is the zero-based token (or rune) position in the input.
	Pos int
	// Reason is a short description of what is wrong with the token.
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("translate: invalid token %q at position %d: %s", e.Token, e.Pos, e.Reason)
}
