package enc

import "fmt"

// InvalidCharacterError is returned by Decode when the input contains a character that is not part
// of the encoder's alphabet.
type InvalidCharacterError struct {
	Char     byte
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q (0x%02x) at position %d", e.Char, e.Char, e.Position)
}
