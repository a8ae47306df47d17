package typedsql

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIdentifier is matched by every IdentifierError.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrNotInSchema reports a table or column missing from a Catalog.
	ErrNotInSchema = errors.New("not found in schema")
	// ErrInvalidNumber reports a float with no SQL literal form.
	ErrInvalidNumber = errors.New("not a finite number")
)

// IdentifierError reports text that does not satisfy the identifier rule.
type IdentifierError struct {
	Text string
}

func (e IdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q: must match [A-Za-z_][A-Za-z0-9_]*", e.Text)
}

// Is reports whether target is ErrInvalidIdentifier.
func (e IdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}

// NewIdentifierError creates an identifier error for text.
func NewIdentifierError(text string) error {
	return IdentifierError{Text: text}
}
