// Package render holds the placeholder conventions shared by the dialects.
package render

import "strconv"

// Style is a bound-parameter placeholder convention.
type Style int

const (
	None     Style = iota // No support
	Question              // ?
	Dollar                // $1, $2, ...
	AtP                   // @p1, @p2, ...
	Colon                 // :name
	At                    // @name
)

// Capabilities describes how a dialect spells bound parameters.
type Capabilities struct {
	Positional Style // Question, Dollar or AtP
	Named      Style // Colon, At or None
}

// Default is the convention used when no dialect is given.
var Default = Capabilities{Positional: Question}

// Placeholder returns the positional placeholder for the n-th bound value,
// counting from 1.
func (c Capabilities) Placeholder(n int) string {
	switch c.Positional {
	case Dollar:
		return "$" + strconv.Itoa(n)
	case AtP:
		return "@p" + strconv.Itoa(n)
	default:
		return "?"
	}
}

// SupportsNamed reports whether the dialect has a named placeholder form.
func (c Capabilities) SupportsNamed() bool {
	return c.Named == Colon || c.Named == At
}

// NamedPlaceholder returns the named placeholder for name. It returns the
// empty string when the dialect has no named form.
func (c Capabilities) NamedPlaceholder(name string) string {
	switch c.Named {
	case Colon:
		return ":" + name
	case At:
		return "@" + name
	default:
		return ""
	}
}
