package grammar

import (
	"fmt"
	"strings"
)

// UnknownSymbolError reports a name that is not declared in the registry.
type UnknownSymbolError struct {
	Name string
	// ReferencedBy is the symbol whose satisfies list named Name, or
	// Symbol.Op for a name used in an op signature. Empty for lookups.
	ReferencedBy string
}

func (e UnknownSymbolError) Error() string {
	if e.ReferencedBy != "" {
		return fmt.Sprintf("unknown symbol %q referenced by %q", e.Name, e.ReferencedBy)
	}
	return fmt.Sprintf("unknown symbol %q", e.Name)
}

// CycleError reports a satisfies cycle. Path begins and ends with the same
// symbol.
type CycleError struct {
	Path []string
}

func (e CycleError) Error() string {
	return "satisfies cycle: " + strings.Join(e.Path, " -> ")
}
