package synth

import "fmt"

// MissingMethodError reports a manual op that a conforming type does not
// declare.
type MissingMethodError struct {
	Type   string
	Symbol string
	Method string
}

func (e MissingMethodError) Error() string {
	return fmt.Sprintf("%s realizes %s but does not declare %s: manual ops must be written by hand", e.Type, e.Symbol, e.Method)
}

// OpConflictError reports two symbols in one type's conformance set that
// declare an op with the same name.
type OpConflictError struct {
	Type   string
	Op     string
	First  string
	Second string
}

func (e OpConflictError) Error() string {
	return fmt.Sprintf("%s: op %s is declared by both %s and %s", e.Type, e.Op, e.First, e.Second)
}

// MarkerError reports a malformed //sqlgen:symbol comment.
type MarkerError struct {
	Pos  string
	Text string
}

func (e MarkerError) Error() string {
	return fmt.Sprintf("%s: malformed marker %q: want //sqlgen:symbol <Symbol>", e.Pos, e.Text)
}
