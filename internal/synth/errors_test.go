package synth

import "testing"

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{
			MissingMethodError{Type: "Cl", Symbol: "Clause", Method: "With"},
			"Cl realizes Clause but does not declare With: manual ops must be written by hand",
		},
		{
			OpConflictError{Type: "N", Op: "Add", First: "A", Second: "B"},
			"N: op Add is declared by both A and B",
		},
		{
			MarkerError{Pos: "a.go:3:1", Text: "//sqlgen:symbol A B"},
			`a.go:3:1: malformed marker "//sqlgen:symbol A B": want //sqlgen:symbol <Symbol>`,
		},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
