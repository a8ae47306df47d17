package grammar

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosure(t *testing.T) {
	reg := mustParse(t, fixture)

	tests := []struct {
		name string
		want []string
	}{
		{"Leaf", []string{"Middle", "Other", "Top"}},
		{"Middle", []string{"Top"}},
		{"Top", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Closure(tt.name)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Closure(%s) mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestClosureUnknown(t *testing.T) {
	reg := mustParse(t, fixture)
	_, err := reg.Closure("Nope")
	assert.True(t, errors.As(err, new(UnknownSymbolError)))
}

func TestClosureSelfEdge(t *testing.T) {
	reg := mustParse(t, "symbols:\n  - name: A\n    satisfies: [A, B]\n  - name: B\n")
	got, err := reg.Closure("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, got)
}

func TestClosureTerminatesOnCycle(t *testing.T) {
	reg := mustParse(t, "symbols:\n  - name: A\n    satisfies: [B]\n  - name: B\n    satisfies: [C]\n  - name: C\n    satisfies: [A]\n")
	got, err := reg.Closure("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, got)
}

func TestClosureDiamond(t *testing.T) {
	reg := mustParse(t, `
symbols:
  - name: A
    satisfies: [B, C]
  - name: B
    satisfies: [D]
  - name: C
    satisfies: [D]
  - name: D
`)
	got, err := reg.Closure("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, got)
}

func TestSatisfies(t *testing.T) {
	reg := mustParse(t, fixture)

	tests := []struct {
		from, to string
		want     bool
	}{
		{"Leaf", "Top", true},
		{"Leaf", "Leaf", true},
		{"Top", "Leaf", false},
		{"Middle", "Other", false},
	}
	for _, tt := range tests {
		got, err := reg.Satisfies(tt.from, tt.to)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.from, tt.to)
	}

	_, err := reg.Satisfies("Leaf", "Nope")
	assert.Error(t, err)
}

func TestCheckCycles(t *testing.T) {
	t.Run("acyclic", func(t *testing.T) {
		reg := mustParse(t, fixture)
		assert.NoError(t, reg.CheckAll())
	})

	t.Run("self edge allowed", func(t *testing.T) {
		reg := mustParse(t, "symbols:\n  - name: A\n    satisfies: [A]\n")
		assert.NoError(t, reg.CheckCycles("A"))
	})

	t.Run("two symbol cycle", func(t *testing.T) {
		reg := mustParse(t, "symbols:\n  - name: A\n    satisfies: [B]\n  - name: B\n    satisfies: [A]\n")

		err := reg.CheckCycles("A")
		var cycle CycleError
		require.True(t, errors.As(err, &cycle))
		assert.Equal(t, []string{"A", "B", "A"}, cycle.Path)
		assert.Equal(t, "satisfies cycle: A -> B -> A", err.Error())
	})

	t.Run("cycle not through origin", func(t *testing.T) {
		reg := mustParse(t, `
symbols:
  - name: Start
    satisfies: [A]
  - name: A
    satisfies: [B]
  - name: B
    satisfies: [C, A]
  - name: C
`)
		assert.NoError(t, reg.CheckCycles("Start"))

		err := reg.CheckAll()
		var cycle CycleError
		require.True(t, errors.As(err, &cycle))
		assert.Equal(t, []string{"A", "B", "A"}, cycle.Path)
	})

	t.Run("path retained through branches", func(t *testing.T) {
		reg := mustParse(t, `
symbols:
  - name: A
    satisfies: [Dead, B]
  - name: Dead
  - name: B
    satisfies: [C]
  - name: C
    satisfies: [A]
`)
		err := reg.CheckCycles("A")
		var cycle CycleError
		require.True(t, errors.As(err, &cycle))
		assert.Equal(t, []string{"A", "B", "C", "A"}, cycle.Path)
	})

	t.Run("unknown", func(t *testing.T) {
		reg := mustParse(t, fixture)
		assert.True(t, errors.As(reg.CheckCycles("Nope"), new(UnknownSymbolError)))
	})
}
