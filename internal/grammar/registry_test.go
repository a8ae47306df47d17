package grammar

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `
symbols:
  - name: Leaf
    rule: "<leaf> ::= x"
    satisfies: [Middle, Other]
  - name: Middle
    satisfies: [Top]
    flags: [absent]
  - name: Other
    satisfies: [Top]
    flags: [union]
  - name: Top
    rule: |
      <top> ::=
          <middle>
          | <other>
    flags: [ops]
    ops:
      - name: Wrap
        doc: "Wrap encloses the value."
        params:
          - {name: v, type: Leaf}
        result: Top
        impl: wrap
`

func mustParse(t *testing.T, src string) *Registry {
	t.Helper()
	reg, err := Parse([]byte(src))
	require.NoError(t, err)
	return reg
}

func TestParse(t *testing.T) {
	reg := mustParse(t, fixture)

	assert.Equal(t, 4, reg.Len())
	assert.Equal(t, []string{"Leaf", "Middle", "Other", "Top"}, reg.Names())

	top, err := reg.Lookup("Top")
	require.NoError(t, err)
	assert.Equal(t, "<top> ::=\n    <middle>\n    | <other>", top.Rule)
	assert.True(t, top.Has(FlagOps))
	assert.True(t, top.AutoOps())

	want := []Op{{
		Name:   "Wrap",
		Doc:    "Wrap encloses the value.",
		Params: []Param{{Name: "v", Type: "Leaf"}},
		Result: "Top",
		Impl:   "wrap",
	}}
	if diff := cmp.Diff(want, top.Ops); diff != "" {
		t.Errorf("Ops mismatch (-want +got):\n%s", diff)
	}

	middle, err := reg.Lookup("Middle")
	require.NoError(t, err)
	assert.Equal(t, FlagAbsent, middle.Flags)
	assert.Empty(t, middle.Rule)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "empty document",
			src:     "",
			wantErr: "registry is empty",
		},
		{
			name:    "unknown field",
			src:     "symbols:\n  - name: A\n    extends: [B]\n",
			wantErr: "decode registry",
		},
		{
			name:    "missing name",
			src:     "symbols:\n  - rule: x\n",
			wantErr: "symbol 0: missing name",
		},
		{
			name:    "duplicate symbol",
			src:     "symbols:\n  - name: A\n  - name: A\n",
			wantErr: `duplicate symbol "A"`,
		},
		{
			name:    "unknown flag",
			src:     "symbols:\n  - name: A\n    flags: [optional]\n",
			wantErr: `unknown flag "optional"`,
		},
		{
			name:    "manual without ops",
			src:     "symbols:\n  - name: A\n    flags: [manual]\n",
			wantErr: "manual flag requires ops",
		},
		{
			name:    "ops flag without ops",
			src:     "symbols:\n  - name: A\n    flags: [ops]\n",
			wantErr: "no ops declared",
		},
		{
			name:    "ops without flag",
			src:     "symbols:\n  - name: A\n    ops:\n      - {name: Go, result: A, impl: run}\n",
			wantErr: "without the ops flag",
		},
		{
			name:    "duplicate op",
			src:     "symbols:\n  - name: A\n    flags: [ops]\n    ops:\n      - {name: Go, result: A, impl: run}\n      - {name: Go, result: A, impl: run}\n",
			wantErr: `duplicate op "Go"`,
		},
		{
			name:    "op without result",
			src:     "symbols:\n  - name: A\n    flags: [ops]\n    ops:\n      - {name: Go, impl: run}\n",
			wantErr: `op "Go" has no result`,
		},
		{
			name:    "auto op without impl",
			src:     "symbols:\n  - name: A\n    flags: [ops]\n    ops:\n      - {name: Go, result: A}\n",
			wantErr: "needs an impl function",
		},
		{
			name:    "absent auto op without start",
			src:     "symbols:\n  - name: A\n    flags: [absent, ops]\n    ops:\n      - {name: Go, result: A, impl: run}\n",
			wantErr: "needs a start function",
		},
		{
			name:    "incomplete param",
			src:     "symbols:\n  - name: A\n    flags: [ops]\n    ops:\n      - {name: Go, result: A, impl: run, params: [{name: x}]}\n",
			wantErr: "incomplete param",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestManualOpsNeedNoImpl(t *testing.T) {
	reg := mustParse(t, "symbols:\n  - name: A\n    flags: [absent, ops, manual]\n    ops:\n      - {name: Go, result: A}\n")
	sym, err := reg.Lookup("A")
	require.NoError(t, err)
	assert.False(t, sym.AutoOps())
}

func TestParseUnknownSatisfies(t *testing.T) {
	_, err := Parse([]byte("symbols:\n  - name: A\n    satisfies: [Missing]\n"))

	var unknown UnknownSymbolError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Missing", unknown.Name)
	assert.Equal(t, "A", unknown.ReferencedBy)
}

func TestParseOpTypes(t *testing.T) {
	const head = "symbols:\n  - name: A\n    flags: [ops]\n    ops:\n"

	t.Run("unknown", func(t *testing.T) {
		tests := []struct {
			name    string
			src     string
			unknown string
		}{
			{"result", head + "      - {name: Go, result: Ab, impl: run}\n", "Ab"},
			{"param", head + "      - {name: Go, result: A, impl: run, params: [{name: x, type: B}]}\n", "B"},
			{"func param", head + "      - {name: Go, result: A, impl: run, params: [{name: f, type: \"func(A) C\"}]}\n", "C"},
			{"slice param", head + "      - {name: Go, result: A, impl: run, params: [{name: xs, type: \"[]D\"}]}\n", "D"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Parse([]byte(tt.src))

				var unknown UnknownSymbolError
				require.ErrorAs(t, err, &unknown)
				assert.Equal(t, UnknownSymbolError{Name: tt.unknown, ReferencedBy: "A.Go"}, unknown)
			})
		}
	})

	t.Run("resolved", func(t *testing.T) {
		srcs := map[string]string{
			"symbol":        head + "      - {name: Go, result: A, impl: run, params: [{name: f, type: \"func(A) A\"}]}\n",
			"declared type": "types: [Builder]\n" + head + "      - {name: Go, result: Builder, impl: run}\n",
			"predeclared":   head + "      - {name: Go, result: A, impl: run, params: [{name: n, type: int}, {name: s, type: \"[]string\"}]}\n",
			"qualified":     head + "      - {name: Go, result: A, impl: run, params: [{name: v, type: sql.NullString}]}\n",
			"forward":       "symbols:\n  - name: A\n    flags: [ops]\n    ops:\n      - {name: Go, result: B, impl: run}\n  - name: B\n",
		}
		for name, src := range srcs {
			t.Run(name, func(t *testing.T) {
				_, err := Parse([]byte(src))
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid type name", func(t *testing.T) {
		_, err := Parse([]byte("types: [\"func\"]\nsymbols:\n  - name: A\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid type name "func"`)
	})
}

func TestParseForwardReference(t *testing.T) {
	reg := mustParse(t, "symbols:\n  - name: A\n    satisfies: [B]\n  - name: B\n")
	assert.Equal(t, 2, reg.Len())
}

func TestLookupUnknown(t *testing.T) {
	reg := mustParse(t, fixture)

	_, err := reg.Lookup("Nope")
	var unknown UnknownSymbolError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Nope", unknown.Name)
	assert.Empty(t, unknown.ReferencedBy)
	assert.False(t, reg.Contains("Nope"))
}

func TestLookupReturnsCopy(t *testing.T) {
	reg := mustParse(t, fixture)

	leaf, err := reg.Lookup("Leaf")
	require.NoError(t, err)
	leaf.Satisfies[0] = "Mutated"

	top, err := reg.Lookup("Top")
	require.NoError(t, err)
	top.Ops[0].Params[0].Type = "Mutated"

	again, err := reg.Lookup("Leaf")
	require.NoError(t, err)
	assert.Equal(t, []string{"Middle", "Other"}, again.Satisfies)

	for _, sym := range reg.Symbols() {
		if sym.Name == "Top" {
			assert.Equal(t, "Leaf", sym.Ops[0].Params[0].Type)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grammar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	reg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, reg.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open registry")
}

func TestFlagString(t *testing.T) {
	tests := []struct {
		flag Flag
		want string
	}{
		{0, "none"},
		{FlagAbsent, "absent"},
		{FlagUnion | FlagOps, "union|ops"},
		{FlagAbsent | FlagUnion | FlagOps | FlagManual, "absent|union|ops|manual"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flag.String())
		})
	}
}

func TestDefault(t *testing.T) {
	reg := Default()
	require.NotNil(t, reg)
	assert.Same(t, reg, Default())
	assert.Equal(t, 198, reg.Len())
	require.NoError(t, reg.CheckAll())

	id, err := reg.Lookup("Identifier")
	require.NoError(t, err)
	assert.Equal(t, Flag(0), id.Flags)

	from, err := reg.Lookup("FromClause")
	require.NoError(t, err)
	assert.True(t, from.Has(FlagAbsent|FlagUnion|FlagOps|FlagManual))

	list, err := reg.Lookup("SelectSublist")
	require.NoError(t, err)
	require.Len(t, list.Ops, 1)
	assert.Equal(t, "Add", list.Ops[0].Name)
	assert.NotEmpty(t, list.Ops[0].Start)
}

func TestDefaultSourceIsCopy(t *testing.T) {
	src := DefaultSource()
	require.True(t, strings.HasPrefix(string(src), "# Grammar registry"))
	src[0] = 'X'
	assert.Equal(t, byte('#'), DefaultSource()[0])
}

func TestDefaultOpsAreUniquePerClosure(t *testing.T) {
	reg := Default()
	for _, sym := range reg.Symbols() {
		closure, err := reg.Closure(sym.Name)
		require.NoError(t, err)

		owner := make(map[string]string)
		for _, name := range append([]string{sym.Name}, closure...) {
			s, err := reg.Lookup(name)
			require.NoError(t, err)
			for _, op := range s.Ops {
				if prev, ok := owner[op.Name]; ok {
					t.Errorf("%s: op %s declared by both %s and %s", sym.Name, op.Name, prev, name)
				}
				owner[op.Name] = name
			}
		}
	}
}
