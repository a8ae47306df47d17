package synth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zoobzio/typedsql/internal/grammar"
)

const fixtureRegistry = `
symbols:
  - name: Expr
    rule: "<expr> ::= <number>"
    satisfies: [List]
    flags: [ops]
    ops:
      - name: Plus
        doc: "Plus adds rhs."
        params:
          - {name: rhs, type: Expr}
        result: Expr
        impl: plus
  - name: List
    flags: [absent, ops]
    ops:
      - name: Add
        params:
          - {name: e, type: Expr}
        result: List
        impl: addItem
        start: startList
  - name: Clause
    flags: [absent, union, ops, manual]
    ops:
      - name: With
        doc: "With replaces the expression."
        params:
          - {name: e, type: Expr}
        result: Clause
`

const fixtureSupport = `package demo

type Symbol interface {
	WriteSQL(*Context)
}

type Context struct{}

func stringify(Symbol) string { return "" }

func plus(l, r Expr) Expr { return l }

func addItem(l List, e Expr) List { return l }

func startList(e Expr) List { return e }

type Blank struct{}

func (Blank) WriteSQL(*Context) {}

func (b Blank) With(e Expr) Clause { return b }
`

const fixtureNodes = `package demo

// Num is a number.
//
//sqlgen:symbol Expr
type Num struct {
	v int
}

func (Num) WriteSQL(*Context) {}

//sqlgen:symbol Clause
type Cl struct{}

func (Cl) WriteSQL(*Context) {}

func (c Cl) With(e Expr) Clause { return c }
`

func fixtureGrammar(t *testing.T) *grammar.Registry {
	t.Helper()
	reg, err := grammar.Parse([]byte(fixtureRegistry))
	require.NoError(t, err)
	return reg
}

// writePackage lays files out in a fresh directory and returns it.
func writePackage(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	return dir
}

func fixturePackage(t *testing.T) string {
	t.Helper()
	return writePackage(t, map[string]string{
		"support.go": fixtureSupport,
		"nodes.go":   fixtureNodes,
	})
}

func generated(t *testing.T, files []File, name string) string {
	t.Helper()
	for _, f := range files {
		if f.Name == name {
			return string(f.Content)
		}
	}
	t.Fatalf("no generated file %s", name)
	return ""
}
