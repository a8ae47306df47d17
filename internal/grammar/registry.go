// Package grammar holds the symbol registry that drives code generation.
//
// A registry maps each grammar symbol to the broader symbols it can stand in
// for, a small set of generation flags and, for some symbols, the convenience
// operations composed into the generated interface. Registries are immutable
// once loaded and are safe to share between goroutines.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed grammar.yaml
var defaultSource []byte

// Flag controls what the generator emits for a symbol.
type Flag uint8

const (
	// FlagAbsent marks a symbol that may legitimately be missing.
	FlagAbsent Flag = 1 << iota
	// FlagUnion requests a two-branch union type for the symbol.
	FlagUnion
	// FlagOps composes the symbol's convenience operations into its interface.
	FlagOps
	// FlagManual marks ops whose bodies are written by hand on every node.
	FlagManual
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{FlagAbsent, "absent"},
	{FlagUnion, "union"},
	{FlagOps, "ops"},
	{FlagManual, "manual"},
}

func (f Flag) String() string {
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

func parseFlag(name string) (Flag, bool) {
	for _, fn := range flagNames {
		if fn.name == name {
			return fn.flag, true
		}
	}
	return 0, false
}

// Param is a named, typed parameter of an op.
type Param struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Op is a convenience operation declared by a symbol.
type Op struct {
	Name   string  `yaml:"name"`
	Doc    string  `yaml:"doc"`
	Params []Param `yaml:"params"`
	Result string  `yaml:"result"`
	// Impl is the package-level function called by generated bodies with the
	// receiver followed by the params.
	Impl string `yaml:"impl"`
	// Start is the function the absence placeholder calls with the params.
	Start string `yaml:"start"`
}

// Symbol is one registry entry.
type Symbol struct {
	Name      string
	Rule      string
	Satisfies []string
	Flags     Flag
	Ops       []Op
}

// Has reports whether every bit of f is set on the symbol.
func (s Symbol) Has(f Flag) bool {
	return s.Flags&f == f
}

// AutoOps reports whether the symbol has ops the generator can fill in.
func (s Symbol) AutoOps() bool {
	return s.Has(FlagOps) && !s.Has(FlagManual)
}

func (s Symbol) clone() Symbol {
	c := s
	c.Satisfies = append([]string(nil), s.Satisfies...)
	if s.Ops == nil {
		return c
	}
	c.Ops = make([]Op, len(s.Ops))
	for i, op := range s.Ops {
		c.Ops[i] = op
		c.Ops[i].Params = append([]Param(nil), op.Params...)
	}
	return c
}

// Registry is an immutable, declaration-ordered table of symbols.
type Registry struct {
	symbols []Symbol
	index   map[string]int
	types   map[string]bool
}

type document struct {
	// Types are hand-written Go types that ops may name besides symbols.
	Types   []string `yaml:"types"`
	Symbols []entry  `yaml:"symbols"`
}

type entry struct {
	Name      string   `yaml:"name"`
	Rule      string   `yaml:"rule"`
	Satisfies []string `yaml:"satisfies"`
	Flags     []string `yaml:"flags"`
	Ops       []Op     `yaml:"ops"`
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry embedded in the package. It is parsed and
// cycle-checked once; invalid embedded data panics.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := Parse(defaultSource)
		if err == nil {
			err = reg.CheckAll()
		}
		if err != nil {
			panic(fmt.Errorf("embedded grammar: %w", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// DefaultSource returns a copy of the embedded registry YAML.
func DefaultSource() []byte {
	return bytes.Clone(defaultSource)
}

// LoadFile reads and validates a registry file.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	defer f.Close()

	reg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Parse decodes and validates registry YAML.
func Parse(data []byte) (*Registry, error) {
	return Load(bytes.NewReader(data))
}

// Load decodes and validates registry YAML from r.
func Load(r io.Reader) (*Registry, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("registry is empty")
		}
		return nil, fmt.Errorf("decode registry: %w", err)
	}
	return build(doc.Types, doc.Symbols)
}

func build(types []string, entries []entry) (*Registry, error) {
	reg := &Registry{
		symbols: make([]Symbol, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
		types:   make(map[string]bool, len(types)),
	}
	for _, t := range types {
		if !typeIdent.MatchString(t) || goKeywords[t] {
			return nil, fmt.Errorf("invalid type name %q", t)
		}
		reg.types[t] = true
	}

	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("symbol %d: missing name", i)
		}
		if _, dup := reg.index[e.Name]; dup {
			return nil, fmt.Errorf("duplicate symbol %q", e.Name)
		}

		sym := Symbol{
			Name:      e.Name,
			Rule:      strings.TrimRight(e.Rule, "\n"),
			Satisfies: e.Satisfies,
			Ops:       e.Ops,
		}
		for _, name := range e.Flags {
			f, ok := parseFlag(name)
			if !ok {
				return nil, fmt.Errorf("symbol %q: unknown flag %q", e.Name, name)
			}
			sym.Flags |= f
		}
		if err := validateOps(sym); err != nil {
			return nil, err
		}

		reg.index[sym.Name] = len(reg.symbols)
		reg.symbols = append(reg.symbols, sym)
	}

	// Edges are checked once every name is known so forward references work.
	for _, sym := range reg.symbols {
		for _, target := range sym.Satisfies {
			if _, ok := reg.index[target]; !ok {
				return nil, UnknownSymbolError{Name: target, ReferencedBy: sym.Name}
			}
		}
		for _, op := range sym.Ops {
			if err := reg.checkOpTypes(sym.Name, op); err != nil {
				return nil, err
			}
		}
	}

	return reg, nil
}

var (
	typeIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	// typeWord matches the names inside a Go type expression. Qualified
	// names such as sql.NullString match with their package.
	typeWord = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?`)

	goKeywords = map[string]bool{
		"func": true, "map": true, "chan": true, "struct": true, "interface": true,
	}
	goPredeclared = map[string]bool{
		"any": true, "bool": true, "byte": true, "comparable": true,
		"complex64": true, "complex128": true, "error": true,
		"float32": true, "float64": true, "int": true, "int8": true,
		"int16": true, "int32": true, "int64": true, "rune": true,
		"string": true, "uint": true, "uint8": true, "uint16": true,
		"uint32": true, "uint64": true, "uintptr": true,
	}
)

// checkOpTypes resolves every name in the result and param types of op.
// Names must be symbols, declared types, predeclared Go types or
// package-qualified.
func (r *Registry) checkOpTypes(symbol string, op Op) error {
	exprs := make([]string, 0, len(op.Params)+1)
	exprs = append(exprs, op.Result)
	for _, p := range op.Params {
		exprs = append(exprs, p.Type)
	}
	for _, expr := range exprs {
		for _, name := range typeWord.FindAllString(expr, -1) {
			if strings.Contains(name, ".") || goKeywords[name] || goPredeclared[name] {
				continue
			}
			if _, ok := r.index[name]; ok || r.types[name] {
				continue
			}
			return UnknownSymbolError{Name: name, ReferencedBy: symbol + "." + op.Name}
		}
	}
	return nil
}

func validateOps(sym Symbol) error {
	if sym.Has(FlagManual) && !sym.Has(FlagOps) {
		return fmt.Errorf("symbol %q: manual flag requires ops", sym.Name)
	}
	if sym.Has(FlagOps) && len(sym.Ops) == 0 {
		return fmt.Errorf("symbol %q: ops flag set but no ops declared", sym.Name)
	}
	if !sym.Has(FlagOps) && len(sym.Ops) > 0 {
		return fmt.Errorf("symbol %q: ops declared without the ops flag", sym.Name)
	}

	seen := make(map[string]bool, len(sym.Ops))
	for _, op := range sym.Ops {
		switch {
		case op.Name == "":
			return fmt.Errorf("symbol %q: op with no name", sym.Name)
		case seen[op.Name]:
			return fmt.Errorf("symbol %q: duplicate op %q", sym.Name, op.Name)
		case op.Result == "":
			return fmt.Errorf("symbol %q: op %q has no result", sym.Name, op.Name)
		case sym.AutoOps() && op.Impl == "":
			return fmt.Errorf("symbol %q: op %q needs an impl function", sym.Name, op.Name)
		case sym.AutoOps() && sym.Has(FlagAbsent) && op.Start == "":
			return fmt.Errorf("symbol %q: op %q needs a start function for absent values", sym.Name, op.Name)
		}
		seen[op.Name] = true
		for _, p := range op.Params {
			if p.Name == "" || p.Type == "" {
				return fmt.Errorf("symbol %q: op %q has an incomplete param", sym.Name, op.Name)
			}
		}
	}
	return nil
}

// Lookup returns the named symbol.
func (r *Registry) Lookup(name string) (Symbol, error) {
	i, ok := r.index[name]
	if !ok {
		return Symbol{}, UnknownSymbolError{Name: name}
	}
	return r.symbols[i].clone(), nil
}

// Contains reports whether name is declared.
func (r *Registry) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Symbols returns every symbol in declaration order.
func (r *Registry) Symbols() []Symbol {
	out := make([]Symbol, len(r.symbols))
	for i, s := range r.symbols {
		out[i] = s.clone()
	}
	return out
}

// Names returns every symbol name in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.symbols))
	for i, s := range r.symbols {
		out[i] = s.Name
	}
	return out
}

// Len returns the number of symbols.
func (r *Registry) Len() int {
	return len(r.symbols)
}
