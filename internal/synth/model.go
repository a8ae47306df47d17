package synth

import (
	"fmt"
	"strings"

	"github.com/zoobzio/typedsql/internal/grammar"
	"go.uber.org/zap"
)

type model struct {
	Package string
	Symbols []symbolModel
	Nodes   []typeModel
	Blank   *typeModel
	Unions  []unionModel
}

type symbolModel struct {
	Name   string
	Rule   []string
	Embeds []string
	Ops    []opModel
	Absent bool
}

type opModel struct {
	Recv   string
	Symbol string
	Name   string
	Doc    string
	Params string
	Args   string
	Result string
	// Body is the returned expression of a generated method.
	Body string
	// Wrap names the union of the result when a union op must stay two-branched.
	Wrap string
}

type presentModel struct {
	Symbol string
	Body   string
}

type typeModel struct {
	Name    string
	Recv    string
	Asserts []string
	Markers []string
	Present []presentModel
	Ops     []opModel
}

type unionModel struct {
	Type      typeModel
	Symbol    string
	Left      string
	Right     string
	Transform string
	// Blank names the placeholder a zero union falls back to. Empty when
	// the symbol cannot be absent.
	Blank string
}

func (g *Generator) build(info *pkgInfo) (*model, error) {
	m := &model{Package: info.Name}
	if g.pkg != "" {
		m.Package = g.pkg
	}

	symbols := g.registry.Symbols()
	for _, sym := range symbols {
		closure, err := g.registry.Closure(sym.Name)
		if err != nil {
			return nil, err
		}
		sm := symbolModel{
			Name:   sym.Name,
			Embeds: closure,
			Absent: sym.Has(grammar.FlagAbsent),
		}
		if sym.Rule != "" {
			sm.Rule = strings.Split(sym.Rule, "\n")
		}
		for _, op := range sym.Ops {
			sm.Ops = append(sm.Ops, newOp(sym.Name, op))
		}
		m.Symbols = append(m.Symbols, sm)
	}

	for _, n := range info.Nodes {
		tm, err := g.nodeConformance(info, n)
		if err != nil {
			return nil, err
		}
		m.Nodes = append(m.Nodes, *tm)
	}

	blank, err := g.blankConformance(info, symbols)
	if err != nil {
		return nil, err
	}
	m.Blank = blank

	for _, sym := range symbols {
		if !sym.Has(grammar.FlagUnion) {
			continue
		}
		um, err := g.unionConformance(sym.Name)
		if err != nil {
			return nil, err
		}
		m.Unions = append(m.Unions, *um)
	}

	return m, nil
}

func newOp(symbol string, op grammar.Op) opModel {
	params := make([]string, len(op.Params))
	args := make([]string, len(op.Params))
	for i, p := range op.Params {
		params[i] = p.Name + " " + p.Type
		args[i] = p.Name
	}
	doc := op.Doc
	if doc == "" {
		doc = fmt.Sprintf("%s is an operation of %s.", op.Name, symbol)
	}
	return opModel{
		Symbol: symbol,
		Name:   op.Name,
		Doc:    doc,
		Params: strings.Join(params, ", "),
		Args:   strings.Join(args, ", "),
		Result: op.Result,
	}
}

// conformanceSet returns name followed by its closure.
func (g *Generator) conformanceSet(name string) ([]grammar.Symbol, error) {
	closure, err := g.registry.Closure(name)
	if err != nil {
		return nil, err
	}
	out := make([]grammar.Symbol, 0, len(closure)+1)
	for _, s := range append([]string{name}, closure...) {
		sym, err := g.registry.Lookup(s)
		if err != nil {
			return nil, err
		}
		out = append(out, sym)
	}
	return out, nil
}

// opTracker rejects two ops with one name in a single type.
type opTracker struct {
	typ  string
	seen map[string]string
}

func newOpTracker(typ string) *opTracker {
	return &opTracker{typ: typ, seen: make(map[string]string)}
}

func (t *opTracker) add(symbol, op string) error {
	if prev, ok := t.seen[op]; ok {
		return OpConflictError{Type: t.typ, Op: op, First: prev, Second: symbol}
	}
	t.seen[op] = symbol
	return nil
}

func (g *Generator) nodeConformance(info *pkgInfo, n node) (*typeModel, error) {
	set, err := g.conformanceSet(n.Symbol)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", n.Pos, n.Type, err)
	}

	tm := &typeModel{Name: n.Type, Recv: "n", Asserts: []string{n.Symbol}}
	ops := newOpTracker(n.Type)
	for _, sym := range set {
		tm.Markers = append(tm.Markers, sym.Name)
		if sym.Has(grammar.FlagAbsent) {
			tm.Present = append(tm.Present, presentModel{Symbol: sym.Name, Body: "true"})
		}
		for _, op := range sym.Ops {
			if err := ops.add(sym.Name, op.Name); err != nil {
				return nil, err
			}
			if sym.Has(grammar.FlagManual) {
				if !info.hasMethod(n.Type, op.Name) {
					return nil, MissingMethodError{Type: n.Type, Symbol: sym.Name, Method: op.Name}
				}
				continue
			}
			if info.hasMethod(n.Type, op.Name) {
				g.logger.Debug("auto op declared by hand",
					zap.String("type", n.Type),
					zap.String("symbol", sym.Name),
					zap.String("op", op.Name))
				continue
			}
			om := newOp(sym.Name, op)
			om.Recv = "n"
			om.Body = callExpr(op.Impl, "n", om.Args)
			tm.Ops = append(tm.Ops, om)
		}
	}

	g.logger.Debug("node conformance",
		zap.String("type", n.Type),
		zap.String("symbol", n.Symbol),
		zap.Int("symbols", len(tm.Markers)),
		zap.Int("ops", len(tm.Ops)))
	return tm, nil
}

func (g *Generator) blankConformance(info *pkgInfo, symbols []grammar.Symbol) (*typeModel, error) {
	tm := &typeModel{Name: g.blank, Recv: "n"}
	seen := make(map[string]bool)
	var set []grammar.Symbol
	for _, sym := range symbols {
		if !sym.Has(grammar.FlagAbsent) {
			continue
		}
		tm.Asserts = append(tm.Asserts, sym.Name)
		members, err := g.conformanceSet(sym.Name)
		if err != nil {
			return nil, err
		}
		for _, member := range members {
			if !seen[member.Name] {
				seen[member.Name] = true
				set = append(set, member)
			}
		}
	}
	if len(set) == 0 {
		return nil, nil
	}
	if !info.Types[g.blank] {
		return nil, fmt.Errorf("absence placeholder type %s is not declared in package %s", g.blank, info.Name)
	}

	ops := newOpTracker(g.blank)
	for _, sym := range set {
		tm.Markers = append(tm.Markers, sym.Name)
		if sym.Has(grammar.FlagAbsent) {
			tm.Present = append(tm.Present, presentModel{Symbol: sym.Name, Body: "false"})
		}
		for _, op := range sym.Ops {
			if err := ops.add(sym.Name, op.Name); err != nil {
				return nil, err
			}
			if sym.Has(grammar.FlagManual) {
				if !info.hasMethod(g.blank, op.Name) {
					return nil, MissingMethodError{Type: g.blank, Symbol: sym.Name, Method: op.Name}
				}
				continue
			}
			if op.Start == "" {
				return nil, fmt.Errorf("symbol %s: op %s has no start function for %s", sym.Name, op.Name, g.blank)
			}
			om := newOp(sym.Name, op)
			om.Body = callExpr(op.Start, "", om.Args)
			tm.Ops = append(tm.Ops, om)
		}
	}

	g.logger.Debug("absence conformance",
		zap.String("type", g.blank),
		zap.Int("symbols", len(tm.Markers)),
		zap.Int("ops", len(tm.Ops)))
	return tm, nil
}

func (g *Generator) unionConformance(name string) (*unionModel, error) {
	set, err := g.conformanceSet(name)
	if err != nil {
		return nil, err
	}

	typ := name + g.unionSuffix
	um := &unionModel{
		Type:      typeModel{Name: typ, Recv: "u", Asserts: []string{name}},
		Symbol:    name,
		Left:      "Left" + name,
		Right:     "Right" + name,
		Transform: "Transform" + name + "If",
	}
	self, err := g.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	if self.Has(grammar.FlagAbsent) {
		um.Blank = g.blank
	}
	ops := newOpTracker(typ)
	for _, sym := range set {
		um.Type.Markers = append(um.Type.Markers, sym.Name)
		if sym.Has(grammar.FlagAbsent) {
			um.Type.Present = append(um.Type.Present, presentModel{
				Symbol: sym.Name,
				Body:   fmt.Sprintf("u.active().present%s()", sym.Name),
			})
		}
		for _, op := range sym.Ops {
			if err := ops.add(sym.Name, op.Name); err != nil {
				return nil, err
			}
			om := newOp(sym.Name, op)
			om.Recv = "u"
			wrap, err := g.wrapsUnion(op.Result)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", sym.Name, op.Name, err)
			}
			if wrap {
				om.Wrap = op.Result
			} else {
				om.Body = fmt.Sprintf("u.active().%s(%s)", op.Name, om.Args)
			}
			um.Type.Ops = append(um.Type.Ops, om)
		}
	}
	return um, nil
}

// wrapsUnion reports whether an op result is a union symbol whose value must
// stay two-branched. Results that are not symbols were resolved when the
// registry loaded and never wrap.
func (g *Generator) wrapsUnion(result string) (bool, error) {
	if !g.registry.Contains(result) {
		return false, nil
	}
	res, err := g.registry.Lookup(result)
	if err != nil {
		return false, err
	}
	return res.Has(grammar.FlagUnion), nil
}

func callExpr(fn, recv, args string) string {
	switch {
	case recv == "":
		return fn + "(" + args + ")"
	case args == "":
		return fn + "(" + recv + ")"
	default:
		return fn + "(" + recv + ", " + args + ")"
	}
}
