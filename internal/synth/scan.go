package synth

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const markerPrefix = "//sqlgen:symbol"

// node is a type declaration carrying a symbol marker.
type node struct {
	Type   string
	Symbol string
	Pos    token.Position
}

// pkgInfo is what the generator needs to know about the target package.
type pkgInfo struct {
	Name    string
	Nodes   []node
	Types   map[string]bool
	Methods map[string]map[string]bool // receiver type -> method names
}

func (p *pkgInfo) hasMethod(typ, method string) bool {
	return p.Methods[typ][method]
}

// scanDir parses the hand-written Go files of dir. Generated files and tests
// are skipped so a stale generation never hides a missing method.
func scanDir(dir string) (*pkgInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read package dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if strings.HasSuffix(name, "_test.go") || strings.HasPrefix(name, generatedPrefix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	info := &pkgInfo{
		Types:   make(map[string]bool),
		Methods: make(map[string]map[string]bool),
	}
	fset := token.NewFileSet()
	for _, name := range names {
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if info.Name == "" {
			info.Name = file.Name.Name
		} else if file.Name.Name != info.Name {
			return nil, fmt.Errorf("%s: package %s, expected %s", name, file.Name.Name, info.Name)
		}
		if err := info.collect(fset, file); err != nil {
			return nil, err
		}
	}
	if info.Name == "" {
		return nil, fmt.Errorf("no Go files in %s", dir)
	}
	return info, nil
}

func (p *pkgInfo) collect(fset *token.FileSet, file *ast.File) error {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts := spec.(*ast.TypeSpec)
				p.Types[ts.Name.Name] = true

				doc := ts.Doc
				if doc == nil && len(d.Specs) == 1 {
					doc = d.Doc
				}
				sym, pos, err := marker(fset, doc)
				if err != nil {
					return err
				}
				if sym != "" {
					p.Nodes = append(p.Nodes, node{Type: ts.Name.Name, Symbol: sym, Pos: pos})
				}
			}
		case *ast.FuncDecl:
			if d.Recv == nil || len(d.Recv.List) == 0 {
				continue
			}
			recv := receiverName(d.Recv.List[0].Type)
			if p.Methods[recv] == nil {
				p.Methods[recv] = make(map[string]bool)
			}
			p.Methods[recv][d.Name.Name] = true
		}
	}
	return nil
}

// marker returns the symbol named by the //sqlgen:symbol line of doc, if any.
// The raw comment list is read because directives are dropped by Text.
func marker(fset *token.FileSet, doc *ast.CommentGroup) (string, token.Position, error) {
	if doc == nil {
		return "", token.Position{}, nil
	}
	for _, c := range doc.List {
		if !strings.HasPrefix(c.Text, markerPrefix) {
			continue
		}
		pos := fset.Position(c.Pos())
		fields := strings.Fields(strings.TrimPrefix(c.Text, markerPrefix))
		if len(fields) != 1 || !strings.HasPrefix(c.Text, markerPrefix+" ") {
			return "", pos, MarkerError{Pos: pos.String(), Text: c.Text}
		}
		return fields[0], pos, nil
	}
	return "", token.Position{}, nil
}

func receiverName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return receiverName(t.X)
	case *ast.IndexExpr:
		return receiverName(t.X)
	case *ast.IndexListExpr:
		return receiverName(t.X)
	case *ast.Ident:
		return t.Name
	default:
		return ""
	}
}
