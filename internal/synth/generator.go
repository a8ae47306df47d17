// Package synth turns the grammar registry into Go source.
//
// For a target package it writes three files:
//
//	zz_generated.grammar.go   one sealed interface per symbol, plus <Symbol>Ops
//	zz_generated.nodes.go     conformances for every type marked //sqlgen:symbol
//	zz_generated.sentinel.go  the absence placeholder and the two-branch unions
//
// The target package must declare the Symbol interface, the Context type, the
// stringify function, the absence placeholder type and every impl and start
// function named by the registry.
package synth

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/zoobzio/typedsql/internal/grammar"
	"go.uber.org/zap"
	"golang.org/x/tools/imports"
)

const generatedPrefix = "zz_generated."

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("synth").ParseFS(templateFS, "templates/*.tmpl"))

// outputs maps each generated file to the template that renders it.
var outputs = []struct {
	file     string
	template string
}{
	{generatedPrefix + "grammar.go", "grammar.tmpl"},
	{generatedPrefix + "nodes.go", "nodes.tmpl"},
	{generatedPrefix + "sentinel.go", "sentinel.tmpl"},
}

// File is one generated source file.
type File struct {
	Name    string
	Content []byte
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithPackage overrides the package clause of the generated files.
func WithPackage(name string) Option {
	return func(g *Generator) {
		g.pkg = name
	}
}

// WithBlankType names the absence placeholder type. The default is Blank.
func WithBlankType(name string) Option {
	return func(g *Generator) {
		g.blank = name
	}
}

// WithUnionSuffix sets the suffix of generated union types. The default is
// Either.
func WithUnionSuffix(suffix string) Option {
	return func(g *Generator) {
		g.unionSuffix = suffix
	}
}

// Generator emits Go source for one registry.
type Generator struct {
	registry    *grammar.Registry
	logger      *zap.Logger
	pkg         string
	blank       string
	unionSuffix string
}

// New creates a generator for reg.
func New(reg *grammar.Registry, opts ...Option) *Generator {
	g := &Generator{
		registry:    reg,
		logger:      zap.NewNop(),
		blank:       "Blank",
		unionSuffix: "Either",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate scans dir and returns the generated files without writing them.
// The registry is cycle-checked first; any failure aborts the whole pass.
func (g *Generator) Generate(dir string) ([]File, error) {
	if err := g.registry.CheckAll(); err != nil {
		return nil, err
	}

	info, err := scanDir(dir)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("scanned package",
		zap.String("dir", dir),
		zap.String("package", info.Name),
		zap.Int("nodes", len(info.Nodes)))

	m, err := g.build(info)
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(outputs))
	for _, out := range outputs {
		src, err := render(out.template, out.file, m)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: out.file, Content: src})
	}
	return files, nil
}

// Write generates into dir. Nothing is written unless every file generated.
func (g *Generator) Write(dir string) ([]string, error) {
	files, err := g.Generate(dir)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Name, err)
		}
		g.logger.Info("generated file",
			zap.String("path", path),
			zap.Int("bytes", len(f.Content)))
		paths = append(paths, path)
	}
	return paths, nil
}

func render(name, filename string, m *model) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, m); err != nil {
		return nil, fmt.Errorf("execute %s: %w", name, err)
	}
	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return src, nil
}
