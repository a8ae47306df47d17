package typedsql

import (
	"bytes"
	"database/sql"
	"io"
	"strings"

	"github.com/zoobzio/typedsql/internal/render"
)

// Symbol is the capability every node has: it can write itself as SQL.
type Symbol interface {
	WriteSQL(ctx *Context)
}

// Capabilities describes how a dialect spells bound parameters.
type Capabilities = render.Capabilities

// Dialect selects the placeholder convention used when rendering. It never
// changes the SQL text of a node.
type Dialect interface {
	Name() string
	Capabilities() Capabilities
}

// Context is the append-only sink a node tree renders into. It records bound
// values in order and keeps the first write error.
type Context struct {
	w    io.Writer
	caps Capabilities
	args []any
	err  error
}

func newContext(w io.Writer, d Dialect) *Context {
	caps := render.Default
	if d != nil {
		caps = d.Capabilities()
	}
	return &Context{w: w, caps: caps}
}

// WriteString appends s to the output. It does nothing once a write failed.
func (c *Context) WriteString(s string) {
	if c.err != nil || s == "" {
		return
	}
	_, c.err = io.WriteString(c.w, s)
}

// Bind records v and writes a positional placeholder for it.
func (c *Context) Bind(v any) {
	c.args = append(c.args, v)
	c.WriteString(c.caps.Placeholder(len(c.args)))
}

// BindNamed records v under name. Dialects without named placeholders get a
// positional placeholder and the bare value. It panics with an
// IdentifierError when name does not satisfy the identifier rule.
func (c *Context) BindNamed(name string, v any) {
	if !identPattern.MatchString(name) {
		panic(NewIdentifierError(name))
	}
	if !c.caps.SupportsNamed() {
		c.Bind(v)
		return
	}
	c.args = append(c.args, sql.Named(name, v))
	c.WriteString(c.caps.NamedPlaceholder(name))
}

// Err returns the first error reported by the underlying writer.
func (c *Context) Err() error {
	return c.err
}

// Args returns the bound values in placeholder order.
func (c *Context) Args() []any {
	return c.args
}

// spaced writes a single space followed by n, or nothing at all when n
// renders empty.
func (c *Context) spaced(n Symbol) {
	var buf bytes.Buffer
	w := c.w
	c.w = &buf
	n.WriteSQL(c)
	c.w = w
	if buf.Len() > 0 {
		c.WriteString(" ")
		c.WriteString(buf.String())
	}
}

// list writes items separated by ", ".
func (c *Context) list(items ...Symbol) {
	for i, item := range items {
		if i > 0 {
			c.WriteString(", ")
		}
		item.WriteSQL(c)
	}
}

// QueryResult holds rendered SQL and the values bound to its placeholders.
type QueryResult struct {
	SQL  string
	Args []any
}

// Render writes n to w using the placeholder convention of d and returns the
// bound values. A nil dialect uses "?" placeholders. The only error is the
// one reported by w, returned unchanged.
func Render(w io.Writer, n Symbol, d Dialect) ([]any, error) {
	ctx := newContext(w, d)
	n.WriteSQL(ctx)
	if ctx.err != nil {
		return nil, ctx.err
	}
	return ctx.args, nil
}

// Build renders n into a QueryResult.
func Build(n Symbol, d Dialect) (*QueryResult, error) {
	var sb strings.Builder
	args, err := Render(&sb, n, d)
	if err != nil {
		return nil, err
	}
	return &QueryResult{SQL: sb.String(), Args: args}, nil
}

// stringify renders n with "?" placeholders and drops the bound values.
func stringify(n Symbol) string {
	var sb strings.Builder
	ctx := newContext(&sb, nil)
	n.WriteSQL(ctx)
	return sb.String()
}
