// Package postgres provides the PostgreSQL dialect for typedsql.
package postgres

import "github.com/zoobzio/typedsql/internal/render"

// Dialect renders bound values as $1, $2, ...
type Dialect struct{}

// New creates a new PostgreSQL dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "postgres"
}

// Capabilities returns the placeholder conventions of PostgreSQL. Named
// placeholders are not part of the wire protocol, so named values fall back to
// positional ones.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Positional: render.Dollar,
		Named:      render.None,
	}
}
